// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidFrameRate      = errors.New("frame rate must be positive")
	ErrFrameRateExceedsAudio = errors.New("frame rate exceeds audio sample rate")
	ErrMonoSourceRequired    = errors.New("chunk reader requires a mono source")
)
