// SPDX-License-Identifier: EPL-2.0

package wavoverlay

import "errors"

var (
	ErrNoEncoder         = errors.New("no video encoder configured")
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrEmptyStream       = errors.New("input stream holds no samples")
	ErrTooManyFrames     = errors.New("frame count exceeds naming scheme")
)
