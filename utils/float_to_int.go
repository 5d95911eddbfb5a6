// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a normalized sample to 16-bit PCM. Values
// outside [-1, 1] are clamped; the scale is 32767 on both sides so 1.0
// maps to MaxInt16 without wrapping.
func Float32ToInt16(v float32) int16 {
	if v >= 1 {
		return math.MaxInt16
	}
	if v <= -1 {
		return -math.MaxInt16
	}

	return int16(v * 32767)
}
