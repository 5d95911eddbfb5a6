// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"image/color"
	"strings"
)

var ErrInvalidHexColor = errors.New("color must be 6 hex digits, e.g. #C04851")

// ParseHexColor parses a 6-hex-digit RGB string, with or without a
// leading '#', into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, ErrInvalidHexColor
	}

	var v [3]uint8
	for i := range v {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return color.RGBA{}, ErrInvalidHexColor
		}
		v[i] = hi<<4 | lo
	}

	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
