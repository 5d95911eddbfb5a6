package render

import "errors"

var (
	ErrInvalidDimensions = errors.New("frame dimensions must be positive")
	ErrNoColor           = errors.New("waveform color must be set")
)
