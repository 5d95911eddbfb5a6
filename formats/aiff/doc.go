// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files in
// PCM 16-bit format. The decoder returns an audio.Source yielding
// interleaved float32 samples in the range [-1.0, 1.0].
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
package aiff
