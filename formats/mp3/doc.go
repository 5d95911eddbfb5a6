// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// The decoder returns an audio.Source that yields stereo 16-bit PCM as
// float32 samples in the range [-1.0, 1.0].
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// The reported total frame count is derived from the decoded stream
// length; MP3 data read from a non-seekable stream reports an unknown
// (zero) length and the converter falls back to counting frames as it
// goes.
package mp3
