// SPDX-License-Identifier: EPL-2.0

// Package wavoverlay turns an audio file into an overlay video of its
// waveform. The input is decoded to PCM, downmixed to mono, split into
// one chunk per video frame, and each chunk is rendered as a transparent
// waveform PNG; an external ffmpeg process then muxes the frame sequence
// with the original audio into an alpha-capable video file.
//
// Convert is the single entry point. Decoding is pluggable through the
// audio.Registry, and the formats subpackages provide decoders for WAV,
// MP3, Ogg Vorbis and AIFF out of the box.
package wavoverlay
