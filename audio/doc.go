// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core audio processing primitives used by
// the waveform overlay converter.
//
// The central abstraction is the Source interface: a forward-only PCM
// stream yielding interleaved float32 samples in [-1, 1], along with
// its sample rate, channel count and (when known) total length. Format
// decoders under formats/ construct Sources from files; this package
// provides the transforms applied on top of them:
//
//   - MonoMixer reduces a multi-channel Source to mono by averaging the
//     channels at each time index. Mono input passes through unchanged.
//   - ChunkReader slices a mono Source into fixed-duration chunks, one
//     per output video frame (floor(sampleRate/fps) frames per chunk,
//     with a short final chunk).
//
// # Building a pipeline
//
//	src, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	chunks, _ := audio.NewChunkReader(mono, 30)
//
//	for {
//	    chunk, err := chunks.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // render chunk...
//	}
//
// # Format Decoders
//
// Decoders register themselves in a Registry keyed by format name, so
// callers can select one by file extension:
//
//	registry.Register("wav", wav.Decoder{})
//	d, ok := registry.Get("wav")
//
// All decoders return an audio.Source which can be used with the
// transforms above.
package audio
