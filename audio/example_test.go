// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/wavoverlay/audio"
	"github.com/ik5/wavoverlay/internal/audiotest"
)

// Example_monoMixer demonstrates converting stereo to mono.
func Example_monoMixer() {
	// Create a stereo test source
	source := audiotest.NewConstantSource(44100, 2, 100, 0.5)

	mixer := audio.NewMonoMixer(source)

	fmt.Printf("Channels: %d\n", mixer.Channels())

	buf := make([]float32, 10)
	n, _ := mixer.ReadSamples(buf)
	fmt.Printf("Samples read: %d\n", n)
	fmt.Printf("First sample: %.1f\n", buf[0])
	// Output:
	// Channels: 1
	// Samples read: 10
	// First sample: 0.5
}

// Example_chunkReader demonstrates slicing a stream into per-frame chunks.
func Example_chunkReader() {
	// 1 second of mono audio at 44.1kHz
	source := audiotest.NewSilentSource(44100, 1, 44100)

	chunks, err := audio.NewChunkReader(source, 30)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Chunk length: %d\n", chunks.ChunkLen())
	fmt.Printf("Total chunks: %d\n", chunks.TotalChunks())

	count := 0
	for {
		_, err := chunks.Next()
		if err == io.EOF {
			break
		}
		count++
	}

	fmt.Printf("Chunks read: %d\n", count)
	// Output:
	// Chunk length: 1470
	// Total chunks: 30
	// Chunks read: 30
}
