// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ChunkReader slices a mono Source into fixed-duration chunks, one chunk
// per rendered video frame. Each chunk holds floor(sampleRate/frameRate)
// sample frames; the final chunk may be strictly shorter when the stream
// length is not an exact multiple. Reading is forward-only, single-pass.
type ChunkReader struct {
	src      Source
	chunkLen int
	eof      bool
}

// NewChunkReader creates a chunk reader producing one chunk per video
// frame at frameRate frames per second. The source must be mono (wrap
// multi-channel sources in a MonoMixer first) and frameRate must not
// exceed the source sample rate, otherwise a chunk would hold no frames.
func NewChunkReader(src Source, frameRate int) (*ChunkReader, error) {
	if frameRate <= 0 {
		return nil, ErrInvalidFrameRate
	}
	if frameRate > src.SampleRate() {
		return nil, ErrFrameRateExceedsAudio
	}
	if src.Channels() != 1 {
		return nil, ErrMonoSourceRequired
	}

	return &ChunkReader{
		src:      src,
		chunkLen: src.SampleRate() / frameRate,
	}, nil
}

// ChunkLen returns the number of sample frames in a full chunk.
func (c *ChunkReader) ChunkLen() int { return c.chunkLen }

// TotalChunks returns ceil(TotalFrames/ChunkLen), the number of chunks
// (and therefore video frames) the stream will produce, or 0 when the
// source does not know its length.
func (c *ChunkReader) TotalChunks() int {
	total := c.src.TotalFrames()
	if total <= 0 {
		return 0
	}

	return int((total + int64(c.chunkLen) - 1) / int64(c.chunkLen))
}

// Next returns the next chunk of samples. The returned slice is owned by
// the caller; a fresh slice is allocated per call so chunks may be
// consumed concurrently. Returns io.EOF once the stream is exhausted.
func (c *ChunkReader) Next() ([]float32, error) {
	if c.eof {
		return nil, io.EOF
	}

	buf := make([]float32, c.chunkLen)
	filled := 0

	for filled < c.chunkLen {
		n, err := c.src.ReadSamples(buf[filled:])
		filled += n

		if err == io.EOF {
			c.eof = true
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// A source returning no samples without an error would spin
			// forever; treat it as end of stream.
			c.eof = true
			break
		}
	}

	if filled == 0 {
		return nil, io.EOF
	}

	return buf[:filled], nil
}
