package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavoverlay/audio"
)

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec         *gowav.Decoder
	sampleRate  int
	channels    int
	totalFrames int64
	intBuf      *goaudio.IntBuffer
}

func (s *source) SampleRate() int    { return s.sampleRate }
func (s *source) Channels() int      { return s.channels }
func (s *source) TotalFrames() int64 { return s.totalFrames }
func (s *source) Close() error       { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Resize buffer if needed
	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	// 16-bit PCM, normalize to [-1, 1]
	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) / 32768.0
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, ErrUnsupportedWavLayout
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	// PCMLen is in bytes; 2 bytes per sample, interleaved
	totalFrames := dec.PCMLen() / int64(channels*2)

	return &source{
		dec:         dec,
		sampleRate:  int(dec.SampleRate),
		channels:    channels,
		totalFrames: totalFrames,
	}, nil
}
