package audio

import "fmt"

type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int    { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int      { return 1 }
func (m *MonoMixer) TotalFrames() int64 { return m.src.TotalFrames() }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == 1 {
		// Pass-through: read mono directly
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	// Calculate how many frames we can fit in dst
	maxFrames := len(dst)
	samplesNeeded := maxFrames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	} else {
		m.tmp = m.tmp[:samplesNeeded]
	}

	// Only read what we need
	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	invChannels := float32(1.0) / float32(channels)

	switch channels {
	case 2: // Stereo (most common)
		for f := 0; f < frames; f++ {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default: // Generic path
		for f := 0; f < frames; f++ {
			sum := float32(0)
			baseIdx := f * channels
			for c := 0; c < channels; c++ {
				sum += m.tmp[baseIdx+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
