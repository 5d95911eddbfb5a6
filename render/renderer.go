// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
)

// lineWidth is the fixed stroke width of the waveform polyline.
const lineWidth = 1.5

// flatSpan is the half-range substituted for the vertical axis when a
// chunk is flat (e.g. silence), where min == max would collapse the
// auto-scaled range to zero height.
const flatSpan = 1e-3

// Config holds the fixed geometry and color of every rendered frame.
// It is immutable for the duration of a conversion and may be shared
// freely across goroutines.
type Config struct {
	// Width and Height are the exact pixel dimensions of each frame.
	Width  int
	Height int
	// Color is the waveform stroke color, normally fully opaque.
	Color color.Color
}

// Renderer rasterizes amplitude series into transparent waveform PNGs.
// Every call draws on a fresh canvas, so a single Renderer is safe for
// concurrent use across frames.
type Renderer struct {
	cfg Config
}

func New(cfg Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if cfg.Color == nil {
		return nil, ErrNoColor
	}

	return &Renderer{cfg: cfg}, nil
}

// Render draws series as a single antialiased round-join polyline on a
// fully transparent canvas and writes it as a PNG to path, overwriting
// any existing file. The horizontal axis spans the chunk's own duration
// (len(series)/sampleRate seconds), so a short final chunk stretches to
// the full frame width. The vertical axis is fit per frame to
// [min*1.1, max*1.1]; the amplitude scale therefore varies with local
// loudness from frame to frame, which is the intended overlay look.
//
// The file is written to a temporary sibling and renamed into place, so
// concurrent readers never observe a partially written frame.
func (r *Renderer) Render(series []float32, path string) error {
	dc := gg.NewContext(r.cfg.Width, r.cfg.Height)
	dc.SetColor(r.cfg.Color)
	dc.SetLineWidth(lineWidth)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	if len(series) > 1 {
		lo, hi := verticalBounds(series)

		xScale := float64(r.cfg.Width) / float64(len(series)-1)
		yScale := float64(r.cfg.Height) / (hi - lo)

		for i, v := range series {
			x := float64(i) * xScale
			y := float64(r.cfg.Height) - (float64(v)-lo)*yScale
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}
	// A single sample has no horizontal extent; the frame stays blank
	// but is still written to keep the sequence contiguous.

	return writePNG(dc, path)
}

// verticalBounds returns the per-frame axis range [min*1.1, max*1.1],
// widened to a non-zero span when every sample is equal.
func verticalBounds(series []float32) (lo, hi float64) {
	minV, maxV := float64(series[0]), float64(series[0])
	for _, v := range series[1:] {
		f := float64(v)
		if f < minV {
			minV = f
		}
		if f > maxV {
			maxV = f
		}
	}

	lo, hi = minV*1.1, maxV*1.1
	if hi == lo {
		lo -= flatSpan
		hi += flatSpan
	}

	return lo, hi
}

func writePNG(dc *gg.Context, path string) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating frame file: %w", err)
	}

	if err := png.Encode(f, dc.Image()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding frame: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w", err)
	}

	return nil
}
