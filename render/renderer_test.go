// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func testRenderer(t *testing.T, width, height int) *Renderer {
	t.Helper()

	r, err := New(Config{
		Width:  width,
		Height: height,
		Color:  color.RGBA{R: 0xff, A: 0xff},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return r
}

func decodeFrame(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening frame: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding frame: %v", err)
	}

	return img
}

func sineSeries(n int) []float32 {
	series := make([]float32, n)
	for i := range series {
		series[i] = float32(math.Sin(2 * math.Pi * float64(i) / float64(n)))
	}
	return series
}

func countOpaque(img image.Image) int {
	bounds := img.Bounds()
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				count++
			}
		}
	}
	return count
}

func TestRenderer_Dimensions(t *testing.T) {
	t.Parallel()

	r := testRenderer(t, 320, 100)
	path := filepath.Join(t.TempDir(), "frame_00000.png")

	if err := r.Render(sineSeries(1470), path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := decodeFrame(t, path)
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 100 {
		t.Errorf("frame dimensions = %dx%d, want 320x100", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_TransparentBackground(t *testing.T) {
	t.Parallel()

	r := testRenderer(t, 200, 80)
	path := filepath.Join(t.TempDir(), "frame_00000.png")

	if err := r.Render(sineSeries(500), path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := decodeFrame(t, path)

	// Corners are far from the waveform and must be fully transparent
	corners := [][2]int{{0, 0}, {199, 0}, {0, 79}, {199, 79}}
	for _, c := range corners {
		if _, _, _, a := img.At(c[0], c[1]).RGBA(); a != 0 {
			t.Errorf("corner (%d,%d) alpha = %d, want 0", c[0], c[1], a)
		}
	}

	// But the waveform itself must have been drawn
	if n := countOpaque(img); n < 200 {
		t.Errorf("opaque pixel count = %d, want at least 200", n)
	}
}

func TestRenderer_SilenceHasVisibleSpan(t *testing.T) {
	t.Parallel()

	// A flat chunk would auto-scale to a zero-height range; the epsilon
	// substitution must keep the line drawable.
	r := testRenderer(t, 300, 90)
	path := filepath.Join(t.TempDir(), "frame_00000.png")

	silence := make([]float32, 1470)
	if err := r.Render(silence, path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := decodeFrame(t, path)

	// A horizontal line across the middle of the frame, at least as many
	// touched pixels as the frame is wide.
	if n := countOpaque(img); n < 300 {
		t.Errorf("opaque pixel count = %d, want at least 300", n)
	}

	// Drawn at mid-height, nowhere near the edges
	for x := 0; x < 300; x++ {
		if _, _, _, a := img.At(x, 0).RGBA(); a != 0 {
			t.Fatalf("top row touched at x=%d", x)
		}
		if _, _, _, a := img.At(x, 89).RGBA(); a != 0 {
			t.Fatalf("bottom row touched at x=%d", x)
		}
	}
}

func TestRenderer_ConstantNonZeroChunk(t *testing.T) {
	t.Parallel()

	r := testRenderer(t, 120, 60)
	path := filepath.Join(t.TempDir(), "frame_00000.png")

	series := make([]float32, 100)
	for i := range series {
		series[i] = 0.7
	}

	if err := r.Render(series, path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if n := countOpaque(decodeFrame(t, path)); n < 120 {
		t.Errorf("opaque pixel count = %d, want at least 120", n)
	}
}

func TestRenderer_ShortFinalChunkSpansFullWidth(t *testing.T) {
	t.Parallel()

	// A short chunk is scaled to its own duration: the polyline still
	// reaches both horizontal edges of the frame.
	r := testRenderer(t, 240, 80)
	path := filepath.Join(t.TempDir(), "frame_00030.png")

	if err := r.Render(sineSeries(441), path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := decodeFrame(t, path)

	touched := func(x int) bool {
		for y := 0; y < 80; y++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				return true
			}
		}
		return false
	}

	if !touched(0) {
		t.Error("left edge not reached")
	}
	if !touched(239) {
		t.Error("right edge not reached")
	}
}

func TestRenderer_SingleSample(t *testing.T) {
	t.Parallel()

	r := testRenderer(t, 100, 50)
	path := filepath.Join(t.TempDir(), "frame_00000.png")

	if err := r.Render([]float32{0.5}, path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Frame exists but carries no line: a single point has no extent
	img := decodeFrame(t, path)
	if n := countOpaque(img); n != 0 {
		t.Errorf("opaque pixel count = %d, want 0", n)
	}
}

func TestRenderer_Overwrite(t *testing.T) {
	t.Parallel()

	r := testRenderer(t, 100, 50)
	path := filepath.Join(t.TempDir(), "frame_00000.png")

	if err := r.Render(make([]float32, 100), path); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	if err := r.Render(sineSeries(100), path); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}

	// The second render replaced the silence line with a sine; pixels
	// exist away from mid-height now.
	img := decodeFrame(t, path)
	found := false
	for x := 0; x < 100; x++ {
		for y := 0; y < 10; y++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				found = true
			}
		}
	}
	if !found {
		t.Error("overwritten frame still looks like the first render")
	}
}

func TestRenderer_NoTempFileLeftBehind(t *testing.T) {
	t.Parallel()

	r := testRenderer(t, 100, 50)
	dir := t.TempDir()

	if err := r.Render(sineSeries(200), filepath.Join(dir, "frame_00000.png")); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}

	if len(entries) != 1 || entries[0].Name() != "frame_00000.png" {
		t.Errorf("workspace contents = %v, want exactly frame_00000.png", entries)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Width: 0, Height: 100, Color: color.White}); err != ErrInvalidDimensions {
		t.Errorf("New() error = %v, want ErrInvalidDimensions", err)
	}

	if _, err := New(Config{Width: 100, Height: -1, Color: color.White}); err != ErrInvalidDimensions {
		t.Errorf("New() error = %v, want ErrInvalidDimensions", err)
	}

	if _, err := New(Config{Width: 100, Height: 100}); err != ErrNoColor {
		t.Errorf("New() error = %v, want ErrNoColor", err)
	}
}
