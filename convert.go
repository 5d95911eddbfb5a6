// SPDX-License-Identifier: EPL-2.0

package wavoverlay

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/wavoverlay/audio"
	"github.com/ik5/wavoverlay/ffmpeg"
	"github.com/ik5/wavoverlay/formats/aiff"
	"github.com/ik5/wavoverlay/formats/mp3"
	"github.com/ik5/wavoverlay/formats/vorbis"
	"github.com/ik5/wavoverlay/formats/wav"
	"github.com/ik5/wavoverlay/render"
)

// Muxer combines a rendered frame sequence with the original audio file
// into the final video. *ffmpeg.Encoder is the production implementation.
type Muxer interface {
	MuxFrames(ctx context.Context, framePattern, audioPath string, fps, width, height int, outPath string) error
}

var _ Muxer = (*ffmpeg.Encoder)(nil)

// Options controls frame geometry, styling and pacing of a conversion.
type Options struct {
	// Width and Height are the pixel dimensions of every frame and of
	// the output video.
	Width  int
	Height int
	// Color is the waveform stroke color.
	Color color.Color
	// FPS is the video frame rate. Each frame covers SampleRate/FPS
	// audio frames, so it must not exceed the input's sample rate.
	FPS int
	// Workers bounds concurrent frame rasterization. Values below 1
	// mean a single worker.
	Workers int
	// Logger receives progress and diagnostics. nil means silent.
	Logger *zap.Logger
}

// NewFormatRegistry returns a registry holding the built-in decoders,
// keyed by the file extensions they claim.
func NewFormatRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Convert reads the audio file at inputPath, renders one waveform frame
// per FPS-sized chunk into a private temporary workspace, and has enc
// mux the sequence with the original audio into outputPath. The
// workspace is removed on every path out, success or failure. The
// output file appears atomically: the encoder writes a hidden sibling
// which is renamed over outputPath only after a clean encoder exit.
func Convert(ctx context.Context, inputPath, outputPath string, enc Muxer, opts Options) error {
	if enc == nil {
		return ErrNoEncoder
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer, err := render.New(render.Config{
		Width:  opts.Width,
		Height: opts.Height,
		Color:  opts.Color,
	})
	if err != nil {
		return err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(inputPath)), ".")
	dec, ok := NewFormatRegistry().Get(ext)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}
	defer src.Close()

	logger.Info("input opened",
		zap.String("path", inputPath),
		zap.String("format", ext),
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
		zap.Int64("total_frames", src.TotalFrames()))

	chunks, err := audio.NewChunkReader(audio.NewMonoMixer(src), opts.FPS)
	if err != nil {
		return err
	}

	ws, err := newWorkspace()
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			logger.Warn("workspace cleanup failed", zap.Error(err))
		}
	}()

	frames, err := renderFrames(ctx, chunks, renderer, ws, opts.Workers, logger)
	if err != nil {
		return err
	}
	if frames == 0 {
		return ErrEmptyStream
	}

	partial := partialPath(outputPath)
	defer os.Remove(partial)

	if err := enc.MuxFrames(ctx, ws.SequencePattern(), inputPath, opts.FPS, opts.Width, opts.Height, partial); err != nil {
		return fmt.Errorf("muxing output: %w", err)
	}

	if err := os.Rename(partial, outputPath); err != nil {
		return fmt.Errorf("finalizing output: %w", err)
	}

	logger.Info("conversion complete",
		zap.String("output", outputPath),
		zap.Int("frames", frames),
		zap.Int("fps", opts.FPS))

	return nil
}

// partialPath returns the hidden sibling the encoder writes before the
// final rename. It keeps the original extension so the encoder still
// derives the container format from the file name.
func partialPath(outputPath string) string {
	dir, base := filepath.Split(outputPath)
	return filepath.Join(dir, ".partial-"+base)
}
