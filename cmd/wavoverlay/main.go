// SPDX-License-Identifier: EPL-2.0

// Command wavoverlay renders the waveform of an audio file into an
// alpha-capable overlay video, using an external ffmpeg binary for the
// final mux.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ik5/wavoverlay"
	"github.com/ik5/wavoverlay/config"
	"github.com/ik5/wavoverlay/ffmpeg"
	"github.com/ik5/wavoverlay/utils"
)

func main() {
	defaults := config.Default()

	configPath := flag.String("config", "", "path to a YAML config file")
	input := flag.String("input", "", "audio file to render (wav, mp3, ogg, aiff)")
	output := flag.String("output", defaults.Output, "output video file")
	width := flag.Int("width", defaults.Width, "frame width in pixels")
	height := flag.Int("height", defaults.Height, "frame height in pixels")
	colorHex := flag.String("color", defaults.Color, "waveform color as 6 hex digits")
	fps := flag.Int("fps", defaults.FPS, "video frame rate")
	ffmpegPath := flag.String("ffmpeg", defaults.FFmpeg, "ffmpeg executable path")
	logLevel := flag.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	workers := flag.Int("workers", defaults.Workers, "concurrent frame renderers (0 = single)")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wavoverlay: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "output":
			cfg.Output = *output
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "color":
			cfg.Color = *colorHex
		case "fps":
			cfg.FPS = *fps
		case "ffmpeg":
			cfg.FFmpeg = *ffmpegPath
		case "log-level":
			cfg.LogLevel = *logLevel
		case "workers":
			cfg.Workers = *workers
		}
	})

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wavoverlay: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg, logger); err != nil {
		// Sync before exiting; os.Exit skips deferred calls and would
		// drop buffered output on exactly the path that matters.
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Sync()
}

func run(cfg config.Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Input); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	strokeColor, err := utils.ParseHexColor(cfg.Color)
	if err != nil {
		return err
	}

	// Fail before rendering anything if the encoder is absent.
	enc, err := ffmpeg.Find(cfg.FFmpeg)
	if err != nil {
		return err
	}
	logger.Debug("encoder located", zap.String("path", enc.Path()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return wavoverlay.Convert(ctx, cfg.Input, cfg.Output, enc, wavoverlay.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Color:   strokeColor,
		FPS:     cfg.FPS,
		Workers: cfg.Workers,
		Logger:  logger,
	})
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg.Build()
}
