// SPDX-License-Identifier: EPL-2.0

// Package config loads and validates the conversion settings of the
// command line tool, optionally from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/wavoverlay/utils"
)

var (
	ErrInputRequired   = errors.New("input file is required")
	ErrInvalidGeometry = errors.New("width and height must be positive")
	ErrInvalidFPS      = errors.New("fps must be positive")
	ErrInvalidWorkers  = errors.New("workers must not be negative")
)

// Config holds every knob of a conversion run. Zero values are filled
// by Default; Load layers a YAML file on top of it.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
	FPS    int    `yaml:"fps"`

	FFmpeg   string `yaml:"ffmpeg"`
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
}

func Default() Config {
	return Config{
		Output:   "output.mov",
		Width:    1920,
		Height:   400,
		Color:    "#C04851",
		FPS:      30,
		FFmpeg:   "ffmpeg",
		LogLevel: "info",
	}
}

// Load reads a YAML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Input == "" {
		return ErrInputRequired
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidGeometry
	}
	if c.FPS <= 0 {
		return ErrInvalidFPS
	}
	if c.Workers < 0 {
		return ErrInvalidWorkers
	}
	if _, err := utils.ParseHexColor(c.Color); err != nil {
		return err
	}

	return nil
}
