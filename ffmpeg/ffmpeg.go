// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg drives the external encoder that muxes the rendered
// frame sequence with the original audio track into the output video.
//
// The encoder binary is located once at startup with Find, either from
// an explicit path or by system lookup, and probed with -version so a
// missing or broken installation is reported before any rendering work
// begins. MuxFrames then runs the fixed muxing command, blocking until
// the process exits and capturing its diagnostics; a non-zero exit is
// surfaced as an *ExitError carrying the exit status and the captured
// stderr text.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

var ErrNotFound = errors.New("ffmpeg executable not found")

// ExitError reports a failed encoder run.
type ExitError struct {
	// ExitCode of the encoder process, or -1 when it did not run.
	ExitCode int
	// Output is the captured stderr diagnostic text.
	Output string
}

func (e *ExitError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("ffmpeg exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("ffmpeg exited with status %d: %s", e.ExitCode, e.Output)
}

// Encoder is a validated handle on the external encoder executable.
type Encoder struct {
	path string
}

// Find locates the encoder executable by explicit path or system lookup
// and verifies it runs by probing -version. An empty path defaults to
// "ffmpeg" on the system path.
func Find(path string) (*Encoder, error) {
	if path == "" {
		path = "ffmpeg"
	}

	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	probe := exec.Command(resolved, "-version")
	probe.Stdout = io.Discard
	probe.Stderr = io.Discard
	if err := probe.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s is not runnable", ErrNotFound, resolved)
	}

	return &Encoder{path: resolved}, nil
}

// Path returns the resolved executable path.
func (e *Encoder) Path() string { return e.path }

// muxArgs is the fixed argument contract shared with the frame
// pipeline: a numbered PNG sequence at the video frame rate, the
// original audio file as the second input, an alpha-capable pixel
// format, output clamped to the shorter input and resized to the frame
// geometry.
func muxArgs(framePattern, audioPath string, fps, width, height int, outPath string) []string {
	return []string{
		"-y",
		"-framerate", strconv.Itoa(fps),
		"-i", framePattern,
		"-i", audioPath,
		"-c:v", "libx264",
		"-preset", "medium",
		"-crf", "20",
		"-pix_fmt", "yuva420p",
		"-shortest",
		"-s", fmt.Sprintf("%dx%d", width, height),
		outPath,
	}
}

// MuxFrames muxes the numbered frame sequence matching framePattern
// with the original audio file into outPath. It blocks until the
// encoder process exits. The process's stderr is captured and attached
// to the returned *ExitError on failure.
func (e *Encoder) MuxFrames(ctx context.Context, framePattern, audioPath string, fps, width, height int, outPath string) error {
	cmd := exec.CommandContext(ctx, e.path, muxArgs(framePattern, audioPath, fps, width, height, outPath)...)

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}

		return &ExitError{
			ExitCode: code,
			Output:   strings.TrimSpace(stderr.String()),
		}
	}

	return nil
}
