// SPDX-License-Identifier: EPL-2.0

package wavoverlay

import (
	"fmt"
	"os"
	"path/filepath"
)

// framePattern is the printf-style name of rendered frames inside a
// workspace. The 5-digit zero padding is an on-disk contract with the
// encoder's image-sequence input and bounds the frame count a job may
// produce; changing the width means changing both sides.
const framePattern = "frame_%05d.png"

// maxFrames is the largest frame count framePattern can represent
// without index collisions.
const maxFrames = 100000

// workspace owns the temporary directory holding the rendered frames of
// a single conversion job. The directory name is unique per job, so
// concurrent jobs never observe each other's frames.
type workspace struct {
	dir string
}

func newWorkspace() (*workspace, error) {
	dir, err := os.MkdirTemp("", "wavoverlay-*")
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	return &workspace{dir: dir}, nil
}

// FramePath returns the deterministic path of the frame at index i.
func (w *workspace) FramePath(i int) string {
	return filepath.Join(w.dir, fmt.Sprintf(framePattern, i))
}

// SequencePattern returns the pattern the encoder consumes the frame
// sequence through.
func (w *workspace) SequencePattern() string {
	return filepath.Join(w.dir, framePattern)
}

// Close removes the workspace directory and every frame inside it.
func (w *workspace) Close() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("removing workspace: %w", err)
	}

	return nil
}
