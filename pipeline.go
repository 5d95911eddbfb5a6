// SPDX-License-Identifier: EPL-2.0

package wavoverlay

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/wavoverlay/audio"
	"github.com/ik5/wavoverlay/render"
)

// renderFrames drives the read/downmix/render loop until the stream is
// exhausted. Chunks are read sequentially to keep frame indices
// contiguous and zero-based; rasterization fans out to a bounded worker
// group, since frames depend only on their own chunk and temporal order
// is carried by the index in the file name, not by completion order.
// The first failure aborts the loop and propagates; cleaning up frames
// already on disk is the workspace's job, not the pipeline's.
func renderFrames(ctx context.Context, chunks *audio.ChunkReader, renderer *render.Renderer, ws *workspace, workers int, logger *zap.Logger) (int, error) {
	total := chunks.TotalChunks()
	if total > maxFrames {
		return 0, fmt.Errorf("%w: %d frames, limit %d", ErrTooManyFrames, total, maxFrames)
	}

	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var emitted atomic.Int64
	index := 0

	for {
		if err := ctx.Err(); err != nil {
			break
		}

		chunk, err := chunks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			g.Wait()
			return index, fmt.Errorf("reading chunk %d: %w", index, err)
		}

		// Streams that don't know their length are only caught here.
		if index >= maxFrames {
			g.Wait()
			return index, fmt.Errorf("%w: limit %d", ErrTooManyFrames, maxFrames)
		}

		i := index
		index++

		g.Go(func() error {
			if err := renderer.Render(chunk, ws.FramePath(i)); err != nil {
				return fmt.Errorf("rendering frame %d: %w", i, err)
			}

			done := emitted.Add(1)
			logger.Debug("frame rendered", zap.Int("frame", i))

			// Completed-frame count is monotonic even when renders
			// finish out of order, so decile crossings fire once each.
			if total > 0 {
				if before, after := int((done-1)*10)/total, int(done*10)/total; after > before {
					logger.Info("rendering progress",
						zap.Int("percent", after*10),
						zap.Int64("frames", done),
						zap.Int("total", total))
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return index, err
	}
	if err := ctx.Err(); err != nil {
		return index, err
	}

	logger.Info("frames rendered", zap.Int("frames", index))

	return index, nil
}
