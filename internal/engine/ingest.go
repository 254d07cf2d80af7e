package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Ivan-Ayub97/Metagify/internal/audio"
	"github.com/Ivan-Ayub97/Metagify/internal/model"
	"golang.org/x/sync/errgroup"
)

// Ingest reads the tag summaries of the given files concurrently, bounded
// by MaxParallelReads. The returned slice preserves the input order. A
// file that cannot be read yields a summary holding only its path, plus a
// warning progress event; the batch itself never fails.
func (e *Engine) Ingest(ctx context.Context, paths []string) []model.Summary {
	summaries := make([]model.Summary, len(paths))

	// A non-positive limit would make SetLimit reject every worker.
	limit := e.settings.MaxParallelReads
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path // capture
		g.Go(func() error {
			if ctx.Err() != nil {
				summaries[i] = model.Summary{Path: path}
				return nil
			}
			summary, err := audio.Summarize(path)
			if err != nil {
				e.progress(ProgressEvent{Message: fmt.Sprintf("Error reading %s: %v", filepath.Base(path), err), Level: LevelWarning})
				summaries[i] = model.Summary{Path: path}
				return nil
			}
			summaries[i] = summary
			return nil
		})
	}

	// Workers never return errors, only ctx cancellation stops them early.
	_ = g.Wait()

	return summaries
}
