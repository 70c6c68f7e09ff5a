package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// RunBatch runs independent requests concurrently, at most limit at a time
// (no limit when limit <= 0). Results keep the order of reqs. The first
// failure cancels the requests that have not started yet.
func RunBatch(ctx context.Context, reqs []Request, limit int) ([]*Result, error) {
	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Run(req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Debug("batch failed", "component", "pipeline", "error", err)
		return nil, err
	}
	return results, nil
}
