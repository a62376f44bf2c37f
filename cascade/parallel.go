package cascade

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runEntries executes body(0..n-1) on at most limit goroutines and joins.
// The per-entry loop is the engine's only suspension point: it is cancelled
// as a unit via ctx, and a failing entry cancels its siblings. Bodies write
// only to output slots they exclusively own, so no locking is involved.
func runEntries(ctx context.Context, n, limit int, body func(i int) error) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return body(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// A cancellation racing the dispatch loop must surface even when every
	// started body completed cleanly: partial output is never returned.
	return ctx.Err()
}
