// Package workerpool fans a slice of items out to a bounded set of workers.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process calls fn for every item with at most workers calls in flight. The
// first error cancels the context passed to the remaining calls and is
// returned once every started call has finished. Items not yet started when
// ctx is canceled are skipped and ctx.Err() is returned.
func Process[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(items)))
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(gctx, item)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
