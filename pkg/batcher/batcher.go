// Package batcher groups items into size- or time-bounded batches and hands
// them to a flush func at a bounded rate.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

const (
	defaultSize     = 100
	defaultInterval = time.Second
)

// Config bounds a batch by Size items or Interval, whichever comes first.
// RPS caps flushes per second; zero means unlimited.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

// Batcher buffers items and flushes them from a single goroutine. Items
// still buffered when it stops are flushed on a context that is no longer
// canceled with the parent.
type Batcher[T any] struct {
	flush   func(context.Context, []T) error
	items   chan T
	cfg     Config
	limiter ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func New[T any](flush func(context.Context, []T) error, cfg Config, logger *zap.Logger) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		flush:   flush,
		items:   make(chan T, cfg.Size*2),
		cfg:     cfg,
		limiter: limiter,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.loop(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. Calling it
// again is a no-op.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add blocks until the item is buffered, ctx is done or the batcher stops.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) loop(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	var buf []T
	for {
		select {
		case <-ctx.Done():
			b.drain(context.WithoutCancel(ctx), buf)
			return
		case <-b.stop:
			b.drain(context.WithoutCancel(ctx), buf)
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				buf = b.send(ctx, buf)
			}
		case <-ticker.C:
			buf = b.send(ctx, buf)
		}
	}
}

// drain empties the channel into final batches.
func (b *Batcher[T]) drain(ctx context.Context, buf []T) {
	for {
		select {
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				buf = b.send(ctx, buf)
			}
		default:
			b.send(ctx, buf)
			return
		}
	}
}

// send flushes buf and returns a fresh buffer. The flush func owns buf
// after the call.
func (b *Batcher[T]) send(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}
	b.limiter.Take()
	if err := b.flush(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
	}
	return make([]T, 0, b.cfg.Size)
}
