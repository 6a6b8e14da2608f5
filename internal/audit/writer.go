// Package audit buffers action audit events and writes them to the audit
// log in batches. Recording never blocks an action on the log store.
package audit

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/pkg/batcher"
)

const (
	defaultFlushSize     = 500
	defaultFlushInterval = 2 * time.Second
	defaultRPS           = 10
)

type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

type Writer struct {
	batcher *batcher.Batcher[model.AuditEvent]
}

func NewWriter(repo Repository, cfg Config, logger *zap.Logger) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("audit repository is required")
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	return &Writer{
		batcher: batcher.New(repo.InsertAuditEvents, batcher.Config{
			Size:     cfg.FlushSize,
			Interval: cfg.FlushInterval,
			RPS:      cfg.RPS,
		}, logger),
	}, nil
}

func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes buffered events and stops the writer.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// Record queues an event. It fails only when the writer is stopped or ctx
// is done before the event fits in the buffer.
func (w *Writer) Record(ctx context.Context, event model.AuditEvent) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	return w.batcher.Add(ctx, event)
}

// Noop discards events. It stands in when no audit store is configured.
type Noop struct{}

func (Noop) Record(context.Context, model.AuditEvent) error { return nil }
