package credential

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/clock"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultRefreshInterval = 10 * time.Minute
	refreshTick            = 15 * time.Second
	refreshWorkers         = 4
)

type treeBuilder interface {
	Build(ctx context.Context, cred model.Credential) (BuildResult, error)
}

// Refresher rebuilds every credential's tree on a fixed interval. A failed
// rebuild is logged and retried on the next tick; the previously published
// tree and roots stay in place.
type Refresher struct {
	credentials CredentialStore
	builder     treeBuilder
	interval    time.Duration
	tick        time.Duration
	sleep       func(context.Context, time.Duration) error
	now         func() time.Time
	logger      *zap.Logger

	mu        sync.Mutex
	lastBuilt map[string]time.Time
}

func NewRefresher(credentials CredentialStore, builder *Builder, interval time.Duration, logger *zap.Logger) (*Refresher, error) {
	if credentials == nil || builder == nil {
		return nil, errors.New("credential store and builder are required")
	}
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Refresher{
		credentials: credentials,
		builder:     builder,
		interval:    interval,
		tick:        min(refreshTick, interval),
		sleep:       clock.Sleep,
		now:         time.Now,
		logger:      logger.Named("refresher"),
		lastBuilt:   make(map[string]time.Time),
	}, nil
}

func (r *Refresher) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := r.run(ctx); err != nil {
			r.logger.Warn("refresh iteration failed, backing off", zap.Error(err), zap.Duration("sleep", r.tick))
		}
		if err := r.sleep(ctx, r.tick); err != nil {
			return err
		}
	}
}

func (r *Refresher) run(ctx context.Context) error {
	creds, err := r.credentials.ListCredentials(ctx)
	if err != nil {
		return err
	}
	due := r.due(creds)
	if len(due) == 0 {
		return nil
	}
	return workerpool.Process(ctx, min(refreshWorkers, len(due)), due, func(ctx context.Context, cred model.Credential) error {
		if _, err := r.builder.Build(ctx, cred); err != nil {
			r.logger.Error("credential tree rebuild failed, keeping previous tree",
				zap.String("credential_id", cred.ID), zap.Error(err))
			return nil
		}
		r.markBuilt(cred.ID)
		return nil
	})
}

func (r *Refresher) due(creds []model.Credential) []model.Credential {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	var out []model.Credential
	for _, c := range creds {
		if last, ok := r.lastBuilt[c.ID]; ok && now.Sub(last) < r.interval {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *Refresher) markBuilt(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastBuilt[id] = r.now()
}
