package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/clock"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/pkg/workerpool"
)

const (
	outcomeDone    = "done"
	outcomeDelayed = "delayed"
	outcomeRetried = "retried"
	outcomeDead    = "dead"
)

type WorkerConfig struct {
	Concurrency    int
	BatchSize      int
	Lease          time.Duration
	IdleSleep      time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// Jitter is the randomization factor applied to retry delays.
	Jitter float64
}

func (c WorkerConfig) withDefaults() WorkerConfig {
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 32
	}
	if c.Lease <= 0 {
		c.Lease = 2 * time.Minute
	}
	if c.IdleSleep <= 0 {
		c.IdleSleep = time.Second
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = 5 * time.Second
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 30 * time.Minute
	}
	if c.Jitter < 0 {
		c.Jitter = 0
	}
	return c
}

// Worker leases due jobs and runs them through the executor. A rate-limited
// job is pushed past the platform's window without spending an attempt;
// other retryable failures back off exponentially until the attempt budget
// is exhausted.
type Worker struct {
	store    WorkerStore
	executor Executor
	metrics  WorkerMetrics
	sleep    func(context.Context, time.Duration) error
	now      func() time.Time
	cfg      WorkerConfig
	logger   *zap.Logger
}

func NewWorker(store WorkerStore, executor Executor, metrics WorkerMetrics, cfg WorkerConfig, logger *zap.Logger) (*Worker, error) {
	if store == nil || executor == nil {
		return nil, errors.New("worker store and executor are required")
	}
	if metrics == nil {
		return nil, errors.New("dispatch worker metrics is required")
	}
	return &Worker{
		store:    store,
		executor: executor,
		metrics:  metrics,
		sleep:    clock.Sleep,
		now:      time.Now,
		cfg:      cfg.withDefaults(),
		logger:   logger.Named("dispatch_worker"),
	}, nil
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.run(ctx); err != nil {
			w.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", w.cfg.IdleSleep))
			if sleepErr := w.sleep(ctx, w.cfg.IdleSleep); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (w *Worker) run(ctx context.Context) error {
	jobs, err := w.store.LeaseJobs(ctx, w.cfg.Lease, w.cfg.BatchSize)
	w.metrics.ObserveLease(err, len(jobs))
	if err != nil {
		w.logger.Error("lease jobs failed", zap.Error(err))
		return err
	}
	if len(jobs) == 0 {
		return w.sleep(ctx, w.cfg.IdleSleep)
	}

	w.logger.Debug("processing leased jobs", zap.Int("job_count", len(jobs)))
	return workerpool.Process(ctx, w.cfg.Concurrency, jobs, w.process)
}

// process never fails the batch on a single job; it only stops when the
// worker is shutting down. A job interrupted by shutdown keeps its lease
// and is picked up again once the lease expires. A job whose outcome is
// known is settled even during shutdown, so it is never run twice.
func (w *Worker) process(ctx context.Context, job model.Job) error {
	started := w.now()
	_, err := w.executor.Execute(ctx, job)
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return ctx.Err()
	}
	outcome, settleErr := w.settle(context.WithoutCancel(ctx), job, err)
	w.metrics.ObserveJob(string(job.ActionType), outcome, started)
	if settleErr != nil {
		w.logger.Error("failed to settle job",
			zap.String("job_id", job.ID), zap.String("outcome", outcome), zap.Error(settleErr))
	}
	return nil
}

func (w *Worker) settle(ctx context.Context, job model.Job, err error) (string, error) {
	logger := w.logger.With(zap.String("job_id", job.ID), zap.String("action_id", job.ActionID))
	if err == nil {
		return outcomeDone, w.store.CompleteJob(ctx, job.ID)
	}

	if window, ok := apperr.RetryAfter(err); ok {
		next := w.now().Add(window)
		logger.Info("job rate limited, delaying", zap.Time("next_run_at", next))
		return outcomeDelayed, w.store.RescheduleJob(ctx, job.ID, next, job.Attempts, err.Error())
	}

	attempts := job.Attempts + 1
	if apperr.IsRetryable(err) && attempts < job.MaxAttempts {
		next := w.now().Add(w.retryDelay(attempts))
		logger.Warn("job failed, retrying",
			zap.Int("attempts", attempts), zap.Time("next_run_at", next), zap.Error(err))
		return outcomeRetried, w.store.RescheduleJob(ctx, job.ID, next, attempts, err.Error())
	}

	logger.Error("job dead", zap.Int("attempts", attempts), zap.Error(err))
	if killErr := w.store.KillJob(ctx, job.ID, attempts, err.Error()); killErr != nil {
		return outcomeDead, killErr
	}
	// A permanent failure has already been recorded on the execution, and
	// an execution held by another owner is not the job's to fail.
	if apperr.IsRetryable(err) && apperr.KindOf(err) != apperr.KindAlreadyInFlight {
		w.executor.Abandon(ctx, job, err)
	}
	return outcomeDead, nil
}

// retryDelay is the exponential delay before the given attempt.
func (w *Worker) retryDelay(attempt int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.cfg.InitialBackoff
	b.MaxInterval = w.cfg.MaxBackoff
	b.RandomizationFactor = w.cfg.Jitter
	b.MaxElapsedTime = 0
	b.Reset()

	delay := b.NextBackOff()
	for i := 1; i < attempt; i++ {
		delay = b.NextBackOff()
	}
	return delay
}
