// Package dispatch implements the persistent retry queue behind the action
// engine: jobs for retryable handler failures, a worker that re-runs them
// with backoff and a dead-letter list operators can replay.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

const DefaultMaxAttempts = 8

type Queue struct {
	store  QueueStore
	newID  func() string
	now    func() time.Time
	logger *zap.Logger
}

func NewQueue(store QueueStore, logger *zap.Logger) (*Queue, error) {
	if store == nil {
		return nil, errors.New("queue store is required")
	}
	return &Queue{
		store:  store,
		newID:  uuid.NewString,
		now:    time.Now,
		logger: logger.Named("queue"),
	}, nil
}

// Enqueue persists job as a fresh queued entry and returns its id. A zero
// NextRunAt makes the job due immediately.
func (q *Queue) Enqueue(ctx context.Context, job model.Job) (string, error) {
	if job.ActionID == "" || job.DataHash == "" {
		return "", errors.New("job needs an action id and a data hash")
	}
	job.ID = q.newID()
	job.Status = model.JobQueued
	job.Attempts = 0
	if job.MaxAttempts <= 0 {
		job.MaxAttempts = DefaultMaxAttempts
	}
	if job.NextRunAt.IsZero() {
		job.NextRunAt = q.now()
	}
	if err := q.store.EnqueueJob(ctx, job); err != nil {
		return "", err
	}
	q.logger.Info("job enqueued",
		zap.String("job_id", job.ID),
		zap.String("action_id", job.ActionID),
		zap.Time("next_run_at", job.NextRunAt))
	return job.ID, nil
}

// DeadLetters lists jobs the worker gave up on, oldest first.
func (q *Queue) DeadLetters(ctx context.Context, limit int) ([]model.Job, error) {
	if limit <= 0 {
		limit = 100
	}
	return q.store.DeadJobs(ctx, limit)
}

// Replay returns a dead job to the queue with a fresh attempt budget. The
// worker runs it through the idempotency gate again, so an execution that
// succeeded in the meantime is not repeated.
func (q *Queue) Replay(ctx context.Context, id string) (model.Job, error) {
	job, err := q.store.GetJob(ctx, id)
	if err != nil {
		return model.Job{}, err
	}
	requeued, err := q.store.RequeueDeadJob(ctx, id)
	if err != nil {
		return model.Job{}, err
	}
	if !requeued {
		return job, apperr.New(apperr.KindInvalidPayload, "job %s is %s, only dead jobs can be replayed", id, job.Status)
	}
	q.logger.Info("dead job replayed", zap.String("job_id", id), zap.String("action_id", job.ActionID))
	job.Status = model.JobQueued
	job.Attempts = 0
	return job, nil
}

// ReplayAll requeues up to limit dead jobs and returns the replayed ids.
func (q *Queue) ReplayAll(ctx context.Context, limit int) ([]string, error) {
	jobs, err := q.DeadLetters(ctx, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		if _, err := q.Replay(ctx, job.ID); err != nil {
			return ids, fmt.Errorf("replay %s: %w", job.ID, err)
		}
		ids = append(ids, job.ID)
	}
	return ids, nil
}
