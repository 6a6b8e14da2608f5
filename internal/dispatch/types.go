package dispatch

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	QueueStore interface {
		EnqueueJob(ctx context.Context, job model.Job) error
		GetJob(ctx context.Context, id string) (model.Job, error)
		DeadJobs(ctx context.Context, limit int) ([]model.Job, error)
		RequeueDeadJob(ctx context.Context, id string) (bool, error)
	}
	WorkerStore interface {
		LeaseJobs(ctx context.Context, lease time.Duration, limit int) ([]model.Job, error)
		CompleteJob(ctx context.Context, id string) error
		RescheduleJob(ctx context.Context, id string, next time.Time, attempts int, lastError string) error
		KillJob(ctx context.Context, id string, attempts int, lastError string) error
	}
	// Executor runs a job through the idempotency gate.
	Executor interface {
		Execute(ctx context.Context, job model.Job) (model.ActionResponse, error)
		Abandon(ctx context.Context, job model.Job, cause error)
	}
	WorkerMetrics interface {
		ObserveLease(err error, jobs int)
		ObserveJob(actionType, outcome string, started time.Time)
	}
)
