package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

// EnqueueJob persists a new queued job.
func (r *Repository) EnqueueJob(ctx context.Context, job model.Job) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("enqueue_job", err, start)
	}()

	now := r.now().UTC()
	if job.NextRunAt.IsZero() {
		job.NextRunAt = now
	}
	row := dispatchJobRow{
		ID:          job.ID,
		ActionID:    job.ActionID,
		ActionType:  string(job.ActionType),
		DataHash:    job.DataHash,
		Payload:     string(job.Payload),
		ProofDigest: job.ProofDigest,
		Owner:       job.Owner,
		Status:      string(model.JobQueued),
		Attempts:    job.Attempts,
		MaxAttempts: job.MaxAttempts,
		NextRunAt:   job.NextRunAt.UnixMilli(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("enqueue job %s: %w", job.ID, err)
	}
	return nil
}

// LeaseJobs claims up to limit due jobs for lease. A running job whose lease
// expired is due again. Each claim is a conditional update so concurrent
// workers never lease the same job.
func (r *Repository) LeaseJobs(ctx context.Context, lease time.Duration, limit int) ([]model.Job, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("lease_jobs", err, start)
	}()

	now := r.now().UTC()
	nowMs := now.UnixMilli()
	const dueClause = "(status = ? AND next_run_at <= ?) OR (status = ? AND locked_until <= ?)"

	var candidates []dispatchJobRow
	if err = r.db.WithContext(ctx).
		Where(dueClause, string(model.JobQueued), nowMs, string(model.JobRunning), nowMs).
		Order("next_run_at").
		Limit(limit).
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("select due jobs: %w", err)
	}

	lockedUntil := now.Add(lease).UnixMilli()
	leased := make([]model.Job, 0, len(candidates))
	for _, c := range candidates {
		res := r.db.WithContext(ctx).Model(&dispatchJobRow{}).
			Where("id = ? AND ("+dueClause+")", c.ID, string(model.JobQueued), nowMs, string(model.JobRunning), nowMs).
			Updates(map[string]any{
				"status":       string(model.JobRunning),
				"locked_until": lockedUntil,
				"updated_at":   now,
			})
		if res.Error != nil {
			err = res.Error
			return nil, fmt.Errorf("lease job %s: %w", c.ID, err)
		}
		if res.RowsAffected == 0 {
			continue
		}
		c.Status = string(model.JobRunning)
		c.LockedUntil = lockedUntil
		leased = append(leased, c.toModel())
	}
	return leased, nil
}

// CompleteJob marks a job done.
func (r *Repository) CompleteJob(ctx context.Context, id string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("complete_job", err, start)
	}()

	err = r.updateJob(ctx, id, map[string]any{
		"status":       string(model.JobDone),
		"locked_until": int64(0),
		"last_error":   "",
	})
	return err
}

// RescheduleJob puts a job back in the queue to run at next.
func (r *Repository) RescheduleJob(ctx context.Context, id string, next time.Time, attempts int, lastError string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("reschedule_job", err, start)
	}()

	err = r.updateJob(ctx, id, map[string]any{
		"status":       string(model.JobQueued),
		"attempts":     attempts,
		"next_run_at":  next.UnixMilli(),
		"locked_until": int64(0),
		"last_error":   lastError,
	})
	return err
}

// KillJob moves a job to the dead-letter state.
func (r *Repository) KillJob(ctx context.Context, id string, attempts int, lastError string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("kill_job", err, start)
	}()

	err = r.updateJob(ctx, id, map[string]any{
		"status":       string(model.JobDead),
		"attempts":     attempts,
		"locked_until": int64(0),
		"last_error":   lastError,
	})
	return err
}

// DeadJobs lists dead-lettered jobs, oldest first.
func (r *Repository) DeadJobs(ctx context.Context, limit int) ([]model.Job, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("dead_jobs", err, start)
	}()

	var rows []dispatchJobRow
	if err = r.db.WithContext(ctx).
		Where("status = ?", string(model.JobDead)).
		Order("updated_at").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list dead jobs: %w", err)
	}
	out := make([]model.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *Repository) GetJob(ctx context.Context, id string) (model.Job, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_job", err, start)
	}()

	var row dispatchJobRow
	if err = r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return model.Job{}, notFound(err, "job %s", id)
	}
	return row.toModel(), nil
}

func (r *Repository) updateJob(ctx context.Context, id string, updates map[string]any) error {
	updates["updated_at"] = r.now().UTC()
	res := r.db.WithContext(ctx).Model(&dispatchJobRow{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update job %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job %s not found", id)
	}
	return nil
}

// RequeueDeadJob returns a dead job to the queue with a fresh attempt
// budget. It reports false when the job is not dead.
func (r *Repository) RequeueDeadJob(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("requeue_dead_job", err, start)
	}()

	now := r.now().UTC()
	res := r.db.WithContext(ctx).Model(&dispatchJobRow{}).
		Where("id = ? AND status = ?", id, string(model.JobDead)).
		Updates(map[string]any{
			"status":       string(model.JobQueued),
			"attempts":     0,
			"next_run_at":  now.UnixMilli(),
			"locked_until": int64(0),
			"updated_at":   now,
		})
	if err = res.Error; err != nil {
		return false, fmt.Errorf("requeue job %s: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}
