package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"go.uber.org/zap"
)

// Execute runs a queued job through the same handler path as Submit. A job
// may only run an execution it owns: a PENDING row claimed under the job's
// owner token, or a FAILED or abandoned row it re-claims through the gate.
// A job whose execution already succeeded returns the cached response
// without side effects; one whose row is held by another owner is in flight.
//
// A retryable error leaves the execution PENDING for the caller to
// reschedule; any other error marks it FAILED.
func (e *Engine) Execute(ctx context.Context, job model.Job) (model.ActionResponse, error) {
	started := e.now()
	job.Owner = ownerOf(job)
	event := model.AuditEvent{
		ActionID:    job.ActionID,
		ActionType:  job.ActionType,
		DataHash:    job.DataHash,
		ProofDigest: job.ProofDigest,
		Source:      "queue",
		At:          started,
	}

	resp, replay, err := e.execute(ctx, job)
	switch {
	case err == nil && replay:
		event.Status = model.AuditReplayed
	case err == nil:
		event.Status = model.AuditSucceeded
	case apperr.IsRetryable(err):
		event.Status = model.AuditQueued
	default:
		event.Status = model.AuditFailed
	}
	e.record(ctx, event, err, started)
	return resp, err
}

func (e *Engine) execute(ctx context.Context, job model.Job) (model.ActionResponse, bool, error) {
	owned, res, err := e.acquire(ctx, job)
	if err != nil || !owned {
		return res.Response, res.Replay, err
	}

	// Outcomes are recorded even when the worker is shutting down.
	recordCtx := context.WithoutCancel(ctx)
	def, _, err := e.registry.Resolve(ctx, job.ActionID)
	if err != nil {
		e.fail(recordCtx, job, err)
		return model.ActionResponse{}, false, err
	}
	h, ok := e.handlers[def.Type]
	if !ok {
		err := apperr.New(apperr.KindUnknownAction, "no handler for action type %s", def.Type)
		e.fail(recordCtx, job, err)
		return model.ActionResponse{}, false, err
	}

	runCtx, cancel := context.WithTimeout(ctx, e.handlerTimeout)
	defer cancel()
	resp, err := e.runHandler(runCtx, def, h, job.Payload)
	if err != nil {
		if !apperr.IsRetryable(err) {
			e.fail(recordCtx, job, err)
		}
		return model.ActionResponse{}, false, err
	}
	if err := e.complete(recordCtx, job, resp); err != nil {
		return model.ActionResponse{}, false, err
	}
	return resp, false, nil
}

// acquire reports whether the job owns the execution and may run the
// handler. When it does not, res carries the replayed response.
func (e *Engine) acquire(ctx context.Context, job model.Job) (bool, Result, error) {
	existing, err := e.executions.GetExecution(ctx, job.ActionID, job.DataHash)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound:
		existing.Status = model.ExecutionFailed
	case err != nil:
		return false, Result{}, fmt.Errorf("load execution: %w", err)
	}

	switch existing.Status {
	case model.ExecutionSuccess:
		res, err := replayOf(existing)
		return false, res, err
	case model.ExecutionPending:
		adopted, err := e.executions.AdoptExecution(ctx, job.ActionID, job.DataHash, job.Owner)
		if err != nil {
			return false, Result{}, fmt.Errorf("adopt execution: %w", err)
		}
		if adopted {
			return true, Result{}, nil
		}
	}

	// FAILED, missing, or PENDING under another owner: only a fresh claim
	// lets the job run.
	claimed, current, err := e.executions.ClaimExecution(ctx, job.ActionID, job.DataHash, job.Owner, e.staleBefore())
	if err != nil {
		return false, Result{}, fmt.Errorf("claim execution: %w", err)
	}
	if !claimed {
		res, err := replayOf(current)
		return false, res, err
	}
	return true, Result{}, nil
}

// Abandon marks a job's execution FAILED once the queue has given up on it.
func (e *Engine) Abandon(ctx context.Context, job model.Job, cause error) {
	job.Owner = ownerOf(job)
	e.fail(context.WithoutCancel(ctx), job, cause)
	e.logger.Warn("job abandoned",
		zap.String("job_id", job.ID), zap.String("action_id", job.ActionID), zap.Error(cause))
}

// ownerOf returns the claim token a job runs under. Jobs queued without
// one own their execution by job id.
func ownerOf(job model.Job) string {
	if job.Owner != "" {
		return job.Owner
	}
	return job.ID
}

// CachedResponse decodes a stored execution response.
func CachedResponse(exec model.ActionExecution) (model.ActionResponse, error) {
	var resp model.ActionResponse
	if len(exec.Response) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(exec.Response, &resp); err != nil {
		return resp, fmt.Errorf("decode cached response: %w", err)
	}
	return resp, nil
}
