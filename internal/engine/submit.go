package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/payload"
	"go.uber.org/zap"
)

// Submit verifies the proofs, passes the idempotency gate and runs the
// handler. Proof and root failures happen before any state change. When
// the handler outlives the synchronous budget the result is PROCESSING and
// the outcome is recorded in the background.
func (e *Engine) Submit(ctx context.Context, req SubmitRequest) (Result, error) {
	started := e.now()
	event := model.AuditEvent{
		ActionID:    req.ActionID,
		ProofDigest: ProofDigest(req.Proofs),
		Source:      "api",
		At:          started,
	}

	res, err := e.submit(ctx, req, &event)

	e.metrics.ObserveSubmit(string(event.ActionType), outcomeOf(res, err), started)
	// Once the handler has started it records its own audit event.
	if event.Status == "" {
		event.Status = auditStatusOf(res, err)
		e.record(ctx, event, err, started)
	}
	return res, err
}

func (e *Engine) submit(ctx context.Context, req SubmitRequest, event *model.AuditEvent) (Result, error) {
	if e.verifier == nil || e.roots == nil {
		return Result{}, errors.New("engine is not configured to verify proofs")
	}
	def, cred, err := e.registry.Resolve(ctx, req.ActionID)
	if err != nil {
		return Result{}, err
	}
	event.ActionType = def.Type
	handler, ok := e.handlers[def.Type]
	if !ok {
		return Result{}, apperr.New(apperr.KindUnknownAction, "no handler for action type %s", def.Type)
	}

	dataHash, err := payload.DataHash(req.Payload)
	if err != nil {
		return Result{}, apperr.Wrap(apperr.KindInvalidPayload, err, "canonicalize payload")
	}
	event.DataHash = dataHash

	roots, err := e.verifyProofs(ctx, req.Proofs, dataHash)
	if err != nil {
		return Result{}, err
	}
	event.Roots = roots
	if err := e.checkRoots(ctx, cred.ID, roots); err != nil {
		return Result{}, err
	}

	owner := e.newOwner()
	claimed, existing, err := e.executions.ClaimExecution(ctx, def.ID, dataHash, owner, e.staleBefore())
	if err != nil {
		return Result{}, fmt.Errorf("claim execution: %w", err)
	}
	if !claimed {
		return replayOf(existing)
	}

	job := model.Job{
		ActionID:    def.ID,
		ActionType:  def.Type,
		DataHash:    dataHash,
		Payload:     req.Payload,
		ProofDigest: event.ProofDigest,
		Owner:       owner,
	}
	event.Status = model.AuditProcessing
	return e.runDetached(ctx, def, handler, job, *event)
}

// verifyProofs checks every proof and returns the roots they commit to.
// Each proof must bind this exact payload.
func (e *Engine) verifyProofs(ctx context.Context, proofs []model.Proof, dataHash string) ([]string, error) {
	if len(proofs) == 0 {
		return nil, apperr.New(apperr.KindInvalidProof, "at least one proof is required")
	}
	roots := make([]string, 0, len(proofs))
	for i, p := range proofs {
		ok, err := e.verifier.Verify(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("verify proof %d: %w", i, err)
		}
		if !ok {
			return nil, apperr.New(apperr.KindInvalidProof, "proof %d rejected", i)
		}
		bound, err := e.verifier.ExtractDataHash(p.PublicInputs)
		if err != nil {
			return nil, err
		}
		if !payload.Matches(bound, dataHash) {
			return nil, apperr.New(apperr.KindInvalidProof, "proof %d does not bind this payload", i)
		}
		root, err := e.verifier.ExtractRoot(p.PublicInputs)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}

// checkRoots passes when any one root is inside the credential's window.
func (e *Engine) checkRoots(ctx context.Context, credentialID string, roots []string) error {
	for _, root := range roots {
		ok, err := e.roots.IsRootValid(ctx, credentialID, root)
		if err != nil {
			return fmt.Errorf("check root: %w", err)
		}
		if ok {
			return nil
		}
	}
	return apperr.New(apperr.KindInvalidRoot, "no proof root is current for credential %s", credentialID)
}

// staleBefore is the cut-off under which a PENDING claim is treated as
// abandoned by a crashed process and may be re-claimed.
func (e *Engine) staleBefore() time.Time {
	return e.now().Add(-e.claimTTL)
}

func replayOf(existing model.ActionExecution) (Result, error) {
	switch existing.Status {
	case model.ExecutionSuccess:
		resp, err := CachedResponse(existing)
		if err != nil {
			return Result{}, err
		}
		return Result{Status: StatusSuccess, DataHash: existing.DataHash, Replay: true, Response: resp}, nil
	case model.ExecutionPending:
		return Result{}, apperr.New(apperr.KindAlreadyInFlight, "action %s is already executing for this payload", existing.ActionID)
	default:
		return Result{}, apperr.New(apperr.KindAlreadyInFlight, "action %s was re-claimed concurrently", existing.ActionID)
	}
}

type outcome struct {
	res Result
	err error
}

// runDetached runs the handler on a context that survives the request and
// waits for it up to the synchronous budget.
func (e *Engine) runDetached(ctx context.Context, def model.ActionDefinition, h Handler, job model.Job, event model.AuditEvent) (Result, error) {
	done := make(chan outcome, 1)
	e.detached.Add(1)
	go func() {
		defer e.detached.Done()
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.handlerTimeout)
		defer cancel()
		res, err := e.runAndRecord(runCtx, def, h, job, event)
		done <- outcome{res: res, err: err}
	}()

	timer := time.NewTimer(e.syncBudget)
	defer timer.Stop()
	select {
	case out := <-done:
		return out.res, out.err
	case <-timer.C:
	case <-ctx.Done():
	}
	e.logger.Info("handler exceeded synchronous budget",
		zap.String("action_id", def.ID), zap.String("data_hash", job.DataHash))
	return Result{Status: StatusProcessing, DataHash: job.DataHash}, nil
}

// runAndRecord runs a freshly claimed execution and records its outcome.
func (e *Engine) runAndRecord(ctx context.Context, def model.ActionDefinition, h Handler, job model.Job, event model.AuditEvent) (Result, error) {
	started := e.now()
	resp, err := e.runHandler(ctx, def, h, job.Payload)
	// Outcomes are recorded even when the handler ran out of time.
	ctx = context.WithoutCancel(ctx)
	if err == nil {
		if err := e.complete(ctx, job, resp); err != nil {
			event.Status = model.AuditFailed
			e.record(ctx, event, err, started)
			return Result{}, err
		}
		event.Status = model.AuditSucceeded
		e.record(ctx, event, nil, started)
		return Result{Status: StatusSuccess, DataHash: job.DataHash, Response: resp}, nil
	}

	if apperr.IsRetryable(err) && e.queue != nil {
		job.MaxAttempts = e.maxAttempts
		if delay, ok := apperr.RetryAfter(err); ok {
			job.NextRunAt = e.now().Add(delay)
		}
		id, qErr := e.queue.Enqueue(ctx, job)
		if qErr == nil {
			e.logger.Info("retryable handler failure, queued",
				zap.String("action_id", job.ActionID), zap.String("job_id", id), zap.Error(err))
			event.Status = model.AuditQueued
			e.record(ctx, event, err, started)
			return Result{Status: StatusQueued, DataHash: job.DataHash, JobID: id}, nil
		}
		e.logger.Error("enqueue failed, marking execution failed", zap.Error(qErr))
	}

	e.fail(ctx, job, err)
	event.Status = model.AuditFailed
	e.record(ctx, event, err, started)
	return Result{}, err
}

func (e *Engine) runHandler(ctx context.Context, def model.ActionDefinition, h Handler, raw json.RawMessage) (model.ActionResponse, error) {
	started := e.now()
	resp, err := h.Execute(ctx, def, raw)
	e.metrics.ObserveHandler(string(def.Type), err, started)
	return resp, err
}

func (e *Engine) complete(ctx context.Context, job model.Job, resp model.ActionResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if err := e.executions.CompleteExecution(ctx, job.ActionID, job.DataHash, job.Owner, raw); err != nil {
		e.logger.Error("side effects done but execution not recorded",
			zap.String("action_id", job.ActionID), zap.String("data_hash", job.DataHash), zap.Error(err))
		return fmt.Errorf("complete execution: %w", err)
	}
	return nil
}

func (e *Engine) fail(ctx context.Context, job model.Job, cause error) {
	if err := e.executions.FailExecution(ctx, job.ActionID, job.DataHash, job.Owner, cause.Error()); err != nil {
		e.logger.Error("failed to record execution failure",
			zap.String("action_id", job.ActionID), zap.String("data_hash", job.DataHash), zap.Error(err))
	}
}

func outcomeOf(res Result, err error) string {
	if err != nil {
		if kind := apperr.KindOf(err); kind != "" {
			return string(kind)
		}
		return "error"
	}
	if res.Replay {
		return string(model.AuditReplayed)
	}
	switch res.Status {
	case StatusProcessing:
		return string(model.AuditProcessing)
	case StatusQueued:
		return string(model.AuditQueued)
	default:
		return string(model.AuditSucceeded)
	}
}

func auditStatusOf(res Result, err error) model.AuditStatus {
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindInvalidProof, apperr.KindInvalidRoot, apperr.KindUnknownAction,
			apperr.KindInvalidPayload, apperr.KindAlreadyInFlight:
			return model.AuditRejected
		default:
			return model.AuditFailed
		}
	}
	return model.AuditStatus(outcomeOf(res, nil))
}

// record writes an audit event. Audit failures never affect the action.
func (e *Engine) record(ctx context.Context, event model.AuditEvent, cause error, started time.Time) {
	if e.audit == nil {
		return
	}
	event.Duration = e.now().Sub(started)
	if cause != nil {
		event.Error = cause.Error()
		event.ErrorKind = string(apperr.KindOf(cause))
	}
	if err := e.audit.Record(context.WithoutCancel(ctx), event); err != nil {
		e.logger.Warn("audit event dropped", zap.String("action_id", event.ActionID), zap.Error(err))
	}
}
