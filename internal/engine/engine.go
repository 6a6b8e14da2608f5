// Package engine gates credential-backed actions behind proof verification
// and an idempotency table, then runs the handler bound to each action type.
package engine

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"
)

const (
	DefaultSyncBudget     = 10 * time.Second
	DefaultHandlerTimeout = 60 * time.Second
	DefaultMaxAttempts    = 8
	// claimMargin is added to the handler timeout before a PENDING claim
	// is considered abandoned by a crashed process.
	claimMargin = time.Minute
)

type Status string

const (
	StatusSuccess    Status = "SUCCESS"
	StatusProcessing Status = "PROCESSING"
	StatusQueued     Status = "QUEUED"
)

type SubmitRequest struct {
	ActionID string
	Proofs   []model.Proof
	Payload  json.RawMessage
}

// Result is the outcome of a submission that passed the gate. Replay is set
// when a previous execution's response is returned without side effects.
type Result struct {
	Status   Status
	DataHash string
	Replay   bool
	JobID    string
	Response model.ActionResponse
}

type Config struct {
	SyncBudget     time.Duration
	HandlerTimeout time.Duration
	MaxAttempts    int
	// ClaimTTL is how long a PENDING execution stays owned without being
	// touched. Defaults to HandlerTimeout plus a minute.
	ClaimTTL time.Duration
}

type Dependencies struct {
	Registry Resolver
	// Verifier and Roots are only needed to Submit. A queue worker that
	// only Executes jobs may leave them nil.
	Verifier   ProofVerifier
	Roots      RootValidator
	Executions ExecutionStore
	Metrics    Metrics
	// Queue is optional. Without it retryable failures are recorded as
	// failed executions.
	Queue Enqueuer
	// Audit is optional.
	Audit AuditSink
}

type Engine struct {
	registry   Resolver
	verifier   ProofVerifier
	roots      RootValidator
	executions ExecutionStore
	queue      Enqueuer
	audit      AuditSink
	metrics    Metrics
	handlers   map[model.ActionType]Handler

	syncBudget     time.Duration
	handlerTimeout time.Duration
	claimTTL       time.Duration
	maxAttempts    int
	now            func() time.Time
	newOwner       func() string
	logger         *zap.Logger

	// detached tracks handler runs that outlive their request.
	detached sync.WaitGroup
}

func New(deps Dependencies, cfg Config, handlers []Handler, logger *zap.Logger) (*Engine, error) {
	if deps.Registry == nil || deps.Executions == nil {
		return nil, errors.New("registry and execution store are required")
	}
	if deps.Metrics == nil {
		return nil, errors.New("engine metrics is required")
	}
	if cfg.SyncBudget <= 0 {
		cfg.SyncBudget = DefaultSyncBudget
	}
	if cfg.HandlerTimeout <= 0 {
		cfg.HandlerTimeout = DefaultHandlerTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.ClaimTTL <= cfg.HandlerTimeout {
		cfg.ClaimTTL = cfg.HandlerTimeout + claimMargin
	}
	byType := make(map[model.ActionType]Handler, len(handlers))
	for _, h := range handlers {
		if _, dup := byType[h.Type()]; dup {
			return nil, fmt.Errorf("duplicate handler for %s", h.Type())
		}
		byType[h.Type()] = h
	}
	return &Engine{
		registry:       deps.Registry,
		verifier:       deps.Verifier,
		roots:          deps.Roots,
		executions:     deps.Executions,
		queue:          deps.Queue,
		audit:          deps.Audit,
		metrics:        deps.Metrics,
		handlers:       byType,
		syncBudget:     cfg.SyncBudget,
		handlerTimeout: cfg.HandlerTimeout,
		claimTTL:       cfg.ClaimTTL,
		maxAttempts:    cfg.MaxAttempts,
		now:            time.Now,
		newOwner:       uuid.NewString,
		logger:         logger.Named("engine"),
	}, nil
}

// Wait blocks until every detached handler run has recorded its outcome.
func (e *Engine) Wait() {
	e.detached.Wait()
}

// ProofDigest fingerprints the submitted proofs for the audit log and the
// dispatch queue. Proofs themselves are never stored.
func ProofDigest(proofs []model.Proof) string {
	h := blake3.New()
	for _, p := range proofs {
		_, _ = h.Write(p.Proof)
		for _, in := range p.PublicInputs {
			_, _ = h.Write([]byte(in))
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte{0xff})
	}
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
