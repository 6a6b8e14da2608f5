package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Resolver interface {
		Resolve(ctx context.Context, actionID string) (model.ActionDefinition, model.Credential, error)
	}
	ProofVerifier interface {
		Verify(ctx context.Context, proof model.Proof) (bool, error)
		ExtractRoot(publicInputs []string) (string, error)
		ExtractDataHash(publicInputs []string) (string, error)
	}
	RootValidator interface {
		IsRootValid(ctx context.Context, credentialID, root string) (bool, error)
	}
	// ExecutionStore is the idempotency gate. A PENDING row belongs to the
	// owner that claimed it; only that owner may run or finish it.
	ExecutionStore interface {
		ClaimExecution(ctx context.Context, actionID, dataHash, owner string, staleBefore time.Time) (bool, model.ActionExecution, error)
		AdoptExecution(ctx context.Context, actionID, dataHash, owner string) (bool, error)
		CompleteExecution(ctx context.Context, actionID, dataHash, owner string, response []byte) error
		FailExecution(ctx context.Context, actionID, dataHash, owner, message string) error
		GetExecution(ctx context.Context, actionID, dataHash string) (model.ActionExecution, error)
	}
	Enqueuer interface {
		Enqueue(ctx context.Context, job model.Job) (string, error)
	}
	AuditSink interface {
		Record(ctx context.Context, event model.AuditEvent) error
	}
	Metrics interface {
		ObserveSubmit(actionType, outcome string, started time.Time)
		ObserveHandler(actionType string, err error, started time.Time)
	}
	// Handler performs the side effects of one action type. Handlers run
	// only after the idempotency gate has been passed.
	Handler interface {
		Type() model.ActionType
		Execute(ctx context.Context, def model.ActionDefinition, payload json.RawMessage) (model.ActionResponse, error)
	}
)
