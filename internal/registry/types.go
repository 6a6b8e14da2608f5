package registry

import (
	"context"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		GetActionDefinition(ctx context.Context, id string) (model.ActionDefinition, error)
		GetCredential(ctx context.Context, id string) (model.Credential, error)
	}
	Writer interface {
		UpsertCredential(ctx context.Context, c model.Credential) error
		UpsertActionDefinition(ctx context.Context, def model.ActionDefinition) error
	}
)
