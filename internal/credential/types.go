package credential

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/merkle"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/snapshot"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HolderLister interface {
		ListTopHolders(ctx context.Context, token snapshot.TokenRef, cursor string) (snapshot.Page, error)
	}
	RootStore interface {
		PushRoot(ctx context.Context, credentialID, root string, capacity int) (bool, error)
		IsRootValid(ctx context.Context, credentialID, root string) (bool, error)
	}
	CredentialStore interface {
		ListCredentials(ctx context.Context) ([]model.Credential, error)
	}
	TreeCache interface {
		Put(ctx context.Context, credentialID string, tree merkle.ExportedTree) error
		Get(ctx context.Context, credentialID string) (merkle.ExportedTree, error)
	}
	Metrics interface {
		ObserveBuild(credentialID string, err error, holders int, started time.Time)
	}
)
