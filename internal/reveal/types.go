package reveal

import (
	"context"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PostStore interface {
		GetPost(ctx context.Context, hash string) (model.Post, error)
		RevealPost(ctx context.Context, hash string, reveal model.RevealCommitment) (bool, error)
	}
)
