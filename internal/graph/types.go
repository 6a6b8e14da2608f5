package graph

import (
	"context"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		GetPost(ctx context.Context, hash string) (model.Post, error)
		RelationshipsForPost(ctx context.Context, postHash string) ([]model.PostRelationship, error)
		RelationshipsByTargetID(ctx context.Context, targetID string) ([]model.PostRelationship, error)
	}
)
