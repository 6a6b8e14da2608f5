package transport

import (
	"context"

	"github.com/goodnatureofminers/tokengate-backend/internal/engine"
	"github.com/goodnatureofminers/tokengate-backend/internal/merkle"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/reveal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ActionSubmitter interface {
		Submit(ctx context.Context, req engine.SubmitRequest) (engine.Result, error)
	}
	CredentialTrees interface {
		Tree(ctx context.Context, credentialID string) (merkle.ExportedTree, error)
		ProveInclusion(ctx context.Context, credentialID, address string) (merkle.Path, error)
	}
	GraphReader interface {
		PostGraph(ctx context.Context, hash string) (model.PostGraph, error)
	}
	Revealer interface {
		Reveal(ctx context.Context, req reveal.Request) (model.RevealCommitment, error)
	}
)
