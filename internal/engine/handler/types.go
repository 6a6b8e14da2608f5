package handler

import (
	"context"

	"github.com/goodnatureofminers/tokengate-backend/internal/filter"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/platform"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Platforms interface {
		Get(target model.Target) (platform.PostingPlatform, error)
		Fetcher(target model.Target) (platform.PostFetcher, bool)
		Resolver(target model.Target) (platform.HandleResolver, bool)
	}
	Poster interface {
		Target() model.Target
		CreatePost(ctx context.Context, account string, content model.Content) (platform.PublishResult, error)
		DeletePost(ctx context.Context, account, id string) error
	}
	Fetcher interface {
		GetPost(ctx context.Context, id string) (model.Post, error)
	}
	HandleResolver interface {
		ResolveHandle(ctx context.Context, handle string, to model.Target) (string, bool, error)
	}
	GraphStore interface {
		CreatePost(ctx context.Context, post model.Post) error
		UpsertPost(ctx context.Context, post model.Post) (bool, error)
		GetPost(ctx context.Context, hash string) (model.Post, error)
		MarkPostDeleted(ctx context.Context, hash string) error
		CreateRelationship(ctx context.Context, rel model.PostRelationship) (bool, error)
		RelationshipsForPost(ctx context.Context, postHash string) ([]model.PostRelationship, error)
		GetRelationship(ctx context.Context, postHash string, target model.Target, account string) (model.PostRelationship, bool, error)
		DeleteRelationship(ctx context.Context, postHash string, target model.Target, account string) error
	}
	ContentFilter interface {
		Classify(text string, embeds []string) filter.Verdict
	}
)
