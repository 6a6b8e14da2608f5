// Package platform declares the adapters the handlers publish through.
package platform

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

// PublishResult identifies a freshly published post on its platform.
type PublishResult struct {
	ID  string
	URL string
}

// PostingPlatform publishes and deletes posts on behalf of a configured
// account.
type PostingPlatform interface {
	Target() model.Target
	CreatePost(ctx context.Context, account string, content model.Content) (PublishResult, error)
	DeletePost(ctx context.Context, account, id string) error
}

// PostFetcher reads a post that was published outside this service.
type PostFetcher interface {
	GetPost(ctx context.Context, id string) (model.Post, error)
}

// HandleResolver maps an account handle on one platform to the same
// person's handle on another. ok is false when no mapping is known.
type HandleResolver interface {
	ResolveHandle(ctx context.Context, handle string, to model.Target) (mapped string, ok bool, err error)
}

// Set holds one adapter per target.
type Set struct {
	platforms map[model.Target]PostingPlatform
}

func NewSet(platforms ...PostingPlatform) *Set {
	s := &Set{platforms: make(map[model.Target]PostingPlatform, len(platforms))}
	for _, p := range platforms {
		s.platforms[p.Target()] = p
	}
	return s
}

// Get returns the adapter for target. A target with no configured adapter
// is reported as unavailable.
func (s *Set) Get(target model.Target) (PostingPlatform, error) {
	p, ok := s.platforms[target]
	if !ok {
		return nil, apperr.New(apperr.KindPlatformUnavailable, "no adapter configured for %s", target)
	}
	return p, nil
}

// Fetcher returns the adapter for target if it can read external posts.
func (s *Set) Fetcher(target model.Target) (PostFetcher, bool) {
	f, ok := s.platforms[target].(PostFetcher)
	return f, ok
}

// Resolver returns the adapter for target if it can map handles.
func (s *Set) Resolver(target model.Target) (HandleResolver, bool) {
	r, ok := s.platforms[target].(HandleResolver)
	return r, ok
}

func (s *Set) String() string {
	return fmt.Sprintf("platform.Set(%d)", len(s.platforms))
}
