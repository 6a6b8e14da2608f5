// Package graph answers read-side questions about the propagation graph:
// which copies a post has, which canonical post a copy came from and which
// other copies share that origin.
package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

type Service struct {
	store Store
}

func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("graph store is required")
	}
	return &Service{store: store}, nil
}

// FindCanonical returns the stored post that targetID was copied from.
func (s *Service) FindCanonical(ctx context.Context, targetID string) (model.Post, model.PostRelationship, bool, error) {
	edges, err := s.store.RelationshipsByTargetID(ctx, targetID)
	if err != nil {
		return model.Post{}, model.PostRelationship{}, false, err
	}
	for _, edge := range edges {
		if edge.PostHash == targetID {
			continue
		}
		// Reverse edges point at canonical posts from copy ids that are
		// not stored posts themselves.
		post, err := s.store.GetPost(ctx, edge.PostHash)
		switch {
		case apperr.KindOf(err) == apperr.KindNotFound:
			continue
		case err != nil:
			return model.Post{}, model.PostRelationship{}, false, fmt.Errorf("get canonical post %s: %w", edge.PostHash, err)
		}
		return post, edge, true, nil
	}
	return model.Post{}, model.PostRelationship{}, false, nil
}

// Siblings returns the copies of postHash, leaving out the copy excludeID.
func (s *Service) Siblings(ctx context.Context, postHash, excludeID string) ([]model.PostRelationship, error) {
	rels, err := s.store.RelationshipsForPost(ctx, postHash)
	if err != nil {
		return nil, err
	}
	out := make([]model.PostRelationship, 0, len(rels))
	for _, rel := range rels {
		if rel.TargetID != excludeID {
			out = append(out, rel)
		}
	}
	return out, nil
}

// PostGraph resolves hash, which may be a canonical post or any of its
// platform copies, into the post, its copies, its parent and its siblings.
func (s *Service) PostGraph(ctx context.Context, hash string) (model.PostGraph, error) {
	parent, edge, hasParent, err := s.FindCanonical(ctx, hash)
	if err != nil {
		return model.PostGraph{}, err
	}

	post, err := s.store.GetPost(ctx, hash)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound && hasParent:
		post = model.Post{
			Hash:          hash,
			Target:        edge.Target,
			OriginAccount: edge.TargetAccount,
			Content:       parent.Content,
			CreatedAt:     edge.CreatedAt,
		}
	case err != nil:
		return model.PostGraph{}, err
	}

	out := model.PostGraph{Post: post}
	exclude := ""
	if hasParent {
		out.Parent = &parent
		exclude = parent.Hash
		siblings, err := s.Siblings(ctx, parent.Hash, hash)
		if err != nil {
			return model.PostGraph{}, fmt.Errorf("siblings of %s: %w", parent.Hash, err)
		}
		out.Siblings = siblings
	}
	copies, err := s.Siblings(ctx, hash, exclude)
	if err != nil {
		return model.PostGraph{}, fmt.Errorf("copies of %s: %w", hash, err)
	}
	out.Copies = copies
	return out, nil
}
