package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/merkle"
)

// Service is the read side of credential trees.
type Service struct {
	roots RootStore
	cache TreeCache
}

func NewService(roots RootStore, cache TreeCache) (*Service, error) {
	if roots == nil || cache == nil {
		return nil, errors.New("root store and tree cache are required")
	}
	return &Service{roots: roots, cache: cache}, nil
}

// Tree returns the latest published tree for a credential.
func (s *Service) Tree(ctx context.Context, credentialID string) (merkle.ExportedTree, error) {
	return s.cache.Get(ctx, credentialID)
}

// IsRootValid reports whether root is inside the credential's grace window.
func (s *Service) IsRootValid(ctx context.Context, credentialID, root string) (bool, error) {
	return s.roots.IsRootValid(ctx, credentialID, root)
}

// ProveInclusion returns the inclusion path for address in the latest tree.
func (s *Service) ProveInclusion(ctx context.Context, credentialID, address string) (merkle.Path, error) {
	exported, err := s.cache.Get(ctx, credentialID)
	if err != nil {
		return merkle.Path{}, err
	}
	tree, err := merkle.Import(exported)
	if err != nil {
		return merkle.Path{}, fmt.Errorf("load tree for %s: %w", credentialID, err)
	}
	return ProveInclusion(tree, address)
}

// ProveInclusion returns the inclusion path for address or a not-found
// error. Sentinel leaves are never provable.
func ProveInclusion(tree *merkle.Tree, address string) (merkle.Path, error) {
	path, err := tree.Prove(address)
	if errors.Is(err, merkle.ErrNotFound) {
		return merkle.Path{}, apperr.Wrap(apperr.KindNotFound, err, "address %s is not an eligible holder", address)
	}
	return path, err
}
