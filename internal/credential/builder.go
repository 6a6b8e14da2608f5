// Package credential builds, caches and serves the holder trees that gate
// actions, and tracks each credential's recently valid roots.
package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/merkle"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"go.uber.org/zap"
)

const (
	DefaultDepth    = 12
	DefaultRingSize = 10
)

// BuildResult describes a freshly built tree.
type BuildResult struct {
	Root    string
	Holders int
	Pushed  bool
	Tree    merkle.ExportedTree
}

type Builder struct {
	lister   HolderLister
	roots    RootStore
	cache    TreeCache
	metrics  Metrics
	depth    int
	ringSize int
	logger   *zap.Logger
}

func NewBuilder(
	lister HolderLister,
	roots RootStore,
	cache TreeCache,
	metrics Metrics,
	depth, ringSize int,
	logger *zap.Logger,
) (*Builder, error) {
	if lister == nil || roots == nil || cache == nil {
		return nil, errors.New("holder lister, root store and tree cache are required")
	}
	if metrics == nil {
		return nil, errors.New("credential tree metrics is required")
	}
	if depth <= 0 {
		depth = DefaultDepth
	}
	if depth > merkle.MaxDepth {
		return nil, fmt.Errorf("tree depth %d exceeds %d", depth, merkle.MaxDepth)
	}
	if ringSize <= 0 {
		ringSize = DefaultRingSize
	}
	return &Builder{
		lister:   lister,
		roots:    roots,
		cache:    cache,
		metrics:  metrics,
		depth:    depth,
		ringSize: ringSize,
		logger:   logger.Named("builder"),
	}, nil
}

// Build snapshots the credential's holders, builds the padded tree, records
// the root in the recency ring and publishes the export to the cache. On
// error nothing already published is touched.
func (b *Builder) Build(ctx context.Context, cred model.Credential) (BuildResult, error) {
	started := time.Now()
	result, err := b.build(ctx, cred)
	b.metrics.ObserveBuild(cred.ID, err, result.Holders, started)
	return result, err
}

func (b *Builder) build(ctx context.Context, cred model.Credential) (BuildResult, error) {
	if cred.MinBalance == nil {
		return BuildResult{}, fmt.Errorf("credential %s has no min balance", cred.ID)
	}
	capacity := 1 << b.depth
	holders, err := FetchHolders(ctx, b.lister, cred, capacity)
	if err != nil {
		return BuildResult{}, err
	}

	tree, err := merkle.Build(b.depth, Pad(holders, capacity))
	if err != nil {
		return BuildResult{}, fmt.Errorf("build tree for %s: %w", cred.ID, err)
	}
	exported := tree.Export()

	// The root goes into the ring before the tree is published so a client
	// never receives a tree whose root would be rejected.
	pushed, err := b.roots.PushRoot(ctx, cred.ID, exported.Root, b.ringSize)
	if err != nil {
		return BuildResult{}, fmt.Errorf("push root for %s: %w", cred.ID, err)
	}
	if err := b.cache.Put(ctx, cred.ID, exported); err != nil {
		return BuildResult{}, fmt.Errorf("cache tree for %s: %w", cred.ID, err)
	}

	b.logger.Info("credential tree built",
		zap.String("credential_id", cred.ID),
		zap.String("root", exported.Root),
		zap.Int("holders", len(holders)),
		zap.Bool("new_root", pushed),
	)
	return BuildResult{Root: exported.Root, Holders: len(holders), Pushed: pushed, Tree: exported}, nil
}
