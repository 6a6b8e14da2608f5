package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/merkle"
	"go.uber.org/zap"
)

const treeKeyPrefix = "tree/"

// BadgerTreeCache keeps the latest exported tree per credential so trees
// survive restarts and stay readable while the balance index is down.
type BadgerTreeCache struct {
	db *badger.DB
}

// NewBadgerTreeCache opens the cache in dir, or in memory when dir is empty.
func NewBadgerTreeCache(dir string, logger *zap.Logger) (*BadgerTreeCache, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{logger: logger.Named("badger").Sugar()})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open tree cache: %w", err)
	}
	return &BadgerTreeCache{db: db}, nil
}

func (c *BadgerTreeCache) Put(_ context.Context, credentialID string, tree merkle.ExportedTree) error {
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(treeKeyPrefix+credentialID), raw)
	})
}

func (c *BadgerTreeCache) Get(_ context.Context, credentialID string) (merkle.ExportedTree, error) {
	var tree merkle.ExportedTree
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(treeKeyPrefix + credentialID))
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, &tree)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return merkle.ExportedTree{}, apperr.Wrap(apperr.KindNotFound, err, "no tree built for credential %s", credentialID)
	}
	if err != nil {
		return merkle.ExportedTree{}, fmt.Errorf("read tree for %s: %w", credentialID, err)
	}
	return tree, nil
}

func (c *BadgerTreeCache) Close() error {
	return c.db.Close()
}

type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...any)   { l.logger.Errorf(format, args...) }
func (l badgerLogger) Warningf(format string, args ...any) { l.logger.Warnf(format, args...) }
func (l badgerLogger) Infof(format string, args ...any)    { l.logger.Debugf(format, args...) }
func (l badgerLogger) Debugf(format string, args ...any)   { l.logger.Debugf(format, args...) }
