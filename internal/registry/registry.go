// Package registry resolves action ids to their definitions and gating
// credentials.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

const defaultCacheTTL = time.Minute

type entry struct {
	def     model.ActionDefinition
	cred    model.Credential
	expires time.Time
}

// Registry is read-only at request time. Resolved definitions are cached
// for a short TTL so operator imports show up without a restart.
type Registry struct {
	store Store
	ttl   time.Duration
	now   func() time.Time

	mu    sync.RWMutex
	cache map[string]entry
}

func New(store Store, ttl time.Duration) (*Registry, error) {
	if store == nil {
		return nil, errors.New("registry store is required")
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Registry{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		cache: make(map[string]entry),
	}, nil
}

// Resolve returns the definition for actionID and the credential gating it.
func (r *Registry) Resolve(ctx context.Context, actionID string) (model.ActionDefinition, model.Credential, error) {
	now := r.now()
	r.mu.RLock()
	e, ok := r.cache[actionID]
	r.mu.RUnlock()
	if ok && now.Before(e.expires) {
		return e.def, e.cred, nil
	}

	def, err := r.store.GetActionDefinition(ctx, actionID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return model.ActionDefinition{}, model.Credential{}, apperr.Wrap(apperr.KindUnknownAction, err, "unknown action %s", actionID)
		}
		return model.ActionDefinition{}, model.Credential{}, fmt.Errorf("load action %s: %w", actionID, err)
	}
	cred, err := r.store.GetCredential(ctx, def.CredentialID)
	if err != nil {
		return model.ActionDefinition{}, model.Credential{}, fmt.Errorf("load credential %s for action %s: %w", def.CredentialID, actionID, err)
	}

	r.mu.Lock()
	r.cache[actionID] = entry{def: def, cred: cred, expires: now.Add(r.ttl)}
	r.mu.Unlock()
	return def, cred, nil
}
