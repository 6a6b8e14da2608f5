package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm"
)

// PushRoot appends root to the credential's recency ring and evicts entries
// beyond capacity. Pushing the newest root again is a no-op.
func (r *Repository) PushRoot(ctx context.Context, credentialID, root string, capacity int) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("push_root", err, start)
	}()

	if capacity < 1 {
		err = errors.New("root ring capacity must be positive")
		return false, err
	}
	root = strings.ToLower(root)

	pushed := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest credentialRootRow
		latestErr := tx.Where("credential_id = ?", credentialID).Order("id DESC").Take(&latest).Error
		switch {
		case latestErr == nil && latest.Root == root:
			return nil
		case latestErr != nil && !errors.Is(latestErr, gorm.ErrRecordNotFound):
			return fmt.Errorf("load latest root: %w", latestErr)
		}

		if err := tx.Create(&credentialRootRow{
			CredentialID: credentialID,
			Root:         root,
			CreatedAt:    r.now().UTC(),
		}).Error; err != nil {
			return fmt.Errorf("insert root: %w", err)
		}
		pushed = true

		var keep []uint
		if err := tx.Model(&credentialRootRow{}).
			Where("credential_id = ?", credentialID).
			Order("id DESC").
			Limit(capacity).
			Pluck("id", &keep).Error; err != nil {
			return fmt.Errorf("select retained roots: %w", err)
		}
		if err := tx.Where("credential_id = ? AND id NOT IN ?", credentialID, keep).
			Delete(&credentialRootRow{}).Error; err != nil {
			return fmt.Errorf("evict roots: %w", err)
		}
		return nil
	})
	return pushed, err
}

// IsRootValid reports whether root is in the credential's recency ring.
func (r *Repository) IsRootValid(ctx context.Context, credentialID, root string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("is_root_valid", err, start)
	}()

	var count int64
	if err = r.db.WithContext(ctx).Model(&credentialRootRow{}).
		Where("credential_id = ? AND root = ?", credentialID, strings.ToLower(root)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check root: %w", err)
	}
	return count > 0, nil
}

// Roots returns the credential's ring, newest first.
func (r *Repository) Roots(ctx context.Context, credentialID string) ([]model.CredentialRoot, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("roots", err, start)
	}()

	var rows []credentialRootRow
	if err = r.db.WithContext(ctx).
		Where("credential_id = ?", credentialID).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list roots: %w", err)
	}
	out := make([]model.CredentialRoot, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.CredentialRoot{CredentialID: row.CredentialID, Root: row.Root, CreatedAt: row.CreatedAt})
	}
	return out, nil
}
