package sqlstore

import (
	"context"
	"fmt"
	"time"
)

// MarkPostDeleted hides a canonical post from reads once its origin copy has
// been removed.
func (r *Repository) MarkPostDeleted(ctx context.Context, hash string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_post_deleted", err, start)
	}()

	now := r.now().UTC()
	if err = r.db.WithContext(ctx).Model(&postRow{}).
		Where("hash = ? AND deleted_at IS NULL", hash).
		Update("deleted_at", &now).Error; err != nil {
		return fmt.Errorf("mark post %s deleted: %w", hash, err)
	}
	return nil
}
