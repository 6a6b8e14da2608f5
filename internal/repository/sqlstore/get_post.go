package sqlstore

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

// GetPost returns a live canonical post.
func (r *Repository) GetPost(ctx context.Context, hash string) (model.Post, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_post", err, start)
	}()

	var row postRow
	if err = r.db.WithContext(ctx).
		Where("hash = ? AND deleted_at IS NULL", hash).
		Take(&row).Error; err != nil {
		return model.Post{}, notFound(err, "post %s", hash)
	}
	return row.toModel()
}
