package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm/clause"
)

// CreatePost stores a newly published canonical post.
func (r *Repository) CreatePost(ctx context.Context, post model.Post) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_post", err, start)
	}()

	row, err := r.postRow(post)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create post %s: %w", post.Hash, err)
	}
	return nil
}

// UpsertPost materializes an externally observed post. Existing posts are
// left untouched since content is immutable.
func (r *Repository) UpsertPost(ctx context.Context, post model.Post) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_post", err, start)
	}()

	row, err := r.postRow(post)
	if err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoNothing: true,
	}).Create(&row)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("upsert post %s: %w", post.Hash, err)
	}
	return res.RowsAffected == 1, nil
}

func (r *Repository) postRow(post model.Post) (postRow, error) {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = r.now().UTC()
	}
	return newPostRow(post)
}
