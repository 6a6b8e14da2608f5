package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm"
)

// RelationshipsForPost lists the platform copies of a canonical post.
func (r *Repository) RelationshipsForPost(ctx context.Context, postHash string) ([]model.PostRelationship, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("relationships_for_post", err, start)
	}()

	var rows []postRelationshipRow
	if err = r.db.WithContext(ctx).
		Where("post_hash = ?", postHash).
		Order("target, target_account").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list relationships for %s: %w", postHash, err)
	}
	return toRelationships(rows), nil
}

// GetRelationship returns the copy of postHash on (target, account), or
// ok=false when none exists.
func (r *Repository) GetRelationship(ctx context.Context, postHash string, target model.Target, account string) (model.PostRelationship, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_relationship", err, start)
	}()

	var row postRelationshipRow
	err = r.db.WithContext(ctx).
		Where("post_hash = ? AND target = ? AND target_account = ?", postHash, string(target), account).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
		return model.PostRelationship{}, false, nil
	}
	if err != nil {
		return model.PostRelationship{}, false, fmt.Errorf("get relationship %s: %w", postHash, err)
	}
	return row.toModel(), true, nil
}

// RelationshipsByTargetID returns edges whose copy id is targetID, i.e. the
// canonical posts targetID was copied from.
func (r *Repository) RelationshipsByTargetID(ctx context.Context, targetID string) ([]model.PostRelationship, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("relationships_by_target_id", err, start)
	}()

	var rows []postRelationshipRow
	if err = r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("post_hash, target, target_account").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list relationships by target id %s: %w", targetID, err)
	}
	return toRelationships(rows), nil
}

// DeleteRelationship removes one platform copy edge.
func (r *Repository) DeleteRelationship(ctx context.Context, postHash string, target model.Target, account string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_relationship", err, start)
	}()

	if err = r.db.WithContext(ctx).
		Where("post_hash = ? AND target = ? AND target_account = ?", postHash, string(target), account).
		Delete(&postRelationshipRow{}).Error; err != nil {
		return fmt.Errorf("delete relationship %s -> %s/%s: %w", postHash, target, account, err)
	}
	return nil
}

func toRelationships(rows []postRelationshipRow) []model.PostRelationship {
	out := make([]model.PostRelationship, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}
