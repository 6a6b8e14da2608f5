package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm/clause"
)

// CreateRelationship records a platform copy. It reports false when a copy
// for (post, target, account) already exists.
func (r *Repository) CreateRelationship(ctx context.Context, rel model.PostRelationship) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_relationship", err, start)
	}()

	row := postRelationshipRow{
		PostHash:      rel.PostHash,
		Target:        string(rel.Target),
		TargetAccount: rel.TargetAccount,
		TargetID:      rel.TargetID,
		CreatedAt:     r.now().UTC(),
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_hash"}, {Name: "target"}, {Name: "target_account"}},
		DoNothing: true,
	}).Create(&row)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("create relationship %s -> %s/%s: %w", rel.PostHash, rel.Target, rel.TargetAccount, err)
	}
	return res.RowsAffected == 1, nil
}
