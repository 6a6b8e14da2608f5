package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"gorm.io/gorm/clause"
)

// ClaimExecution atomically inserts a PENDING row for (actionID, dataHash)
// owned by owner. An existing row is taken over only when it is FAILED, or
// PENDING with a claim older than staleBefore. When the claim is lost the
// current row is returned so the caller can replay SUCCESS or reject PENDING.
func (r *Repository) ClaimExecution(ctx context.Context, actionID, dataHash, owner string, staleBefore time.Time) (bool, model.ActionExecution, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("claim_execution", err, start)
	}()

	now := r.now().UTC()
	row := actionExecutionRow{
		ActionID:  actionID,
		DataHash:  dataHash,
		Status:    string(model.ExecutionPending),
		Owner:     owner,
		ClaimedAt: now.UnixMilli(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	status := clause.Column{Table: "action_executions", Name: "status"}
	claimedAt := clause.Column{Table: "action_executions", Name: "claimed_at"}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "action_id"}, {Name: "data_hash"}},
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Or(
				clause.Eq{Column: status, Value: string(model.ExecutionFailed)},
				clause.And(
					clause.Eq{Column: status, Value: string(model.ExecutionPending)},
					clause.Lt{Column: claimedAt, Value: staleBefore.UnixMilli()},
				),
			),
		}},
		DoUpdates: clause.Assignments(map[string]any{
			"status":     string(model.ExecutionPending),
			"owner":      owner,
			"claimed_at": row.ClaimedAt,
			"error":      "",
			"updated_at": now,
		}),
	}).Create(&row)
	if err = res.Error; err != nil {
		return false, model.ActionExecution{}, fmt.Errorf("claim execution: %w", err)
	}
	if res.RowsAffected == 1 {
		return true, row.toModel(), nil
	}

	var existing actionExecutionRow
	if err = r.db.WithContext(ctx).
		Where("action_id = ? AND data_hash = ?", actionID, dataHash).
		Take(&existing).Error; err != nil {
		return false, model.ActionExecution{}, fmt.Errorf("load claimed execution: %w", err)
	}
	return false, existing.toModel(), nil
}

// AdoptExecution refreshes a PENDING claim held by owner. It reports false
// when the row is not PENDING or another owner holds it.
func (r *Repository) AdoptExecution(ctx context.Context, actionID, dataHash, owner string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("adopt_execution", err, start)
	}()

	now := r.now().UTC()
	res := r.db.WithContext(ctx).Model(&actionExecutionRow{}).
		Where("action_id = ? AND data_hash = ? AND status = ? AND owner = ?",
			actionID, dataHash, string(model.ExecutionPending), owner).
		Updates(map[string]any{
			"claimed_at": now.UnixMilli(),
			"updated_at": now,
		})
	if err = res.Error; err != nil {
		return false, fmt.Errorf("adopt execution %s/%s: %w", actionID, dataHash, err)
	}
	return res.RowsAffected == 1, nil
}
