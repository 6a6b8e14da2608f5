package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

// CompleteExecution moves a PENDING execution held by owner to SUCCESS with
// its response.
func (r *Repository) CompleteExecution(ctx context.Context, actionID, dataHash, owner string, response []byte) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("complete_execution", err, start)
	}()

	err = r.finishExecution(ctx, actionID, dataHash, owner, map[string]any{
		"status":     string(model.ExecutionSuccess),
		"response":   string(response),
		"error":      "",
		"updated_at": r.now().UTC(),
	})
	return err
}

// FailExecution moves a PENDING execution held by owner to FAILED. The row
// is kept.
func (r *Repository) FailExecution(ctx context.Context, actionID, dataHash, owner, message string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fail_execution", err, start)
	}()

	err = r.finishExecution(ctx, actionID, dataHash, owner, map[string]any{
		"status":     string(model.ExecutionFailed),
		"error":      message,
		"updated_at": r.now().UTC(),
	})
	return err
}

func (r *Repository) finishExecution(ctx context.Context, actionID, dataHash, owner string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&actionExecutionRow{}).
		Where("action_id = ? AND data_hash = ? AND status = ? AND owner = ?",
			actionID, dataHash, string(model.ExecutionPending), owner).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update execution %s/%s: %w", actionID, dataHash, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("execution %s/%s is not pending under this owner", actionID, dataHash)
	}
	return nil
}
