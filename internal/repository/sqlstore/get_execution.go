package sqlstore

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

func (r *Repository) GetExecution(ctx context.Context, actionID, dataHash string) (model.ActionExecution, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_execution", err, start)
	}()

	var row actionExecutionRow
	if err = r.db.WithContext(ctx).
		Where("action_id = ? AND data_hash = ?", actionID, dataHash).
		Take(&row).Error; err != nil {
		return model.ActionExecution{}, notFound(err, "execution %s/%s", actionID, dataHash)
	}
	return row.toModel(), nil
}
