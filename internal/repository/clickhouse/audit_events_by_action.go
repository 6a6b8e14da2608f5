package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/pkg/safe"
)

const auditEventsByActionQuery = `
SELECT
	at,
	action_type,
	data_hash,
	proof_digest,
	roots,
	status,
	error_kind,
	error,
	source,
	duration_ms
FROM action_audit
WHERE action_id = ?
ORDER BY at DESC
LIMIT ?`

// AuditEventsByAction returns the newest audit rows for an action.
func (r *Repository) AuditEventsByAction(ctx context.Context, actionID string, limit int) ([]model.AuditEvent, error) {
	start := time.Now()
	var (
		err    error
		events []model.AuditEvent
	)
	defer func() {
		r.metrics.Observe("audit_events_by_action", len(events), err, start)
	}()

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.conn.Query(ctx, auditEventsByActionQuery, actionID, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			ev         model.AuditEvent
			actionType string
			status     string
			durationMs uint64
		)
		ev.ActionID = actionID
		if err = rows.Scan(
			&ev.At,
			&actionType,
			&ev.DataHash,
			&ev.ProofDigest,
			&ev.Roots,
			&status,
			&ev.ErrorKind,
			&ev.Error,
			&ev.Source,
			&durationMs,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		ev.ActionType = model.ActionType(actionType)
		ev.Status = model.AuditStatus(status)
		ms, convErr := safe.Int64(durationMs)
		if convErr != nil {
			err = fmt.Errorf("audit event duration: %w", convErr)
			return nil, err
		}
		ev.Duration = time.Duration(ms) * time.Millisecond
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
