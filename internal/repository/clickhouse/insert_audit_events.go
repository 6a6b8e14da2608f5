package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/pkg/safe"
)

const insertAuditEventsQuery = `
INSERT INTO action_audit (
	at,
	action_id,
	action_type,
	data_hash,
	proof_digest,
	roots,
	status,
	error_kind,
	error,
	source,
	duration_ms
) VALUES`

// InsertAuditEvents appends audit rows in a single batch.
func (r *Repository) InsertAuditEvents(ctx context.Context, events []model.AuditEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_audit_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertAuditEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare audit batch: %w", err)
	}

	for _, ev := range events {
		var durationMs uint64
		if durationMs, err = safe.Uint64(ev.Duration.Milliseconds()); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("audit event %s duration: %w", ev.ActionID, err)
		}
		roots := ev.Roots
		if roots == nil {
			roots = []string{}
		}
		if err = batch.Append(
			ev.At.UTC(),
			ev.ActionID,
			string(ev.ActionType),
			ev.DataHash,
			ev.ProofDigest,
			roots,
			string(ev.Status),
			ev.ErrorKind,
			ev.Error,
			ev.Source,
			durationMs,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append audit event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("send audit batch: %w", err)
	}
	return nil
}
