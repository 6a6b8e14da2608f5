package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/audit"
	"github.com/goodnatureofminers/tokengate-backend/internal/engine"
	"github.com/goodnatureofminers/tokengate-backend/internal/metrics"
	"github.com/goodnatureofminers/tokengate-backend/internal/repository/clickhouse"
)

// AuditSink starts a ClickHouse-backed audit writer. With an empty dsn the
// audit trail is disabled. The returned stop func flushes buffered events
// and closes the connection.
func AuditSink(ctx context.Context, dsn string, cfg audit.Config, logger *zap.Logger) (engine.AuditSink, func(), error) {
	if dsn == "" {
		logger.Info("ClickHouse dsn not set, audit trail disabled")
		return audit.Noop{}, func() {}, nil
	}
	repo, err := clickhouse.NewRepository(dsn, metrics.NewAuditRepository())
	if err != nil {
		return nil, nil, fmt.Errorf("audit repository: %w", err)
	}
	writer, err := audit.NewWriter(repo, cfg, logger.Named("audit"))
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	writer.Start(ctx)
	return writer, func() {
		writer.Stop()
		if err := repo.Close(); err != nil {
			logger.Warn("Close audit repository", zap.Error(err))
		}
	}, nil
}
