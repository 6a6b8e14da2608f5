package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "audit_repository",
		Name:      "operations_total",
		Help:      "Count of ClickHouse audit log operations.",
	}, []string{"operation", "status"})
	auditRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "audit_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ClickHouse audit log operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	auditRepositoryRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "audit_repository",
		Name:      "rows_total",
		Help:      "Count of audit rows written or read.",
	}, []string{"operation"})
)

// AuditRepository tracks metrics for the ClickHouse audit log.
type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Observe records duration, status and row count of an audit operation.
func (m AuditRepository) Observe(operation string, rows int, err error, started time.Time) {
	status := statusOf(err)
	auditRepositoryOperationsTotal.WithLabelValues(operation, status).Inc()
	auditRepositoryOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
	if err == nil {
		auditRepositoryRows.WithLabelValues(operation).Add(float64(rows))
	}
}
