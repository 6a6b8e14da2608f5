package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sqlRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sql_repository",
		Name:      "operations_total",
		Help:      "Count of relational store operations.",
	}, []string{"operation", "status"})
	sqlRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sql_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of relational store operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "status"})
)

// SQLRepository tracks metrics for relational store operations.
type SQLRepository struct{}

func NewSQLRepository() *SQLRepository {
	return &SQLRepository{}
}

// Observe records duration and status of a store operation.
func (m SQLRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	sqlRepositoryOperationsTotal.WithLabelValues(operation, status).Inc()
	sqlRepositoryOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
