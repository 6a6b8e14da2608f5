package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "action_engine",
		Name:      "submissions_total",
		Help:      "Count of action submissions by outcome.",
	}, []string{"action_type", "outcome"})
	engineSubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "action_engine",
		Name:      "submission_duration_seconds",
		Help:      "Duration of action submissions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action_type", "outcome"})
	engineHandlerTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "action_engine",
		Name:      "handler_runs_total",
		Help:      "Count of handler executions.",
	}, []string{"action_type", "status"})
	engineHandlerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "action_engine",
		Name:      "handler_duration_seconds",
		Help:      "Duration of handler executions.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"action_type", "status"})
)

// ActionEngine tracks submission and handler metrics.
type ActionEngine struct{}

func NewActionEngine() *ActionEngine {
	return &ActionEngine{}
}

// ObserveSubmit records a submission and its outcome, e.g. "succeeded",
// "replayed" or an error kind.
func (m ActionEngine) ObserveSubmit(actionType, outcome string, started time.Time) {
	actionType, outcome = orUnknown(actionType), orUnknown(outcome)
	engineSubmissionsTotal.WithLabelValues(actionType, outcome).Inc()
	engineSubmissionDuration.WithLabelValues(actionType, outcome).Observe(time.Since(started).Seconds())
}

// ObserveHandler records one handler run.
func (m ActionEngine) ObserveHandler(actionType string, err error, started time.Time) {
	actionType = orUnknown(actionType)
	status := statusOf(err)
	engineHandlerTotal.WithLabelValues(actionType, status).Inc()
	engineHandlerDuration.WithLabelValues(actionType, status).Observe(time.Since(started).Seconds())
}
