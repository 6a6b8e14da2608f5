package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchLeaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatch_worker",
		Name:      "lease_total",
		Help:      "Count of job lease attempts.",
	}, []string{"status"})
	dispatchLeaseSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "dispatch_worker",
		Name:      "lease_size",
		Help:      "Number of jobs leased per attempt.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})
	dispatchJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatch_worker",
		Name:      "jobs_total",
		Help:      "Count of processed jobs by outcome.",
	}, []string{"action_type", "outcome"})
	dispatchJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "dispatch_worker",
		Name:      "job_duration_seconds",
		Help:      "Duration of job processing.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action_type", "outcome"})
)

// DispatchWorker tracks metrics for the dispatch queue worker.
type DispatchWorker struct{}

func NewDispatchWorker() *DispatchWorker {
	return &DispatchWorker{}
}

func (m DispatchWorker) ObserveLease(err error, jobs int) {
	dispatchLeaseTotal.WithLabelValues(statusOf(err)).Inc()
	if err == nil {
		dispatchLeaseSize.Observe(float64(jobs))
	}
}

// ObserveJob records a processed job; outcome is done, retried, delayed or
// dead.
func (m DispatchWorker) ObserveJob(actionType, outcome string, started time.Time) {
	actionType, outcome = orUnknown(actionType), orUnknown(outcome)
	dispatchJobsTotal.WithLabelValues(actionType, outcome).Inc()
	dispatchJobDuration.WithLabelValues(actionType, outcome).Observe(time.Since(started).Seconds())
}
