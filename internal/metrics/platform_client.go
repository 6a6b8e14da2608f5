package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	platformRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "platform_client",
		Name:      "operations_total",
		Help:      "Count of posting platform API operations.",
	}, []string{"operation", "target", "status"})
	platformRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "platform_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of posting platform API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "target", "status"})
	platformRateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "platform_client",
		Name:      "rate_limited_total",
		Help:      "Count of rate-limit responses from posting platforms.",
	}, []string{"operation", "target"})
)

// PlatformClient tracks metrics for calls to one posting platform.
type PlatformClient struct {
	target string
}

func NewPlatformClient(target string) *PlatformClient {
	return &PlatformClient{target: orUnknown(target)}
}

// Observe records a single platform call outcome and duration.
func (m PlatformClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	platformRequestsTotal.WithLabelValues(operation, m.target, status).Inc()
	platformRequestDuration.WithLabelValues(operation, m.target, status).Observe(time.Since(started).Seconds())
}

// ObserveRateLimited counts a rate-limit response.
func (m PlatformClient) ObserveRateLimited(operation string) {
	platformRateLimitedTotal.WithLabelValues(operation, m.target).Inc()
}
