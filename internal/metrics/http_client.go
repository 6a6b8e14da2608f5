package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http_client",
		Name:      "operations_total",
		Help:      "Count of calls to external HTTP services.",
	}, []string{"service", "operation", "status"})
	httpClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of calls to external HTTP services.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "operation", "status"})
	httpClientRateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http_client",
		Name:      "rate_limited_total",
		Help:      "Count of rate-limit responses from external HTTP services.",
	}, []string{"service", "operation"})
)

// HTTPClient tracks metrics for an external HTTP dependency such as the
// balance index or the proof verifier.
type HTTPClient struct {
	service string
}

func NewHTTPClient(service string) *HTTPClient {
	return &HTTPClient{service: orUnknown(service)}
}

func (m HTTPClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	httpClientRequestsTotal.WithLabelValues(m.service, operation, status).Inc()
	httpClientRequestDuration.WithLabelValues(m.service, operation, status).Observe(time.Since(started).Seconds())
}

func (m HTTPClient) ObserveRateLimited(operation string) {
	httpClientRateLimitedTotal.WithLabelValues(m.service, operation).Inc()
}
