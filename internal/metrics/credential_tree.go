package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	treeBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "credential_tree",
		Name:      "builds_total",
		Help:      "Count of credential tree builds.",
	}, []string{"credential", "status"})
	treeBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "credential_tree",
		Name:      "build_duration_seconds",
		Help:      "Duration of credential tree builds.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"credential", "status"})
	treeHolders = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "credential_tree",
		Name:      "holders",
		Help:      "Eligible holders in the latest tree.",
	}, []string{"credential"})
)

// CredentialTree tracks metrics for tree rebuilds.
type CredentialTree struct{}

func NewCredentialTree() *CredentialTree {
	return &CredentialTree{}
}

func (m CredentialTree) ObserveBuild(credentialID string, err error, holders int, started time.Time) {
	credentialID = orUnknown(credentialID)
	status := statusOf(err)
	treeBuildTotal.WithLabelValues(credentialID, status).Inc()
	treeBuildDuration.WithLabelValues(credentialID, status).Observe(time.Since(started).Seconds())
	if err == nil {
		treeHolders.WithLabelValues(credentialID).Set(float64(holders))
	}
}
