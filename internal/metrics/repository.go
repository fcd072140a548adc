package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stakewatch",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "status"})
	repositoryOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Repository satisfies the repository's metrics contract.
type Repository struct{}

func (Repository) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	repositoryOpsTotal.WithLabelValues(operation, status).Inc()
	repositoryOpDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
