package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	identityEnrichTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stakewatch",
		Subsystem: "identity",
		Name:      "enrich_total",
		Help:      "Count of identity enrichment attempts.",
	}, []string{"status"})
	identityEnrichDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "identity",
		Name:      "enrich_duration_seconds",
		Help:      "Duration of identity enrichment attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Identity satisfies the identity resolver's metrics contract.
type Identity struct{}

func (Identity) ObserveEnrich(err error, started time.Time) {
	status := statusLabel(err)
	identityEnrichTotal.WithLabelValues(status).Inc()
	identityEnrichDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
