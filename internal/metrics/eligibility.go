package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eligibilityRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stakewatch",
		Subsystem: "eligibility",
		Name:      "refresh_total",
		Help:      "Count of projection refresh passes.",
	}, []string{"status"})
	eligibilityRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "eligibility",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of projection refresh passes.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"status"})
	eligibilityRefreshAddresses = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "eligibility",
		Name:      "refresh_addresses",
		Help:      "Number of addresses covered per refresh pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})
	eligibilityAddressDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "eligibility",
		Name:      "address_duration_seconds",
		Help:      "Duration of refreshing a single address.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Eligibility satisfies the refresher's metrics contract.
type Eligibility struct{}

func (Eligibility) ObserveRefresh(err error, addresses int, started time.Time) {
	status := statusLabel(err)
	eligibilityRefreshTotal.WithLabelValues(status).Inc()
	eligibilityRefreshDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	eligibilityRefreshAddresses.Observe(float64(addresses))
}

func (Eligibility) ObserveAddress(err error, started time.Time) {
	eligibilityAddressDuration.WithLabelValues(statusLabel(err)).
		Observe(time.Since(started).Seconds())
}
