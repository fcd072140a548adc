package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerPlanRangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stakewatch",
		Subsystem: "scanner",
		Name:      "plan_ranges_total",
		Help:      "Count of scan range planning attempts.",
	}, []string{"status"})

	scannerProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "scanner",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a batch of heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	scannerProcessBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "scanner",
		Name:      "process_batch_size",
		Help:      "Number of heights processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	scannerProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stakewatch",
		Subsystem: "scanner",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of processing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	scannerRewardsFound = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stakewatch",
		Subsystem: "scanner",
		Name:      "rewards_found_total",
		Help:      "Count of reward tuples extracted from stake blocks.",
	})

	scannerSkippedHeights = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stakewatch",
		Subsystem: "scanner",
		Name:      "skipped_heights_total",
		Help:      "Count of heights skipped after the retry budget was exhausted.",
	})
)

// Scanner satisfies the scan driver's metrics contract.
type Scanner struct{}

func (Scanner) ObservePlanRanges(err error, started time.Time) {
	scannerPlanRangesTotal.WithLabelValues(statusLabel(err)).Inc()
}

func (Scanner) ObserveProcessBatch(err error, heights int, started time.Time) {
	scannerProcessBatchDuration.WithLabelValues(statusLabel(err)).
		Observe(time.Since(started).Seconds())
	scannerProcessBatchSize.Observe(float64(heights))
}

func (Scanner) ObserveProcessHeight(err error, height uint64, started time.Time) {
	scannerProcessHeightDuration.WithLabelValues(statusLabel(err)).
		Observe(time.Since(started).Seconds())
}

func (Scanner) AddRewards(count int) {
	scannerRewardsFound.Add(float64(count))
}

func (Scanner) IncSkippedHeights() {
	scannerSkippedHeights.Inc()
}
