package benchmark

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the run counter.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Prometheus metrics for factorization observability. Registered once
// globally to avoid duplicate registration errors.
var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factorbench_runs_total",
			Help: "Total factorization runs by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)
	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factorbench_run_duration_seconds",
			Help:    "Wall-clock duration of factorization runs",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8), // 1µs .. 10s
		},
		[]string{"algorithm"},
	)
)

// observeRun records one completed run in the Prometheus metrics.
func observeRun(algorithm, outcome string, elapsed time.Duration) {
	runsTotal.WithLabelValues(algorithm, outcome).Inc()
	runDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}
