package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server-level observability. Factorization metrics (per-algorithm run
// counts and durations) are tracked in the benchmark package; these cover
// the HTTP surface only.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "factorbench_active_requests",
		Help: "Current number of in-flight HTTP requests",
	})
	totalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "factorbench_requests_total",
		Help: "Total number of HTTP requests received",
	})
)

// metricsHandler exposes the Prometheus registry.
func metricsHandler() http.Handler {
	return promhttp.Handler()
}

// metricsMiddleware tracks in-flight and total requests.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeRequests.Inc()
		totalRequests.Inc()
		defer activeRequests.Dec()
		next(w, r)
	}
}
