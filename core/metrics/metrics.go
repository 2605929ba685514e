package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SyncRuns counts finished orchestrator runs by outcome state.
	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eox_sync_runs_total",
			Help: "Total number of EoX synchronization runs by outcome",
		},
		[]string{"outcome"}, // "succeeded", "failed", "not_eligible"
	)

	// SyncActions counts reconciliation actions by type.
	SyncActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eox_sync_actions_total",
			Help: "Total number of reconciliation actions by type",
		},
		[]string{"action"},
	)

	// SyncDuration observes the wall time of a whole synchronization run.
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eox_sync_duration_seconds",
			Help:    "Duration of EoX synchronization runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
	)

	// APIRequests counts vendor API calls by result status.
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eox_api_requests_total",
			Help: "Total number of Cisco API requests by endpoint and status",
		},
		[]string{"endpoint", "status"}, // endpoint: "token", "eox"; status: HTTP code or "error"
	)

	// APIRequestDuration observes vendor API latency.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eox_api_request_duration_seconds",
			Help:    "Duration of Cisco API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState tracks breaker state (0=closed, 1=half-open, 2=open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// JobsActive tracks background jobs currently pending or running.
	JobsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eox_jobs_active",
			Help: "Number of background jobs pending or running",
		},
	)
)

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
