package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quarry_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quarry_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// Searches by entity and outcome (ok, error, cached).
	SearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quarry_search_total",
			Help: "Total number of searches",
		},
		[]string{"entity", "outcome"},
	)
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quarry_search_duration_seconds",
			Help:    "Search latency in seconds, cache hits included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity"},
	)
	// Filter and sort fragments which were ignored in permissive mode.
	DroppedFragmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quarry_dropped_fragments_total",
			Help: "Total number of ignored filter, default filter and orderBy fragments",
		},
		[]string{"role", "reason"},
	)
	CacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quarry_cache_lookups_total",
			Help: "Total number of cache lookups",
		},
		[]string{"result"},
	)
	// 0 - closed, 1 - half-open, 2 - open
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quarry_circuit_breaker_state",
			Help: "Current state of the circuit breaker",
		},
		[]string{"name"},
	)
)

func SetBreakerState(name string, state gobreaker.State) {
	BreakerState.WithLabelValues(name).Set(float64(state))
}
