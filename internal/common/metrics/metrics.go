// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RefreshRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_refresh_requests_total",
			Help: "Total number of itinerary refresh requests",
		},
		[]string{"status"},
	)

	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "itinerary_refresh_duration_seconds",
			Help: "Duration of itinerary refresh processing in seconds",
		},
	)

	LookupCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_lookup_calls_total",
			Help: "Total number of search lookups by engine and outcome",
		},
		[]string{"engine", "outcome"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "search_provider_call_duration_seconds",
			Help: "Duration of live search provider calls in seconds",
		},
		[]string{"engine"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_cache_hits_total",
			Help: "Total number of cache hits by backend",
		},
		[]string{"backend"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_cache_misses_total",
			Help: "Total number of cache misses (absent or stale) by backend",
		},
		[]string{"backend"},
	)

	CostFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_cost_fallbacks_total",
			Help: "Times a live cost was replaced by the prior estimate",
		},
		[]string{"component"},
	)
)
