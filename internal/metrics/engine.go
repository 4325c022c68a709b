package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	ResultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quotient",
			Name:      "result_cache_total",
			Help:      "Result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "quotient",
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	PackagesSynthesized = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "quotient",
			Name:      "packages_synthesized",
			Help:      "Number of packages emitted per listing",
			Buckets:   []float64{0, 1, 2, 5, 10, 15, 20},
		},
	)

	CatalogFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quotient",
			Name:      "catalog_fallback_total",
			Help:      "Times the static baseline catalog substituted for a failed primary fetch",
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(ResultCacheTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(PackagesSynthesized)
	prometheus.MustRegister(CatalogFallbackTotal)
	engineMetricsRegistered = true
}
