package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the analytics HTTP handlers, labelled by operation
	AnalysisLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_operation_latency_seconds",
		Help:    "Latency of analytics operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// Total number of analytics operations served
	AnalysisRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_operation_requests_total",
		Help: "Total number of analytics operation requests",
	}, []string{"operation", "status"})

	// Cache hits/misses for the root-cause report cache
	ReportCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analytics_report_cache_hits_total",
		Help: "Root-cause report cache hits",
	})

	ReportCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analytics_report_cache_misses_total",
		Help: "Root-cause report cache misses",
	})
)

func Init() {
	prometheus.MustRegister(
		AnalysisLatency,
		AnalysisRequests,
		ReportCacheHits,
		ReportCacheMisses,
	)
}
