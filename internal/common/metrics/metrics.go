// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_queries_total",
			Help: "Total number of queries routed, by intent",
		},
		[]string{"intent"},
	)

	QueriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_queries_failed_total",
			Help: "Total number of queries that a handler could not answer",
		},
		[]string{"intent", "error_code"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chatbot_query_duration_seconds",
			Help: "Duration of query handling in seconds",
		},
		[]string{"intent"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_answer_cache_hits_total",
			Help: "Total number of answers served from the Redis cache",
		},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatbot_dataset_records",
			Help: "Number of financial records loaded at startup",
		},
	)
)
