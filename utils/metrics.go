package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	RecordSaveCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellbeing_record_save_total",
			Help: "Total number of daily records saved",
		},
		[]string{"category"}, // gratitude, happiness, wellness
	)

	AggregateCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellbeing_aggregate_total",
			Help: "Total number of aggregates computed",
		},
		[]string{"kind"},
	)
)

func RecordHTTPRequest(method, path, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

func RecordSave(category string) {
	RecordSaveCount.WithLabelValues(category).Inc()
}

func RecordAggregate(kind string) {
	AggregateCount.WithLabelValues(kind).Inc()
}
