// Package metrics provides Prometheus metrics for canvas.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UploadsTotal counts uploads by result (stored or deduplicated).
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canvas",
			Name:      "uploads_total",
			Help:      "Total number of image uploads",
		},
		[]string{"result"},
	)

	// VariantLookupsTotal counts variant cache lookups by result.
	VariantLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canvas",
			Name:      "variant_lookups_total",
			Help:      "Total number of variant cache lookups",
		},
		[]string{"result"},
	)

	// PipelineDuration measures transformation pipeline runs.
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "canvas",
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of transformation pipeline runs in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"format", "status"},
	)

	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canvas",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "code"},
	)
)

const (
	LookupHit         = "hit"
	LookupMiss        = "miss"
	LookupNotModified = "not_modified"
	LookupError       = "error"

	UploadStored       = "stored"
	UploadDeduplicated = "deduplicated"
	UploadFailed       = "failed"
)

// RecordPipeline records one pipeline run.
func RecordPipeline(format, status string, seconds float64) {
	PipelineDuration.WithLabelValues(format, status).Observe(seconds)
}

// RecordLookup records a variant lookup result.
func RecordLookup(result string) {
	VariantLookupsTotal.WithLabelValues(result).Inc()
}

// RecordUpload records an upload result.
func RecordUpload(result string) {
	UploadsTotal.WithLabelValues(result).Inc()
}
