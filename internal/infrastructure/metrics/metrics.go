package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gateway metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "imggen",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "imggen",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Generation counters by model and outcome
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "imggen",
			Subsystem: "gateway",
			Name:      "generations_total",
			Help:      "Total upstream image generation calls",
		},
		[]string{"model", "status"},
	)

	// Upstream generation duration
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "imggen",
			Subsystem: "gateway",
			Name:      "generation_duration_seconds",
			Help:      "Upstream image generation duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)

	// Generated image counter
	GeneratedImagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "imggen",
			Subsystem: "gateway",
			Name:      "generated_images_total",
			Help:      "Total images returned to clients",
		},
		[]string{"model", "kind"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordGeneration records one upstream generation call
func RecordGeneration(model, status string, durationSec float64) {
	GenerationsTotal.WithLabelValues(model, status).Inc()
	GenerationDuration.WithLabelValues(model).Observe(durationSec)
}

// RecordImages records returned images by delivery kind ("url" or "b64_json")
func RecordImages(model, kind string, count int) {
	if count <= 0 {
		return
	}
	GeneratedImagesTotal.WithLabelValues(model, kind).Add(float64(count))
}
