package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Video gateway metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dropfly",
			Subsystem: "video_gateway",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Generation counters
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dropfly",
			Subsystem: "video_gateway",
			Name:      "generations_total",
			Help:      "Total generation requests by outcome",
		},
		[]string{"engine", "client", "outcome"},
	)

	GenerationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dropfly",
			Subsystem: "video_gateway",
			Name:      "generation_errors_total",
			Help:      "Generation failures by error code",
		},
		[]string{"engine", "error_code"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dropfly",
			Subsystem: "video_gateway",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Generation duration, dominated by provider latency
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dropfly",
			Subsystem: "video_gateway",
			Name:      "generation_duration_seconds",
			Help:      "Video generation duration in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 180, 300},
		},
		[]string{"engine", "client"},
	)

	// Cost counter, in provider billing units
	GenerationCostTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dropfly",
			Subsystem: "video_gateway",
			Name:      "generation_cost_total",
			Help:      "Accumulated generation cost in USD",
		},
		[]string{"engine"},
	)

	// Provider health gauge
	ProviderHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "dropfly",
			Subsystem: "video_gateway",
			Name:      "provider_health",
			Help:      "Provider health status (1=healthy, 0=unhealthy)",
		},
		[]string{"provider"},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordGeneration records the outcome of a generation request
func RecordGeneration(engine, client, outcome string, durationSec, cost float64) {
	GenerationsTotal.WithLabelValues(engine, client, outcome).Inc()
	GenerationDuration.WithLabelValues(engine, client).Observe(durationSec)
	if cost > 0 {
		GenerationCostTotal.WithLabelValues(engine).Add(cost)
	}
}

// RecordGenerationError records a failed generation by error code
func RecordGenerationError(engine, errorCode string) {
	if engine == "" {
		engine = "unknown"
	}
	GenerationErrorsTotal.WithLabelValues(engine, errorCode).Inc()
}

// SetProviderHealth sets the health status of a provider
func SetProviderHealth(provider string, healthy bool) {
	val := 0.0
	if healthy {
		val = 1.0
	}
	ProviderHealth.WithLabelValues(provider).Set(val)
}
