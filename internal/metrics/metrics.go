package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Skyport
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	SearchesTotal        prometheus.Counter
	OffersReturnedTotal  prometheus.Counter
	ProviderCallDuration prometheus.HistogramVec
	AirportsIndexed      prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyport_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skyport_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skyport_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyport_cache_hits_total",
				Help: "Total flight cache hits by route",
			},
			[]string{"cache_name"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyport_cache_misses_total",
				Help: "Total flight cache misses by route",
			},
			[]string{"cache_name"},
		),

		// Business Metrics
		SearchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skyport_searches_total",
				Help: "Total flight searches processed",
			},
		),
		OffersReturnedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skyport_offers_returned_total",
				Help: "Total flight offers returned to clients",
			},
		),
		ProviderCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skyport_provider_call_duration_seconds",
				Help:    "Upstream fare provider call latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		AirportsIndexed: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "skyport_airports_indexed",
				Help: "Number of airports in the in-memory index",
			},
		),
	}
}
