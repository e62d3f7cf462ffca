package wungo

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the client's request
// lifecycle, the cache and the rate limiter. It is safe for concurrent use.
// The feature label is the combined feature segment of the request
// (e.g. "conditions" or "conditions/forecast").
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheSize   *prometheus.GaugeVec

	rateLimitedTotal *prometheus.CounterVec

	errorsTotal *prometheus.CounterVec
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using supplied registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "wungo_requests_total",
				Help: "Total number of API requests made",
			},
			[]string{"feature", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wungo_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"feature"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wungo_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
			[]string{"feature"},
		),
		cacheHits: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "wungo_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"feature"},
		),
		cacheMisses: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "wungo_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"feature"},
		),
		cacheSize: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wungo_cache_size",
				Help: "Current number of entries in cache",
			},
			[]string{"name"},
		),
		rateLimitedTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "wungo_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
			[]string{"feature"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "wungo_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type", "feature"},
		),
	}
}

// RecordRequest records request count and duration.
func (mc *MetricsCollector) RecordRequest(feature string, statusCode int, duration time.Duration) {
	if mc == nil {
		return
	}

	mc.requestsTotal.WithLabelValues(feature, strconv.Itoa(statusCode)).Inc()
	mc.requestDuration.WithLabelValues(feature).Observe(duration.Seconds())
}

// RecordRequestStart increments in-flight gauge.
func (mc *MetricsCollector) RecordRequestStart(feature string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(feature).Inc()
}

// RecordRequestEnd decrements in-flight gauge.
func (mc *MetricsCollector) RecordRequestEnd(feature string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(feature).Dec()
}

// RecordCacheHit increments cache hit counter.
func (mc *MetricsCollector) RecordCacheHit(feature string) {
	if mc == nil {
		return
	}

	mc.cacheHits.WithLabelValues(feature).Inc()
}

// RecordCacheMiss increments cache miss counter.
func (mc *MetricsCollector) RecordCacheMiss(feature string) {
	if mc == nil {
		return
	}

	mc.cacheMisses.WithLabelValues(feature).Inc()
}

// RecordCacheSize sets the cache size gauge.
func (mc *MetricsCollector) RecordCacheSize(name string, size int) {
	if mc == nil {
		return
	}

	mc.cacheSize.WithLabelValues(name).Set(float64(size))
}

// RecordRateLimited increments the rate limiter rejection counter.
func (mc *MetricsCollector) RecordRateLimited(feature string) {
	if mc == nil {
		return
	}

	mc.rateLimitedTotal.WithLabelValues(feature).Inc()
}

// RecordError increments error counter by type.
func (mc *MetricsCollector) RecordError(errorType, feature string) {
	if mc == nil {
		return
	}

	mc.errorsTotal.WithLabelValues(errorType, feature).Inc()
}
