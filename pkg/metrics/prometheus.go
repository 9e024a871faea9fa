// Package metrics provides Prometheus metrics for the Pulss dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the dashboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// HTTP surface served to the dashboard UI
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Upstream Pulss API calls
	upstreamRequests        *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	// Fallback behaviour
	fallbackEngaged    *prometheus.CounterVec
	fallbackPropagated *prometheus.CounterVec
	fallbackStoreSize  *prometheus.GaugeVec

	// Intake chat
	chatSessionsStarted   prometheus.Counter
	chatSessionsCompleted prometheus.Counter
	chatSessionsOpen      prometheus.Gauge

	// Process
	systemMemoryUsage   prometheus.Gauge
	systemGoroutines    prometheus.Gauge
	systemGCPauseTimeMs prometheus.Gauge

	// Errors by endpoint, mirrored from the HTTP middleware
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// LatencyBucketsMs spans a local fallback answer through a slow Pulss API
// call. Every latency series is observed in milliseconds.
var LatencyBucketsMs = []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000} //nolint:gochecknoglobals // read-only bucket layout

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(
		WithPrometheusRegistry(customRegistry),
		WithHistogramBuckets(LatencyBucketsMs),
	)
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pulss",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func (m *Manager) histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   m.histogramBuckets,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	})
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", "endpoint", "method", "status_code")

	m.upstreamRequests = m.counterVec("upstream_requests_total",
		"Calls made to the Pulss API by operation and outcome", "operation", "outcome")
	m.upstreamRequestDuration = m.histogramVec("upstream_request_duration_milliseconds",
		"Pulss API call latency in milliseconds", "operation", "outcome")

	m.fallbackEngaged = m.counterVec("fallback_engaged_total",
		"Operations answered from local fallback data after an upstream failure", "operation")
	m.fallbackPropagated = m.counterVec("fallback_propagated_total",
		"Upstream failures surfaced to the caller instead of degraded", "operation")
	m.fallbackStoreSize = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fallback_store_records",
		Help:      "Records held by the in-memory fallback store per collection",
	}, []string{"collection"})

	m.chatSessionsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chat_sessions_started_total",
		Help:      "Intake chat sessions opened from a shared link",
	})
	m.chatSessionsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chat_sessions_completed_total",
		Help:      "Intake chat sessions the server marked done",
	})
	m.chatSessionsOpen = m.gauge("chat_sessions_open", "Intake chat sessions started and not yet done")

	m.systemMemoryUsage = m.gauge("system_memory_bytes", "Heap bytes allocated")
	m.systemGoroutines = m.gauge("system_goroutines", "Number of goroutines")
	m.systemGCPauseTimeMs = m.gauge("system_gc_pause_milliseconds", "Average GC pause in milliseconds")

	m.errorRateByType = m.counterVec("errors_by_type_total",
		"Errors by type and severity", "error_type", "severity")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Errors by endpoint and method", "endpoint", "method", "error_type")
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request latency in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordUpstreamRequest records one Pulss API call.
// outcome is "ok", "status_<code>" or "transport".
func RecordUpstreamRequest(operation, outcome string, durationMs float64) {
	globalManager.upstreamRequests.WithLabelValues(operation, outcome).Inc()
	globalManager.upstreamRequestDuration.WithLabelValues(operation, outcome).Observe(durationMs)
}

// RecordFallbackEngaged counts an operation served from fallback data.
func RecordFallbackEngaged(operation string) {
	globalManager.fallbackEngaged.WithLabelValues(operation).Inc()
}

// RecordFallbackPropagated counts an upstream failure returned to the caller.
func RecordFallbackPropagated(operation string) {
	globalManager.fallbackPropagated.WithLabelValues(operation).Inc()
}

// UpdateFallbackStoreSize sets the record count for a fallback collection.
func UpdateFallbackStoreSize(collection string, count int) {
	globalManager.fallbackStoreSize.WithLabelValues(collection).Set(float64(count))
}

// RecordChatSessionStarted counts an intake chat session start.
func RecordChatSessionStarted() {
	globalManager.chatSessionsStarted.Inc()
}

// RecordChatSessionCompleted counts an intake chat session reaching done.
func RecordChatSessionCompleted() {
	globalManager.chatSessionsCompleted.Inc()
}

// UpdateOpenChatSessions sets the number of unfinished intake chats.
func UpdateOpenChatSessions(n int) {
	globalManager.chatSessionsOpen.Set(float64(n))
}

// UpdateSystemMemoryUsage sets the allocated heap size.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutines.Set(float64(n))
}

// RecordSystemGCPauseTime sets the average GC pause in milliseconds.
func RecordSystemGCPauseTime(ms float64) {
	globalManager.systemGCPauseTimeMs.Set(ms)
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the registry the global manager publishes to.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
