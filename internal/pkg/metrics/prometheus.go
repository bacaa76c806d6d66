// Package metrics exposes Prometheus metrics for the ranking pipeline and the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var defaultLatencyBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}

// Manager owns every collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	rankingLatency     prometheus.Histogram
	candidatesRanked   prometheus.Histogram
	rankingsTotal      prometheus.Counter
	rankingErrors      *prometheus.CounterVec
	rankingCacheLookup *prometheus.CounterVec

	applicationsSubmitted prometheus.Counter
	reviewsRecorded       prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	wsClients prometheus.Gauge
}

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry served on /metrics

var globalManager *Manager //nolint:gochecknoglobals // package-level Record* helpers write here

func init() { //nolint:gochecknoinits // collectors must exist before the first Record* call
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "talent",
		subsystem:        "match",
		histogramBuckets: defaultLatencyBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rankingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_latency_milliseconds",
		Help:      "Time spent fetching candidates and ranking them for one job offer",
		Buckets:   m.histogramBuckets,
	})

	m.candidatesRanked = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_per_ranking",
		Help:      "Size of the candidate pool per ranking",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	m.rankingsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rankings_total",
		Help:      "Total number of rankings computed (cache misses)",
	})

	m.rankingErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_errors_total",
		Help:      "Ranking requests that failed before the engine ran, by reason",
	}, []string{"reason"})

	m.rankingCacheLookup = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_cache_lookups_total",
		Help:      "Ranking cache lookups by result",
	}, []string{"result"})

	m.applicationsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "applications_submitted_total",
		Help:      "Job applications submitted by employees",
	})

	m.reviewsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reviews_recorded_total",
		Help:      "Performance reviews recorded by supervisors",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request latency",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.wsClients = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "ws",
		Name:      "clients",
		Help:      "Connected websocket clients",
	})
}

// RecordRanking records one computed ranking.
func (m *Manager) RecordRanking(latencyMs float64, candidates int) {
	m.rankingsTotal.Inc()
	m.rankingLatency.Observe(latencyMs)
	m.candidatesRanked.Observe(float64(candidates))
}

// RecordRankingError counts a failed ranking request.
func (m *Manager) RecordRankingError(reason string) {
	m.rankingErrors.WithLabelValues(reason).Inc()
}

// RecordCacheLookup counts a ranking cache hit or miss.
func (m *Manager) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.rankingCacheLookup.WithLabelValues(result).Inc()
}

func (m *Manager) RecordApplicationSubmitted() { m.applicationsSubmitted.Inc() }

func (m *Manager) RecordReviewRecorded() { m.reviewsRecorded.Inc() }

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(route, method, status string, latencyMs float64) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(latencyMs)
}

func (m *Manager) SetWSClients(n int) { m.wsClients.Set(float64(n)) }

// Default returns the manager bound to the process registry.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the registry served on /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
