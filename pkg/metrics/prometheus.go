// Package metrics provides Prometheus metrics for the scout pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Harvest metrics - what the run actually collected
	candidatesExtracted prometheus.Counter
	pagesFetched        prometheus.Counter
	profilesAccepted    prometheus.Counter
	profilesRejected    *prometheus.CounterVec

	// Fetch health metrics
	fetchRetries  prometheus.Counter
	fetchFailures prometheus.Counter

	// Run state metrics
	dedupeSize  prometheus.Gauge
	runDuration prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scout",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.candidatesExtracted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_extracted_total",
		Help:      "Total number of raw candidate records extracted from listing pages",
	})

	m.pagesFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_fetched_total",
		Help:      "Total number of listing pages successfully loaded",
	})

	m.profilesAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_accepted_total",
		Help:      "Total number of candidates that passed every validation stage",
	})

	m.profilesRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_rejected_total",
		Help:      "Total number of rejected candidates by first failing stage",
	}, []string{"reason"})

	m.fetchRetries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_retries_total",
		Help:      "Total number of page fetch retry attempts",
	})

	m.fetchFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_failures_total",
		Help:      "Total number of pages abandoned after exhausting retries",
	})

	m.dedupeSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dedupe_size",
		Help:      "Current number of normalized emails in the seen set",
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_seconds",
		Help:      "Histogram of end-to-end run duration in seconds",
		Buckets:   m.histogramBuckets,
	})
}

// Registry returns the gatherer backing the global manager, for exposure
// through an optional metrics listener.
func Registry() *prometheus.Registry {
	return customRegistry
}

// AddCandidatesExtracted counts freshly extracted candidates.
func AddCandidatesExtracted(n int) {
	if n > 0 {
		globalManager.candidatesExtracted.Add(float64(n))
	}
}

// RecordPageFetched counts a successfully loaded listing page.
func RecordPageFetched() {
	globalManager.pagesFetched.Inc()
}

// RecordProfileAccepted counts a candidate promoted to an accepted profile.
func RecordProfileAccepted() {
	globalManager.profilesAccepted.Inc()
}

// RecordProfileRejected counts a rejected candidate by reason.
func RecordProfileRejected(reason string) {
	globalManager.profilesRejected.WithLabelValues(reason).Inc()
}

// RecordFetchRetry counts one retry attempt.
func RecordFetchRetry() {
	globalManager.fetchRetries.Inc()
}

// RecordFetchFailure counts a page abandoned after exhausting retries.
func RecordFetchFailure() {
	globalManager.fetchFailures.Inc()
}

// UpdateDedupeSize reports the current seen-set size.
func UpdateDedupeSize(size int64) {
	globalManager.dedupeSize.Set(float64(size))
}

// ObserveRunDuration records the end-to-end duration of one run.
func ObserveRunDuration(d time.Duration) {
	globalManager.runDuration.Observe(d.Seconds())
}
