// Package metrics exposes Prometheus collectors for address book searches and HTTP traffic.
package metrics

import (
	"time"

	"addressbook/config"
	"addressbook/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry creates the registry served on the metrics endpoint, preloaded with
// the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// SearchMetrics records filter engine activity.
type SearchMetrics struct {
	searchesTotal  *prometheus.CounterVec
	searchDuration prometheus.Histogram
	resultSize     prometheus.Histogram
	loadsTotal     prometheus.Counter
	bookSize       prometheus.Histogram
	evictionsTotal prometheus.Counter
}

var _ service.SearchRecorder = (*SearchMetrics)(nil)

// NewSearchMetrics creates and registers the search collectors on registerer.
func NewSearchMetrics(cfg *config.Config, registerer prometheus.Registerer) *SearchMetrics {
	namespace := config.DefaultMetricsNamespace
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	m := &SearchMetrics{
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "queries_total",
				Help:      "Total number of address searches by outcome",
			},
			[]string{"outcome"},
		),
		searchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "duration_seconds",
				Help:      "Time spent filtering an address book",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
		),
		resultSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "result_size",
				Help:      "Number of addresses returned by a search",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		loadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "loads_total",
				Help:      "Total number of address books loaded into filter engines",
			},
		),
		bookSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "book_size",
				Help:      "Number of addresses in a loaded address book",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		evictionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "engine_evictions_total",
				Help:      "Total number of filter engines dropped from the cache",
			},
		),
	}

	registerer.MustRegister(
		m.searchesTotal,
		m.searchDuration,
		m.resultSize,
		m.loadsTotal,
		m.bookSize,
		m.evictionsTotal,
	)

	return m
}

// ObserveSearch records one search.
func (m *SearchMetrics) ObserveSearch(elapsed time.Duration, results int, emptyQuery bool) {
	outcome := "match"
	switch {
	case emptyQuery:
		outcome = "all"
	case results == 0:
		outcome = "no_match"
	}

	m.searchesTotal.WithLabelValues(outcome).Inc()
	m.searchDuration.Observe(elapsed.Seconds())
	m.resultSize.Observe(float64(results))
}

// ObserveLoad records an address book load.
func (m *SearchMetrics) ObserveLoad(size int) {
	m.loadsTotal.Inc()
	m.bookSize.Observe(float64(size))
}

// ObserveEviction records a dropped engine.
func (m *SearchMetrics) ObserveEviction() {
	m.evictionsTotal.Inc()
}
