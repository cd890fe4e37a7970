// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "openhours"

const (
	ReloadOutcomeSuccess = "success"
	ReloadOutcomeFailure = "failure"
	ReloadOutcomeSkipped = "skipped"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	Reloads             *prometheus.CounterVec
	ReloadDuration      prometheus.Histogram
	RecordFailures      prometheus.Counter
	IndexedBusinesses   prometheus.Gauge
	IndexEntries        prometheus.Gauge
	IndexBuiltAt        prometheus.Gauge
	OpenAtQueries       prometheus.Counter
}

// New registers every collector on a private registry, so several instances
// can coexist in one process.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_reloads_total",
			Help:      "Index reloads by outcome.",
		}, []string{"trigger", "outcome"}),
		ReloadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "index_reload_duration_seconds",
			Help:      "Time spent loading, parsing and building the index.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
		RecordFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_record_failures_total",
			Help:      "Business records skipped because they failed validation or parsing.",
		}),
		IndexedBusinesses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_businesses",
			Help:      "Businesses in the current index.",
		}),
		IndexEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_entries",
			Help:      "Business IDs stored across all minute buckets of the current index.",
		}),
		IndexBuiltAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_built_at_seconds",
			Help:      "Unix time the current index was built.",
		}),
		OpenAtQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "open_at_queries_total",
			Help:      "Point queries answered from the index.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.Reloads,
		m.ReloadDuration,
		m.RecordFailures,
		m.IndexedBusinesses,
		m.IndexEntries,
		m.IndexBuiltAt,
		m.OpenAtQueries,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveReload(trigger, outcome string, elapsed time.Duration) {
	m.Reloads.WithLabelValues(trigger, outcome).Inc()
	if outcome != ReloadOutcomeSkipped {
		m.ReloadDuration.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) SetIndex(businesses, entries int, builtAt time.Time) {
	m.IndexedBusinesses.Set(float64(businesses))
	m.IndexEntries.Set(float64(entries))
	m.IndexBuiltAt.Set(float64(builtAt.Unix()))
}
