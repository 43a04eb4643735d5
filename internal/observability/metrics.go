package observability

import (
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

// Metrics holds the collectors for the API, the ingestion pipeline and the catalog
// client. Every method is safe on a nil receiver so callers never branch on whether
// metrics are enabled.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	ingestRuns      *prometheus.CounterVec
	ingestDuration  *prometheus.HistogramVec
	ingestCommitted prometheus.Counter
	ingestSkipped   *prometheus.CounterVec
	channelsCreated prometheus.Counter

	catalogRequests *prometheus.CounterVec
	catalogLatency  *prometheus.HistogramVec
	catalogCache    *prometheus.CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Current() *Metrics {
	return instance
}

// Init builds the process-wide metrics once.
func Init(log *logger.Logger) *Metrics {
	initOnce.Do(func() {
		instance = New()
		if log != nil {
			log.Info("metrics initialized")
		}
	})
	return instance
}

// New creates a Metrics on its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vs_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vs_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vs_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		ingestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vs_ingest_runs_total",
			Help: "Ingestion batches by outcome.",
		}, []string{"status"}),
		ingestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vs_ingest_duration_seconds",
			Help:    "Ingestion batch duration in seconds by outcome.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"status"}),
		ingestCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vs_ingest_videos_committed_total",
			Help: "Videos committed by ingestion.",
		}),
		ingestSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vs_ingest_videos_skipped_total",
			Help: "Videos skipped by ingestion by reason.",
		}, []string{"reason"}),
		channelsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vs_ingest_channels_created_total",
			Help: "Channels created by ingestion.",
		}),
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vs_catalog_requests_total",
			Help: "Catalog API calls by operation/status.",
		}, []string{"op", "status"}),
		catalogLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vs_catalog_request_duration_seconds",
			Help:    "Catalog API latency in seconds by operation.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"op"}),
		catalogCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vs_catalog_cache_total",
			Help: "Catalog cache lookups by tier/result.",
		}, []string{"tier", "result"}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.ingestRuns,
		m.ingestDuration,
		m.ingestCommitted,
		m.ingestSkipped,
		m.channelsCreated,
		m.catalogRequests,
		m.catalogLatency,
		m.catalogCache,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      log.New(os.Stderr, "metrics handler: ", log.LstdFlags),
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveIngest records one finished batch.
func (m *Metrics) ObserveIngest(status string, committed, channelsCreated int, dur time.Duration) {
	if m == nil {
		return
	}
	m.ingestRuns.WithLabelValues(status).Inc()
	m.ingestDuration.WithLabelValues(status).Observe(dur.Seconds())
	m.ingestCommitted.Add(float64(committed))
	m.channelsCreated.Add(float64(channelsCreated))
}

func (m *Metrics) IncIngestSkipped(reason string) {
	if m == nil {
		return
	}
	m.ingestSkipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveCatalog(op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.catalogRequests.WithLabelValues(op, status).Inc()
	m.catalogLatency.WithLabelValues(op).Observe(dur.Seconds())
}

func (m *Metrics) IncCatalogCache(tier, result string) {
	if m == nil {
		return
	}
	m.catalogCache.WithLabelValues(tier, result).Inc()
}
