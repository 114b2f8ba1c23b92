// Package metrics exports Prometheus metrics for tool calls, HTTP requests
// and the loaded dataset.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "yclists"

// Metrics holds the service collectors. Each instance owns its registry, so
// several can coexist in one process (tests, subcommands).
type Metrics struct {
	registry *prometheus.Registry

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolResults  *prometheus.HistogramVec

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Dataset metrics
	DatasetCompanies prometheus.Gauge
	DatasetLoaded    prometheus.Gauge
}

// New registers all collectors, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{registry: reg}
	factory := promauto.With(reg)
	initToolMetrics(m, factory)
	initHTTPMetrics(m, factory)
	initDatasetMetrics(m, factory)
	return m
}

func initToolMetrics(m *Metrics, f promauto.Factory) {
	m.ToolCalls = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tool_calls_total",
		Help:      "Total MCP tool calls by tool and outcome",
	}, []string{"tool", "outcome"})

	m.ToolDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tool_call_duration_seconds",
		Help:      "Time to execute an MCP tool call",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"tool"})

	m.ToolResults = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tool_call_results",
		Help:      "Number of companies returned per tool call",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"tool"})
}

func initHTTPMetrics(m *Metrics, f promauto.Factory) {
	m.HTTPRequests = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	m.HTTPDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
}

func initDatasetMetrics(m *Metrics, f promauto.Factory) {
	m.DatasetCompanies = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dataset_companies",
		Help:      "Companies held by the loaded dataset",
	})

	m.DatasetLoaded = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dataset_loaded",
		Help:      "1 when the dataset loaded successfully, 0 otherwise",
	})
}

// ToolCall records one tool call.
func (m *Metrics) ToolCall(tool, outcome string, duration time.Duration, results int) {
	m.ToolCalls.WithLabelValues(tool, outcome).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
	m.ToolResults.WithLabelValues(tool).Observe(float64(results))
}

// HTTPRequest records one served HTTP request. route is the matched route
// pattern, not the raw path.
func (m *Metrics) HTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetDataset publishes the dataset size and load state.
func (m *Metrics) SetDataset(companies int, loaded bool) {
	m.DatasetCompanies.Set(float64(companies))
	if loaded {
		m.DatasetLoaded.Set(1)
	} else {
		m.DatasetLoaded.Set(0)
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
