// Package metrics defines the Prometheus collectors exported by campusnav.
//
// Collectors are registered on the Registerer passed to New, so tests and
// embedded uses can keep them off the global default registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campusnav"

// Query outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeUnknownNode = "unknown_node"
	OutcomeNoPath      = "no_path"
	OutcomeNoReachable = "no_reachable"
	OutcomeError       = "error"
)

// Metrics groups every collector.
type Metrics struct {
	// Queries counts engine queries by operation and outcome.
	Queries *prometheus.CounterVec
	// QueryDuration measures engine query latency by operation.
	QueryDuration *prometheus.HistogramVec
	// Nodes and Edges track the size of the loaded graph.
	Nodes prometheus.Gauge
	Edges prometheus.Gauge
	// Loads counts graph loads by outcome.
	Loads *prometheus.CounterVec
	// HTTPRequests counts HTTP requests by route and status code.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration measures HTTP latency by route.
	HTTPDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates and registers all collectors on reg. A nil reg uses a fresh
// private registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	m := &Metrics{
		Queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of path queries, by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
		QueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Duration of path queries in seconds.",
				// From a few microseconds on a small map up to a full scan of a large one.
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"op"},
		),
		Nodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Number of locations in the loaded graph.",
		}),
		Edges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Number of directed paths in the loaded graph.",
		}),
		Loads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graph_loads_total",
				Help:      "Total number of graph loads, by outcome.",
			},
			[]string{"outcome"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}

	return m
}

// ObserveQuery records one query with its outcome and latency.
// A nil receiver is a no-op.
func (m *Metrics) ObserveQuery(op, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(op, outcome).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(d.Seconds())
}

// SetGraphSize updates the node and edge gauges. A nil receiver is a no-op.
func (m *Metrics) SetGraphSize(nodes, edges int) {
	if m == nil {
		return
	}
	m.Nodes.Set(float64(nodes))
	m.Edges.Set(float64(edges))
}

// ObserveLoad counts one graph load. A nil receiver is a no-op.
func (m *Metrics) ObserveLoad(err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Loads.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served request. A nil receiver is a no-op.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Handler serves the registry's metrics. It falls back to the default
// gatherer when the registerer cannot gather.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
