// Package metrics holds the Prometheus collectors of one application instance.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/ontology"
)

// Namespace prefixes every metric name.
const Namespace = "ldgraph"

// Outcome label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Collector owns a private registry so several instances can coexist, e.g.
// in tests.
type Collector struct {
	registry *prometheus.Registry

	Batches       *prometheus.CounterVec
	BatchDuration prometheus.Histogram
	Records       prometheus.Counter
	Nodes         *prometheus.CounterVec
	Merged        prometheus.Counter
	Deliveries    *prometheus.CounterVec
}

// NewCollector creates and registers all collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "batches_total",
				Help:      "Input batches processed, by outcome.",
			},
			[]string{"status"},
		),
		BatchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "batch_duration_seconds",
				Help:      "Time to decode, transform and deliver one batch.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		Records: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "records_total",
				Help:      "Input records exported, one per document node.",
			},
		),
		Nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "nodes_emitted_total",
				Help:      "Nodes emitted, by type.",
			},
			[]string{"type"},
		),
		Merged: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "nodes_merged_total",
				Help:      "Nodes folded into an earlier node with the same identifier.",
			},
		),
		Deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "deliveries_total",
				Help:      "Dataset deliveries, by sink and outcome.",
			},
			[]string{"sink", "status"},
		),
	}
	c.registry.MustRegister(c.Batches, c.BatchDuration, c.Records, c.Nodes, c.Merged, c.Deliveries)
	return c
}

// Handler serves the collector in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveBatch records the outcome and duration of one batch.
func (c *Collector) ObserveBatch(err error, elapsed time.Duration) {
	c.Batches.WithLabelValues(status(err)).Inc()
	c.BatchDuration.Observe(elapsed.Seconds())
}

// ObserveGraph counts the nodes of an emitted graph. Every document node
// stands for one exported record.
func (c *Collector) ObserveGraph(g *graph.Graph) {
	c.Merged.Add(float64(g.Merged))
	for typ, n := range g.CountByType() {
		c.Nodes.WithLabelValues(typ).Add(float64(n))
		if typ == ontology.ClassDigitalDocument || typ == ontology.ClassSoftwareSourceCode {
			c.Records.Add(float64(n))
		}
	}
}

// ObserveDelivery records one sink delivery.
func (c *Collector) ObserveDelivery(sink string, err error) {
	c.Deliveries.WithLabelValues(sink, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
