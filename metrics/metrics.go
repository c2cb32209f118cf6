// Package metrics exports search statistics as Prometheus metrics.
//
// A Collector implements search.Observer. Hand it to an engine with
// search.WithObserver and every finished run is counted and measured:
//
//	mazepath_searches_total{algorithm,outcome}   counter
//	mazepath_nodes_explored{algorithm}           histogram
//	mazepath_path_length{algorithm}              histogram, found runs only
//	mazepath_search_duration_seconds{algorithm}  histogram
//
// Each Collector owns its registry; the default registerer is never touched.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/mazepath/search"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Collector records search.Stats. It is safe for concurrent use.
type Collector struct {
	registry   *prometheus.Registry
	searches   *prometheus.CounterVec
	explored   *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

var _ search.Observer = (*Collector)(nil)

// New returns a Collector registered on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazepath_searches_total",
			Help: "Completed searches by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		explored: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_nodes_explored",
			Help:    "Nodes expanded per search.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16), // 1 to 32768
		}, []string{"algorithm"}),
		pathLength: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_path_length",
			Help:    "Steps in the solution path of successful searches.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_search_duration_seconds",
			Help:    "Wall time per search in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
	}
}

// ObserveSearch implements search.Observer.
func (c *Collector) ObserveSearch(s search.Stats) {
	alg := s.Algorithm.String()
	outcome := OutcomeNotFound
	if s.Found {
		outcome = OutcomeFound
		c.pathLength.WithLabelValues(alg).Observe(float64(s.PathLength))
	}
	c.searches.WithLabelValues(alg, outcome).Inc()
	c.explored.WithLabelValues(alg).Observe(float64(s.Explored))
	c.duration.WithLabelValues(alg).Observe(s.Elapsed.Seconds())
}

// Gatherer exposes the Collector's registry, e.g. for promhttp or testutil.
func (c *Collector) Gatherer() prometheus.Gatherer { return c.registry }

// WriteText gathers every metric and writes it to w in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
