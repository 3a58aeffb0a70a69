// Package metrics exports Prometheus instrumentation for lattice searches.
//
// A Collector owns four series families, all labelled by strategy:
//
//	latticepath_search_total{strategy,outcome}   counter
//	latticepath_search_duration_seconds          histogram
//	latticepath_search_expanded_nodes            histogram
//	latticepath_search_path_cost                 histogram
//
// Outcomes are "found", "no_path", "unresolved" and "error".
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/search"
)

const namespace = "latticepath"

// Outcome label values.
const (
	OutcomeFound      = "found"
	OutcomeNoPath     = "no_path"
	OutcomeUnresolved = "unresolved"
	OutcomeError      = "error"
)

// Collector records search outcomes.
type Collector struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	cost     *prometheus.HistogramVec
}

// New registers the search metrics on reg. A nil reg creates unregistered
// metrics, which is handy in tests that only read values back.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_total",
			Help:      "Searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a search",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),

		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expanded_nodes",
			Help:      "Nodes taken off the frontier per successful search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),

		cost: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_path_cost",
			Help:      "Reported cost of found paths",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}, []string{"strategy"}),
	}
}

// Outcome classifies a search error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, search.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, search.ErrUnresolved):
		return OutcomeUnresolved
	default:
		return OutcomeError
	}
}

// Observe records one search.
func (c *Collector) Observe(strategy search.Strategy, res *search.Result, err error, elapsed time.Duration) {
	s := string(strategy)
	c.searches.WithLabelValues(s, Outcome(err)).Inc()
	c.duration.WithLabelValues(s).Observe(elapsed.Seconds())
	if err != nil || res == nil {
		return
	}
	c.expanded.WithLabelValues(s).Observe(float64(res.Stats.Explored))
	c.cost.WithLabelValues(s).Observe(float64(res.Cost))
}

// Solve runs search.Solve and records its outcome.
func (c *Collector) Solve(g *lattice.Grid, strategy search.Strategy, opts ...search.Option) (*search.Result, error) {
	began := time.Now()
	res, err := search.Solve(g, strategy, opts...)
	c.Observe(strategy, res, err, time.Since(began))
	return res, err
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
