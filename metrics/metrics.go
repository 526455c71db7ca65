// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of the lineage pipeline.
//
// A nil *Collectors is valid and records nothing, so library code can call
// the helpers unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "coachtree"

// Reduction labels for filter removals.
const (
	ReductionMentorship   = "mentorship"
	ReductionFuture       = "future"
	ReductionCurrentStaff = "current_staff"
)

// Collectors groups every metric of the module.
type Collectors struct {
	recordsTotal     *prometheus.CounterVec
	edgesTotal       *prometheus.CounterVec
	unclassified     prometheus.Counter
	buildDuration    prometheus.Histogram
	filterRemoved    *prometheus.CounterVec
	searchesTotal    *prometheus.CounterVec
	searchDuration   prometheus.Histogram
	shortlistLookups *prometheus.CounterVec
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which is useful in tests.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		recordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "builder",
				Name:      "records_total",
				Help:      "Job records seen by the builder, by outcome.",
			}, []string{"outcome"}),
		edgesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "builder",
				Name:      "edges_total",
				Help:      "Lineage edges created, by mentor status.",
			}, []string{"status"}),
		unclassified: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "builder",
				Name:      "unclassified_positions_total",
				Help:      "Distinct position titles missing from the seniority mapping.",
			}),
		buildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "builder",
				Name:      "build_duration_seconds",
				Help:      "Bucketed histogram of graph build time (s).",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
			}),
		filterRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "filter",
				Name:      "edges_removed_total",
				Help:      "Edges removed by each filter reduction.",
			}, []string{"reduction"}),
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "searches_total",
				Help:      "Lowest common ancestor searches, by status.",
			}, []string{"status"}),
		searchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "duration_seconds",
				Help:      "Bucketed histogram of search time (s).",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 18),
			}),
		shortlistLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "shortlist_cache_total",
				Help:      "Ancestor shortlist cache lookups, by result.",
			}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(
			c.recordsTotal, c.edgesTotal, c.unclassified, c.buildDuration,
			c.filterRemoved, c.searchesTotal, c.searchDuration, c.shortlistLookups,
		)
	}

	return c
}

// ObserveBuild records one finished build.
func (c *Collectors) ObserveBuild(accepted, skipped, unclassified int, edgesByStatus map[string]int, took time.Duration) {
	if c == nil {
		return
	}
	c.recordsTotal.WithLabelValues("accepted").Add(float64(accepted))
	c.recordsTotal.WithLabelValues("skipped").Add(float64(skipped))
	c.unclassified.Add(float64(unclassified))
	for status, n := range edgesByStatus {
		c.edgesTotal.WithLabelValues(status).Add(float64(n))
	}
	c.buildDuration.Observe(took.Seconds())
}

// ObserveReduction records the edges removed by one filter reduction.
func (c *Collectors) ObserveReduction(reduction string, removed int) {
	if c == nil {
		return
	}
	c.filterRemoved.WithLabelValues(reduction).Add(float64(removed))
}

// ObserveSearch records one finished search.
func (c *Collectors) ObserveSearch(status string, took time.Duration) {
	if c == nil {
		return
	}
	c.searchesTotal.WithLabelValues(status).Inc()
	c.searchDuration.Observe(took.Seconds())
}

// ObserveShortlist records a shortlist cache hit or miss.
func (c *Collectors) ObserveShortlist(hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.shortlistLookups.WithLabelValues(result).Inc()
}
