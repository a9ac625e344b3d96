// Package metrics defines and registers all custom Prometheus metrics for
// the dashboard core. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// FetchFallbacksTotal counts sub-fetches that failed and fell back to their
// domain default during aggregation.
// Label:
//   - domain: the fetch domain ("health", "academic", "predictions",
//     "alerts", "devices", "goals", "lifestyle")
var FetchFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_fallbacks_total",
		Help:      "Total number of domain sub-fetches that fell back to their default.",
	},
	[]string{"domain"},
)

// AggregationsTotal counts completed full aggregations.
// Label:
//   - result: "committed" or "discarded" (session ended before merge commit)
var AggregationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregations_total",
		Help:      "Total number of full fan-out aggregations, by outcome.",
	},
	[]string{"result"},
)

// AggregationDuration measures wall time of a full fan-out/fan-in load.
var AggregationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_duration_seconds",
		Help:      "Duration of a full dashboard aggregation.",
		Buckets:   prometheus.DefBuckets,
	},
)

// RefreshTicksTotal counts periodic refresh ticks.
// Label:
//   - result: "ok" or "error" (errors are swallowed, the timer survives)
var RefreshTicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_ticks_total",
		Help:      "Total number of periodic refresh ticks, by outcome.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts HTTP 401 responses observed on any endpoint; each
// one tears down the session.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of authentication failures causing session teardown.",
	},
)
