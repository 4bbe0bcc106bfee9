// Package metrics defines all custom Prometheus metrics for the finance API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance"

// ── Domain metrics ────────────────────────────────────────────────────────────

// TransactionsCreatedTotal counts newly recorded transactions.
// Label:
//   - type: "income" or "expense"
var TransactionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_created_total",
		Help:      "Total number of transactions created, by type.",
	},
	[]string{"type"},
)

// RiskEvaluationsTotal counts risk evaluations by resulting level.
// Label:
//   - level: "low", "medium" or "high"
var RiskEvaluationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "risk_evaluations_total",
		Help:      "Total number of risk evaluations performed, by resulting level.",
	},
	[]string{"level"},
)

// ── Upstream proxy metrics ────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to third-party providers.
// Labels:
//   - provider: "finnhub", "newsdata" or "ninjas"
//   - outcome:  "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream provider requests, by provider and outcome.",
	},
	[]string{"provider", "outcome"},
)

// UpstreamRequestDuration measures the latency of upstream provider calls.
// Label:
//   - provider: "finnhub", "newsdata" or "ninjas"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream provider requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)

// MarketCacheTotal counts quote cache lookups.
// Label:
//   - result: "hit" or "miss"
var MarketCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_cache_total",
		Help:      "Total number of quote cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
