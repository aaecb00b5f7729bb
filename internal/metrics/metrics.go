// Package metrics registers the prometheus instruments exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BidsAccepted counts bids that passed validation and were recorded,
	// labeled by origin ("manual" or "proxy").
	BidsAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_bids_accepted_total",
		Help: "Number of accepted bids, by origin.",
	}, []string{"origin"})

	// BidsRejected counts bids rejected by validation, labeled by reason.
	BidsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_bids_rejected_total",
		Help: "Number of rejected bids, by reason.",
	}, []string{"reason"})

	// ProxyRuns counts executions of the proxy bidding engine.
	ProxyRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_proxy_engine_runs_total",
		Help: "Number of proxy bidding engine executions.",
	})

	// AuctionsResolved counts auction results created, labeled by outcome
	// ("won", "reserve_not_met", "no_bids").
	AuctionsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_resolved_total",
		Help: "Number of auctions resolved, by outcome.",
	}, []string{"outcome"})

	// SchedulerTicks counts lifecycle scheduler passes.
	SchedulerTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_scheduler_ticks_total",
		Help: "Number of lifecycle scheduler ticks.",
	})

	// SchedulerErrors counts per-auction failures inside scheduler ticks.
	SchedulerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_scheduler_errors_total",
		Help: "Number of per-auction processing failures during scheduler ticks.",
	})
)
