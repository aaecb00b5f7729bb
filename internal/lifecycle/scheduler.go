package lifecycle

import (
	"context"
	"time"

	"auction-engine/internal/events"
	"auction-engine/internal/metrics"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// DefaultInterval is how often the scheduler sweeps auction statuses when no
// interval is configured.
const DefaultInterval = 60 * time.Second

// ProxyRunner is the slice of the proxy engine the scheduler needs when an
// auction goes live.
type ProxyRunner interface {
	ProcessProxyBids(ctx context.Context, auctionID string) ([]events.ExecutedBid, error)
}

// Scheduler periodically derives every auction's status and reacts to
// transitions: going live triggers the proxy engine, ending triggers the
// resolver. Statuses are never stored; the scheduler keeps only its own
// view of the previous tick to detect edges.
type Scheduler struct {
	repo        repository.AuctionDB
	resolver    *Resolver
	proxy       ProxyRunner
	broadcaster *events.Broadcaster
	interval    time.Duration
	now         func() time.Time

	prev   map[string]model.AuctionStatus
	primed bool
}

// NewScheduler creates a new Scheduler instance. A non-positive interval
// falls back to DefaultInterval.
func NewScheduler(repo repository.AuctionDB, resolver *Resolver, proxy ProxyRunner, broadcaster *events.Broadcaster, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		repo:        repo,
		resolver:    resolver,
		proxy:       proxy,
		broadcaster: broadcaster,
		interval:    interval,
		now:         time.Now,
		prev:        make(map[string]model.AuctionStatus),
	}
}

// Start runs the sweep loop until the context is cancelled. The first pass
// runs immediately so a restart settles overdue auctions without waiting a
// full interval.
func (s *Scheduler) Start(ctx context.Context) {
	utils.Info("lifecycle scheduler started", map[string]any{
		"interval": s.interval.String(),
	})

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			utils.Info("lifecycle scheduler stopped", nil)
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single sweep over all auctions. A failure on one
// auction is counted and logged but never stops the sweep.
func (s *Scheduler) RunOnce(ctx context.Context) {
	metrics.SchedulerTicks.Inc()

	auctions, err := s.repo.ListAuctions(ctx)
	if err != nil {
		metrics.SchedulerErrors.Inc()
		utils.Error("scheduler failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	now := s.now().UTC()
	firstPass := !s.primed
	for _, auction := range auctions {
		status := auction.StatusAt(now)
		prevStatus, seen := s.prev[auction.AuctionID]
		s.prev[auction.AuctionID] = status

		// The first pass after startup rebuilds the previous-tick view, so
		// edges cannot be trusted: catch-up work still runs (it is
		// idempotent) but no transition events fire for stale edges.
		transitioned := seen && !firstPass && prevStatus != status
		if transitioned && s.broadcaster != nil {
			s.broadcaster.Publish(events.Event{
				Type:      events.TypeAuctionTransitioned,
				AuctionID: auction.AuctionID,
				NewStatus: string(status),
			})
		}

		switch status {
		case model.StatusLive:
			// run the engine on a go-live edge, but also whenever a live
			// auction shows up unseen (restart, or created mid-run already
			// live): standing maximums registered while it was upcoming must
			// be honored now, and the run is idempotent.
			if transitioned || !seen {
				s.runProxyEngine(ctx, auction.AuctionID)
			}
		case model.StatusEnded:
			s.resolveIfNeeded(ctx, auction.AuctionID)
		}
	}
	s.primed = true
}

func (s *Scheduler) runProxyEngine(ctx context.Context, auctionID string) {
	if s.proxy == nil {
		return
	}

	executed, err := s.proxy.ProcessProxyBids(ctx, auctionID)
	if err != nil {
		metrics.SchedulerErrors.Inc()
		utils.Error("scheduler proxy pass failed", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}
	if len(executed) > 0 && s.broadcaster != nil {
		s.broadcaster.Publish(events.Event{
			Type:      events.TypeProxyBidsExecuted,
			AuctionID: auctionID,
			Executed:  executed,
		})
	}
}

func (s *Scheduler) resolveIfNeeded(ctx context.Context, auctionID string) {
	if _, err := s.repo.GetResult(ctx, auctionID); err == nil {
		return
	}

	if _, err := s.resolver.Resolve(ctx, auctionID); err != nil {
		metrics.SchedulerErrors.Inc()
		utils.Error("scheduler failed to resolve auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
}
