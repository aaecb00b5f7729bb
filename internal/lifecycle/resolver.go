package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auctionlock"
	"auction-engine/internal/events"
	"auction-engine/internal/metrics"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// Resolver settles ended auctions into immutable results. Resolution is
// idempotent: the first call for an auction records the outcome, every later
// call returns the recorded result unchanged.
type Resolver struct {
	repo        repository.AuctionDB
	locks       *auctionlock.KeyedMutex
	broadcaster *events.Broadcaster
	now         func() time.Time
}

// NewResolver creates a new Resolver instance
func NewResolver(repo repository.AuctionDB, locks *auctionlock.KeyedMutex, broadcaster *events.Broadcaster) *Resolver {
	return &Resolver{
		repo:        repo,
		locks:       locks,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// Resolve settles one ended auction. Winner rules:
//   - no bids: no winner, winning amount zero
//   - reserve price set and unmet: no winner, winning amount keeps the
//     highest bid for reporting
//   - otherwise the highest bidder wins at their bid amount
func (r *Resolver) Resolve(ctx context.Context, auctionID string) (model.AuctionResult, error) {
	unlock := r.locks.Lock(auctionID)
	defer unlock()

	if existing, err := r.repo.GetResult(ctx, auctionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, auctionerrors.ErrResultNotFound) {
		return model.AuctionResult{}, fmt.Errorf("lifecycle: failed to check result for auction %s: %w", auctionID, err)
	}

	auction, err := r.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return model.AuctionResult{}, fmt.Errorf("lifecycle: failed to load auction %s: %w", auctionID, err)
	}

	now := r.now().UTC()
	if auction.StatusAt(now) != model.StatusEnded {
		return model.AuctionResult{}, fmt.Errorf("lifecycle: auction %s: %w", auctionID, auctionerrors.ErrAuctionNotEnded)
	}

	product, err := r.repo.GetProduct(ctx, auction.ProductID)
	if err != nil {
		return model.AuctionResult{}, fmt.Errorf("lifecycle: failed to load product %s: %w", auction.ProductID, err)
	}

	result := model.AuctionResult{
		ResultID:  utils.GenerateID(),
		AuctionID: auctionID,
		EndedAt:   auction.EndTime,
	}

	outcome := "no_bids"
	highest, err := r.repo.GetHighestBid(ctx, auctionID)
	switch {
	case errors.Is(err, auctionerrors.ErrNoBids):
		// result stays empty: no winner, zero amount
	case err != nil:
		return model.AuctionResult{}, fmt.Errorf("lifecycle: failed to check highest bid for auction %s: %w", auctionID, err)
	case product.ReservePrice > 0 && highest.Amount < product.ReservePrice:
		result.WinningBid = highest.Amount
		outcome = "reserve_not_met"
	default:
		result.WinnerID = highest.BidderID
		result.WinningBid = highest.Amount
		outcome = "won"
	}

	if err := r.repo.CreateResult(ctx, result); err != nil {
		// lost a race with another resolver pass; the recorded result wins
		if errors.Is(err, auctionerrors.ErrResultExists) {
			return r.repo.GetResult(ctx, auctionID)
		}
		return model.AuctionResult{}, fmt.Errorf("lifecycle: failed to record result for auction %s: %w", auctionID, err)
	}

	metrics.AuctionsResolved.WithLabelValues(outcome).Inc()
	utils.Info("auction resolved", map[string]any{
		"auction_id":  auctionID,
		"winner_id":   result.WinnerID,
		"winning_bid": result.WinningBid,
		"outcome":     outcome,
	})

	if r.broadcaster != nil {
		r.broadcaster.Publish(events.Event{
			Type:       events.TypeAuctionEnded,
			AuctionID:  auctionID,
			WinnerID:   result.WinnerID,
			WinningBid: result.WinningBid,
		})
	}
	return result, nil
}

// Result returns the recorded outcome for an auction, if any
func (r *Resolver) Result(ctx context.Context, auctionID string) (model.AuctionResult, error) {
	result, err := r.repo.GetResult(ctx, auctionID)
	if err != nil {
		return model.AuctionResult{}, fmt.Errorf("lifecycle: failed to load result for auction %s: %w", auctionID, err)
	}
	return result, nil
}

// ResolveAllEnded settles every ended auction that has no result yet and
// returns how many results it created. One failing auction never blocks the
// rest of the sweep.
func (r *Resolver) ResolveAllEnded(ctx context.Context) (int, error) {
	auctions, err := r.repo.ListAuctions(ctx)
	if err != nil {
		return 0, fmt.Errorf("lifecycle: failed to list auctions: %w", err)
	}

	now := r.now().UTC()
	resolved := 0
	for _, auction := range auctions {
		if auction.StatusAt(now) != model.StatusEnded {
			continue
		}
		if _, err := r.repo.GetResult(ctx, auction.AuctionID); err == nil {
			continue
		}

		if _, err := r.Resolve(ctx, auction.AuctionID); err != nil {
			utils.Error("failed to resolve auction during sweep", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		resolved++
	}
	return resolved, nil
}
