package proxy

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
	"auction-engine/internal/pricing"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// ProxyService owns the standing-maximum registry and the bidding engine
// that converts those maximums into real ledger bids.
type ProxyService struct {
	repo        repository.AuctionDB
	locks       *auctionlock.KeyedMutex
	broadcaster *events.Broadcaster
}

// NewProxyService creates a new ProxyService instance
func NewProxyService(repo repository.AuctionDB, locks *auctionlock.KeyedMutex, broadcaster *events.Broadcaster) *ProxyService {
	return &ProxyService{
		repo:        repo,
		locks:       locks,
		broadcaster: broadcaster,
	}
}

// Status reports where a bidder's proxy stands right now
type Status struct {
	Proxy           model.ProxyBid `json:"proxy_bid"`
	IsWinning       bool           `json:"is_winning"`
	CurrentHighest  int64          `json:"current_highest"`
	RemainingBudget int64          `json:"remaining_budget"`
}

// SetProxyBid registers or replaces the bidder's standing maximum for an
// auction. On a live auction the engine runs immediately, so the new maximum
// takes effect without waiting for the next manual bid.
func (s *ProxyService) SetProxyBid(ctx context.Context, bidderID, auctionID string, maxAmount int64) (model.ProxyBid, []events.ExecutedBid, error) {
	if bidderID == "" || auctionID == "" {
		return model.ProxyBid{}, nil, fmt.Errorf("service: %w - missing bidderID or auctionID", auctionerrors.ErrInvalidBid)
	}
	if maxAmount <= 0 {
		return model.ProxyBid{}, nil, fmt.Errorf("service: %w - non-positive maximum", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return model.ProxyBid{}, nil, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	now := time.Now().UTC()
	status := auction.StatusAt(now)
	if status == model.StatusEnded {
		return model.ProxyBid{}, nil, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrAuctionEnded)
	}

	product, err := s.repo.GetProduct(ctx, auction.ProductID)
	if err != nil {
		return model.ProxyBid{}, nil, fmt.Errorf("service: failed to load product %s: %w", auction.ProductID, err)
	}
	if product.SellerID == bidderID {
		return model.ProxyBid{}, nil, fmt.Errorf("service: bidder %s on auction %s: %w", bidderID, auctionID, auctionerrors.ErrSelfBidding)
	}

	current, err := s.currentAmount(ctx, auctionID, product)
	if err != nil {
		return model.ProxyBid{}, nil, err
	}
	if minimum := pricing.MinimumBid(current); maxAmount < minimum {
		return model.ProxyBid{}, nil, fmt.Errorf("service: %w - maximum must be at least %d", auctionerrors.ErrProxyMaxTooLow, minimum)
	}

	proxyBid := model.ProxyBid{
		ProxyBidID: utils.GenerateID(),
		BidderID:   bidderID,
		AuctionID:  auctionID,
		ProductID:  auction.ProductID,
		MaxAmount:  maxAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.UpsertProxyBid(ctx, proxyBid); err != nil {
		return model.ProxyBid{}, nil, fmt.Errorf("service: failed to store proxy bid for bidder %s on auction %s: %w", bidderID, auctionID, err)
	}

	utils.Info("proxy bid registered", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"max_amount": maxAmount,
	})

	// upcoming auctions wait for the go-live transition
	if status != model.StatusLive {
		return proxyBid, nil, nil
	}

	executed, err := s.ProcessProxyBids(ctx, auctionID)
	if err != nil {
		utils.Error("proxy engine failed after registration", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return proxyBid, nil, nil
	}
	if len(executed) > 0 && s.broadcaster != nil {
		s.broadcaster.Publish(events.Event{
			Type:      events.TypeProxyBidsExecuted,
			AuctionID: auctionID,
			Executed:  executed,
		})
	}
	return proxyBid, executed, nil
}

// GetStatus reports the bidder's proxy position: whether it currently leads
// the auction and how much budget remains above the current highest amount.
func (s *ProxyService) GetStatus(ctx context.Context, bidderID, auctionID string) (Status, error) {
	proxyBid, err := s.repo.GetProxyBid(ctx, bidderID, auctionID)
	if err != nil {
		return Status{}, fmt.Errorf("service: failed to load proxy bid for bidder %s on auction %s: %w", bidderID, auctionID, err)
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return Status{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	product, err := s.repo.GetProduct(ctx, auction.ProductID)
	if err != nil {
		return Status{}, fmt.Errorf("service: failed to load product %s: %w", auction.ProductID, err)
	}

	status := Status{Proxy: proxyBid}
	highest, err := s.repo.GetHighestBid(ctx, auctionID)
	switch {
	case err == nil:
		status.CurrentHighest = highest.Amount
		status.IsWinning = highest.BidderID == bidderID
	case errors.Is(err, auctionerrors.ErrNoBids):
		status.CurrentHighest = product.StartingBid
	default:
		return Status{}, fmt.Errorf("service: failed to check highest bid: %w", err)
	}

	if remaining := proxyBid.MaxAmount - status.CurrentHighest; remaining > 0 {
		status.RemainingBudget = remaining
	}
	return status, nil
}

// RemoveProxyBid withdraws the bidder's standing maximum. Bids the engine
// already placed on the bidder's behalf remain in the ledger.
func (s *ProxyService) RemoveProxyBid(ctx context.Context, bidderID, auctionID string) error {
	if err := s.repo.RemoveProxyBid(ctx, bidderID, auctionID); err != nil {
		return fmt.Errorf("service: failed to remove proxy bid for bidder %s on auction %s: %w", bidderID, auctionID, err)
	}

	utils.Info("proxy bid withdrawn", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
	})
	return nil
}

// AllForBidder returns every standing maximum held by one bidder
func (s *ProxyService) AllForBidder(ctx context.Context, bidderID string) ([]model.ProxyBid, error) {
	proxies, err := s.repo.GetProxyBidsByBidder(ctx, bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list proxy bids for bidder %s: %w", bidderID, err)
	}
	return proxies, nil
}

// AllForAuction returns every standing maximum on one auction
func (s *ProxyService) AllForAuction(ctx context.Context, auctionID string) ([]model.ProxyBid, error) {
	proxies, err := s.repo.GetProxyBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list proxy bids for auction %s: %w", auctionID, err)
	}
	return proxies, nil
}

// ProcessProxyBids runs the bidding engine for one auction until no proxy
// can outbid the current leader. Each pass picks the eligible proxy with the
// highest maximum and bids exactly the minimum acceptable amount, so the
// price never jumps further than the increment policy requires. The run is
// idempotent: it recomputes from the ledger, placing nothing when the
// strongest proxy already leads.
func (s *ProxyService) ProcessProxyBids(ctx context.Context, auctionID string) ([]events.ExecutedBid, error) {
	unlock := s.locks.Lock(auctionID)
	defer unlock()

	metrics.ProxyRuns.Inc()

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.StatusAt(time.Now().UTC()) != model.StatusLive {
		return nil, nil
	}

	product, err := s.repo.GetProduct(ctx, auction.ProductID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load product %s: %w", auction.ProductID, err)
	}

	proxies, err := s.repo.GetProxyBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list proxy bids for auction %s: %w", auctionID, err)
	}
	if len(proxies) == 0 {
		return nil, nil
	}

	var executed []events.ExecutedBid
	for {
		current, leader, err := s.currentPosition(ctx, auctionID, product)
		if err != nil {
			return executed, err
		}

		candidate, ok := nextCandidate(proxies, leader, product.SellerID, current)
		if !ok {
			break
		}

		amount := pricing.MinimumBid(current)
		bid := model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  candidate.BidderID,
			Amount:    amount,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.RecordBid(ctx, bid); err != nil {
			return executed, fmt.Errorf("service: failed to record proxy bid for auction %s: %w", auctionID, err)
		}

		metrics.BidsAccepted.WithLabelValues("proxy").Inc()
		s.recordHistory(ctx, candidate.BidderID, product, bid.CreatedAt)
		executed = append(executed, events.ExecutedBid{BidderID: candidate.BidderID, Amount: amount})
	}

	if len(executed) > 0 {
		utils.Info("proxy engine placed bids", map[string]any{
			"auction_id": auctionID,
			"bids":       len(executed),
		})
	}
	return executed, nil
}

// nextCandidate picks the strongest proxy that is not already leading, is
// not the seller, and can still afford the minimum next bid. Proxies arrive
// sorted by maximum descending with ties broken by earliest registration.
func nextCandidate(proxies []model.ProxyBid, leader, sellerID string, current int64) (model.ProxyBid, bool) {
	minimum := pricing.MinimumBid(current)
	for _, p := range proxies {
		if p.BidderID == leader || p.BidderID == sellerID {
			continue
		}
		if p.MaxAmount >= minimum {
			return p, true
		}
	}
	return model.ProxyBid{}, false
}

// currentPosition returns the amount to beat and who holds it; an empty
// leader means the ledger is still empty.
func (s *ProxyService) currentPosition(ctx context.Context, auctionID string, product model.Product) (int64, string, error) {
	highest, err := s.repo.GetHighestBid(ctx, auctionID)
	if err == nil {
		return highest.Amount, highest.BidderID, nil
	}
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return product.StartingBid, "", nil
	}
	return 0, "", fmt.Errorf("service: failed to check highest bid: %w", err)
}

func (s *ProxyService) currentAmount(ctx context.Context, auctionID string, product model.Product) (int64, error) {
	amount, _, err := s.currentPosition(ctx, auctionID, product)
	return amount, err
}

func (s *ProxyService) recordHistory(ctx context.Context, bidderID string, product model.Product, now time.Time) {
	entry := model.BidHistoryEntry{
		UserID:      bidderID,
		ProductID:   product.ProductID,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		SellerID:    product.SellerID,
		BidCount:    1,
		LastBidTime: now,
	}
	if err := s.repo.IncrementBidHistory(ctx, entry); err != nil {
		utils.Warn("failed to update bid history", map[string]any{
			"bidder_id":  bidderID,
			"product_id": product.ProductID,
			"error":      err.Error(),
		})
	}
}
