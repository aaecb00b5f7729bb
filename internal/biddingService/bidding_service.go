package bidding

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

// ProxyProcessor reacts to an accepted bid by evaluating all standing proxy
// maximums for the auction. Implemented by the proxy bidding engine.
type ProxyProcessor interface {
	ProcessProxyBids(ctx context.Context, auctionID string) ([]events.ExecutedBid, error)
}

// BiddingService owns the bid ledger: validation, serialized acceptance and
// the proxy-engine trigger after each accepted manual bid.
type BiddingService struct {
	repo        repository.AuctionDB
	locks       *auctionlock.KeyedMutex
	proxy       ProxyProcessor
	broadcaster *events.Broadcaster
}

// NewBiddingService creates a new BiddingService instance. The proxy
// processor and broadcaster may be nil (queries still work); PlaceBid then
// skips the corresponding step.
func NewBiddingService(repo repository.AuctionDB, locks *auctionlock.KeyedMutex, proxy ProxyProcessor, broadcaster *events.Broadcaster) *BiddingService {
	return &BiddingService{
		repo:        repo,
		locks:       locks,
		proxy:       proxy,
		broadcaster: broadcaster,
	}
}

// StatusGrouped partitions auctions by their derived status
type StatusGrouped struct {
	Live     []model.Auction
	Upcoming []model.Auction
	Ended    []model.Auction
}

// PlaceBid validates and records a manual bid, then lets the proxy engine
// respond. The read-validate-write sequence runs under the auction's lock so
// two concurrent bids can never both be accepted against the same "current
// highest". Returns the recorded bid and any proxy bids placed in response.
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount int64) (model.Bid, []events.ExecutedBid, error) {
	bid, err := s.acceptBid(ctx, auctionID, bidderID, amount)
	if err != nil {
		return model.Bid{}, nil, err
	}

	executed := s.runProxyEngine(ctx, auctionID)
	return bid, executed, nil
}

// acceptBid holds the per-auction critical section
func (s *BiddingService) acceptBid(ctx context.Context, auctionID, bidderID string, amount int64) (model.Bid, error) {
	if auctionID == "" || bidderID == "" {
		metrics.BidsRejected.WithLabelValues("invalid").Inc()
		return model.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		metrics.BidsRejected.WithLabelValues("invalid").Inc()
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	unlock := s.locks.Lock(auctionID)
	defer unlock()

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		metrics.BidsRejected.WithLabelValues("not_found").Inc()
		return model.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	now := time.Now().UTC()
	if auction.StatusAt(now) != model.StatusLive {
		metrics.BidsRejected.WithLabelValues("not_live").Inc()
		return model.Bid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrAuctionNotLive)
	}

	product, err := s.repo.GetProduct(ctx, auction.ProductID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load product %s: %w", auction.ProductID, err)
	}

	if product.SellerID == bidderID {
		metrics.BidsRejected.WithLabelValues("self_bidding").Inc()
		return model.Bid{}, fmt.Errorf("service: bidder %s on auction %s: %w", bidderID, auctionID, auctionerrors.ErrSelfBidding)
	}

	currentAmount := product.StartingBid
	highest, err := s.repo.GetHighestBid(ctx, auctionID)
	switch {
	case err == nil:
		currentAmount = highest.Amount
		if highest.BidderID == bidderID {
			metrics.BidsRejected.WithLabelValues("consecutive").Inc()
			return model.Bid{}, fmt.Errorf("service: bidder %s on auction %s: %w", bidderID, auctionID, auctionerrors.ErrConsecutiveBid)
		}
	case errors.Is(err, auctionerrors.ErrNoBids):
		// first bid competes against the starting price
	default:
		return model.Bid{}, fmt.Errorf("service: failed to check highest bid: %w", err)
	}

	minimumBid := pricing.MinimumBid(currentAmount)
	if amount < minimumBid {
		metrics.BidsRejected.WithLabelValues("too_low").Inc()
		return model.Bid{}, fmt.Errorf("service: %w - minimum acceptable bid is %d", auctionerrors.ErrBidTooLow, minimumBid)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: now,
	}
	if err := s.repo.RecordBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by bidder %s: %w", auctionID, bidderID, err)
	}

	metrics.BidsAccepted.WithLabelValues("manual").Inc()
	s.updateBidHistory(ctx, bidderID, product, now)

	utils.Info("bid accepted", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount,
	})
	return bid, nil
}

// updateBidHistory feeds the recommendation aggregate; a failure here never
// fails the already-recorded bid.
func (s *BiddingService) updateBidHistory(ctx context.Context, bidderID string, product model.Product, now time.Time) {
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

// runProxyEngine triggers the proxy pass after an accepted manual bid and
// broadcasts what it placed. Engine failures are logged, never surfaced to
// the bidder whose bid already stands.
func (s *BiddingService) runProxyEngine(ctx context.Context, auctionID string) []events.ExecutedBid {
	if s.proxy == nil {
		return nil
	}

	executed, err := s.proxy.ProcessProxyBids(ctx, auctionID)
	if err != nil {
		utils.Error("proxy engine failed after manual bid", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return nil
	}
	if len(executed) > 0 && s.broadcaster != nil {
		s.broadcaster.Publish(events.Event{
			Type:      events.TypeProxyBidsExecuted,
			AuctionID: auctionID,
			Executed:  executed,
		})
	}
	return executed
}

// GetBidsForAuction returns the full ledger for an auction
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetHighestBid returns the current highest bid for an auction
func (s *BiddingService) GetHighestBid(ctx context.Context, auctionID string) (model.Bid, error) {
	if auctionID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	highest, err := s.repo.GetHighestBid(ctx, auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get highest bid for auction %s: %w", auctionID, err)
	}
	return highest, nil
}

// CurrentAmount returns the amount new bids compete against: the highest
// bid, or the product's starting bid while the ledger is empty.
func (s *BiddingService) CurrentAmount(ctx context.Context, auctionID string) (int64, error) {
	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	highest, err := s.repo.GetHighestBid(ctx, auctionID)
	if err == nil {
		return highest.Amount, nil
	}
	if !errors.Is(err, auctionerrors.ErrNoBids) {
		return 0, fmt.Errorf("service: failed to check highest bid: %w", err)
	}

	product, err := s.repo.GetProduct(ctx, auction.ProductID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load product %s: %w", auction.ProductID, err)
	}
	return product.StartingBid, nil
}

// GetProduct returns one product by id
func (s *BiddingService) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}
	return product, nil
}

// GetAuction returns one auction by id
func (s *BiddingService) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctionsByStatus partitions all auctions by derived status at call time
func (s *BiddingService) ListAuctionsByStatus(ctx context.Context) (StatusGrouped, error) {
	auctions, err := s.repo.ListAuctions(ctx)
	if err != nil {
		return StatusGrouped{}, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	now := time.Now().UTC()
	var grouped StatusGrouped
	for _, a := range auctions {
		switch a.StatusAt(now) {
		case model.StatusLive:
			grouped.Live = append(grouped.Live, a)
		case model.StatusUpcoming:
			grouped.Upcoming = append(grouped.Upcoming, a)
		default:
			grouped.Ended = append(grouped.Ended, a)
		}
	}
	return grouped, nil
}
