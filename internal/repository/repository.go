package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// AuctionDB defines the storage interface for the auction system. All
// mutation of bids, proxy bids and results goes through these operations;
// callers never reach into stored records directly.
type AuctionDB interface {
	// Auctions and products
	AddProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	AddAuction(ctx context.Context, auction model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)

	// Bid ledger (append-only)
	RecordBid(ctx context.Context, bid model.Bid) error
	GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetHighestBid(ctx context.Context, auctionID string) (model.Bid, error)

	// Proxy bid registry (at most one per bidder-auction pair)
	UpsertProxyBid(ctx context.Context, proxy model.ProxyBid) error
	GetProxyBid(ctx context.Context, bidderID, auctionID string) (model.ProxyBid, error)
	RemoveProxyBid(ctx context.Context, bidderID, auctionID string) error
	GetProxyBidsByAuction(ctx context.Context, auctionID string) ([]model.ProxyBid, error)
	GetProxyBidsByBidder(ctx context.Context, bidderID string) ([]model.ProxyBid, error)

	// Auction results (at most one per auction, ever)
	CreateResult(ctx context.Context, result model.AuctionResult) error
	GetResult(ctx context.Context, auctionID string) (model.AuctionResult, error)

	// Recommendation inputs
	IncrementBidHistory(ctx context.Context, entry model.BidHistoryEntry) error
	GetBidHistoryByUser(ctx context.Context, userID string) ([]model.BidHistoryEntry, error)
	RecordSearch(ctx context.Context, entry model.SearchHistoryEntry) error
	GetSearchHistoryByUser(ctx context.Context, userID string) ([]model.SearchHistoryEntry, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu         sync.RWMutex
	products   map[string]model.Product
	auctions   map[string]model.Auction
	bids       map[string][]model.Bid        // key: auctionID
	proxyBids  map[string]model.ProxyBid     // key: bidderID + "/" + auctionID
	results    map[string]model.AuctionResult // key: auctionID
	bidHistory map[string]model.BidHistoryEntry // key: userID + "/" + productID
	searches   map[string][]model.SearchHistoryEntry // key: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:   make(map[string]model.Product),
		auctions:   make(map[string]model.Auction),
		bids:       make(map[string][]model.Bid),
		proxyBids:  make(map[string]model.ProxyBid),
		results:    make(map[string]model.AuctionResult),
		bidHistory: make(map[string]model.BidHistoryEntry),
		searches:   make(map[string][]model.SearchHistoryEntry),
	}
}

func pairKey(a, b string) string {
	return a + "/" + b
}

// AddProduct stores a product
func (r *MemoryRepo) AddProduct(_ context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ProductID] = product
	return nil
}

// GetProduct returns a product by id
func (r *MemoryRepo) GetProduct(_ context.Context, productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return product, nil
}

// AddAuction stores an auction
func (r *MemoryRepo) AddAuction(_ context.Context, auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[auction.ProductID]; !ok {
		return fmt.Errorf("add auction %s: %w", auction.AuctionID, auctionerrors.ErrProductNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns an auction by id
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListAuctions returns all auctions ordered by creation time (newest first)
func (r *MemoryRepo) ListAuctions(_ context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool {
		if auctions[i].CreatedAt.Equal(auctions[j].CreatedAt) {
			return auctions[i].AuctionID < auctions[j].AuctionID
		}
		return auctions[i].CreatedAt.After(auctions[j].CreatedAt)
	})
	return auctions, nil
}

// RecordBid appends a bid to the auction's ledger
func (r *MemoryRepo) RecordBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return nil
}

// GetBidsByAuction returns all bids for an auction in insertion order
func (r *MemoryRepo) GetBidsByAuction(_ context.Context, auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetHighestBid returns the bid with the maximum amount for the auction.
// Ties are broken by earliest timestamp.
func (r *MemoryRepo) GetHighestBid(_ context.Context, auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > highest.Amount || (b.Amount == highest.Amount && b.CreatedAt.Before(highest.CreatedAt)) {
			highest = b
		}
	}
	return highest, nil
}

// UpsertProxyBid stores or overwrites the bidder's standing maximum for an auction
func (r *MemoryRepo) UpsertProxyBid(_ context.Context, proxy model.ProxyBid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(proxy.BidderID, proxy.AuctionID)
	if existing, ok := r.proxyBids[key]; ok {
		proxy.ProxyBidID = existing.ProxyBidID
		proxy.CreatedAt = existing.CreatedAt
	}
	r.proxyBids[key] = proxy
	return nil
}

// GetProxyBid returns the bidder's proxy bid for an auction, if any
func (r *MemoryRepo) GetProxyBid(_ context.Context, bidderID, auctionID string) (model.ProxyBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	proxy, ok := r.proxyBids[pairKey(bidderID, auctionID)]
	if !ok {
		return model.ProxyBid{}, fmt.Errorf("get proxy bid for bidder %s on auction %s: %w", bidderID, auctionID, auctionerrors.ErrNoProxyBid)
	}
	return proxy, nil
}

// RemoveProxyBid deletes the bidder's proxy bid for an auction
func (r *MemoryRepo) RemoveProxyBid(_ context.Context, bidderID, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(bidderID, auctionID)
	if _, ok := r.proxyBids[key]; !ok {
		return fmt.Errorf("remove proxy bid for bidder %s on auction %s: %w", bidderID, auctionID, auctionerrors.ErrNoProxyBid)
	}
	delete(r.proxyBids, key)
	return nil
}

// GetProxyBidsByAuction returns all standing maximums for an auction,
// ordered by max amount descending (ties by earliest creation).
func (r *MemoryRepo) GetProxyBidsByAuction(_ context.Context, auctionID string) ([]model.ProxyBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	proxies := make([]model.ProxyBid, 0)
	for _, p := range r.proxyBids {
		if p.AuctionID == auctionID {
			proxies = append(proxies, p)
		}
	}
	sort.Slice(proxies, func(i, j int) bool {
		if proxies[i].MaxAmount == proxies[j].MaxAmount {
			return proxies[i].CreatedAt.Before(proxies[j].CreatedAt)
		}
		return proxies[i].MaxAmount > proxies[j].MaxAmount
	})
	return proxies, nil
}

// GetProxyBidsByBidder returns all standing maximums held by one bidder
func (r *MemoryRepo) GetProxyBidsByBidder(_ context.Context, bidderID string) ([]model.ProxyBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	proxies := make([]model.ProxyBid, 0)
	for _, p := range r.proxyBids {
		if p.BidderID == bidderID {
			proxies = append(proxies, p)
		}
	}
	sort.Slice(proxies, func(i, j int) bool {
		return proxies[i].CreatedAt.Before(proxies[j].CreatedAt)
	})
	return proxies, nil
}

// CreateResult records the auction outcome. It fails with ErrResultExists
// if a result was already recorded, preserving the exactly-once invariant.
func (r *MemoryRepo) CreateResult(_ context.Context, result model.AuctionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[result.AuctionID]; ok {
		return fmt.Errorf("create result for auction %s: %w", result.AuctionID, auctionerrors.ErrResultExists)
	}
	if _, ok := r.auctions[result.AuctionID]; !ok {
		return fmt.Errorf("create result for auction %s: %w", result.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.results[result.AuctionID] = result
	return nil
}

// GetResult returns the recorded outcome for an auction, if any
func (r *MemoryRepo) GetResult(_ context.Context, auctionID string) (model.AuctionResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[auctionID]
	if !ok {
		return model.AuctionResult{}, fmt.Errorf("get result for auction %s: %w", auctionID, auctionerrors.ErrResultNotFound)
	}
	return result, nil
}

// IncrementBidHistory upserts the (user, product) aggregate: the count grows
// by the entry's BidCount (at least 1) and the last-bid time advances.
func (r *MemoryRepo) IncrementBidHistory(_ context.Context, entry model.BidHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.BidCount <= 0 {
		entry.BidCount = 1
	}

	key := pairKey(entry.UserID, entry.ProductID)
	if existing, ok := r.bidHistory[key]; ok {
		existing.BidCount += entry.BidCount
		existing.LastBidTime = entry.LastBidTime
		r.bidHistory[key] = existing
		return nil
	}
	r.bidHistory[key] = entry
	return nil
}

// GetBidHistoryByUser returns the user's per-product bid aggregates
func (r *MemoryRepo) GetBidHistoryByUser(_ context.Context, userID string) ([]model.BidHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]model.BidHistoryEntry, 0)
	for _, e := range r.bidHistory {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ProductID < entries[j].ProductID
	})
	return entries, nil
}

// RecordSearch appends a search-history entry
func (r *MemoryRepo) RecordSearch(_ context.Context, entry model.SearchHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches[entry.UserID] = append(r.searches[entry.UserID], entry)
	return nil
}

// GetSearchHistoryByUser returns the user's raw search log in insertion order
func (r *MemoryRepo) GetSearchHistoryByUser(_ context.Context, userID string) ([]model.SearchHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.SearchHistoryEntry(nil), r.searches[userID]...), nil
}
