package models

import "time"

// AuctionStatus is the derived lifecycle state of an auction. It is never
// stored; callers recompute it from the auction timestamps on every read.
type AuctionStatus string

const (
	StatusUpcoming AuctionStatus = "upcoming"
	StatusLive     AuctionStatus = "live"
	StatusEnded    AuctionStatus = "ended"
)

// User represents a participant in the marketplace
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "bidder" or "seller"
}

// Product represents an item offered for auction
type Product struct {
	ProductID    string    `json:"product_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Keywords     string    `json:"keywords"`
	Category     string    `json:"category"`
	Subcategory  string    `json:"subcategory"`
	SellerID     string    `json:"seller_id"`
	StartingBid  int64     `json:"starting_bid"`
	ReservePrice int64     `json:"reserve_price"` // 0 means no reserve
	CreatedAt    time.Time `json:"created_at"`
}

// Auction schedules a product for bidding between StartTime and EndTime.
// Invariant: EndTime > StartTime. Status is derived via StatusAt.
type Auction struct {
	AuctionID string    `json:"auction_id"`
	ProductID string    `json:"product_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusAt resolves the auction status at the given instant using the
// half-open interval [StartTime, EndTime): now == StartTime is live,
// now == EndTime is ended. All comparisons are in UTC.
func (a Auction) StatusAt(now time.Time) AuctionStatus {
	now = now.UTC()
	if now.Before(a.StartTime) {
		return StatusUpcoming
	}
	if now.Before(a.EndTime) {
		return StatusLive
	}
	return StatusEnded
}

// Bid is one accepted bid in an auction's append-only ledger.
// Amounts are whole currency units; bids are immutable once recorded.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ProxyBid is a bidder's standing maximum for one auction. At most one
// exists per (bidder, auction) pair; setting again overwrites.
type ProxyBid struct {
	ProxyBidID string    `json:"proxy_bid_id"`
	BidderID   string    `json:"bidder_id"`
	AuctionID  string    `json:"auction_id"`
	ProductID  string    `json:"product_id"`
	MaxAmount  int64     `json:"max_amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AuctionResult is the immutable outcome of an ended auction. At most one
// exists per auction, created exactly once by the resolver. WinnerID is
// empty when no winner was declared (no bids, or reserve unmet); WinningBid
// still carries the highest amount for reporting in the reserve-unmet case.
type AuctionResult struct {
	ResultID   string    `json:"result_id"`
	AuctionID  string    `json:"auction_id"`
	WinnerID   string    `json:"winner_id"`
	WinningBid int64     `json:"winning_bid"`
	EndedAt    time.Time `json:"ended_at"`
}

// BidHistoryEntry is an aggregated counter per (user, product) pair, not a
// log. BidCount is incremented on every accepted bid; category, subcategory
// and seller are denormalized from the product for fast preference lookups.
type BidHistoryEntry struct {
	UserID      string    `json:"user_id"`
	ProductID   string    `json:"product_id"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	SellerID    string    `json:"seller_id"`
	BidCount    int       `json:"bid_count"`
	LastBidTime time.Time `json:"last_bid_time"`
}

// SearchHistoryEntry is one raw search-log record, consumed only by the
// recommendation engine.
type SearchHistoryEntry struct {
	SearchID   string    `json:"search_id"`
	UserID     string    `json:"user_id"`
	Query      string    `json:"query"`
	SearchType string    `json:"search_type"`
	CreatedAt  time.Time `json:"created_at"`
}
