package helpers

import (
	model "auction-engine/internal/models"
	"auction-engine/internal/recommender"
)

// Request DTOs
type PlaceBidRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
	BidderID  string `json:"bidder_id" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

type ProxyBidRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
	BidderID  string `json:"bidder_id" binding:"required"`
	MaxAmount int64  `json:"max_amount" binding:"required,gt=0"`
}

type SearchRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query" binding:"required"`
}

// Response DTOs
type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type ExecutedBidResponse struct {
	BidderID string `json:"bidder_id"`
	Amount   int64  `json:"amount"`
}

type PlaceBidResponse struct {
	Bid       BidResponse           `json:"bid"`
	ProxyBids []ExecutedBidResponse `json:"proxy_bids"`
}

type ProxyBidResponse struct {
	ProxyBidID string                `json:"proxy_bid_id"`
	AuctionID  string                `json:"auction_id"`
	BidderID   string                `json:"bidder_id"`
	MaxAmount  int64                 `json:"max_amount"`
	UpdatedAt  string                `json:"updated_at"`
	Executed   []ExecutedBidResponse `json:"executed"`
}

type AuctionResponse struct {
	AuctionID string `json:"auction_id"`
	ProductID string `json:"product_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type AuctionListResponse struct {
	Live     []AuctionResponse `json:"live"`
	Upcoming []AuctionResponse `json:"upcoming"`
	Ended    []AuctionResponse `json:"ended"`
}

type AuctionDetailResponse struct {
	Auction        AuctionResponse `json:"auction"`
	Product        model.Product   `json:"product"`
	CurrentAmount  int64           `json:"current_amount"`
	MinimumNextBid int64           `json:"minimum_next_bid"`
	BidCount       int             `json:"bid_count"`
	Result         *ResultResponse `json:"result,omitempty"`
}

type ResultResponse struct {
	AuctionID  string `json:"auction_id"`
	WinnerID   string `json:"winner_id"`
	WinningBid int64  `json:"winning_bid"`
	EndedAt    string `json:"ended_at"`
}

type ResolveSweepResponse struct {
	Resolved int `json:"resolved"`
}

type RecommendationListResponse struct {
	Recommendations []recommender.Recommendation `json:"recommendations"`
}

type SearchResponse struct {
	Results []recommender.SearchResult `json:"results"`
}
