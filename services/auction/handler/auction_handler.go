package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-engine/internal/auctionerrors"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/pricing"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount int64) (model.Bid, []events.ExecutedBid, error)
	GetBidsForAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetHighestBid(ctx context.Context, auctionID string) (model.Bid, error)
	CurrentAmount(ctx context.Context, auctionID string) (int64, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	ListAuctionsByStatus(ctx context.Context) (bidding.StatusGrouped, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, auctionID string) (model.AuctionResult, error)
	ResolveAllEnded(ctx context.Context) (int, error)
	Result(ctx context.Context, auctionID string) (model.AuctionResult, error)
}

type AuctionHandler struct {
	service  BiddingServiceInterface
	resolver ResolverInterface
}

func NewAuctionHandler(service BiddingServiceInterface, resolver ResolverInterface) *AuctionHandler {
	return &AuctionHandler{service: service, resolver: resolver}
}

// RecordBidHandler handles POST /bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, executed, err := h.service.PlaceBid(c.Request.Context(), req.AuctionID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"handler":    "RecordBidHandler",
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:       helpers.ToBidResponse(bid),
		ProxyBids: helpers.ToExecutedBidResponses(executed),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  req.BidderID,
		"amount":     bid.Amount,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	grouped, err := h.service.ListAuctionsByStatus(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	resp := helpers.AuctionListResponse{
		Live:     helpers.ToAuctionResponses(grouped.Live, now),
		Upcoming: helpers.ToAuctionResponses(grouped.Upcoming, now),
		Ended:    helpers.ToAuctionResponses(grouped.Ended, now),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), auction.ProductID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	current, err := h.service.CurrentAmount(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	bidCount := 0
	bids, err := h.service.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	bidCount = len(bids)

	resp := helpers.AuctionDetailResponse{
		Auction:        helpers.ToAuctionResponse(auction, time.Now().UTC()),
		Product:        product,
		CurrentAmount:  current,
		MinimumNextBid: pricing.MinimumBid(current),
		BidCount:       bidCount,
	}
	if result, err := h.resolver.Result(c.Request.Context(), auctionID); err == nil {
		converted := helpers.ToResultResponse(result)
		resp.Result = &converted
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction retrieved successfully")
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning. After
// resolution it reports the recorded result; while the auction runs it
// reports the current highest bid.
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	if result, err := h.resolver.Result(c.Request.Context(), auctionID); err == nil {
		utils.JSONResponse(c, http.StatusOK, helpers.ToResultResponse(result), "auction result retrieved successfully")
		return
	}

	bid, err := h.service.GetHighestBid(c.Request.Context(), auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
}

// ResolveAuctionsHandler handles POST /auctions/resolve
func (h *AuctionHandler) ResolveAuctionsHandler(c *gin.Context) {
	resolved, err := h.resolver.ResolveAllEnded(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ResolveAuctionsHandler: sweep failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ResolveSweepResponse{Resolved: resolved}, "resolution sweep completed")
	helpers.LogSuccess("ResolveAuctionsHandler", "resolution sweep completed", map[string]any{
		"resolved": resolved,
	})
}
