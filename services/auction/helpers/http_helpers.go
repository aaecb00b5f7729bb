package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrNoProxyBid):
		return http.StatusNotFound, "proxy bid not found"
	case errors.Is(err, auctionerrors.ErrResultNotFound):
		return http.StatusNotFound, "no result recorded for auction"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrProxyMaxTooLow):
		return http.StatusConflict, "maximum amount too low"
	case errors.Is(err, auctionerrors.ErrConsecutiveBid):
		return http.StatusConflict, "already the highest bidder"
	case errors.Is(err, auctionerrors.ErrSelfBidding):
		return http.StatusForbidden, "sellers cannot bid on their own auctions"
	case errors.Is(err, auctionerrors.ErrAuctionNotLive):
		return http.StatusConflict, "auction is not live"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrAuctionNotEnded):
		return http.StatusConflict, "auction has not ended yet"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a ledger bid to its wire form
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuctionResponse converts an auction to its wire form with the status
// derived at the given instant.
func ToAuctionResponse(auction model.Auction, now time.Time) AuctionResponse {
	return AuctionResponse{
		AuctionID: auction.AuctionID,
		ProductID: auction.ProductID,
		StartTime: auction.StartTime.UTC().Format(time.RFC3339),
		EndTime:   auction.EndTime.UTC().Format(time.RFC3339),
		Status:    string(auction.StatusAt(now)),
	}
}

// ToAuctionResponses converts a slice, never returning nil
func ToAuctionResponses(auctions []model.Auction, now time.Time) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, ToAuctionResponse(a, now))
	}
	return out
}

// ToExecutedBidResponses converts engine executions, never returning nil
func ToExecutedBidResponses(executed []events.ExecutedBid) []ExecutedBidResponse {
	out := make([]ExecutedBidResponse, 0, len(executed))
	for _, e := range executed {
		out = append(out, ExecutedBidResponse{BidderID: e.BidderID, Amount: e.Amount})
	}
	return out
}

// ToResultResponse converts a recorded outcome to its wire form
func ToResultResponse(result model.AuctionResult) ResultResponse {
	return ResultResponse{
		AuctionID:  result.AuctionID,
		WinnerID:   result.WinnerID,
		WinningBid: result.WinningBid,
		EndedAt:    result.EndedAt.UTC().Format(time.RFC3339),
	}
}
