package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	proxy "auction-engine/internal/proxyService"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"
)

type ProxyServiceInterface interface {
	SetProxyBid(ctx context.Context, bidderID, auctionID string, maxAmount int64) (model.ProxyBid, []events.ExecutedBid, error)
	GetStatus(ctx context.Context, bidderID, auctionID string) (proxy.Status, error)
	RemoveProxyBid(ctx context.Context, bidderID, auctionID string) error
	AllForBidder(ctx context.Context, bidderID string) ([]model.ProxyBid, error)
}

type ProxyHandler struct {
	service ProxyServiceInterface
}

func NewProxyHandler(service ProxyServiceInterface) *ProxyHandler {
	return &ProxyHandler{service: service}
}

// SetProxyBidHandler handles POST /proxy-bids
func (h *ProxyHandler) SetProxyBidHandler(c *gin.Context) {
	var req helpers.ProxyBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetProxyBidHandler", err)
		return
	}

	proxyBid, executed, err := h.service.SetProxyBid(c.Request.Context(), req.BidderID, req.AuctionID, req.MaxAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SetProxyBidHandler: failed to set proxy bid", map[string]any{
			"handler":    "SetProxyBidHandler",
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.ProxyBidResponse{
		ProxyBidID: proxyBid.ProxyBidID,
		AuctionID:  proxyBid.AuctionID,
		BidderID:   proxyBid.BidderID,
		MaxAmount:  proxyBid.MaxAmount,
		UpdatedAt:  proxyBid.UpdatedAt.UTC().Format(time.RFC3339),
		Executed:   helpers.ToExecutedBidResponses(executed),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "proxy bid registered successfully")
	helpers.LogSuccess("SetProxyBidHandler", "proxy bid registered successfully", map[string]any{
		"auction_id": req.AuctionID,
		"bidder_id":  req.BidderID,
		"max_amount": req.MaxAmount,
		"executed":   len(executed),
	})
}

// GetProxyBidsHandler handles GET /proxy-bids/:bidder_id
func (h *ProxyHandler) GetProxyBidsHandler(c *gin.Context) {
	bidderID := c.Param("bidder_id")

	proxies, err := h.service.AllForBidder(c.Request.Context(), bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProxyBidsHandler: error retrieving proxy bids", map[string]any{"bidder_id": bidderID, "error": err.Error()})
		return
	}

	if proxies == nil {
		proxies = []model.ProxyBid{}
	}

	utils.JSONResponse(c, http.StatusOK, proxies, "proxy bids retrieved successfully")
}

// GetProxyBidStatusHandler handles GET /proxy-bids/:bidder_id/:auction_id
func (h *ProxyHandler) GetProxyBidStatusHandler(c *gin.Context) {
	bidderID := c.Param("bidder_id")
	auctionID := c.Param("auction_id")

	status, err := h.service.GetStatus(c.Request.Context(), bidderID, auctionID)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProxyBidStatusHandler: error retrieving proxy status", map[string]any{
			"bidder_id":  bidderID,
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, status, "proxy bid status retrieved successfully")
}

// RemoveProxyBidHandler handles DELETE /proxy-bids/:bidder_id/:auction_id
func (h *ProxyHandler) RemoveProxyBidHandler(c *gin.Context) {
	bidderID := c.Param("bidder_id")
	auctionID := c.Param("auction_id")

	if err := h.service.RemoveProxyBid(c.Request.Context(), bidderID, auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveProxyBidHandler: error removing proxy bid", map[string]any{
			"bidder_id":  bidderID,
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"removed": true}, "proxy bid removed successfully")
	helpers.LogSuccess("RemoveProxyBidHandler", "proxy bid removed successfully", map[string]any{
		"bidder_id":  bidderID,
		"auction_id": auctionID,
	})
}
