package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/lifecycle"
	proxy "auction-engine/internal/proxyService"
	"auction-engine/internal/recommender"
	handler "auction-engine/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, proxyService *proxy.ProxyService, resolver *lifecycle.Resolver, engine *recommender.Engine) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(biddingService, resolver)
	proxyHandler := handler.NewProxyHandler(proxyService)
	recommendationHandler := handler.NewRecommendationHandler(engine)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("/resolve", auctionHandler.ResolveAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", auctionHandler.GetWinningBidHandler)
	}

	proxyBids := router.Group("/proxy-bids")
	{
		proxyBids.POST("", proxyHandler.SetProxyBidHandler)
		proxyBids.GET("/:bidder_id", proxyHandler.GetProxyBidsHandler)
		proxyBids.GET("/:bidder_id/:auction_id", proxyHandler.GetProxyBidStatusHandler)
		proxyBids.DELETE("/:bidder_id/:auction_id", proxyHandler.RemoveProxyBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/recommendations", recommendationHandler.GetRecommendationsHandler)
	}

	router.POST("/search", recommendationHandler.SearchHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
