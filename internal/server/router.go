package server

import (
	"github.com/the-auction-games/auction-api/internal/metrics"
	handler "github.com/the-auction-games/auction-api/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface, offerEngine handler.OfferEngineInterface, collector *metrics.Collector) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request with an id
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware)
	router.Use(StatusRecorderMiddleware(collector)) // count response statuses

	auctionHandler := handler.NewAuctionHandler(auctionService, offerEngine)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.GetAuctionsHandler)
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.PUT("", auctionHandler.UpdateAuctionHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionByIDHandler)
		auctions.DELETE("/:id", auctionHandler.DeleteAuctionHandler)
		auctions.GET("/:id/bids", auctionHandler.GetBidsHandler)
		auctions.POST("/:id/bids", auctionHandler.SubmitBidHandler)
		auctions.POST("/:id/purchase", auctionHandler.SubmitPurchaseHandler)
	}

	router.GET("/metrics", gin.WrapH(collector.Handler()))

	return router
}
