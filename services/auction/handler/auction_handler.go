package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	model "github.com/the-auction-games/auction-api/internal/models"
	engine "github.com/the-auction-games/auction-api/internal/offerEngine"
	"github.com/the-auction-games/auction-api/services/auction/helpers"
	"github.com/the-auction-games/auction-api/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

type AuctionServiceInterface interface {
	GetAllAuctions(ctx context.Context) []model.Auction
	GetAuctionByID(ctx context.Context, id string) (model.Auction, error)
	GetBidsForAuction(ctx context.Context, id string) ([]model.Offer, error)
	CreateAuction(ctx context.Context, auction model.Auction) error
	UpdateAuction(ctx context.Context, auction model.Auction) error
	DeleteAuction(ctx context.Context, id string) error
}

type OfferEngineInterface interface {
	SubmitBid(ctx context.Context, auctionID string, offer model.Offer) engine.Result
	SubmitPurchase(ctx context.Context, auctionID string, offer model.Offer) engine.Result
}

type AuctionHandler struct {
	service AuctionServiceInterface
	engine  OfferEngineInterface
}

func NewAuctionHandler(service AuctionServiceInterface, offerEngine OfferEngineInterface) *AuctionHandler {
	return &AuctionHandler{service: service, engine: offerEngine}
}

// GetAuctionsHandler handles GET /auctions
func (h *AuctionHandler) GetAuctionsHandler(c *gin.Context) {
	auctions := h.service.GetAllAuctions(c.Request.Context())

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionByIDHandler handles GET /auctions/:id
func (h *AuctionHandler) GetAuctionByIDHandler(c *gin.Context) {
	id := c.Param("id")
	auction, err := h.service.GetAuctionByID(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionByIDHandler: error retrieving auction", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionByIDHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auction.ID,
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction := req.ToModel()
	if auction.CreationTimestamp == 0 {
		auction.CreationTimestamp = time.Now().UTC().UnixMilli()
	}

	if err := h.service.CreateAuction(c.Request.Context(), auction); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"auction_id": auction.ID,
			"seller_id":  auction.SellerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.ID,
		"seller_id":  auction.SellerID,
	})
}

// UpdateAuctionHandler handles PUT /auctions
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	auction := req.ToModel()
	if err := h.service.UpdateAuction(c.Request.Context(), auction); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAuctionHandler: failed to update auction", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": auction.ID,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteAuction(c.Request.Context(), id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAuctionHandler: failed to delete auction", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": id,
	})
}

// GetBidsHandler handles GET /auctions/:id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	id := c.Param("id")
	bids, err := h.service.GetBidsForAuction(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: error retrieving bids", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": id,
		"count":      len(bids),
	})
}

// SubmitBidHandler handles POST /auctions/:id/bids
func (h *AuctionHandler) SubmitBidHandler(c *gin.Context) {
	h.submitOffer(c, "SubmitBidHandler", h.engine.SubmitBid)
}

// SubmitPurchaseHandler handles POST /auctions/:id/purchase
func (h *AuctionHandler) SubmitPurchaseHandler(c *gin.Context) {
	h.submitOffer(c, "SubmitPurchaseHandler", h.engine.SubmitPurchase)
}

func (h *AuctionHandler) submitOffer(c *gin.Context, handlerName string, submit func(context.Context, string, model.Offer) engine.Result) {
	id := c.Param("id")

	var req helpers.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	offer := model.Offer{
		UserID:            req.UserID,
		Price:             req.Price,
		CreationTimestamp: time.Now().UTC().UnixMilli(),
	}

	result := submit(c.Request.Context(), id, offer)
	status, message := helpers.MapResultToHTTP(result)
	if result != engine.ResultSuccess {
		utils.JSONError(c, status, fmt.Errorf("offer rejected: %s", result), message)
		utils.Warn(handlerName+": offer rejected", map[string]any{
			"auction_id": id,
			"user_id":    req.UserID,
			"price":      req.Price,
			"result":     result.String(),
		})
		return
	}

	utils.JSONResponse(c, status, offer, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"auction_id": id,
		"user_id":    offer.UserID,
		"price":      offer.Price,
	})
}
