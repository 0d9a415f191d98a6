package helpers

import (
	model "github.com/the-auction-games/auction-api/internal/models"
)

// Request DTOs

// OfferRequest is the payload for bid and purchase submissions. The creation
// timestamp is stamped server-side, not taken from the client.
type OfferRequest struct {
	UserID string  `json:"userId" binding:"required"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

// AuctionRequest is the payload for auction creation and updates.
type AuctionRequest struct {
	ID                  string        `json:"id" binding:"required"`
	SellerID            string        `json:"sellerId" binding:"required"`
	Title               string        `json:"title" binding:"required"`
	Description         string        `json:"description"`
	StartBid            float64       `json:"startBid" binding:"gte=0"`
	Bids                []model.Offer `json:"bids"`
	BinPrice            float64       `json:"binPrice" binding:"required,gt=0"`
	Purchase            *model.Offer  `json:"purchase"`
	Base64Image         string        `json:"base64Image"`
	CreationTimestamp   int64         `json:"creationTimestamp"`
	ExpirationTimestamp int64         `json:"expirationTimestamp" binding:"required"`
}

// ToModel converts the request into the persisted representation. A nil bid
// history becomes an empty list so stored records always carry the field.
func (r AuctionRequest) ToModel() model.Auction {
	bids := r.Bids
	if bids == nil {
		bids = []model.Offer{}
	}
	return model.Auction{
		ID:                  r.ID,
		SellerID:            r.SellerID,
		Title:               r.Title,
		Description:         r.Description,
		StartBid:            r.StartBid,
		Bids:                bids,
		BinPrice:            r.BinPrice,
		Purchase:            r.Purchase,
		Base64Image:         r.Base64Image,
		CreationTimestamp:   r.CreationTimestamp,
		ExpirationTimestamp: r.ExpirationTimestamp,
	}
}
