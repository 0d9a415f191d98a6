package models

import "time"

// Offer represents a priced, user-attributed proposal on an auction,
// either an ascending bid or a buy-it-now purchase.
type Offer struct {
	UserID            string  `json:"userId"`
	Price             float64 `json:"price"`
	CreationTimestamp int64   `json:"creationTimestamp"`
}

// Auction represents a single auction listing. Bids are kept in acceptance
// order; the last element is always the current highest bid. Purchase is
// non-nil once the listing has been closed by a buy-it-now offer.
//
// The JSON layout matches the records already persisted in the state store,
// so field names must not change casually. Timestamps are unix milliseconds.
type Auction struct {
	ID                  string  `json:"id"`
	SellerID            string  `json:"sellerId"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	StartBid            float64 `json:"startBid"`
	Bids                []Offer `json:"bids"`
	BinPrice            float64 `json:"binPrice"`
	Purchase            *Offer  `json:"purchase"`
	Base64Image         string  `json:"base64Image"`
	CreationTimestamp   int64   `json:"creationTimestamp"`
	ExpirationTimestamp int64   `json:"expirationTimestamp"`
}

// HighestBid returns the most recently accepted bid and whether one exists.
func (a *Auction) HighestBid() (Offer, bool) {
	if len(a.Bids) == 0 {
		return Offer{}, false
	}
	return a.Bids[len(a.Bids)-1], true
}

// ExpiredAt reports whether the auction is past its expiration at the given instant.
func (a *Auction) ExpiredAt(t time.Time) bool {
	return t.UnixMilli() >= a.ExpirationTimestamp
}

// Purchased reports whether the auction has been terminally closed by a buy-it-now offer.
func (a *Auction) Purchased() bool {
	return a.Purchase != nil
}
