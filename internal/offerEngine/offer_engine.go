package engine

import (
	"context"
	"errors"
	"time"

	"github.com/the-auction-games/auction-api/internal/auctionerrors"
	"github.com/the-auction-games/auction-api/internal/metrics"
	model "github.com/the-auction-games/auction-api/internal/models"
	"github.com/the-auction-games/auction-api/internal/repository"
	"github.com/the-auction-games/auction-api/utils"
)

// OfferEngine is the gatekeeper for every state transition on an auction
// beyond creation and deletion. It holds no mutable state of its own: each
// submission is a fresh fetch-validate-write sequence against the store.
//
// The sequence is not atomic. Two concurrent offers can both validate against
// the same stored state and the later write wins; the engine guarantees price
// monotonicity per validation, not linearizable ordering across callers.
type OfferEngine struct {
	store   repository.AuctionStore
	metrics metrics.Recorder
}

// NewOfferEngine creates a new OfferEngine instance
func NewOfferEngine(store repository.AuctionStore, rec metrics.Recorder) *OfferEngine {
	return &OfferEngine{
		store:   store,
		metrics: rec,
	}
}

// SubmitBid validates an ascending bid against the current auction state and
// appends it to the bid history on success.
func (e *OfferEngine) SubmitBid(ctx context.Context, auctionID string, offer model.Offer) Result {
	result := e.submitBid(ctx, auctionID, offer)
	e.metrics.RecordOfferOutcome("bid", result.String())
	return result
}

func (e *OfferEngine) submitBid(ctx context.Context, auctionID string, offer model.Offer) Result {
	auction, result := e.eligibleAuction(ctx, auctionID)
	if result != ResultSuccess {
		return result
	}

	if offer.Price < auction.StartBid {
		return ResultTooLow
	}

	// A bid at or above the instant-buy price must go through the
	// purchase path instead of accumulating as a bid.
	if offer.Price >= auction.BinPrice {
		return ResultTooHigh
	}

	if last, ok := auction.HighestBid(); ok && offer.Price <= last.Price {
		return ResultTooLow
	}

	auction.Bids = append(auction.Bids, offer)
	if err := e.store.UpdateAuction(ctx, auction); err != nil {
		utils.Error("engine: failed to store bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    offer.UserID,
			"error":      err.Error(),
		})
		return ResultServerError
	}
	return ResultSuccess
}

// SubmitPurchase validates a buy-it-now offer and terminally closes the
// auction on success. The offer price must equal the BIN price exactly.
func (e *OfferEngine) SubmitPurchase(ctx context.Context, auctionID string, offer model.Offer) Result {
	result := e.submitPurchase(ctx, auctionID, offer)
	e.metrics.RecordOfferOutcome("purchase", result.String())
	return result
}

func (e *OfferEngine) submitPurchase(ctx context.Context, auctionID string, offer model.Offer) Result {
	auction, result := e.eligibleAuction(ctx, auctionID)
	if result != ResultSuccess {
		return result
	}

	if offer.Price < auction.BinPrice {
		return ResultTooLow
	}
	if offer.Price > auction.BinPrice {
		return ResultTooHigh
	}

	auction.Purchase = &offer
	if err := e.store.UpdateAuction(ctx, auction); err != nil {
		utils.Error("engine: failed to store purchase", map[string]any{
			"auction_id": auctionID,
			"user_id":    offer.UserID,
			"error":      err.Error(),
		})
		return ResultServerError
	}
	return ResultSuccess
}

// eligibleAuction fetches the auction and applies the shared eligibility
// gate. Existence, expiry and purchased-state are checked strictly before any
// price logic so a closed auction rejects every offer with the same reason.
func (e *OfferEngine) eligibleAuction(ctx context.Context, auctionID string) (model.Auction, Result) {
	auction, err := e.store.GetAuction(ctx, auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return model.Auction{}, ResultNotFound
		}
		utils.Error("engine: failed to fetch auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return model.Auction{}, ResultServerError
	}

	if auction.ExpiredAt(time.Now()) {
		return model.Auction{}, ResultExpired
	}
	if auction.Purchased() {
		return model.Auction{}, ResultAlreadyPurchased
	}
	return auction, ResultSuccess
}
