package auction

import (
	"context"
	"errors"
	"fmt"

	"github.com/the-auction-games/auction-api/internal/auctionerrors"
	model "github.com/the-auction-games/auction-api/internal/models"
	"github.com/the-auction-games/auction-api/internal/repository"
	"github.com/the-auction-games/auction-api/utils"
)

// AuctionService provides auction CRUD and read-only projections over the
// state store. Offer submission lives in the offer engine, not here.
type AuctionService struct {
	store repository.AuctionStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore) *AuctionService {
	return &AuctionService{
		store: store,
	}
}

// GetAllAuctions returns every stored auction. It never fails observably: on
// a repository error it logs and returns an empty list.
func (s *AuctionService) GetAllAuctions(ctx context.Context) []model.Auction {
	auctions, err := s.store.ListAuctions(ctx)
	if err != nil {
		utils.Error("service: failed to list auctions", map[string]any{"error": err.Error()})
		return []model.Auction{}
	}
	return auctions
}

// GetAuctionByID returns the auction with the given id.
func (s *AuctionService) GetAuctionByID(ctx context.Context, id string) (model.Auction, error) {
	if id == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.store.GetAuction(ctx, id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}
	return auction, nil
}

// GetBidsForAuction returns the auction's bid history. A missing auction is
// distinct from an auction with zero bids, which yields an empty list.
func (s *AuctionService) GetBidsForAuction(ctx context.Context, id string) ([]model.Offer, error) {
	auction, err := s.GetAuctionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if auction.Bids == nil {
		return []model.Offer{}, nil
	}
	return auction.Bids, nil
}

// CreateAuction validates and stores a new auction. Ids are client-supplied;
// a collision fails with ErrAuctionExists.
func (s *AuctionService) CreateAuction(ctx context.Context, auction model.Auction) error {
	if err := validateAuction(auction); err != nil {
		return err
	}

	if err := s.store.CreateAuction(ctx, auction); err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionExists) {
			return err
		}
		return fmt.Errorf("service: failed to create auction %s: %w", auction.ID, err)
	}
	return nil
}

// UpdateAuction overwrites an existing auction record.
func (s *AuctionService) UpdateAuction(ctx context.Context, auction model.Auction) error {
	if err := validateAuction(auction); err != nil {
		return err
	}

	if err := s.store.UpdateAuction(ctx, auction); err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return err
		}
		return fmt.Errorf("service: failed to update auction %s: %w", auction.ID, err)
	}
	return nil
}

// DeleteAuction removes an auction by id. Expired auctions are never removed
// automatically; deletion is always an explicit request.
func (s *AuctionService) DeleteAuction(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	if err := s.store.DeleteAuction(ctx, id); err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return err
		}
		return fmt.Errorf("service: failed to delete auction %s: %w", id, err)
	}
	return nil
}

// validateAuction checks the field-level invariants for stored auctions.
func validateAuction(auction model.Auction) error {
	switch {
	case auction.ID == "":
		return fmt.Errorf("service: %w - missing auction ID", auctionerrors.ErrInvalidAuction)
	case auction.SellerID == "":
		return fmt.Errorf("service: %w - missing seller ID", auctionerrors.ErrInvalidAuction)
	case auction.StartBid < 0:
		return fmt.Errorf("service: %w - negative start bid", auctionerrors.ErrInvalidAuction)
	case auction.BinPrice <= auction.StartBid:
		return fmt.Errorf("service: %w - BIN price must exceed start bid", auctionerrors.ErrInvalidAuction)
	case auction.ExpirationTimestamp <= auction.CreationTimestamp:
		return fmt.Errorf("service: %w - expiration must be after creation", auctionerrors.ErrInvalidAuction)
	}
	return nil
}
