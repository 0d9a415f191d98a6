package main

import (
	"net/http"

	auction "github.com/the-auction-games/auction-api/internal/auctionService"
	"github.com/the-auction-games/auction-api/internal/config"
	"github.com/the-auction-games/auction-api/internal/metrics"
	engine "github.com/the-auction-games/auction-api/internal/offerEngine"
	"github.com/the-auction-games/auction-api/internal/repository"
	"github.com/the-auction-games/auction-api/internal/server"
	"github.com/the-auction-games/auction-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}

	collector := metrics.NewCollector()

	repo := repository.NewStateStoreRepo(
		&http.Client{Timeout: cfg.State.Timeout},
		cfg.State.BaseURL,
		cfg.State.StoreName,
		cfg.State.Timeout,
		collector,
	)

	auctionSvc := auction.NewAuctionService(repo)
	offerEngine := engine.NewOfferEngine(repo, collector)

	router := server.SetupRouter(auctionSvc, offerEngine, collector)

	utils.Info("Starting auction server", map[string]any{
		"addr":        cfg.Addr(),
		"state_store": cfg.State.StoreName,
		"state_url":   cfg.State.BaseURL,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}
