package main

import (
	"context"
	"fmt"
	"os"

	"auction-engine/internal/auctionlock"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/events"
	"auction-engine/internal/lifecycle"
	proxy "auction-engine/internal/proxyService"
	"auction-engine/internal/recommender"
	"auction-engine/internal/repository"
	"auction-engine/internal/repository/sqlite"
	"auction-engine/internal/server"
	"auction-engine/pkg/config"
	"auction-engine/utils"
)

func main() {
	cfg := config.Load()

	repo, cleanup := openRepository(cfg)
	defer cleanup()

	locks := auctionlock.New()
	broadcaster := events.NewBroadcaster()

	proxySvc := proxy.NewProxyService(repo, locks, broadcaster)
	biddingSvc := bidding.NewBiddingService(repo, locks, proxySvc, broadcaster)
	resolver := lifecycle.NewResolver(repo, locks, broadcaster)
	engine := recommender.NewEngine(repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := lifecycle.NewScheduler(repo, resolver, proxySvc, broadcaster, cfg.SchedulerInterval)
	go scheduler.Start(ctx)

	router := server.SetupRouter(biddingSvc, proxySvc, resolver, engine)

	addr := ":" + cfg.Port
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openRepository selects sqlite when DB_PATH is set, in-memory otherwise
func openRepository(cfg config.Config) (repository.AuctionDB, func()) {
	if cfg.DBPath == "" {
		utils.Info("using in-memory repository", nil)
		return repository.NewMemoryRepo(), func() {}
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		utils.Fatal("failed to open sqlite store", map[string]any{
			"db_path": cfg.DBPath,
			"error":   err.Error(),
		})
	}
	utils.Info("using sqlite repository", map[string]any{"db_path": cfg.DBPath})
	return store, func() {
		if err := store.Close(); err != nil {
			utils.Error("failed to close sqlite store", map[string]any{"error": err.Error()})
		}
	}
}
