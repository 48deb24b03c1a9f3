package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	auction "playmarket/internal/auctionService"
	bounty "playmarket/internal/bountyService"
	"playmarket/internal/config"
	"playmarket/internal/fanout"
	"playmarket/internal/repository"
	"playmarket/internal/server"
	"playmarket/internal/sweeper"
	wallet "playmarket/internal/walletService"
	"playmarket/utils"
)

func main() {
	// Local overrides from .env, if present. Real config comes from viper.
	_ = godotenv.Load()

	cfg, err := config.Load("./config")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ledger := repository.NewMemoryLedgerWithStartingBalance(cfg.Wallet.StartingBalance)
	broker := fanout.NewBroker(cfg.Fanout.SubscriberBuffer)

	auctionSvc := auction.NewAuctionService(ledger, broker, cfg.Auction)
	walletSvc := wallet.NewWalletService(ledger)
	bountySvc := bounty.NewBountyService(ledger)

	sweep := sweeper.New(auctionSvc, cfg.Auction.SweepInterval)
	if err := sweep.Start(); err != nil {
		utils.Fatal("Failed to start sweeper", map[string]any{"error": err.Error()})
	}
	defer sweep.Stop()

	router := server.SetupRouter(cfg, auctionSvc, walletSvc, bountySvc, broker)

	addr := cfg.Server.Addr()
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
