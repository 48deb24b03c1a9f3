package server

import (
	auction "playmarket/internal/auctionService"
	bounty "playmarket/internal/bountyService"
	"playmarket/internal/config"
	"playmarket/internal/fanout"
	wallet "playmarket/internal/walletService"
	auctionhandler "playmarket/services/auction/handler"
	bountyhandler "playmarket/services/bounty/handler"
	wallethandler "playmarket/services/wallet/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	cfg *config.Config,
	auctionService *auction.AuctionService,
	walletService *wallet.WalletService,
	bountyService *bounty.BountyService,
	broker *fanout.Broker,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService, broker, cfg.Leaderboard.DefaultTop)
	walletHandler := wallethandler.NewWalletHandler(walletService)
	bountyHandler := bountyhandler.NewBountyHandler(bountyService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsHandler)
		auctions.GET("/:auction_id/leaderboard", auctionHandler.GetLeaderboardHandler)
		auctions.PATCH("/:auction_id/status", auctionHandler.SetStatusHandler)
		auctions.GET("/:auction_id/events", auctionHandler.StreamEventsHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/balance", walletHandler.GetBalanceHandler)
		users.GET("/:user_id/claimed-bounties", bountyHandler.ClaimedByUserHandler)
	}

	router.POST("/transfers", walletHandler.TransferHandler)
	router.POST("/redeem-codes", walletHandler.CreateRedeemCodeHandler)
	router.POST("/redeem", walletHandler.RedeemHandler)

	bounties := router.Group("/bounties")
	{
		bounties.GET("", bountyHandler.ListBountiesHandler)
		bounties.POST("", bountyHandler.CreateBountyHandler)
		bounties.POST("/:bounty_id/claims", bountyHandler.ClaimBountyHandler)
	}

	return router
}
