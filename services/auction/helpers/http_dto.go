package helpers

import "time"

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	MinimumBid  int64     `json:"minimum_bid" binding:"required,gt=0"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
}

type PlaceBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ended cancelled"`
}

type AuctionResponse struct {
	AuctionID         string `json:"auction_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	MinimumBid        int64  `json:"minimum_bid"`
	CurrentHighestBid *int64 `json:"current_highest_bid"`
	HighestBidderID   string `json:"highest_bidder_id,omitempty"`
	StartsAt          string `json:"starts_at"`
	EndsAt            string `json:"ends_at"`
	Status            string `json:"status"`
	BidCount          int64  `json:"bid_count"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	UserID    string `json:"user_id"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type BidResultResponse struct {
	Bid               BidResponse `json:"bid"`
	CurrentHighestBid int64       `json:"current_highest_bid"`
	BidCount          int64       `json:"bid_count"`
	EndsAt            string      `json:"ends_at"`
	Extended          bool        `json:"extended"`
}
