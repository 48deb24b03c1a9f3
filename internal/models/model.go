package models

import "time"

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusUpcoming  AuctionStatus = "upcoming"
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCancelled AuctionStatus = "cancelled"
)

// Auction represents a timed auction listing.
// CurrentHighestBid is nil until the first bid is accepted.
type Auction struct {
	AuctionID         string        `json:"auction_id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	MinimumBid        int64         `json:"minimum_bid"`
	CurrentHighestBid *int64        `json:"current_highest_bid"`
	HighestBidderID   string        `json:"highest_bidder_id,omitempty"`
	StartsAt          time.Time     `json:"starts_at"`
	EndsAt            time.Time     `json:"ends_at"`
	Status            AuctionStatus `json:"status"`
	BidCount          int64         `json:"bid_count"`
	Settled           bool          `json:"settled"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Bid represents a user's accepted bid on an auction. Bids are append-only.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// BidState is the auction-side mutation applied atomically when a bid commits.
type BidState struct {
	CurrentHighestBid int64
	HighestBidderID   string
	EndsAt            time.Time
}

// BidResult is the committed outcome of PlaceBid, handed to the fanout.
type BidResult struct {
	Bid               Bid       `json:"bid"`
	CurrentHighestBid int64     `json:"current_highest_bid"`
	BidCount          int64     `json:"bid_count"`
	EndsAt            time.Time `json:"ends_at"`
	Extended          bool      `json:"extended"`
}

// Balance is a user's coin balance. It never goes negative.
type Balance struct {
	UserID    string `json:"user_id"`
	Available int64  `json:"available"`
}

// LeaderboardEntry is a per-user bid summary derived from the bid ledger.
type LeaderboardEntry struct {
	UserID        string    `json:"user_id"`
	HighestBid    int64     `json:"highest_bid"`
	BidCount      int64     `json:"bid_count"`
	FirstAtAmount time.Time `json:"first_at_amount"`
}

// EventType classifies auction events pushed to observers.
type EventType string

const (
	EventBidAccepted  EventType = "bid_accepted"
	EventAuctionEnded EventType = "auction_ended"
)

// Terminal reasons carried on auction_ended events.
const (
	EndReasonExpired   = "expired"
	EndReasonEarlyEnd  = "early_end"
	EndReasonCancelled = "cancelled"
)

// AuctionEvent is the post-commit payload delivered to auction observers.
// Seq equals the auction's bid count at commit time and is monotonic per auction.
type AuctionEvent struct {
	Type              EventType  `json:"type"`
	AuctionID         string     `json:"auction_id"`
	Seq               int64      `json:"seq"`
	Bid               *Bid       `json:"bid,omitempty"`
	CurrentHighestBid *int64     `json:"current_highest_bid,omitempty"`
	BidCount          int64      `json:"bid_count,omitempty"`
	EndsAt            *time.Time `json:"ends_at,omitempty"`
	Extended          bool       `json:"extended,omitempty"`
	WinnerID          string     `json:"winner_id,omitempty"`
	WinningAmount     *int64     `json:"winning_amount,omitempty"`
	Reason            string     `json:"reason,omitempty"`
}

// BountyStatus is the lifecycle state of a bounty.
type BountyStatus string

const (
	BountyOpen      BountyStatus = "open"
	BountyExhausted BountyStatus = "exhausted"
	BountyClosed    BountyStatus = "closed"
)

// Bounty is a task with a coin reward claimable a limited number of times.
type Bounty struct {
	BountyID    string       `json:"bounty_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Reward      int64        `json:"reward"`
	MaxClaims   int          `json:"max_claims"`
	ClaimsLeft  int          `json:"claims_left"`
	Status      BountyStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}

// BountyClaim records a user claiming a bounty. One claim per user per bounty.
type BountyClaim struct {
	BountyID  string    `json:"bounty_id"`
	UserID    string    `json:"user_id"`
	Reward    int64     `json:"reward"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// RedeemCode is a coin voucher redeemable once per user, up to MaxUses total.
// A zero ExpiresAt means the code never expires.
type RedeemCode struct {
	Code      string    `json:"code"`
	Amount    int64     `json:"amount"`
	MaxUses   int       `json:"max_uses"`
	Uses      int       `json:"uses"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
