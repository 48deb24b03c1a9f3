package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrNoBids             = errors.New("no bids found for auction")
	ErrVersionConflict    = errors.New("auction bid state changed since read")
	ErrBountyNotFound     = errors.New("bounty not found")
	ErrCodeNotFound       = errors.New("redeem code not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Business logic errors
var (
	ErrInvalidBid          = errors.New("invalid bid")
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBidConflict         = errors.New("bid rejected after contention retries")
	ErrAuctionNotStarted   = errors.New("auction has not started")
	ErrAuctionEnded        = errors.New("auction has ended")
	ErrAuctionCancelled    = errors.New("auction was cancelled")
	ErrInvalidTransition   = errors.New("invalid auction status transition")
	ErrInvalidAuction      = errors.New("invalid auction definition")
)

// Wallet and bounty errors
var (
	ErrSelfTransfer    = errors.New("cannot transfer to self")
	ErrBountyExhausted = errors.New("bounty has no claims left")
	ErrBountyClosed    = errors.New("bounty is closed")
	ErrAlreadyClaimed  = errors.New("bounty already claimed by user")
	ErrCodeExpired     = errors.New("redeem code expired")
	ErrCodeExhausted   = errors.New("redeem code has no uses left")
	ErrAlreadyRedeemed = errors.New("redeem code already used by user")
)

// BidTooLowError reports the exact minimum acceptable amount so the caller can retry.
type BidTooLowError struct {
	MinimumAcceptable int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low: minimum acceptable is %d", e.MinimumAcceptable)
}

func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }

// InsufficientBalanceError carries the bidder's current available balance.
type InsufficientBalanceError struct {
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %d available", e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }
