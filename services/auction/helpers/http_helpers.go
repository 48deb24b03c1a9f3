package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"playmarket/internal/auctionerrors"
	model "playmarket/internal/models"
	"playmarket/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotStarted):
		return http.StatusConflict, "auction has not started yet"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has already ended"
	case errors.Is(err, auctionerrors.ErrAuctionCancelled):
		return http.StatusConflict, "auction was cancelled"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrBidConflict):
		return http.StatusConflict, "bid lost under contention, re-fetch and retry"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid status transition"
	case errors.Is(err, auctionerrors.ErrInsufficientBalance):
		return http.StatusPaymentRequired, "insufficient balance"
	case errors.Is(err, auctionerrors.ErrInvalidAmount),
		errors.Is(err, auctionerrors.ErrInvalidBid),
		errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToAuctionResponse converts an auction model into its API shape
func ToAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:         a.AuctionID,
		Title:             a.Title,
		Description:       a.Description,
		MinimumBid:        a.MinimumBid,
		CurrentHighestBid: a.CurrentHighestBid,
		HighestBidderID:   a.HighestBidderID,
		StartsAt:          a.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:            a.EndsAt.UTC().Format(time.RFC3339),
		Status:            string(a.Status),
		BidCount:          a.BidCount,
	}
}

// ToBidResponse converts a bid model into its API shape
func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		UserID:    b.UserID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResultResponse converts a committed bid result into its API shape
func ToBidResultResponse(res model.BidResult) BidResultResponse {
	return BidResultResponse{
		Bid:               ToBidResponse(res.Bid),
		CurrentHighestBid: res.CurrentHighestBid,
		BidCount:          res.BidCount,
		EndsAt:            res.EndsAt.UTC().Format(time.RFC3339),
		Extended:          res.Extended,
	}
}
