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

// MapErrorToHTTP maps bounty domain errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrBountyNotFound):
		return http.StatusNotFound, "bounty not found"
	case errors.Is(err, auctionerrors.ErrBountyExhausted):
		return http.StatusConflict, "bounty has no claims left"
	case errors.Is(err, auctionerrors.ErrBountyClosed):
		return http.StatusConflict, "bounty is closed"
	case errors.Is(err, auctionerrors.ErrAlreadyClaimed):
		return http.StatusConflict, "bounty already claimed"
	case errors.Is(err, auctionerrors.ErrInvalidAmount), errors.Is(err, auctionerrors.ErrInvalidBid):
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

// ToBountyResponse converts a bounty model into its API shape
func ToBountyResponse(b model.Bounty) BountyResponse {
	return BountyResponse{
		BountyID:    b.BountyID,
		Title:       b.Title,
		Description: b.Description,
		Reward:      b.Reward,
		MaxClaims:   b.MaxClaims,
		ClaimsLeft:  b.ClaimsLeft,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToClaimResponse converts a bounty claim model into its API shape
func ToClaimResponse(c model.BountyClaim) BountyClaimResponse {
	return BountyClaimResponse{
		BountyID:  c.BountyID,
		UserID:    c.UserID,
		Reward:    c.Reward,
		ClaimedAt: c.ClaimedAt.UTC().Format(time.RFC3339),
	}
}
