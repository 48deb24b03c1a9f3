package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"playmarket/internal/auctionerrors"
	"playmarket/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps wallet domain errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrCodeNotFound):
		return http.StatusNotFound, "redeem code not found"
	case errors.Is(err, auctionerrors.ErrCodeExpired):
		return http.StatusConflict, "redeem code expired"
	case errors.Is(err, auctionerrors.ErrCodeExhausted):
		return http.StatusConflict, "redeem code has no uses left"
	case errors.Is(err, auctionerrors.ErrAlreadyRedeemed):
		return http.StatusConflict, "redeem code already used"
	case errors.Is(err, auctionerrors.ErrSelfTransfer):
		return http.StatusBadRequest, "cannot transfer to self"
	case errors.Is(err, auctionerrors.ErrInsufficientBalance):
		return http.StatusPaymentRequired, "insufficient balance"
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
