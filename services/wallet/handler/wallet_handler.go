package handler

import (
	"fmt"
	"net/http"
	"time"

	model "playmarket/internal/models"
	"playmarket/services/wallet/helpers"
	"playmarket/utils"

	"github.com/gin-gonic/gin"
)

type WalletServiceInterface interface {
	GetBalance(userID string) (model.Balance, error)
	Transfer(fromID, toID string, amount int64) (model.Balance, error)
	CreateRedeemCode(code string, amount int64, maxUses int, expiresAt time.Time) (model.RedeemCode, error)
	Redeem(code, userID string) (model.Balance, error)
}

type WalletHandler struct {
	service WalletServiceInterface
}

func NewWalletHandler(service WalletServiceInterface) *WalletHandler {
	return &WalletHandler{service: service}
}

// GetBalanceHandler handles GET /users/:user_id/balance
func (h *WalletHandler) GetBalanceHandler(c *gin.Context) {
	userID := c.Param("user_id")
	balance, err := h.service.GetBalance(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBalanceHandler: error retrieving balance", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := helpers.BalanceResponse{UserID: balance.UserID, Available: balance.Available}
	utils.JSONResponse(c, http.StatusOK, resp, "balance retrieved successfully")
}

// TransferHandler handles POST /transfers
func (h *WalletHandler) TransferHandler(c *gin.Context) {
	var req helpers.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TransferHandler", err)
		return
	}

	balance, err := h.service.Transfer(req.FromUserID, req.ToUserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("TransferHandler: failed to transfer", map[string]any{
			"handler":      "TransferHandler",
			"from_user_id": req.FromUserID,
			"to_user_id":   req.ToUserID,
			"amount":       req.Amount,
			"error":        err.Error(),
		})
		return
	}

	resp := helpers.BalanceResponse{UserID: balance.UserID, Available: balance.Available}
	utils.JSONResponse(c, http.StatusOK, resp, "transfer completed successfully")
	helpers.LogSuccess("TransferHandler", "transfer completed successfully", map[string]any{
		"from_user_id": req.FromUserID,
		"to_user_id":   req.ToUserID,
		"amount":       req.Amount,
	})
}

// CreateRedeemCodeHandler handles POST /redeem-codes
func (h *WalletHandler) CreateRedeemCodeHandler(c *gin.Context) {
	var req helpers.CreateRedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateRedeemCodeHandler", err)
		return
	}

	expiresAt := time.Time{}
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	}

	code, err := h.service.CreateRedeemCode(req.Code, req.Amount, req.MaxUses, expiresAt)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateRedeemCodeHandler: failed to create code", map[string]any{
			"handler": "CreateRedeemCodeHandler",
			"code":    req.Code,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, code, "redeem code created successfully")
	helpers.LogSuccess("CreateRedeemCodeHandler", "redeem code created successfully", map[string]any{
		"code":     code.Code,
		"amount":   code.Amount,
		"max_uses": code.MaxUses,
	})
}

// RedeemHandler handles POST /redeem
func (h *WalletHandler) RedeemHandler(c *gin.Context) {
	var req helpers.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RedeemHandler", err)
		return
	}

	balance, err := h.service.Redeem(req.Code, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RedeemHandler: failed to redeem code", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BalanceResponse{UserID: balance.UserID, Available: balance.Available}
	utils.JSONResponse(c, http.StatusOK, resp, "code redeemed successfully")
	helpers.LogSuccess("RedeemHandler", "code redeemed successfully", map[string]any{
		"user_id":     req.UserID,
		"new_balance": balance.Available,
	})
}
