package helpers

import "time"

// Request/Response DTOs
type TransferRequest struct {
	FromUserID string `json:"from_user_id" binding:"required"`
	ToUserID   string `json:"to_user_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

type RedeemRequest struct {
	Code   string `json:"code" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

type CreateRedeemCodeRequest struct {
	Code      string     `json:"code" binding:"required"`
	Amount    int64      `json:"amount" binding:"required,gt=0"`
	MaxUses   int        `json:"max_uses" binding:"required,gt=0"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type BalanceResponse struct {
	UserID    string `json:"user_id"`
	Available int64  `json:"available"`
}
