package helpers

// Request/Response DTOs
type CreateBountyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Reward      int64  `json:"reward" binding:"required,gt=0"`
	MaxClaims   int    `json:"max_claims" binding:"required,gt=0"`
}

type ClaimBountyRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type BountyResponse struct {
	BountyID    string `json:"bounty_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int64  `json:"reward"`
	MaxClaims   int    `json:"max_claims"`
	ClaimsLeft  int    `json:"claims_left"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type BountyClaimResponse struct {
	BountyID  string `json:"bounty_id"`
	UserID    string `json:"user_id"`
	Reward    int64  `json:"reward"`
	ClaimedAt string `json:"claimed_at"`
}
