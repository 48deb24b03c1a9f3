package handler

import (
	"fmt"
	"net/http"

	model "playmarket/internal/models"
	"playmarket/services/bounty/helpers"
	"playmarket/utils"

	"github.com/gin-gonic/gin"
)

type BountyServiceInterface interface {
	CreateBounty(title, description string, reward int64, maxClaims int) (model.Bounty, error)
	ListBounties() ([]model.Bounty, error)
	ClaimBounty(bountyID, userID string) (model.BountyClaim, error)
	ClaimedByUser(userID string) ([]model.BountyClaim, error)
}

type BountyHandler struct {
	service BountyServiceInterface
}

func NewBountyHandler(service BountyServiceInterface) *BountyHandler {
	return &BountyHandler{service: service}
}

// CreateBountyHandler handles POST /bounties
func (h *BountyHandler) CreateBountyHandler(c *gin.Context) {
	var req helpers.CreateBountyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBountyHandler", err)
		return
	}

	b, err := h.service.CreateBounty(req.Title, req.Description, req.Reward, req.MaxClaims)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateBountyHandler: failed to create bounty", map[string]any{
			"handler": "CreateBountyHandler",
			"title":   req.Title,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBountyResponse(b), "bounty created successfully")
	helpers.LogSuccess("CreateBountyHandler", "bounty created successfully", map[string]any{
		"bounty_id":  b.BountyID,
		"title":      b.Title,
		"reward":     b.Reward,
		"max_claims": b.MaxClaims,
	})
}

// ListBountiesHandler handles GET /bounties
func (h *BountyHandler) ListBountiesHandler(c *gin.Context) {
	bounties, err := h.service.ListBounties()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBountiesHandler: error listing bounties", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.BountyResponse, 0, len(bounties))
	for _, b := range bounties {
		resp = append(resp, helpers.ToBountyResponse(b))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bounties retrieved successfully")
}

// ClaimBountyHandler handles POST /bounties/:bounty_id/claims
func (h *BountyHandler) ClaimBountyHandler(c *gin.Context) {
	bountyID := c.Param("bounty_id")

	var req helpers.ClaimBountyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ClaimBountyHandler", err)
		return
	}

	claim, err := h.service.ClaimBounty(bountyID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClaimBountyHandler: failed to claim bounty", map[string]any{
			"bounty_id": bountyID,
			"user_id":   req.UserID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToClaimResponse(claim), "bounty claimed successfully")
	helpers.LogSuccess("ClaimBountyHandler", "bounty claimed successfully", map[string]any{
		"bounty_id": bountyID,
		"user_id":   req.UserID,
		"reward":    claim.Reward,
	})
}

// ClaimedByUserHandler handles GET /users/:user_id/claimed-bounties
func (h *BountyHandler) ClaimedByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	claims, err := h.service.ClaimedByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClaimedByUserHandler: error retrieving claims", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BountyClaimResponse, 0, len(claims))
	for _, claim := range claims {
		resp = append(resp, helpers.ToClaimResponse(claim))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "claimed bounties retrieved successfully")
}
