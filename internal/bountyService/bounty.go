package bounty

import (
	"fmt"
	"time"

	"playmarket/internal/auctionerrors"
	model "playmarket/internal/models"
	"playmarket/internal/repository"
	"playmarket/utils"
)

// BountyService handles bounty creation and claims. Claiming credits the
// reward to the claimant through the ledger's atomic claim operation.
type BountyService struct {
	repo repository.LedgerStore
	now  func() time.Time
}

// NewBountyService creates a new BountyService instance
func NewBountyService(repo repository.LedgerStore) *BountyService {
	return &BountyService{
		repo: repo,
		now:  time.Now,
	}
}

// CreateBounty registers a new bounty open for claims.
func (s *BountyService) CreateBounty(title, description string, reward int64, maxClaims int) (model.Bounty, error) {
	if title == "" {
		return model.Bounty{}, fmt.Errorf("service: %w - missing title", auctionerrors.ErrInvalidBid)
	}
	if reward <= 0 {
		return model.Bounty{}, fmt.Errorf("service: %w - reward must be positive", auctionerrors.ErrInvalidAmount)
	}
	if maxClaims <= 0 {
		return model.Bounty{}, fmt.Errorf("service: %w - max claims must be positive", auctionerrors.ErrInvalidAmount)
	}

	b := model.Bounty{
		BountyID:    utils.GenerateID(),
		Title:       title,
		Description: description,
		Reward:      reward,
		MaxClaims:   maxClaims,
		ClaimsLeft:  maxClaims,
		Status:      model.BountyOpen,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateBounty(b); err != nil {
		return model.Bounty{}, fmt.Errorf("service: failed to create bounty: %w", err)
	}
	return b, nil
}

// ListBounties returns all bounties.
func (s *BountyService) ListBounties() ([]model.Bounty, error) {
	bounties, err := s.repo.ListBounties()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bounties: %w", err)
	}
	return bounties, nil
}

// ClaimBounty claims a bounty for a user. The ledger decrements the claim
// budget, enforces one claim per user and credits the reward atomically.
func (s *BountyService) ClaimBounty(bountyID, userID string) (model.BountyClaim, error) {
	if bountyID == "" || userID == "" {
		return model.BountyClaim{}, fmt.Errorf("service: %w - missing bountyID or userID", auctionerrors.ErrInvalidBid)
	}

	claim, err := s.repo.RecordBountyClaim(bountyID, userID, s.now().UTC())
	if err != nil {
		return model.BountyClaim{}, fmt.Errorf("service: failed to claim bounty %s for user %s: %w", bountyID, userID, err)
	}
	return claim, nil
}

// ClaimedByUser returns every bounty claim a user has made.
func (s *BountyService) ClaimedByUser(userID string) ([]model.BountyClaim, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	claims, err := s.repo.ListClaimsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list claims for user %s: %w", userID, err)
	}
	return claims, nil
}
