package auction

import (
	"fmt"
	"sort"

	"playmarket/internal/auctionerrors"
	model "playmarket/internal/models"
)

// GetLeaderboard aggregates the bid ledger for an auction into a ranked
// per-user summary: each user's highest bid and total bid count, sorted by
// highest bid descending, truncated to topN. Equal highest bids (possible
// only through legacy or externally edited data) are ordered by whoever
// reached that amount first. Pure read, safe to call concurrently with bidding.
func (s *AuctionService) GetLeaderboard(auctionID string, topN int) ([]model.LeaderboardEntry, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsForAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to build leaderboard for auction %s: %w", auctionID, err)
	}

	byUser := make(map[string]*model.LeaderboardEntry)
	for _, b := range bids {
		entry, ok := byUser[b.UserID]
		if !ok {
			byUser[b.UserID] = &model.LeaderboardEntry{
				UserID:        b.UserID,
				HighestBid:    b.Amount,
				BidCount:      1,
				FirstAtAmount: b.CreatedAt,
			}
			continue
		}
		entry.BidCount++
		if b.Amount > entry.HighestBid {
			entry.HighestBid = b.Amount
			entry.FirstAtAmount = b.CreatedAt
		}
	}

	entries := make([]model.LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].HighestBid != entries[j].HighestBid {
			return entries[i].HighestBid > entries[j].HighestBid
		}
		return entries[i].FirstAtAmount.Before(entries[j].FirstAtAmount)
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries, nil
}
