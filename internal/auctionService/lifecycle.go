package auction

import (
	"time"

	model "playmarket/internal/models"
)

// EffectiveStatus derives an auction's real status from its timestamps.
// The persisted status field can be stale between sweeps, so every
// state-changing operation must go through this instead of trusting it.
// Terminal states (ended, cancelled) are sticky.
func EffectiveStatus(a model.Auction, now time.Time) model.AuctionStatus {
	switch a.Status {
	case model.StatusCancelled:
		return model.StatusCancelled
	case model.StatusEnded:
		return model.StatusEnded
	}
	if now.Before(a.StartsAt) {
		return model.StatusUpcoming
	}
	if now.Before(a.EndsAt) {
		return model.StatusActive
	}
	return model.StatusEnded
}

// IsBiddable reports whether a bid may be accepted on the auction at now.
// The explicit EndsAt check guards against a stale cached status.
func IsBiddable(a model.Auction, now time.Time) bool {
	return EffectiveStatus(a, now) == model.StatusActive && now.Before(a.EndsAt)
}

// ValidTransition reports whether an explicit admin transition is allowed.
// Time-driven transitions (upcoming→active, active→ended at EndsAt) happen
// through EffectiveStatus, not here. Terminal states never transition out.
func ValidTransition(from, to model.AuctionStatus) bool {
	switch from {
	case model.StatusUpcoming:
		return to == model.StatusCancelled
	case model.StatusActive:
		return to == model.StatusEnded || to == model.StatusCancelled
	default:
		return false
	}
}
