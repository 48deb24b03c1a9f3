package auction

import (
	"errors"
	"fmt"
	"time"

	"playmarket/internal/auctionerrors"
	"playmarket/internal/config"
	"playmarket/internal/fanout"
	"playmarket/internal/keylock"
	model "playmarket/internal/models"
	"playmarket/internal/repository"
	"playmarket/utils"
)

// AuctionService owns the auction lifecycle and the bid write path.
// All mutation of one auction's bid state goes through a per-auction lock
// plus the ledger's compare-and-swap, so concurrent bids on the same
// auction can never both commit against the same prior state.
type AuctionService struct {
	repo   repository.LedgerStore
	broker *fanout.Broker
	cfg    config.AuctionConfig
	locks  *keylock.KeyLock

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.LedgerStore, broker *fanout.Broker, cfg config.AuctionConfig) *AuctionService {
	return &AuctionService{
		repo:   repo,
		broker: broker,
		cfg:    cfg,
		locks:  keylock.New(),
		now:    time.Now,
	}
}

// CreateAuction registers a new auction. Status is derived from StartsAt.
func (s *AuctionService) CreateAuction(title, description string, minimumBid int64, startsAt, endsAt time.Time) (model.Auction, error) {
	if title == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing title", auctionerrors.ErrInvalidAuction)
	}
	if minimumBid <= 0 {
		return model.Auction{}, fmt.Errorf("service: %w - minimum bid must be positive", auctionerrors.ErrInvalidAuction)
	}
	if !startsAt.Before(endsAt) {
		return model.Auction{}, fmt.Errorf("service: %w - starts_at must precede ends_at", auctionerrors.ErrInvalidAuction)
	}

	now := s.now()
	status := model.StatusUpcoming
	if !now.Before(startsAt) {
		status = model.StatusActive
	}

	a := model.Auction{
		AuctionID:   utils.GenerateID(),
		Title:       title,
		Description: description,
		MinimumBid:  minimumBid,
		StartsAt:    startsAt.UTC(),
		EndsAt:      endsAt.UTC(),
		Status:      status,
		CreatedAt:   now.UTC(),
	}
	if err := s.repo.CreateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return a, nil
}

// GetAuction returns an auction with its status derived from the current
// time. The read does not persist anything, so two calls with no
// intervening writes return identical results.
func (s *AuctionService) GetAuction(auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	a.Status = EffectiveStatus(a, s.now())
	return a, nil
}

// ListAuctions returns all auctions with derived statuses.
func (s *AuctionService) ListAuctions() ([]model.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	now := s.now()
	for i := range auctions {
		auctions[i].Status = EffectiveStatus(auctions[i], now)
	}
	return auctions, nil
}

// GetBidsForAuction returns the auction's bid ledger in commit order.
func (s *AuctionService) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	bids, err := s.repo.GetBidsForAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// PlaceBid validates and commits a bid. On success the committed event is
// handed to the fanout; delivery never affects the commit. Under contention
// the compare-and-swap retries from a fresh read up to the configured
// budget, then fails with ErrBidConflict.
func (s *AuctionService) PlaceBid(auctionID, userID string, amount int64) (model.BidResult, error) {
	if auctionID == "" || userID == "" {
		return model.BidResult{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.BidResult{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidAmount)
	}

	s.locks.Lock(auctionID)
	defer s.locks.Unlock(auctionID)

	for attempt := 0; attempt <= s.cfg.MaxBidRetries; attempt++ {
		res, err := s.tryPlaceBid(auctionID, userID, amount)
		if errors.Is(err, auctionerrors.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return model.BidResult{}, err
		}
		s.publishBid(res)
		return res, nil
	}
	return model.BidResult{}, fmt.Errorf("service: bid on auction %s by user %s: %w", auctionID, userID, auctionerrors.ErrBidConflict)
}

// tryPlaceBid runs one validate-and-commit attempt against a fresh snapshot.
func (s *AuctionService) tryPlaceBid(auctionID, userID string, amount int64) (model.BidResult, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.BidResult{}, fmt.Errorf("service: failed to load auction for bid: %w", err)
	}

	now := s.now()
	if err := s.reconcileStatus(&a, now); err != nil {
		return model.BidResult{}, err
	}
	if !IsBiddable(a, now) {
		return model.BidResult{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, notActiveReason(a, now))
	}

	minAcceptable := a.MinimumBid
	if a.CurrentHighestBid != nil {
		minAcceptable = *a.CurrentHighestBid + s.cfg.MinIncrement
	}
	if amount < minAcceptable {
		return model.BidResult{}, fmt.Errorf("service: bid on auction %s: %w", auctionID, &auctionerrors.BidTooLowError{MinimumAcceptable: minAcceptable})
	}

	balance, err := s.repo.GetBalance(userID)
	if err != nil {
		return model.BidResult{}, fmt.Errorf("service: failed to check balance for user %s: %w", userID, err)
	}
	if balance < amount {
		return model.BidResult{}, fmt.Errorf("service: bid on auction %s by user %s: %w", auctionID, userID, &auctionerrors.InsufficientBalanceError{Available: balance})
	}

	// Anti-snipe: a bid landing inside the window pushes EndsAt out by the
	// configured extension, measured from the pre-bid EndsAt so repeated
	// extensions stack relative to the scheduled end.
	endsAt := a.EndsAt
	extended := false
	if now.After(a.EndsAt.Add(-s.cfg.SnipeWindow)) {
		endsAt = a.EndsAt.Add(s.cfg.SnipeExtension)
		extended = true
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now.UTC(),
	}
	next := model.BidState{
		CurrentHighestBid: amount,
		HighestBidderID:   userID,
		EndsAt:            endsAt,
	}
	if err := s.repo.CompareAndSwapBidState(auctionID, a.BidCount, next, bid); err != nil {
		if errors.Is(err, auctionerrors.ErrVersionConflict) {
			return model.BidResult{}, err
		}
		return model.BidResult{}, fmt.Errorf("service: failed to commit bid on auction %s: %w", auctionID, err)
	}

	return model.BidResult{
		Bid:               bid,
		CurrentHighestBid: amount,
		BidCount:          a.BidCount + 1,
		EndsAt:            endsAt,
		Extended:          extended,
	}, nil
}

// notActiveReason picks the caller-facing sub-reason for a non-biddable auction.
func notActiveReason(a model.Auction, now time.Time) error {
	switch EffectiveStatus(a, now) {
	case model.StatusUpcoming:
		return auctionerrors.ErrAuctionNotStarted
	case model.StatusCancelled:
		return auctionerrors.ErrAuctionCancelled
	default:
		return auctionerrors.ErrAuctionEnded
	}
}

// reconcileStatus persists the time-derived status when the stored field has
// gone stale. Settlement of newly-ended auctions stays with the sweeper.
func (s *AuctionService) reconcileStatus(a *model.Auction, now time.Time) error {
	derived := EffectiveStatus(*a, now)
	if derived == a.Status {
		return nil
	}
	updated, err := s.repo.UpdateAuctionStatus(a.AuctionID, derived)
	if err != nil {
		return fmt.Errorf("service: failed to reconcile status for auction %s: %w", a.AuctionID, err)
	}
	*a = updated
	return nil
}

// SetAuctionStatus applies an explicit admin transition: early-end or cancel.
// Ending an auction settles the winner and emits the terminal event.
func (s *AuctionService) SetAuctionStatus(auctionID string, status model.AuctionStatus) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	s.locks.Lock(auctionID)
	defer s.locks.Unlock(auctionID)

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	now := s.now()
	from := EffectiveStatus(a, now)
	if !ValidTransition(from, status) {
		return model.Auction{}, fmt.Errorf("service: transition %s -> %s for auction %s: %w", from, status, auctionID, auctionerrors.ErrInvalidTransition)
	}

	updated, err := s.repo.UpdateAuctionStatus(auctionID, status)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to update status for auction %s: %w", auctionID, err)
	}

	switch status {
	case model.StatusEnded:
		s.settleAndPublish(updated, model.EndReasonEarlyEnd)
	case model.StatusCancelled:
		if err := s.repo.MarkAuctionSettled(auctionID); err == nil {
			updated.Settled = true
		}
		s.publishEnded(updated, model.EndReasonCancelled)
	}
	return updated, nil
}

// FinalizeExpired transitions due auctions: upcoming auctions whose window
// has opened become active, and expired unsettled auctions are ended,
// settled and announced. Called periodically by the sweeper.
func (s *AuctionService) FinalizeExpired() ([]model.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions for sweep: %w", err)
	}

	var finalized []model.Auction
	for _, a := range auctions {
		now := s.now()
		derived := EffectiveStatus(a, now)

		if a.Status == model.StatusUpcoming && derived == model.StatusActive {
			if _, err := s.repo.UpdateAuctionStatus(a.AuctionID, model.StatusActive); err != nil {
				utils.Error("sweep: failed to activate auction", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
			}
			continue
		}

		if derived != model.StatusEnded || a.Settled {
			continue
		}

		s.locks.Lock(a.AuctionID)
		ended, err := s.finalizeOne(a.AuctionID)
		s.locks.Unlock(a.AuctionID)
		if err != nil {
			utils.Error("sweep: failed to finalize auction", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
			continue
		}
		if ended != nil {
			finalized = append(finalized, *ended)
		}
	}
	return finalized, nil
}

// finalizeOne re-checks one auction under its lock and ends it. Returns nil
// without error when another writer finalized it first.
func (s *AuctionService) finalizeOne(auctionID string) (*model.Auction, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return nil, err
	}
	if a.Settled || EffectiveStatus(a, s.now()) != model.StatusEnded {
		return nil, nil
	}
	updated, err := s.repo.UpdateAuctionStatus(auctionID, model.StatusEnded)
	if err != nil {
		return nil, err
	}
	s.settleAndPublish(updated, model.EndReasonExpired)
	updated.Settled = true
	return &updated, nil
}

// settleAndPublish debits the winner and emits the terminal event. Balance
// is checked, not escrowed, at bid time, so a winner can come up short here;
// the auction still ends and the shortfall is logged for manual follow-up.
func (s *AuctionService) settleAndPublish(a model.Auction, reason string) {
	if a.CurrentHighestBid != nil && a.HighestBidderID != "" {
		if _, err := s.repo.DebitBalance(a.HighestBidderID, *a.CurrentHighestBid); err != nil {
			utils.Warn("settlement: failed to debit winner", map[string]any{
				"auction_id": a.AuctionID,
				"winner_id":  a.HighestBidderID,
				"amount":     *a.CurrentHighestBid,
				"error":      err.Error(),
			})
		}
	}
	if err := s.repo.MarkAuctionSettled(a.AuctionID); err != nil {
		utils.Error("settlement: failed to mark auction settled", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
	}
	s.publishEnded(a, reason)
}

func (s *AuctionService) publishBid(res model.BidResult) {
	if s.broker == nil {
		return
	}
	highest := res.CurrentHighestBid
	endsAt := res.EndsAt
	bid := res.Bid
	s.broker.Publish(model.AuctionEvent{
		Type:              model.EventBidAccepted,
		AuctionID:         res.Bid.AuctionID,
		Seq:               res.BidCount,
		Bid:               &bid,
		CurrentHighestBid: &highest,
		BidCount:          res.BidCount,
		EndsAt:            &endsAt,
		Extended:          res.Extended,
	})
}

func (s *AuctionService) publishEnded(a model.Auction, reason string) {
	if s.broker == nil {
		return
	}
	event := model.AuctionEvent{
		Type:      model.EventAuctionEnded,
		AuctionID: a.AuctionID,
		Seq:       a.BidCount + 1,
		BidCount:  a.BidCount,
		Reason:    reason,
	}
	if a.CurrentHighestBid != nil && reason != model.EndReasonCancelled {
		amount := *a.CurrentHighestBid
		event.WinnerID = a.HighestBidderID
		event.WinningAmount = &amount
	}
	s.broker.Publish(event)
}
