package repository

import (
	"fmt"
	"sync"
	"time"

	"playmarket/internal/auctionerrors"
	model "playmarket/internal/models"
)

// LedgerStore defines the durable record of auctions, bids, balances,
// bounties and redeem codes. Every method is individually atomic; the
// compound operations (CompareAndSwapBidState, RecordBountyClaim,
// ApplyRedemption) are the transaction boundaries the services compose on.
type LedgerStore interface {
	CreateAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	UpdateAuctionStatus(auctionID string, status model.AuctionStatus) (model.Auction, error)
	MarkAuctionSettled(auctionID string) error
	CompareAndSwapBidState(auctionID string, expectedBidCount int64, next model.BidState, bid model.Bid) error
	GetBidsForAuction(auctionID string) ([]model.Bid, error)

	GetBalance(userID string) (int64, error)
	CreditBalance(userID string, amount int64) (int64, error)
	DebitBalance(userID string, amount int64) (int64, error)

	CreateBounty(b model.Bounty) error
	GetBounty(bountyID string) (model.Bounty, error)
	ListBounties() ([]model.Bounty, error)
	RecordBountyClaim(bountyID, userID string, claimedAt time.Time) (model.BountyClaim, error)
	ListClaimsByUser(userID string) ([]model.BountyClaim, error)

	CreateRedeemCode(code model.RedeemCode) error
	ApplyRedemption(code, userID string, now time.Time) (model.RedeemCode, error)
}

// MemoryLedger is a concurrency-safe in-memory implementation of LedgerStore.
// A single mutex covers every record type so each compound operation is one
// critical section: either all of its writes land or none do.
type MemoryLedger struct {
	mu              sync.RWMutex
	startingBalance int64
	auctions        map[string]model.Auction
	bids            map[string][]model.Bid // key: auctionID
	balances        map[string]int64       // key: userID
	bounties        map[string]model.Bounty
	bountyClaims    map[string]map[string]model.BountyClaim // bountyID -> userID -> claim
	codes           map[string]model.RedeemCode
	redemptions     map[string]map[string]struct{} // code -> userIDs that redeemed
}

// NewMemoryLedger creates a new in-memory ledger where accounts start at zero
func NewMemoryLedger() *MemoryLedger {
	return NewMemoryLedgerWithStartingBalance(0)
}

// NewMemoryLedgerWithStartingBalance creates an in-memory ledger that seeds
// every account with startingBalance the first time it is written to.
// Accounts remain implicit: reads of an untouched account report the
// starting balance without creating a record.
func NewMemoryLedgerWithStartingBalance(startingBalance int64) *MemoryLedger {
	return &MemoryLedger{
		startingBalance: startingBalance,
		auctions:     make(map[string]model.Auction),
		bids:         make(map[string][]model.Bid),
		balances:     make(map[string]int64),
		bounties:     make(map[string]model.Bounty),
		bountyClaims: make(map[string]map[string]model.BountyClaim),
		codes:        make(map[string]model.RedeemCode),
		redemptions:  make(map[string]map[string]struct{}),
	}
}

// CreateAuction stores a new auction record
func (l *MemoryLedger) CreateAuction(a model.Auction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if a.AuctionID == "" {
		return fmt.Errorf("create auction: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}
	if _, ok := l.auctions[a.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w - already exists", a.AuctionID, auctionerrors.ErrInvalidAuction)
	}
	l.auctions[a.AuctionID] = a
	return nil
}

// GetAuction returns the auction with the given ID
func (l *MemoryLedger) GetAuction(auctionID string) (model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a, ok := l.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// ListAuctions returns all auction records
func (l *MemoryLedger) ListAuctions() ([]model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(l.auctions))
	for _, a := range l.auctions {
		auctions = append(auctions, a)
	}
	return auctions, nil
}

// UpdateAuctionStatus persists a new status for an auction and returns the
// updated record. Transition validity is the caller's responsibility.
func (l *MemoryLedger) UpdateAuctionStatus(auctionID string, status model.AuctionStatus) (model.Auction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s status: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	a.Status = status
	l.auctions[auctionID] = a
	return a, nil
}

// MarkAuctionSettled flags an auction as settled so the sweeper will not
// settle it twice.
func (l *MemoryLedger) MarkAuctionSettled(auctionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[auctionID]
	if !ok {
		return fmt.Errorf("mark auction %s settled: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	a.Settled = true
	l.auctions[auctionID] = a
	return nil
}

// CompareAndSwapBidState applies a committed bid as a single atomic unit:
// the auction's highest-bid fields, bid count and end time are swapped and
// the bid record appended, conditioned on BidCount still matching
// expectedBidCount. Two racing writers can never both succeed against the
// same expected count.
func (l *MemoryLedger) CompareAndSwapBidState(auctionID string, expectedBidCount int64, next model.BidState, bid model.Bid) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[auctionID]
	if !ok {
		return fmt.Errorf("cas bid state for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.BidCount != expectedBidCount {
		return fmt.Errorf("cas bid state for auction %s: expected bid count %d, have %d: %w",
			auctionID, expectedBidCount, a.BidCount, auctionerrors.ErrVersionConflict)
	}
	if next.EndsAt.Before(a.EndsAt) {
		return fmt.Errorf("cas bid state for auction %s: %w - ends_at may not decrease", auctionID, auctionerrors.ErrInvalidAuction)
	}

	highest := next.CurrentHighestBid
	a.CurrentHighestBid = &highest
	a.HighestBidderID = next.HighestBidderID
	a.EndsAt = next.EndsAt
	a.BidCount++
	l.auctions[auctionID] = a
	l.bids[auctionID] = append(l.bids[auctionID], bid)
	return nil
}

// GetBidsForAuction returns all bids for an auction in commit order.
// An auction with no bids yields an empty slice, not an error.
func (l *MemoryLedger) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.Bid(nil), l.bids[auctionID]...), nil
}

// account returns the user's current balance, seeding the account record
// with the starting balance on first touch. Callers must hold mu for writing.
func (l *MemoryLedger) account(userID string) int64 {
	if _, ok := l.balances[userID]; !ok {
		l.balances[userID] = l.startingBalance
	}
	return l.balances[userID]
}

// GetBalance returns a user's available balance. Accounts are implicit:
// an untouched user reports the starting balance.
func (l *MemoryLedger) GetBalance(userID string) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if b, ok := l.balances[userID]; ok {
		return b, nil
	}
	return l.startingBalance, nil
}

// CreditBalance adds amount to a user's balance and returns the new balance
func (l *MemoryLedger) CreditBalance(userID string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return 0, fmt.Errorf("credit balance for user %s: %w", userID, auctionerrors.ErrInvalidAmount)
	}
	l.balances[userID] = l.account(userID) + amount
	return l.balances[userID], nil
}

// DebitBalance subtracts amount from a user's balance. It fails without
// mutating anything if the balance would go negative.
func (l *MemoryLedger) DebitBalance(userID string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return 0, fmt.Errorf("debit balance for user %s: %w", userID, auctionerrors.ErrInvalidAmount)
	}
	current := l.account(userID)
	if current < amount {
		return current, fmt.Errorf("debit balance for user %s: %w", userID, &auctionerrors.InsufficientBalanceError{Available: current})
	}
	l.balances[userID] = current - amount
	return l.balances[userID], nil
}

// CreateBounty stores a new bounty record
func (l *MemoryLedger) CreateBounty(b model.Bounty) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b.BountyID == "" {
		return fmt.Errorf("create bounty: %w - empty bounty ID", auctionerrors.ErrBountyNotFound)
	}
	l.bounties[b.BountyID] = b
	return nil
}

// GetBounty returns the bounty with the given ID
func (l *MemoryLedger) GetBounty(bountyID string) (model.Bounty, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.bounties[bountyID]
	if !ok {
		return model.Bounty{}, fmt.Errorf("get bounty %s: %w", bountyID, auctionerrors.ErrBountyNotFound)
	}
	return b, nil
}

// ListBounties returns all bounty records
func (l *MemoryLedger) ListBounties() ([]model.Bounty, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bounties := make([]model.Bounty, 0, len(l.bounties))
	for _, b := range l.bounties {
		bounties = append(bounties, b)
	}
	return bounties, nil
}

// RecordBountyClaim claims a bounty for a user and credits the reward in
// one critical section. It enforces one claim per user per bounty and
// decrements the remaining claim count, flipping the bounty to exhausted
// when the last claim is taken.
func (l *MemoryLedger) RecordBountyClaim(bountyID, userID string, claimedAt time.Time) (model.BountyClaim, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bounties[bountyID]
	if !ok {
		return model.BountyClaim{}, fmt.Errorf("claim bounty %s: %w", bountyID, auctionerrors.ErrBountyNotFound)
	}
	if b.Status == model.BountyClosed {
		return model.BountyClaim{}, fmt.Errorf("claim bounty %s: %w", bountyID, auctionerrors.ErrBountyClosed)
	}
	if b.ClaimsLeft <= 0 || b.Status == model.BountyExhausted {
		return model.BountyClaim{}, fmt.Errorf("claim bounty %s: %w", bountyID, auctionerrors.ErrBountyExhausted)
	}
	if _, claimed := l.bountyClaims[bountyID][userID]; claimed {
		return model.BountyClaim{}, fmt.Errorf("claim bounty %s for user %s: %w", bountyID, userID, auctionerrors.ErrAlreadyClaimed)
	}

	claim := model.BountyClaim{
		BountyID:  bountyID,
		UserID:    userID,
		Reward:    b.Reward,
		ClaimedAt: claimedAt,
	}
	if l.bountyClaims[bountyID] == nil {
		l.bountyClaims[bountyID] = make(map[string]model.BountyClaim)
	}
	l.bountyClaims[bountyID][userID] = claim

	b.ClaimsLeft--
	if b.ClaimsLeft == 0 {
		b.Status = model.BountyExhausted
	}
	l.bounties[bountyID] = b
	l.balances[userID] = l.account(userID) + b.Reward
	return claim, nil
}

// ListClaimsByUser returns every bounty claim made by a user
func (l *MemoryLedger) ListClaimsByUser(userID string) ([]model.BountyClaim, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	claims := make([]model.BountyClaim, 0)
	for _, byUser := range l.bountyClaims {
		if c, ok := byUser[userID]; ok {
			claims = append(claims, c)
		}
	}
	return claims, nil
}

// CreateRedeemCode stores a new redeem code
func (l *MemoryLedger) CreateRedeemCode(code model.RedeemCode) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if code.Code == "" {
		return fmt.Errorf("create redeem code: %w - empty code", auctionerrors.ErrCodeNotFound)
	}
	l.codes[code.Code] = code
	return nil
}

// ApplyRedemption redeems a code for a user and credits its amount in one
// critical section. It enforces expiry, the total use limit, and one
// redemption per user per code.
func (l *MemoryLedger) ApplyRedemption(code, userID string, now time.Time) (model.RedeemCode, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rc, ok := l.codes[code]
	if !ok {
		return model.RedeemCode{}, fmt.Errorf("redeem code %s: %w", code, auctionerrors.ErrCodeNotFound)
	}
	if !rc.ExpiresAt.IsZero() && !now.Before(rc.ExpiresAt) {
		return model.RedeemCode{}, fmt.Errorf("redeem code %s: %w", code, auctionerrors.ErrCodeExpired)
	}
	if rc.Uses >= rc.MaxUses {
		return model.RedeemCode{}, fmt.Errorf("redeem code %s: %w", code, auctionerrors.ErrCodeExhausted)
	}
	if _, used := l.redemptions[code][userID]; used {
		return model.RedeemCode{}, fmt.Errorf("redeem code %s for user %s: %w", code, userID, auctionerrors.ErrAlreadyRedeemed)
	}

	if l.redemptions[code] == nil {
		l.redemptions[code] = make(map[string]struct{})
	}
	l.redemptions[code][userID] = struct{}{}
	rc.Uses++
	l.codes[code] = rc
	l.balances[userID] = l.account(userID) + rc.Amount
	return rc, nil
}

// SetBalance overwrites a user's balance. This method is intended for tests only.
func (l *MemoryLedger) SetBalance(userID string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] = amount
}
