package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"playmarket/internal/auctionerrors"
	model "playmarket/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Auction
func newAuction(auctionID string, minimumBid int64, startsAt, endsAt time.Time) model.Auction {
	return model.Auction{
		AuctionID:   auctionID,
		Title:       fmt.Sprintf("%s title", auctionID),
		Description: fmt.Sprintf("%s description", auctionID),
		MinimumBid:  minimumBid,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Status:      model.StatusActive,
		CreatedAt:   startsAt,
	}
}

// Helper to create a new Bid
func newBid(bidID, auctionID, userID string, amount int64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// Test CreateAuction and GetAuction
func TestMemoryLedger_CreateAndGetAuction(t *testing.T) {
	t.Parallel()

	ledger := NewMemoryLedger()
	now := time.Now().UTC()
	a := newAuction("auction1", 100, now, now.Add(time.Hour))

	require.NoError(t, ledger.CreateAuction(a))

	got, err := ledger.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, a, got)

	// Duplicate creation is rejected
	require.Error(t, ledger.CreateAuction(a))

	// Empty ID is rejected
	require.Error(t, ledger.CreateAuction(model.Auction{}))

	// Unknown auction
	_, err = ledger.GetAuction("missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	// Reads are idempotent: same result twice with no intervening writes
	again, err := ledger.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

// Test CompareAndSwapBidState
func TestMemoryLedger_CompareAndSwapBidState(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	endsAt := now.Add(time.Hour)

	tests := []struct {
		name          string
		expectedCount int64
		next          model.BidState
		wantError     error
	}{
		{
			name:          "first_bid_commits",
			expectedCount: 0,
			next:          model.BidState{CurrentHighestBid: 100, HighestBidderID: "user1", EndsAt: endsAt},
		},
		{
			name:          "stale_expected_count_conflicts",
			expectedCount: 5,
			next:          model.BidState{CurrentHighestBid: 200, HighestBidderID: "user2", EndsAt: endsAt},
			wantError:     auctionerrors.ErrVersionConflict,
		},
		{
			name:          "ends_at_may_not_decrease",
			expectedCount: 0,
			next:          model.BidState{CurrentHighestBid: 100, HighestBidderID: "user1", EndsAt: endsAt.Add(-time.Minute)},
			wantError:     auctionerrors.ErrInvalidAuction,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := NewMemoryLedger()
			require.NoError(t, ledger.CreateAuction(newAuction("auction1", 100, now, endsAt)))

			bid := newBid("bid1", "auction1", tc.next.HighestBidderID, tc.next.CurrentHighestBid, now)
			err := ledger.CompareAndSwapBidState("auction1", tc.expectedCount, tc.next, bid)

			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)

				// Failed swap leaves both sides untouched
				a, getErr := ledger.GetAuction("auction1")
				require.NoError(t, getErr)
				require.Nil(t, a.CurrentHighestBid)
				require.Zero(t, a.BidCount)
				bids, bidsErr := ledger.GetBidsForAuction("auction1")
				require.NoError(t, bidsErr)
				require.Empty(t, bids)
				return
			}

			require.NoError(t, err)
			a, getErr := ledger.GetAuction("auction1")
			require.NoError(t, getErr)
			require.NotNil(t, a.CurrentHighestBid)
			require.Equal(t, tc.next.CurrentHighestBid, *a.CurrentHighestBid)
			require.Equal(t, tc.next.HighestBidderID, a.HighestBidderID)
			require.Equal(t, int64(1), a.BidCount)

			bids, bidsErr := ledger.GetBidsForAuction("auction1")
			require.NoError(t, bidsErr)
			require.Equal(t, []model.Bid{bid}, bids)
		})
	}

	t.Run("unknown_auction", func(t *testing.T) {
		t.Parallel()
		ledger := NewMemoryLedger()
		err := ledger.CompareAndSwapBidState("missing", 0, model.BidState{CurrentHighestBid: 1, EndsAt: endsAt}, newBid("b", "missing", "u", 1, now))
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})

	// Two writers racing against the same expected count: exactly one wins
	t.Run("concurrent_swaps_single_winner", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		require.NoError(t, ledger.CreateAuction(newAuction("auction1", 100, now, endsAt)))

		concurrentCount := 50
		var wg sync.WaitGroup
		errCh := make(chan error, concurrentCount)

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				next := model.BidState{CurrentHighestBid: int64(100 + i), HighestBidderID: fmt.Sprintf("user-%d", i), EndsAt: endsAt}
				bid := newBid(fmt.Sprintf("bid-%d", i), "auction1", next.HighestBidderID, next.CurrentHighestBid, now)
				errCh <- ledger.CompareAndSwapBidState("auction1", 0, next, bid)
			}()
		}
		wg.Wait()
		close(errCh)

		succeeded := 0
		for err := range errCh {
			if err == nil {
				succeeded++
			} else {
				require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)
			}
		}
		require.Equal(t, 1, succeeded)

		a, err := ledger.GetAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, int64(1), a.BidCount)

		bids, err := ledger.GetBidsForAuction("auction1")
		require.NoError(t, err)
		require.Len(t, bids, 1)
	})
}

// Test GetBidsForAuction
func TestMemoryLedger_GetBidsForAuction(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	endsAt := now.Add(time.Hour)

	ledger := NewMemoryLedger()
	require.NoError(t, ledger.CreateAuction(newAuction("auction1", 50, now, endsAt)))
	require.NoError(t, ledger.CreateAuction(newAuction("auction2", 50, now, endsAt)))

	// Seed bids through the swap path so counts stay consistent
	for i := 0; i < 3; i++ {
		next := model.BidState{CurrentHighestBid: int64(50 + i), HighestBidderID: fmt.Sprintf("user-%d", i), EndsAt: endsAt}
		bid := newBid(fmt.Sprintf("bid-%d", i), "auction1", next.HighestBidderID, next.CurrentHighestBid, now.Add(time.Duration(i)*time.Second))
		require.NoError(t, ledger.CompareAndSwapBidState("auction1", int64(i), next, bid))
	}

	bids, err := ledger.GetBidsForAuction("auction1")
	require.NoError(t, err)
	require.Len(t, bids, 3)

	// Commit order is preserved
	for i := 1; i < len(bids); i++ {
		require.Greater(t, bids[i].Amount, bids[i-1].Amount)
	}

	// Auction without bids yields an empty slice
	empty, err := ledger.GetBidsForAuction("auction2")
	require.NoError(t, err)
	require.Empty(t, empty)

	// Unknown auction errors
	_, err = ledger.GetBidsForAuction("missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	// Returned slice is a copy
	bids[0].Amount = 9999
	fresh, err := ledger.GetBidsForAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, int64(50), fresh[0].Amount)
}

// Test balance operations
func TestMemoryLedger_Balances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(l *MemoryLedger)
		op          func(l *MemoryLedger) (int64, error)
		wantBalance int64
		wantError   error
	}{
		{
			name:        "unknown_user_has_zero_balance",
			setup:       func(l *MemoryLedger) {},
			op:          func(l *MemoryLedger) (int64, error) { return l.GetBalance("ghost") },
			wantBalance: 0,
		},
		{
			name:        "credit_creates_account",
			setup:       func(l *MemoryLedger) {},
			op:          func(l *MemoryLedger) (int64, error) { return l.CreditBalance("user1", 100) },
			wantBalance: 100,
		},
		{
			name:        "credit_non_positive_rejected",
			setup:       func(l *MemoryLedger) {},
			op:          func(l *MemoryLedger) (int64, error) { return l.CreditBalance("user1", 0) },
			wantError:   auctionerrors.ErrInvalidAmount,
		},
		{
			name:        "debit_within_balance",
			setup:       func(l *MemoryLedger) { l.SetBalance("user1", 100) },
			op:          func(l *MemoryLedger) (int64, error) { return l.DebitBalance("user1", 60) },
			wantBalance: 40,
		},
		{
			name:      "debit_never_goes_negative",
			setup:     func(l *MemoryLedger) { l.SetBalance("user1", 50) },
			op:        func(l *MemoryLedger) (int64, error) { return l.DebitBalance("user1", 60) },
			wantError: auctionerrors.ErrInsufficientBalance,
		},
		{
			name:      "debit_non_positive_rejected",
			setup:     func(l *MemoryLedger) { l.SetBalance("user1", 50) },
			op:        func(l *MemoryLedger) (int64, error) { return l.DebitBalance("user1", -5) },
			wantError: auctionerrors.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := NewMemoryLedger()
			tc.setup(ledger)

			got, err := tc.op(ledger)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantBalance, got)
		})
	}

	// A failed debit must not mutate the balance
	t.Run("failed_debit_leaves_balance_intact", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		ledger.SetBalance("user1", 30)
		_, err := ledger.DebitBalance("user1", 31)
		require.ErrorIs(t, err, auctionerrors.ErrInsufficientBalance)

		balance, err := ledger.GetBalance("user1")
		require.NoError(t, err)
		require.Equal(t, int64(30), balance)
	})
}

// Test that a configured starting balance is reported for untouched accounts
// and seeded into the account on the first write
func TestMemoryLedger_StartingBalance(t *testing.T) {
	t.Parallel()

	t.Run("untouched_account_reports_starting_balance", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedgerWithStartingBalance(500)
		balance, err := ledger.GetBalance("ghost")
		require.NoError(t, err)
		require.Equal(t, int64(500), balance)
	})

	t.Run("first_credit_seeds_starting_balance", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedgerWithStartingBalance(500)
		balance, err := ledger.CreditBalance("user1", 100)
		require.NoError(t, err)
		require.Equal(t, int64(600), balance)
	})

	t.Run("first_debit_draws_on_starting_balance", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedgerWithStartingBalance(500)
		balance, err := ledger.DebitBalance("user1", 200)
		require.NoError(t, err)
		require.Equal(t, int64(300), balance)

		_, err = ledger.DebitBalance("user1", 301)
		require.ErrorIs(t, err, auctionerrors.ErrInsufficientBalance)
	})

	t.Run("set_balance_overrides_seed", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedgerWithStartingBalance(500)
		ledger.SetBalance("user1", 10)
		balance, err := ledger.GetBalance("user1")
		require.NoError(t, err)
		require.Equal(t, int64(10), balance)
	})
}

// Test bounty claims
func TestMemoryLedger_RecordBountyClaim(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	seedBounty := func(l *MemoryLedger, maxClaims int) {
		require.NoError(t, l.CreateBounty(model.Bounty{
			BountyID:   "bounty1",
			Title:      "Bounty 1",
			Reward:     25,
			MaxClaims:  maxClaims,
			ClaimsLeft: maxClaims,
			Status:     model.BountyOpen,
			CreatedAt:  now,
		}))
	}

	t.Run("claim_credits_reward_and_decrements", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		seedBounty(ledger, 2)

		claim, err := ledger.RecordBountyClaim("bounty1", "user1", now)
		require.NoError(t, err)
		require.Equal(t, int64(25), claim.Reward)

		balance, err := ledger.GetBalance("user1")
		require.NoError(t, err)
		require.Equal(t, int64(25), balance)

		b, err := ledger.GetBounty("bounty1")
		require.NoError(t, err)
		require.Equal(t, 1, b.ClaimsLeft)
		require.Equal(t, model.BountyOpen, b.Status)
	})

	t.Run("second_claim_by_same_user_rejected", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		seedBounty(ledger, 2)

		_, err := ledger.RecordBountyClaim("bounty1", "user1", now)
		require.NoError(t, err)
		_, err = ledger.RecordBountyClaim("bounty1", "user1", now)
		require.ErrorIs(t, err, auctionerrors.ErrAlreadyClaimed)
	})

	t.Run("last_claim_exhausts_bounty", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		seedBounty(ledger, 1)

		_, err := ledger.RecordBountyClaim("bounty1", "user1", now)
		require.NoError(t, err)

		b, err := ledger.GetBounty("bounty1")
		require.NoError(t, err)
		require.Equal(t, model.BountyExhausted, b.Status)

		_, err = ledger.RecordBountyClaim("bounty1", "user2", now)
		require.ErrorIs(t, err, auctionerrors.ErrBountyExhausted)
	})

	t.Run("unknown_bounty", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		_, err := ledger.RecordBountyClaim("missing", "user1", now)
		require.ErrorIs(t, err, auctionerrors.ErrBountyNotFound)
	})

	// Concurrent claims never exceed the claim budget
	t.Run("concurrent_claims_respect_budget", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		seedBounty(ledger, 10)

		concurrentCount := 50
		var wg sync.WaitGroup
		errCh := make(chan error, concurrentCount)
		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				_, err := ledger.RecordBountyClaim("bounty1", fmt.Sprintf("user-%d", i), now)
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		succeeded := 0
		for err := range errCh {
			if err == nil {
				succeeded++
			}
		}
		require.Equal(t, 10, succeeded)

		b, err := ledger.GetBounty("bounty1")
		require.NoError(t, err)
		require.Zero(t, b.ClaimsLeft)
		require.Equal(t, model.BountyExhausted, b.Status)
	})
}

// Test redeem codes
func TestMemoryLedger_ApplyRedemption(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	seedCode := func(l *MemoryLedger, maxUses int, expiresAt time.Time) {
		require.NoError(t, l.CreateRedeemCode(model.RedeemCode{
			Code:      "WELCOME",
			Amount:    500,
			MaxUses:   maxUses,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}))
	}

	tests := []struct {
		name      string
		setup     func(l *MemoryLedger)
		code      string
		userID    string
		at        time.Time
		wantError error
	}{
		{
			name:   "valid_redemption",
			setup:  func(l *MemoryLedger) { seedCode(l, 5, time.Time{}) },
			code:   "WELCOME",
			userID: "user1",
			at:     now,
		},
		{
			name:      "unknown_code",
			setup:     func(l *MemoryLedger) {},
			code:      "MISSING",
			userID:    "user1",
			at:        now,
			wantError: auctionerrors.ErrCodeNotFound,
		},
		{
			name:      "expired_code",
			setup:     func(l *MemoryLedger) { seedCode(l, 5, now.Add(-time.Minute)) },
			code:      "WELCOME",
			userID:    "user1",
			at:        now,
			wantError: auctionerrors.ErrCodeExpired,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := NewMemoryLedger()
			tc.setup(ledger)

			_, err := ledger.ApplyRedemption(tc.code, tc.userID, tc.at)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)

			balance, balErr := ledger.GetBalance(tc.userID)
			require.NoError(t, balErr)
			require.Equal(t, int64(500), balance)
		})
	}

	t.Run("one_redemption_per_user", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		seedCode(ledger, 5, time.Time{})

		_, err := ledger.ApplyRedemption("WELCOME", "user1", now)
		require.NoError(t, err)
		_, err = ledger.ApplyRedemption("WELCOME", "user1", now)
		require.ErrorIs(t, err, auctionerrors.ErrAlreadyRedeemed)
	})

	t.Run("use_limit_enforced", func(t *testing.T) {
		t.Parallel()

		ledger := NewMemoryLedger()
		seedCode(ledger, 2, time.Time{})

		_, err := ledger.ApplyRedemption("WELCOME", "user1", now)
		require.NoError(t, err)
		_, err = ledger.ApplyRedemption("WELCOME", "user2", now)
		require.NoError(t, err)
		_, err = ledger.ApplyRedemption("WELCOME", "user3", now)
		require.ErrorIs(t, err, auctionerrors.ErrCodeExhausted)
	})
}
