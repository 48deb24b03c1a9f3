package wallet

import (
	"fmt"
	"time"

	"playmarket/internal/auctionerrors"
	"playmarket/internal/keylock"
	model "playmarket/internal/models"
	"playmarket/internal/repository"
)

// WalletService handles balance reads, point transfers and redeem codes.
// Balance mutations for a user are serialized through a per-user lock so
// two concurrent operations cannot jointly overdraw an account.
type WalletService struct {
	repo  repository.LedgerStore
	locks *keylock.KeyLock
	now   func() time.Time
}

// NewWalletService creates a new WalletService instance
func NewWalletService(repo repository.LedgerStore) *WalletService {
	return &WalletService{
		repo:  repo,
		locks: keylock.New(),
		now:   time.Now,
	}
}

// GetBalance returns a user's available coin balance.
func (s *WalletService) GetBalance(userID string) (model.Balance, error) {
	if userID == "" {
		return model.Balance{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	available, err := s.repo.GetBalance(userID)
	if err != nil {
		return model.Balance{}, fmt.Errorf("service: failed to get balance for user %s: %w", userID, err)
	}
	return model.Balance{UserID: userID, Available: available}, nil
}

// Transfer moves coins between two users. Both accounts are locked in
// deterministic order for the whole debit-credit pair, so a failed credit
// can roll the debit back without another writer interleaving.
func (s *WalletService) Transfer(fromID, toID string, amount int64) (model.Balance, error) {
	if fromID == "" || toID == "" {
		return model.Balance{}, fmt.Errorf("service: %w - missing user ID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.Balance{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidAmount)
	}
	if fromID == toID {
		return model.Balance{}, fmt.Errorf("service: transfer from user %s: %w", fromID, auctionerrors.ErrSelfTransfer)
	}

	var remaining int64
	err := s.locks.WithOrderedLocks(fromID, toID, func() error {
		var err error
		remaining, err = s.repo.DebitBalance(fromID, amount)
		if err != nil {
			return fmt.Errorf("service: failed to debit sender %s: %w", fromID, err)
		}
		if _, err := s.repo.CreditBalance(toID, amount); err != nil {
			if restored, rbErr := s.repo.CreditBalance(fromID, amount); rbErr == nil {
				remaining = restored
			}
			return fmt.Errorf("service: failed to credit receiver %s: %w", toID, err)
		}
		return nil
	})
	if err != nil {
		return model.Balance{}, err
	}
	return model.Balance{UserID: fromID, Available: remaining}, nil
}

// CreateRedeemCode registers a coin voucher. maxUses bounds total
// redemptions; a zero expiresAt means the code never expires.
func (s *WalletService) CreateRedeemCode(code string, amount int64, maxUses int, expiresAt time.Time) (model.RedeemCode, error) {
	if code == "" {
		return model.RedeemCode{}, fmt.Errorf("service: %w - empty code", auctionerrors.ErrCodeNotFound)
	}
	if amount <= 0 {
		return model.RedeemCode{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidAmount)
	}
	if maxUses <= 0 {
		return model.RedeemCode{}, fmt.Errorf("service: %w - max uses must be positive", auctionerrors.ErrInvalidAmount)
	}

	rc := model.RedeemCode{
		Code:      code,
		Amount:    amount,
		MaxUses:   maxUses,
		ExpiresAt: expiresAt,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateRedeemCode(rc); err != nil {
		return model.RedeemCode{}, fmt.Errorf("service: failed to create redeem code: %w", err)
	}
	return rc, nil
}

// Redeem credits a code's amount to a user. The ledger enforces expiry,
// the total use limit and one redemption per user in a single atomic step.
func (s *WalletService) Redeem(code, userID string) (model.Balance, error) {
	if code == "" || userID == "" {
		return model.Balance{}, fmt.Errorf("service: %w - missing code or user ID", auctionerrors.ErrInvalidBid)
	}

	var available int64
	err := s.locks.WithLock(userID, func() error {
		if _, err := s.repo.ApplyRedemption(code, userID, s.now()); err != nil {
			return fmt.Errorf("service: failed to redeem code for user %s: %w", userID, err)
		}
		var err error
		available, err = s.repo.GetBalance(userID)
		return err
	})
	if err != nil {
		return model.Balance{}, err
	}
	return model.Balance{UserID: userID, Available: available}, nil
}
