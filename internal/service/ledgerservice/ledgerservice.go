package ledgerservice

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/pg"
)

type AccountRepo interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
	GetBalanceForUpdate(ctx context.Context, userID int64) (int64, error)
	Add(ctx context.Context, userID int64, delta int64) (int64, error)
	SetBalance(ctx context.Context, userID int64, amount int64) (int64, error)
	TopBalances(ctx context.Context, limit int) ([]domain.Account, error)
}

// AdjustMode selects the debit policy for AdjustBalance. Reject fails a
// debit that would push the balance below zero; Clamp floors at zero and
// always succeeds. Transfers and purchases always use Reject; Clamp is
// reserved for administrative corrections.
type AdjustMode int

const (
	ModeReject AdjustMode = iota
	ModeClamp
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 20
)

type Service struct {
	accountRepo AccountRepo
	txManager   pg.TXManager
	feeRate     float64
	feeSinkID   int64
}

func New(accountRepo AccountRepo, txManager pg.TXManager, feeRate float64, feeSinkID int64) *Service {
	return &Service{
		accountRepo: accountRepo,
		txManager:   txManager,
		feeRate:     feeRate,
		feeSinkID:   feeSinkID,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int64) (int64, error) {
	balance, err := s.accountRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) AdjustBalance(ctx context.Context, userID int64, delta int64, mode AdjustMode) (int64, error) {
	if mode == ModeClamp || delta >= 0 {
		return s.accountRepo.Add(ctx, userID, delta)
	}

	var balance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.accountRepo.GetBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if current+delta < 0 {
			return domain.ErrInsufficientFunds
		}
		balance, err = s.accountRepo.Add(ctx, userID, delta)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *Service) SetBalance(ctx context.Context, userID int64, amount int64) (int64, error) {
	balance, err := s.accountRepo.SetBalance(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to set balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Transfer moves amount from sender to receiver, crediting the transfer
// tax to the fee sink. The sender row is locked before the sufficiency
// check so a concurrent transfer cannot spend the same funds twice.
func (s *Service) Transfer(ctx context.Context, sender, receiver, amount int64) (*domain.TransferResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if sender == receiver {
		return nil, domain.ErrSelfTransfer
	}

	fee := int64(math.Floor(float64(amount) * s.feeRate))
	if fee < 1 {
		fee = 1
	}
	net := amount - fee

	result := &domain.TransferResult{Net: net, Fee: fee}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.accountRepo.GetBalanceForUpdate(ctx, sender)
		if err != nil {
			return err
		}
		if balance < amount {
			return domain.ErrInsufficientFunds
		}

		result.SenderBalance, err = s.accountRepo.Add(ctx, sender, -amount)
		if err != nil {
			return err
		}
		if _, err = s.accountRepo.Add(ctx, receiver, net); err != nil {
			return err
		}
		if _, err = s.accountRepo.Add(ctx, s.feeSinkID, fee); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) TopBalances(ctx context.Context, limit int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	accounts, err := s.accountRepo.TopBalances(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch top balances", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}
