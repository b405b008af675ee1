package rewardservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/pg"
)

const (
	// DailyWindow is the minimum time between daily claims.
	DailyWindow = 24 * time.Hour
	// MessageWindow rate-limits the per-message micro reward.
	MessageWindow = 20 * time.Second
	// SpinWindow is the minimum time between spins.
	SpinWindow = 24 * time.Hour

	// streakGraceFactor bounds how late a spin may land after the previous
	// one and still extend the streak.
	streakGraceFactor = 2
)

type AccountRepo interface {
	Add(ctx context.Context, userID int64, delta int64) (int64, error)
}

type CooldownRepo interface {
	Get(ctx context.Context, userID int64, kind domain.CooldownKind) (*domain.Cooldown, error)
	GetForUpdate(ctx context.Context, userID int64, kind domain.CooldownKind) (*domain.Cooldown, error)
	Upsert(ctx context.Context, cd *domain.Cooldown) error
}

type RewardPolicy interface {
	DailyReward() int64
	MessageReward() int64
	SpinReward(streak int) int64
}

type Service struct {
	accountRepo  AccountRepo
	cooldownRepo CooldownRepo
	txManager    pg.TXManager
	policy       RewardPolicy
	now          func() time.Time
}

func New(accountRepo AccountRepo, cooldownRepo CooldownRepo, txManager pg.TXManager, policy RewardPolicy) *Service {
	return &Service{
		accountRepo:  accountRepo,
		cooldownRepo: cooldownRepo,
		txManager:    txManager,
		policy:       policy,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ClaimDaily(ctx context.Context, userID int64) (*domain.RewardResult, error) {
	return s.claim(ctx, userID, domain.KindDaily, DailyWindow, false, func(int) int64 {
		return s.policy.DailyReward()
	})
}

func (s *Service) RecordMessage(ctx context.Context, userID int64) (*domain.RewardResult, error) {
	return s.claim(ctx, userID, domain.KindMessage, MessageWindow, false, func(int) int64 {
		return s.policy.MessageReward()
	})
}

func (s *Service) Spin(ctx context.Context, userID int64) (*domain.RewardResult, error) {
	return s.claim(ctx, userID, domain.KindSpin, SpinWindow, true, s.policy.SpinReward)
}

// claim grants one cooldown-gated reward. The cooldown row is locked and
// re-checked inside the transaction, so of two concurrent claims exactly
// one commits; the other fails with CooldownActiveError and no mutation.
// First claims lock too: GetForUpdate inserts an epoch sentinel when no
// row exists yet, so concurrent first claims serialize on it and the
// loser observes the winner's committed timestamp.
func (s *Service) claim(ctx context.Context, userID int64, kind domain.CooldownKind, window time.Duration, trackStreak bool, amountFor func(streak int) int64) (*domain.RewardResult, error) {
	result := &domain.RewardResult{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cd, err := s.cooldownRepo.GetForUpdate(ctx, userID, kind)
		if err != nil {
			return err
		}

		now := s.now()
		streak := 0
		if cd != nil {
			elapsed := now.Sub(cd.LastActionAt)
			if elapsed < window {
				return &domain.CooldownActiveError{Kind: kind, Remaining: window - elapsed}
			}
			if trackStreak && elapsed < window*streakGraceFactor {
				streak = cd.Streak
			}
		}
		if trackStreak {
			streak++
		}

		amount := amountFor(streak)
		balance, err := s.accountRepo.Add(ctx, userID, amount)
		if err != nil {
			return err
		}

		err = s.cooldownRepo.Upsert(ctx, &domain.Cooldown{
			UserID:       userID,
			Kind:         kind,
			LastActionAt: now,
			Streak:       streak,
		})
		if err != nil {
			return err
		}

		result.Granted = true
		result.Amount = amount
		result.Balance = balance
		result.Streak = streak
		return nil
	})
	if err != nil {
		if _, ok := domain.AsCooldownActive(err); !ok {
			zap.L().Error("failed to grant reward", zap.String("kind", string(kind)), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

// windowFor maps a cooldown kind to its claim window.
func windowFor(kind domain.CooldownKind) (time.Duration, bool) {
	switch kind {
	case domain.KindDaily:
		return DailyWindow, true
	case domain.KindMessage:
		return MessageWindow, true
	case domain.KindSpin:
		return SpinWindow, true
	}
	return 0, false
}

// Remaining reports how long until the next grant of kind is allowed,
// without claiming. Zero means the user may claim now.
func (s *Service) Remaining(ctx context.Context, userID int64, kind domain.CooldownKind) (time.Duration, error) {
	window, ok := windowFor(kind)
	if !ok {
		return 0, domain.ErrUnknownKind
	}
	cd, err := s.cooldownRepo.Get(ctx, userID, kind)
	if err != nil {
		return 0, err
	}
	if cd == nil {
		return 0, nil
	}
	elapsed := s.now().Sub(cd.LastActionAt)
	if elapsed >= window {
		return 0, nil
	}
	return window - elapsed, nil
}
