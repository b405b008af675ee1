package cooldownrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, userID int64, kind domain.CooldownKind) (*domain.Cooldown, error) {
	query := `
        SELECT user_id, kind, last_action_at, streak
        FROM cooldowns
        WHERE user_id = $1 AND kind = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, userID, kind))
}

// GetForUpdate locks the cooldown row so two concurrent claims of the same
// kind by the same user serialize on it. A first claim has no row to lock,
// so an epoch sentinel is inserted first; both claimants then contend on
// that row and the loser re-reads the winner's committed timestamp.
func (r *Repository) GetForUpdate(ctx context.Context, userID int64, kind domain.CooldownKind) (*domain.Cooldown, error) {
	ensure := `
        INSERT INTO cooldowns (user_id, kind, last_action_at, streak)
        VALUES ($1, $2, to_timestamp(0), 0)
        ON CONFLICT (user_id, kind) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, ensure, userID, kind); err != nil {
		zap.L().Error("failed to ensure cooldown row", zap.Error(err))
		return nil, err
	}

	query := `
        SELECT user_id, kind, last_action_at, streak
        FROM cooldowns
        WHERE user_id = $1 AND kind = $2
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, userID, kind))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Cooldown, error) {
	var cd domain.Cooldown
	err := row.Scan(&cd.UserID, &cd.Kind, &cd.LastActionAt, &cd.Streak)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get cooldown", zap.Error(err))
		return nil, err
	}
	return &cd, nil
}

func (r *Repository) Upsert(ctx context.Context, cd *domain.Cooldown) error {
	query := `
        INSERT INTO cooldowns (user_id, kind, last_action_at, streak)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, kind) DO UPDATE
        SET last_action_at = EXCLUDED.last_action_at, streak = EXCLUDED.streak
    `
	_, err := r.db.Exec(ctx, query, cd.UserID, cd.Kind, cd.LastActionAt, cd.Streak)
	if err != nil {
		zap.L().Error("failed to upsert cooldown", zap.Error(err))
		return err
	}
	return nil
}
