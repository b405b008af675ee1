package accountrepo

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

// GetBalance returns 0 for a user without an account row.
func (r *Repository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	query := `
        SELECT balance
        FROM accounts
        WHERE user_id = $1
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// GetBalanceForUpdate locks the account row for the rest of the open
// transaction. A missing row reads as balance 0 and stays unlocked; the
// subsequent upsert creates it.
func (r *Repository) GetBalanceForUpdate(ctx context.Context, userID int64) (int64, error) {
	query := `
        SELECT balance
        FROM accounts
        WHERE user_id = $1
        FOR UPDATE
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		zap.L().Error("failed to lock balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Add applies a signed delta with upsert semantics, flooring at zero.
func (r *Repository) Add(ctx context.Context, userID int64, delta int64) (int64, error) {
	query := `
        INSERT INTO accounts (user_id, balance)
        VALUES ($1, GREATEST(0, $2))
        ON CONFLICT (user_id) DO UPDATE
        SET balance = GREATEST(0, accounts.balance + $2), updated_at = now()
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, userID, delta).Scan(&balance)
	if err != nil {
		zap.L().Error("failed to adjust balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// SetBalance overwrites the balance, flooring at zero.
func (r *Repository) SetBalance(ctx context.Context, userID int64, amount int64) (int64, error) {
	query := `
        INSERT INTO accounts (user_id, balance)
        VALUES ($1, GREATEST(0, $2))
        ON CONFLICT (user_id) DO UPDATE
        SET balance = GREATEST(0, $2), updated_at = now()
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, userID, amount).Scan(&balance)
	if err != nil {
		zap.L().Error("failed to set balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) TopBalances(ctx context.Context, limit int) ([]domain.Account, error) {
	query := `
        SELECT user_id, balance
        FROM accounts
        WHERE balance > 0
        ORDER BY balance DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch top balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		err := rows.Scan(&acc.UserID, &acc.Balance)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}
