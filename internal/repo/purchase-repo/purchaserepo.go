package purchaserepo

import (
	"context"
	"time"

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

func (r *Repository) Exists(ctx context.Context, userID, itemID int64) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM purchases WHERE user_id = $1 AND item_id = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, itemID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check purchase existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
        INSERT INTO purchases (user_id, item_id, price_paid, purchased_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, purchase.UserID, purchase.ItemID, purchase.PricePaid, purchase.PurchasedAt).
		Scan(&purchase.ID)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	query := `
        SELECT id, user_id, item_id, price_paid, purchased_at, notified_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY purchased_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.UserID, &p.ItemID, &p.PricePaid, &p.PurchasedAt, &p.NotifiedAt)
		if err != nil {
			zap.L().Error("failed to scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// FindUnnotified returns purchases of role-type items whose external side
// effect has not been dispatched yet, oldest first.
func (r *Repository) FindUnnotified(ctx context.Context, limit int) ([]domain.Purchase, error) {
	query := `
        SELECT p.id, p.user_id, p.item_id, p.price_paid, p.purchased_at, p.notified_at
        FROM purchases p
        JOIN shop_items i ON i.id = p.item_id
        WHERE p.notified_at IS NULL AND i.type = 'role'
        ORDER BY p.purchased_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch unnotified purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.UserID, &p.ItemID, &p.PricePaid, &p.PurchasedAt, &p.NotifiedAt)
		if err != nil {
			zap.L().Error("failed to scan unnotified purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *Repository) MarkNotified(ctx context.Context, purchaseID int64, notifiedAt time.Time) error {
	query := `
        UPDATE purchases
        SET notified_at = $2
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, purchaseID, notifiedAt)
	if err != nil {
		zap.L().Error("failed to mark purchase notified", zap.Error(err))
		return err
	}
	return nil
}
