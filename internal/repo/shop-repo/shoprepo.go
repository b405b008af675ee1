package shoprepo

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

func (r *Repository) GetItem(ctx context.Context, itemID int64) (*domain.ShopItem, error) {
	query := `
        SELECT id, name, description, price, type, payload, is_active, created_at
        FROM shop_items
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, itemID)
	var item domain.ShopItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Type, &item.Payload, &item.IsActive, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get shop item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) ListItems(ctx context.Context, activeOnly bool) ([]domain.ShopItem, error) {
	query := `
        SELECT id, name, description, price, type, payload, is_active, created_at
        FROM shop_items
        WHERE is_active OR NOT $1
        ORDER BY price ASC
    `
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		zap.L().Error("failed to fetch shop items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.ShopItem
	for rows.Next() {
		var item domain.ShopItem
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Type, &item.Payload, &item.IsActive, &item.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan shop item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) CreateItem(ctx context.Context, item *domain.ShopItem) (*domain.ShopItem, error) {
	query := `
        INSERT INTO shop_items (name, description, price, type, payload)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, item.Name, item.Description, item.Price, item.Type, item.Payload).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create shop item", zap.Error(err))
		return nil, err
	}
	item.IsActive = true
	return item, nil
}

// DeactivateItem soft-deletes an item so existing purchase records stay
// valid. Returns false when no active item matched.
func (r *Repository) DeactivateItem(ctx context.Context, itemID int64) (bool, error) {
	query := `
        UPDATE shop_items
        SET is_active = FALSE
        WHERE id = $1 AND is_active
    `
	tag, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		zap.L().Error("failed to deactivate shop item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
