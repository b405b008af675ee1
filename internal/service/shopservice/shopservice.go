package shopservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/pg"
)

type ShopRepo interface {
	GetItem(ctx context.Context, itemID int64) (*domain.ShopItem, error)
	ListItems(ctx context.Context, activeOnly bool) ([]domain.ShopItem, error)
	CreateItem(ctx context.Context, item *domain.ShopItem) (*domain.ShopItem, error)
	DeactivateItem(ctx context.Context, itemID int64) (bool, error)
}

type PurchaseRepo interface {
	Exists(ctx context.Context, userID, itemID int64) (bool, error)
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Purchase, error)
}

type AccountRepo interface {
	GetBalanceForUpdate(ctx context.Context, userID int64) (int64, error)
	Add(ctx context.Context, userID int64, delta int64) (int64, error)
}

type Service struct {
	shopRepo     ShopRepo
	purchaseRepo PurchaseRepo
	accountRepo  AccountRepo
	txManager    pg.TXManager
	now          func() time.Time
}

func New(shopRepo ShopRepo, purchaseRepo PurchaseRepo, accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		shopRepo:     shopRepo,
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
		txManager:    txManager,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ListItems(ctx context.Context, activeOnly bool) ([]domain.ShopItem, error) {
	items, err := s.shopRepo.ListItems(ctx, activeOnly)
	if err != nil {
		zap.L().Error("failed to list shop items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Service) CreateItem(ctx context.Context, item *domain.ShopItem) (*domain.ShopItem, error) {
	if item.Price <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if item.Type == "" {
		item.Type = domain.ItemTypeGeneric
	}

	created, err := s.shopRepo.CreateItem(ctx, item)
	if err != nil {
		zap.L().Error("failed to create shop item", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) DeactivateItem(ctx context.Context, itemID int64) error {
	ok, err := s.shopRepo.DeactivateItem(ctx, itemID)
	if err != nil {
		zap.L().Error("failed to deactivate shop item", zap.Error(err))
		return err
	}
	if !ok {
		return domain.ErrItemNotFound
	}
	return nil
}

// Purchase buys one item in a single transaction: item lookup, one-shot
// ownership check, funds check and debit, purchase record. The buyer's
// account row is locked first so concurrent purchases by the same user
// serialize, which makes the ownership check race-free. Any external side
// effect tied to the item payload happens after commit, outside this call.
func (s *Service) Purchase(ctx context.Context, userID, itemID int64) (*domain.PurchaseResult, error) {
	result := &domain.PurchaseResult{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		item, err := s.shopRepo.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if !item.IsActive {
			return domain.ErrItemInactive
		}

		balance, err := s.accountRepo.GetBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if item.OneShot() {
			owned, err := s.purchaseRepo.Exists(ctx, userID, itemID)
			if err != nil {
				return err
			}
			if owned {
				return domain.ErrAlreadyOwned
			}
		}

		if balance < item.Price {
			return domain.ErrInsufficientFunds
		}

		newBalance, err := s.accountRepo.Add(ctx, userID, -item.Price)
		if err != nil {
			return err
		}

		purchase := &domain.Purchase{
			UserID:      userID,
			ItemID:      itemID,
			PricePaid:   item.Price,
			PurchasedAt: s.now(),
		}
		if _, err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}

		result.Purchase = purchase
		result.Item = item
		result.Balance = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) ListPurchases(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
