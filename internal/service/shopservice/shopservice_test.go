package shopservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/pg"
)

var fixedNow = time.Date(2024, 12, 9, 16, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockShopRepo, *MockPurchaseRepo, *MockAccountRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	shopRepo := NewMockShopRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(shopRepo, purchaseRepo, accountRepo, txManager)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, shopRepo, purchaseRepo, accountRepo, txManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
}

func TestListItems(t *testing.T) {
	service, shopRepo, _, _, _ := NewMock(t)

	items := []domain.ShopItem{
		{ID: 2, Name: "Nickname color", Price: 500, Type: domain.ItemTypeGeneric, IsActive: true},
		{ID: 1, Name: "Premium role", Price: 10000, Type: domain.ItemTypeRole, IsActive: true},
	}

	tests := []struct {
		name          string
		activeOnly    bool
		prepareMock   func()
		expected      []domain.ShopItem
		expectedError error
	}{
		{
			name:       "Lists active catalog",
			activeOnly: true,
			prepareMock: func() {
				shopRepo.EXPECT().ListItems(gomock.Any(), true).Return(items, nil)
			},
			expected: items,
		},
		{
			name:       "Error listing items",
			activeOnly: false,
			prepareMock: func() {
				shopRepo.EXPECT().ListItems(gomock.Any(), false).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ListItems(context.Background(), tt.activeOnly)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestCreateItem(t *testing.T) {
	service, shopRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		item          *domain.ShopItem
		prepareMock   func()
		expectedType  string
		expectedError error
	}{
		{
			name: "Creates role item",
			item: &domain.ShopItem{Name: "Premium role", Price: 10000, Type: domain.ItemTypeRole},
			prepareMock: func() {
				shopRepo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, item *domain.ShopItem) (*domain.ShopItem, error) {
						item.ID = 1
						item.IsActive = true
						return item, nil
					},
				)
			},
			expectedType: domain.ItemTypeRole,
		},
		{
			name: "Empty type defaults to generic",
			item: &domain.ShopItem{Name: "Mystery box", Price: 250},
			prepareMock: func() {
				shopRepo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, item *domain.ShopItem) (*domain.ShopItem, error) {
						item.ID = 2
						item.IsActive = true
						return item, nil
					},
				)
			},
			expectedType: domain.ItemTypeGeneric,
		},
		{
			name:          "Zero price is rejected",
			item:          &domain.ShopItem{Name: "Free lunch", Price: 0},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative price is rejected",
			item:          &domain.ShopItem{Name: "Refund", Price: -100},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name: "Error creating item",
			item: &domain.ShopItem{Name: "Broken", Price: 1},
			prepareMock: func() {
				shopRepo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.CreateItem(context.Background(), tt.item)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.expectedType, result.Type)
				assert.True(t, result.IsActive)
			}
		})
	}
}

func TestDeactivateItem(t *testing.T) {
	service, shopRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		itemID        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Deactivates existing item",
			itemID: 1,
			prepareMock: func() {
				shopRepo.EXPECT().DeactivateItem(gomock.Any(), int64(1)).Return(true, nil)
			},
		},
		{
			name:   "Missing item",
			itemID: 404,
			prepareMock: func() {
				shopRepo.EXPECT().DeactivateItem(gomock.Any(), int64(404)).Return(false, nil)
			},
			expectedError: domain.ErrItemNotFound,
		},
		{
			name:   "Database error",
			itemID: 1,
			prepareMock: func() {
				shopRepo.EXPECT().DeactivateItem(gomock.Any(), int64(1)).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.DeactivateItem(context.Background(), tt.itemID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPurchase(t *testing.T) {
	service, shopRepo, purchaseRepo, accountRepo, txManager := NewMock(t)

	roleItem := &domain.ShopItem{
		ID:       1,
		Name:     "Premium role",
		Price:    10000,
		Type:     domain.ItemTypeRole,
		IsActive: true,
	}
	genericItem := &domain.ShopItem{
		ID:       2,
		Name:     "Mystery box",
		Price:    250,
		Type:     domain.ItemTypeGeneric,
		IsActive: true,
	}

	tests := []struct {
		name          string
		userID        int64
		itemID        int64
		prepareMock   func()
		expected      *domain.PurchaseResult
		expectedError error
	}{
		{
			name:   "Buys a role item",
			userID: 1,
			itemID: 1,
			prepareMock: func() {
				passThrough(txManager)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(1)).Return(roleItem, nil)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(12500), nil)
				purchaseRepo.EXPECT().Exists(gomock.Any(), int64(1), int64(1)).Return(false, nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(-10000)).Return(int64(2500), nil)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Purchase) (*domain.Purchase, error) {
						p.ID = 7
						return p, nil
					},
				)
			},
			expected: &domain.PurchaseResult{
				Purchase: &domain.Purchase{ID: 7, UserID: 1, ItemID: 1, PricePaid: 10000, PurchasedAt: fixedNow},
				Item:     roleItem,
				Balance:  2500,
			},
		},
		{
			name:   "Generic item skips the ownership check",
			userID: 1,
			itemID: 2,
			prepareMock: func() {
				passThrough(txManager)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(genericItem, nil)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(1000), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(-250)).Return(int64(750), nil)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Purchase) (*domain.Purchase, error) {
						p.ID = 8
						return p, nil
					},
				)
			},
			expected: &domain.PurchaseResult{
				Purchase: &domain.Purchase{ID: 8, UserID: 1, ItemID: 2, PricePaid: 250, PurchasedAt: fixedNow},
				Item:     genericItem,
				Balance:  750,
			},
		},
		{
			name:   "Unknown item",
			userID: 1,
			itemID: 404,
			prepareMock: func() {
				passThrough(txManager)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(404)).Return(nil, nil)
			},
			expectedError: domain.ErrItemNotFound,
		},
		{
			name:   "Inactive item",
			userID: 1,
			itemID: 3,
			prepareMock: func() {
				passThrough(txManager)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(3)).Return(&domain.ShopItem{
					ID:       3,
					Price:    100,
					Type:     domain.ItemTypeGeneric,
					IsActive: false,
				}, nil)
			},
			expectedError: domain.ErrItemInactive,
		},
		{
			name:   "Second purchase of a role item",
			userID: 1,
			itemID: 1,
			prepareMock: func() {
				passThrough(txManager)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(1)).Return(roleItem, nil)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(50000), nil)
				purchaseRepo.EXPECT().Exists(gomock.Any(), int64(1), int64(1)).Return(true, nil)
			},
			expectedError: domain.ErrAlreadyOwned,
		},
		{
			name:   "Insufficient funds",
			userID: 1,
			itemID: 1,
			prepareMock: func() {
				passThrough(txManager)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(1)).Return(roleItem, nil)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(9999), nil)
				purchaseRepo.EXPECT().Exists(gomock.Any(), int64(1), int64(1)).Return(false, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:   "Record error rolls back the debit",
			userID: 1,
			itemID: 2,
			prepareMock: func() {
				passThrough(txManager)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(genericItem, nil)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(1000), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(-250)).Return(int64(750), nil)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Purchase(context.Background(), tt.userID, tt.itemID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestListPurchases(t *testing.T) {
	service, _, purchaseRepo, _, _ := NewMock(t)

	purchases := []domain.Purchase{
		{ID: 8, UserID: 1, ItemID: 2, PricePaid: 250, PurchasedAt: fixedNow},
		{ID: 7, UserID: 1, ItemID: 1, PricePaid: 10000, PurchasedAt: fixedNow.Add(-time.Hour)},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Purchase
		expectedError error
	}{
		{
			name: "Returns purchase history",
			prepareMock: func() {
				purchaseRepo.EXPECT().ListByUserID(gomock.Any(), int64(1)).Return(purchases, nil)
			},
			expected: purchases,
		},
		{
			name: "Error fetching history",
			prepareMock: func() {
				purchaseRepo.EXPECT().ListByUserID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ListPurchases(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
