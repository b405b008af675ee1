package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coinkeeper/internal/config"
	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/pkg/clients"
)

// syncPool runs every task inline so sweeps finish before assertions.
type syncPool struct{}

func (syncPool) AddTask(ctx context.Context, task Task) error { return task() }
func (syncPool) Close()                                       {}

func NewMock(t *testing.T) (*Service, *MockPurchaseRepo, *MockShopRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{WebhookAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchaseRepo := NewMockPurchaseRepo(ctrl)
	shopRepo := NewMockShopRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, purchaseRepo, shopRepo, client)
	service.workerPool = syncPool{}
	return service, purchaseRepo, shopRepo, client
}

func TestService_Start(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_sweep(t *testing.T) {
	purchasedAt := time.Date(2024, 12, 9, 16, 0, 0, 0, time.UTC)
	item := &domain.ShopItem{
		ID:      2,
		Name:    "Premium role",
		Price:   10000,
		Type:    domain.ItemTypeRole,
		Payload: []byte(`{"role_id": 99}`),
	}

	tests := []struct {
		name        string
		prepareMock func(purchaseRepo *MockPurchaseRepo, shopRepo *MockShopRepo, client *clients.MockHTTPClientI)
	}{
		{
			name: "Delivers pending grants and stamps them",
			prepareMock: func(purchaseRepo *MockPurchaseRepo, shopRepo *MockShopRepo, client *clients.MockHTTPClientI) {
				purchases := []domain.Purchase{
					{ID: 7, UserID: 1, ItemID: 2, PricePaid: 10000, PurchasedAt: purchasedAt},
					{ID: 9, UserID: 3, ItemID: 2, PricePaid: 10000, PurchasedAt: purchasedAt},
				}
				purchaseRepo.EXPECT().FindUnnotified(gomock.Any(), 100).Return(purchases, nil)
				shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(item, nil).Times(2)
				client.EXPECT().Post("http://localhost:8081/api/grants", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, nil, nil).Times(2)
				purchaseRepo.EXPECT().MarkNotified(gomock.Any(), int64(7), gomock.Any()).Return(nil)
				purchaseRepo.EXPECT().MarkNotified(gomock.Any(), int64(9), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Fetch error aborts the sweep",
			prepareMock: func(purchaseRepo *MockPurchaseRepo, _ *MockShopRepo, _ *clients.MockHTTPClientI) {
				purchaseRepo.EXPECT().FindUnnotified(gomock.Any(), 100).Return(nil, errors.New("db error"))
			},
		},
		{
			name: "Nothing pending makes no requests",
			prepareMock: func(purchaseRepo *MockPurchaseRepo, _ *MockShopRepo, _ *clients.MockHTTPClientI) {
				purchaseRepo.EXPECT().FindUnnotified(gomock.Any(), 100).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, purchaseRepo, shopRepo, client := NewMock(t)
			tt.prepareMock(purchaseRepo, shopRepo, client)

			service.sweep(context.Background())
		})
	}
}

func TestService_dispatch(t *testing.T) {
	purchase := domain.Purchase{
		ID:          7,
		UserID:      1,
		ItemID:      2,
		PricePaid:   10000,
		PurchasedAt: time.Date(2024, 12, 9, 16, 0, 0, 0, time.UTC),
	}
	item := &domain.ShopItem{
		ID:      2,
		Name:    "Premium role",
		Price:   10000,
		Type:    domain.ItemTypeRole,
		Payload: []byte(`{"role_id": 99}`),
	}

	t.Run("Successful delivery carries the item payload", func(t *testing.T) {
		service, purchaseRepo, shopRepo, client := NewMock(t)

		shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(item, nil)
		client.EXPECT().Post("http://localhost:8081/api/grants", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ string, headers http.Header, body []byte) (int, []byte, error) {
				assert.Equal(t, "application/json", headers.Get("Content-Type"))

				var grant Grant
				assert.NoError(t, json.Unmarshal(body, &grant))
				assert.Equal(t, int64(7), grant.PurchaseID)
				assert.Equal(t, int64(1), grant.UserID)
				assert.Equal(t, int64(2), grant.ItemID)
				assert.JSONEq(t, `{"role_id": 99}`, string(grant.Payload))
				return http.StatusOK, nil, nil
			},
		)
		purchaseRepo.EXPECT().MarkNotified(gomock.Any(), int64(7), gomock.Any()).Return(nil)

		err := service.dispatch(context.Background(), purchase)
		assert.NoError(t, err)
	})

	t.Run("Missing item is stamped and skipped", func(t *testing.T) {
		service, purchaseRepo, shopRepo, _ := NewMock(t)

		shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(nil, nil)
		purchaseRepo.EXPECT().MarkNotified(gomock.Any(), int64(7), gomock.Any()).Return(nil)

		err := service.dispatch(context.Background(), purchase)
		assert.NoError(t, err)
	})

	t.Run("Item lookup error is returned", func(t *testing.T) {
		service, _, shopRepo, _ := NewMock(t)

		shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(nil, errors.New("db error"))

		err := service.dispatch(context.Background(), purchase)
		assert.Error(t, err)
	})

	t.Run("Exhausted retries keep the purchase pending", func(t *testing.T) {
		service, _, shopRepo, client := NewMock(t)

		shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(item, nil)
		client.EXPECT().Post("http://localhost:8081/api/grants", gomock.Any(), gomock.Any()).
			Return(http.StatusBadGateway, nil, nil).Times(maxRetries)

		// MarkNotified is never expected: the row stays for the next sweep.
		err := service.dispatch(context.Background(), purchase)
		assert.NoError(t, err)
	})

	t.Run("Canceled context stops retrying", func(t *testing.T) {
		service, _, shopRepo, _ := NewMock(t)

		shopRepo.EXPECT().GetItem(gomock.Any(), int64(2)).Return(item, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := service.dispatch(ctx, purchase)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
