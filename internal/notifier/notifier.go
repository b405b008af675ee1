// Package notifier dispatches the external side effect of a role-item
// purchase. Purchases commit first; the notifier then delivers the item
// payload to the configured webhook best-effort, so a delivery failure
// never undoes a purchase, it is just retried on a later sweep.
package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/coinkeeper/internal/config"
	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var dispatching sync.Map

type PurchaseRepo interface {
	FindUnnotified(ctx context.Context, limit int) ([]domain.Purchase, error)
	MarkNotified(ctx context.Context, purchaseID int64, notifiedAt time.Time) error
}

type ShopRepo interface {
	GetItem(ctx context.Context, itemID int64) (*domain.ShopItem, error)
}

// Grant is the webhook body the consuming bot receives for each purchase.
type Grant struct {
	PurchaseID int64           `json:"purchase_id"`
	UserID     int64           `json:"user_id"`
	ItemID     int64           `json:"item_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type Service struct {
	url           string
	purchaseRepo  PurchaseRepo
	shopRepo      ShopRepo
	client        clients.HTTPClientI
	limit         int
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, purchaseRepo PurchaseRepo, shopRepo ShopRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:           cfg.WebhookAddress + "/api/grants",
		purchaseRepo:  purchaseRepo,
		shopRepo:      shopRepo,
		client:        client,
		limit:         100,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Purchase notifier started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notifier")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	purchases, err := s.purchaseRepo.FindUnnotified(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch unnotified purchases", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, purchase := range purchases {
		purchase := purchase

		if _, loaded := dispatching.LoadOrStore(purchase.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer dispatching.Delete(purchase.ID)
				return s.dispatch(ctx, purchase)
			})
			if err != nil {
				dispatching.Delete(purchase.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching purchase grants", zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, purchase domain.Purchase) error {
	item, err := s.shopRepo.GetItem(ctx, purchase.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		// item row gone from under the foreign key should not happen;
		// stamp it so the sweep stops picking it up
		zap.L().Warn("purchase references missing item", zap.Int64("purchase_id", purchase.ID))
		return s.purchaseRepo.MarkNotified(ctx, purchase.ID, time.Now().UTC())
	}

	body, err := json.Marshal(Grant{
		PurchaseID: purchase.ID,
		UserID:     purchase.UserID,
		ItemID:     purchase.ItemID,
		Payload:    item.Payload,
	})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, _, err := s.client.Post(s.url, headers, body)
		if err == nil && statusCode >= 200 && statusCode < 300 {
			return s.purchaseRepo.MarkNotified(ctx, purchase.ID, time.Now().UTC())
		}

		zap.L().Warn("grant webhook delivery failed",
			zap.Int64("purchase_id", purchase.ID),
			zap.Int("attempt", attempt),
			zap.Int("status", statusCode),
			zap.Error(err))

		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryInterval):
			}
		}
	}

	// give up for this sweep; the purchase stays unnotified and is
	// retried on the next one
	return nil
}
