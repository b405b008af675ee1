package service

import (
	"math/rand"
	"time"

	"github.com/GlebRadaev/coinkeeper/internal/config"
	authhandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/auth"
	ledgerhandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/ledger"
	rewardhandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/reward"
	shophandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/shop"
	"github.com/GlebRadaev/coinkeeper/internal/pg"
	"github.com/GlebRadaev/coinkeeper/internal/repo"
	"github.com/GlebRadaev/coinkeeper/internal/service/authservice"
	"github.com/GlebRadaev/coinkeeper/internal/service/ledgerservice"
	"github.com/GlebRadaev/coinkeeper/internal/service/rewardservice"
	"github.com/GlebRadaev/coinkeeper/internal/service/shopservice"
	pkgauth "github.com/GlebRadaev/coinkeeper/pkg/auth"
)

type Services struct {
	AuthService   authhandlers.Service
	LedgerService ledgerhandlers.Service
	RewardService rewardhandlers.Service
	ShopService   shophandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) (*Services, error) {
	policy, err := rewardservice.NewPolicy(rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, err
	}

	ledgerService := ledgerservice.New(repo.AccountRepo, txManager, cfg.FeeRate, cfg.FeeSinkID)
	rewardService := rewardservice.New(repo.AccountRepo, repo.CooldownRepo, txManager, policy)
	shopService := shopservice.New(repo.ShopRepo, repo.PurchaseRepo, repo.AccountRepo, txManager)
	authService := authservice.New(&pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret), cfg.AdminSecretHash)

	return &Services{
		AuthService:   authService,
		LedgerService: ledgerService,
		RewardService: rewardService,
		ShopService:   shopService,
	}, nil
}
