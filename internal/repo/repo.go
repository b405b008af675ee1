package repo

import (
	"github.com/GlebRadaev/coinkeeper/internal/pg"
	accountrepo "github.com/GlebRadaev/coinkeeper/internal/repo/account-repo"
	cooldownrepo "github.com/GlebRadaev/coinkeeper/internal/repo/cooldown-repo"
	purchaserepo "github.com/GlebRadaev/coinkeeper/internal/repo/purchase-repo"
	shoprepo "github.com/GlebRadaev/coinkeeper/internal/repo/shop-repo"
)

type Repositories struct {
	AccountRepo  *accountrepo.Repository
	CooldownRepo *cooldownrepo.Repository
	ShopRepo     *shoprepo.Repository
	PurchaseRepo *purchaserepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:  accountrepo.New(conn),
		CooldownRepo: cooldownrepo.New(conn),
		ShopRepo:     shoprepo.New(conn),
		PurchaseRepo: purchaserepo.New(conn),
	}
}
