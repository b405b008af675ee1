package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/coinkeeper/docs"
	authhandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/auth"
	ledgerhandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/ledger"
	rewardhandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/reward"
	shophandlers "github.com/GlebRadaev/coinkeeper/internal/handlers/shop"
	"github.com/GlebRadaev/coinkeeper/internal/service"
	pkgauth "github.com/GlebRadaev/coinkeeper/pkg/auth"
	"github.com/GlebRadaev/coinkeeper/pkg/utils"
)

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	SetBalance(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Top(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	ClaimDaily(w http.ResponseWriter, r *http.Request)
	RecordMessage(w http.ResponseWriter, r *http.Request)
	Spin(w http.ResponseWriter, r *http.Request)
	Remaining(w http.ResponseWriter, r *http.Request)
}

type ShopHandler interface {
	ListItems(w http.ResponseWriter, r *http.Request)
	CreateItem(w http.ResponseWriter, r *http.Request)
	DeactivateItem(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	ListPurchases(w http.ResponseWriter, r *http.Request)
}

// Pinger checks store reachability for the status endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AuthHandler   AuthHandler
	LedgerHandler LedgerHandler
	RewardHandler RewardHandler
	ShopHandler   ShopHandler

	jwtService pkgauth.JWTServiceInterface
	db         Pinger
}

func New(s *service.Services, jwtService pkgauth.JWTServiceInterface, db Pinger) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
		RewardHandler: rewardhandlers.New(s.RewardService),
		ShopHandler:   shophandlers.New(s.ShopService),
		jwtService:    jwtService,
		db:            db,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/health", h.Health)
	r.Get("/status", h.Status)

	r.Post("/api/auth/token", h.AuthHandler.IssueToken)

	r.Group(func(r chi.Router) {
		r.Use(pkgauth.Middleware(h.jwtService))

		r.Route("/api/economy", func(r chi.Router) {
			r.Get("/balance/{userID}", h.LedgerHandler.GetBalance)
			r.Get("/top", h.LedgerHandler.Top)
			r.Post("/transfer", h.LedgerHandler.Transfer)
			r.Post("/daily/{userID}", h.RewardHandler.ClaimDaily)
			r.Post("/message/{userID}", h.RewardHandler.RecordMessage)
			r.Post("/spin/{userID}", h.RewardHandler.Spin)
			r.Get("/remaining/{userID}", h.RewardHandler.Remaining)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AdminOnly)
				r.Post("/adjust", h.LedgerHandler.Adjust)
				r.Post("/set", h.LedgerHandler.SetBalance)
			})
		})

		r.Route("/api/shop", func(r chi.Router) {
			r.Get("/items", h.ShopHandler.ListItems)
			r.Post("/purchase", h.ShopHandler.Purchase)
			r.Get("/purchases/{userID}", h.ShopHandler.ListPurchases)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AdminOnly)
				r.Post("/items", h.ShopHandler.CreateItem)
				r.Delete("/items/{itemID}", h.ShopHandler.DeactivateItem)
			})
		})
	})

	return r
}

// Health godoc
//
//	@Summary		Liveness probe
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Router			/health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "healthy"})
}

// Status godoc
//
//	@Summary		Readiness probe including a store ping
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		503	{object}	utils.Response	"Store unreachable"
//	@Router			/status [get]
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "running"})
}
