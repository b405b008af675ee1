package shop

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/dto"
	"github.com/GlebRadaev/coinkeeper/pkg/utils"
)

type Service interface {
	ListItems(ctx context.Context, activeOnly bool) ([]domain.ShopItem, error)
	CreateItem(ctx context.Context, item *domain.ShopItem) (*domain.ShopItem, error)
	DeactivateItem(ctx context.Context, itemID int64) error
	Purchase(ctx context.Context, userID, itemID int64) (*domain.PurchaseResult, error)
	ListPurchases(ctx context.Context, userID int64) ([]domain.Purchase, error)
}

type ShopHandler struct {
	shopService Service
}

func New(shopService Service) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// ListItems godoc
//
//	@Summary		List shop items
//	@Description	Lists shop items ordered by price. By default only active items are returned.
//	@Tags			Shop
//	@Security		BearerAuth
//	@Produce		json
//	@Param			active	query		bool	false	"Only active items (default true)"
//	@Success		200		{array}		dto.ShopItemDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shop/items [get]
func (h *ShopHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if v := r.URL.Query().Get("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid active flag")
			return
		}
		activeOnly = parsed
	}

	items, err := h.shopService.ListItems(r.Context(), activeOnly)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ShopItemDTO, len(items))
	for i, item := range items {
		response[i] = dto.ShopItemDTO{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Type:        item.Type,
			Payload:     item.Payload,
			IsActive:    item.IsActive,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateItem godoc
//
//	@Summary		Create a shop item
//	@Description	Adds a purchasable item to the catalog. Role items may be bought at most once per user.
//	@Tags			Shop
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateItemRequestDTO	true	"Item payload"
//	@Success		201		{object}	dto.ShopItemDTO
//	@Failure		400		{object}	utils.Response	"Invalid item"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shop/items [post]
func (h *ShopHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "item name is required")
		return
	}

	item, err := h.shopService.CreateItem(r.Context(), &domain.ShopItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		Payload:     req.Payload,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, "item price must be positive")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.ShopItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Type:        item.Type,
		Payload:     item.Payload,
		IsActive:    item.IsActive,
	})
}

// DeactivateItem godoc
//
//	@Summary		Deactivate a shop item
//	@Description	Soft-deletes an item; purchase history stays intact.
//	@Tags			Shop
//	@Security		BearerAuth
//	@Produce		json
//	@Param			itemID	path		int	true	"Item ID"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shop/items/{itemID} [delete]
func (h *ShopHandler) DeactivateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil || itemID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.shopService.DeactivateItem(r.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "item deactivated"})
}

// Purchase godoc
//
//	@Summary		Purchase an item
//	@Description	Debits the buyer and records the purchase atomically. The item payload in the response lets the caller apply external side effects after commit.
//	@Tags			Shop
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		409		{object}	utils.Response	"Already owned"
//	@Failure		410		{object}	utils.Response	"Item inactive"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shop/purchase [post]
func (h *ShopHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 || req.ItemID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user or item id")
		return
	}

	result, err := h.shopService.Purchase(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		respondShopError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		PurchaseID: result.Purchase.ID,
		ItemID:     result.Item.ID,
		PricePaid:  result.Purchase.PricePaid,
		Balance:    result.Balance,
		ItemType:   result.Item.Type,
		Payload:    result.Item.Payload,
	})
}

// ListPurchases godoc
//
//	@Summary		Purchase history
//	@Description	Lists a user's purchases, newest first.
//	@Tags			Shop
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.PurchaseRecordDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shop/purchases/{userID} [get]
func (h *ShopHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	purchases, err := h.shopService.ListPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PurchaseRecordDTO, len(purchases))
	for i, p := range purchases {
		response[i] = dto.PurchaseRecordDTO{
			ItemID:      p.ItemID,
			PricePaid:   p.PricePaid,
			PurchasedAt: p.PurchasedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondShopError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrItemInactive):
		utils.RespondWithError(w, http.StatusGone, err.Error())
	case errors.Is(err, domain.ErrAlreadyOwned):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrServiceUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
