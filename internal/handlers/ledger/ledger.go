package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/dto"
	"github.com/GlebRadaev/coinkeeper/internal/service/ledgerservice"
	"github.com/GlebRadaev/coinkeeper/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
	AdjustBalance(ctx context.Context, userID int64, delta int64, mode ledgerservice.AdjustMode) (int64, error)
	SetBalance(ctx context.Context, userID int64, amount int64) (int64, error)
	Transfer(ctx context.Context, sender, receiver, amount int64) (*domain.TransferResult, error)
	TopBalances(ctx context.Context, limit int) ([]domain.Account, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get user balance
//	@Description	Returns the current balance for a user; a user without an account reads as 0.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/economy/balance/{userID} [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:  userID,
		Balance: balance,
	})
}

// Adjust godoc
//
//	@Summary		Adjust user balance
//	@Description	Applies a signed delta to a balance. Mode "reject" fails a debit exceeding the balance; mode "clamp" floors at zero.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustRequestDTO	true	"Adjustment payload"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/economy/adjust [post]
func (h *LedgerHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var mode ledgerservice.AdjustMode
	switch req.Mode {
	case "", "reject":
		mode = ledgerservice.ModeReject
	case "clamp":
		mode = ledgerservice.ModeClamp
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown adjust mode")
		return
	}

	balance, err := h.ledgerService.AdjustBalance(r.Context(), req.UserID, req.Delta, mode)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:  req.UserID,
		Balance: balance,
	})
}

// SetBalance godoc
//
//	@Summary		Set user balance
//	@Description	Overwrites a balance with an exact value, floored at zero.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetBalanceRequestDTO	true	"New balance payload"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/economy/set [post]
func (h *LedgerHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	balance, err := h.ledgerService.SetBalance(r.Context(), req.UserID, req.Amount)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:  req.UserID,
		Balance: balance,
	})
}

// Transfer godoc
//
//	@Summary		Transfer between users
//	@Description	Moves funds from sender to receiver; the transfer tax is credited to the fee sink account.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	dto.TransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or self transfer"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/economy/transfer [post]
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.ledgerService.Transfer(r.Context(), req.Sender, req.Receiver, req.Amount)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		Net:           result.Net,
		Fee:           result.Fee,
		SenderBalance: result.SenderBalance,
	})
}

// Top godoc
//
//	@Summary		Top balances
//	@Description	Returns the richest users in descending balance order, capped at 20 entries.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries (default 10, max 20)"
//	@Success		200		{array}		dto.TopEntryDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/economy/top [get]
func (h *LedgerHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	accounts, err := h.ledgerService.TopBalances(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TopEntryDTO, len(accounts))
	for i, acc := range accounts {
		response[i] = dto.TopEntryDTO{
			UserID:  acc.UserID,
			Balance: acc.Balance,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrSelfTransfer):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrServiceUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
