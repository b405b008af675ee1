package reward

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/dto"
	"github.com/GlebRadaev/coinkeeper/pkg/utils"
)

type Service interface {
	ClaimDaily(ctx context.Context, userID int64) (*domain.RewardResult, error)
	RecordMessage(ctx context.Context, userID int64) (*domain.RewardResult, error)
	Spin(ctx context.Context, userID int64) (*domain.RewardResult, error)
	Remaining(ctx context.Context, userID int64, kind domain.CooldownKind) (time.Duration, error)
}

type RewardHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// ClaimDaily godoc
//
//	@Summary		Claim the daily reward
//	@Description	Grants the daily reward once per 24h window. When the window is still active the response carries the remaining time.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		429		{object}	dto.RewardResponseDTO	"Cooldown active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/economy/daily/{userID} [post]
func (h *RewardHandler) ClaimDaily(w http.ResponseWriter, r *http.Request) {
	h.claim(w, r, h.rewardService.ClaimDaily)
}

// RecordMessage godoc
//
//	@Summary		Record message activity
//	@Description	Grants the per-message micro reward, rate-limited to one grant per 20 seconds.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		429		{object}	dto.RewardResponseDTO	"Cooldown active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/economy/message/{userID} [post]
func (h *RewardHandler) RecordMessage(w http.ResponseWriter, r *http.Request) {
	h.claim(w, r, h.rewardService.RecordMessage)
}

// Spin godoc
//
//	@Summary		Spin for a streak-scaled reward
//	@Description	Draws from a tiered distribution and adds the streak bonus. Spinning within the grace window extends the streak; later spins reset it.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		429		{object}	dto.RewardResponseDTO	"Cooldown active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/economy/spin/{userID} [post]
func (h *RewardHandler) Spin(w http.ResponseWriter, r *http.Request) {
	h.claim(w, r, h.rewardService.Spin)
}

// Remaining godoc
//
//	@Summary		Time until the next claim
//	@Description	Reports how long until the given reward kind may be claimed again, without claiming. Zero means claimable now.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int		true	"User ID"
//	@Param			kind	query		string	true	"Reward kind"	Enums(daily, message, spin)
//	@Success		200		{object}	dto.CooldownResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id or kind"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/economy/remaining/{userID} [get]
func (h *RewardHandler) Remaining(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	kind := domain.CooldownKind(r.URL.Query().Get("kind"))

	remaining, err := h.rewardService.Remaining(r.Context(), userID, kind)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownKind) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrServiceUnavailable) {
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CooldownResponseDTO{
		Kind:             string(kind),
		Claimable:        remaining == 0,
		RemainingSeconds: remaining.Seconds(),
	})
}

func (h *RewardHandler) claim(w http.ResponseWriter, r *http.Request, grant func(ctx context.Context, userID int64) (*domain.RewardResult, error)) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := grant(r.Context(), userID)
	if err != nil {
		if cerr, ok := domain.AsCooldownActive(err); ok {
			utils.RespondWithJSON(w, http.StatusTooManyRequests, dto.RewardResponseDTO{
				Granted:          false,
				RemainingSeconds: cerr.Remaining.Seconds(),
			})
			return
		}
		if errors.Is(err, domain.ErrServiceUnavailable) {
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RewardResponseDTO{
		Granted: result.Granted,
		Amount:  result.Amount,
		Balance: result.Balance,
		Streak:  result.Streak,
	})
}
