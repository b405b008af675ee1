package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/coinkeeper/internal/dto"
	"github.com/GlebRadaev/coinkeeper/internal/service/authservice"
	"github.com/GlebRadaev/coinkeeper/pkg/utils"
)

type Service interface {
	IssueToken(ctx context.Context, callerID int64, adminSecret string) (string, bool, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueToken godoc
//
//	@Summary		Issue a service token
//	@Description	Exchanges an optional admin secret for a bearer token used on all economy and shop routes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO	true	"Token request"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid caller id"
//	@Failure		401		{object}	utils.Response	"Invalid admin secret"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/token [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, isAdmin, err := h.authService.IssueToken(r.Context(), req.CallerID, req.AdminSecret)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCaller):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrInvalidSecret):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Token:   token,
		IsAdmin: isAdmin,
	})
}
