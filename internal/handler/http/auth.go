package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		status := statusFromError(err, http.StatusBadRequest)
		message := messageFromError(err, signupMessages, app.MsgUserNotCreated)
		log.Err(err).Int("status", status).Str("reason", message).Msg("signup rejected")
		utils.WriteError(w, message, status)
		return
	}

	log.Debug().Str("id", account.ID).Msg("account created")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserCreated}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		status := statusFromError(err, http.StatusBadRequest)
		message := messageFromError(err, loginMessages, app.MsgSomethingWentWrong)
		log.Err(err).Int("status", status).Str("reason", message).Msg("login rejected")
		utils.WriteError(w, message, status)
		return
	}

	log.Debug().Msg("token issued")
	utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

// verify echoes the claims the auth middleware put into the request context.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no claims in request context")
		utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, claims, http.StatusOK)
}
