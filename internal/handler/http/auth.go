package http

import (
	"net/http"

	"github.com/MKhiriev/cpoint/internal/app"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/utils"
	"github.com/MKhiriev/cpoint/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	result, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", result.User.ID).Msg("user registered")

	view := result.User.View()
	writeJSON(w, r, models.Response{
		Success: true,
		Message: app.MsgUserRegistered,
		Token:   result.Token.SignedString,
		User:    &view,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	result, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", result.User.ID).Msg("user logged in")

	view := result.User.View()
	writeJSON(w, r, models.Response{
		Success: true,
		Message: app.MsgLoginSuccessful,
		Token:   result.Token.SignedString,
		User:    &view,
	}, http.StatusOK)
}

// me returns the user resolved by the request gate.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrUserNotInContext)
		return
	}

	view := user.ViewWithCreatedAt()
	writeJSON(w, r, models.Response{Success: true, User: &view}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.UserFromContext(ctx)
	if !ok {
		writeServiceError(w, r, ErrUserNotInContext)
		return
	}

	var request models.ProfileUpdateRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	updated, err := h.services.AuthService.UpdateProfile(ctx, user.ID, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", updated.ID).Msg("profile updated")

	view := updated.ViewWithUpdatedAt()
	writeJSON(w, r, models.Response{
		Success: true,
		Message: app.MsgProfileUpdated,
		User:    &view,
	}, http.StatusOK)
}

// logout only acknowledges the request. Tokens are stateless and stay
// valid until they expire; the client is expected to discard its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if user, ok := utils.UserFromContext(r.Context()); ok {
		logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user logged out")
	}

	writeJSON(w, r, models.Response{Success: true, Message: app.MsgLogoutSuccessful}, http.StatusOK)
}
