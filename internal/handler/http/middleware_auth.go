package http

import (
	"net/http"

	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/service"
	"github.com/MKhiriev/cpoint/internal/utils"
)

// auth is the request gate. It resolves the bearer token of the
// "Authorization" header to a live user through
// [service.AuthService.Authenticate] and stores that user in the request
// context (read it back with [utils.UserFromContext]).
//
// Rejections, all 401 unless the lookup itself failed:
//   - header missing or not a Bearer credential: "Access token required"
//   - token malformed or badly signed: "Invalid token"
//   - token past its expiry: "Token expired"
//   - subject no longer exists: "Invalid token - user not found"
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("request without access token")
			writeServiceError(w, r, service.ErrMissingToken)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
