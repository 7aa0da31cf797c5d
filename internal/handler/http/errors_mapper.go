package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cpoint/internal/app"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/service"
	"github.com/MKhiriev/cpoint/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. Order matters
// for the wrapped "user not found" token error, which also matches
// service.ErrInvalidToken.
var errorResponses = []struct {
	target   error
	response errorResponse
}{
	{service.ErrDuplicateEmail, errorResponse{http.StatusBadRequest, app.MsgEmailAlreadyRegistered}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrMissingToken, errorResponse{http.StatusUnauthorized, app.MsgAccessTokenRequired}},
	{service.ErrTokenExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenExpired}},
	{service.ErrTokenSubjectNotFound, errorResponse{http.StatusUnauthorized, app.MsgTokenUserNotFound}},
	{service.ErrInvalidToken, errorResponse{http.StatusUnauthorized, app.MsgInvalidToken}},
}

// responseFromError maps a service error to the status code and message
// sent to the client. Validation errors carry their own message; anything
// unknown is an internal error and its text is never exposed.
func responseFromError(err error) (int, string) {
	var fieldErr *validators.FieldError
	if errors.Is(err, service.ErrInvalidInput) && errors.As(err, &fieldErr) {
		return http.StatusBadRequest, fieldErr.Message
	}

	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.response.status, e.response.message
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped failure envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	writeError(w, r, message, status)
}
