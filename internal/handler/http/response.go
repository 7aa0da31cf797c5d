package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/cpoint/internal/app"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/utils"
	"github.com/MKhiriev/cpoint/models"
)

// decodeJSON reads the request body into dst. An empty body leaves dst at
// its zero value so that validation reports the missing fields. The body
// must hold a single JSON value; only whitespace may follow it. On failure
// the error response is already written and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)

	err := decoder.Decode(dst)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		err = decoder.Decode(&struct{}{})
		if errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = ErrTrailingJSON
		}
	}

	log := logger.FromRequest(r)

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		log.Warn().Int64("limit", maxBytesErr.Limit).Msg("request body too large")
		writeError(w, r, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
		return false
	}

	log.Err(err).Msg("Invalid JSON was passed")
	writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, response models.Response, status int) {
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteError(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
