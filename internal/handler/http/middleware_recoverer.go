package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/cpoint/internal/app"
	"github.com/MKhiriev/cpoint/internal/logger"
)

// withRecoverer turns a panic in a downstream handler into the JSON 500
// envelope. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as intended.
func withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeError(w, r, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
