package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/cpoint/internal/app"
	"github.com/MKhiriev/cpoint/internal/logger"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
	headerRetryAfter         = "Retry-After"
)

// withRateLimit counts the request against the client address and answers
// 429 once the quota of the current window is spent. If the limiter fails
// the request is let through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		result, err := h.limiter.Allow(r.Context(), clientAddress(r))
		if err != nil {
			log.Err(err).Msg("rate limiter failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set(headerRateLimitLimit, strconv.Itoa(result.Limit))
		w.Header().Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))
		w.Header().Set(headerRateLimitReset, strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter(time.Now()).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set(headerRetryAfter, strconv.Itoa(retryAfter))

			log.Warn().Str("client", clientAddress(r)).Msg("rate limit exceeded")
			writeError(w, r, app.MsgTooManyAttempts, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientAddress returns the host part of r.RemoteAddr. It is the socket
// peer unless the handler trusts forwarded headers, in which case
// middleware.RealIP has already replaced it.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
