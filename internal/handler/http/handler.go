package http

import (
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/ratelimit"
	"github.com/MKhiriev/cpoint/internal/service"
)

type Handler struct {
	services *service.Services

	// limiter guards register and login; nil disables rate limiting.
	limiter ratelimit.Limiter

	// trustForwarded lets proxy headers replace the socket address.
	trustForwarded bool

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(*Handler)

// WithForwardedClientAddress takes the client address from True-Client-IP,
// X-Real-IP or X-Forwarded-For. Without it the rate limiter keys on the
// socket address, since any caller can send those headers.
func WithForwardedClientAddress() Option {
	return func(h *Handler) {
		h.trustForwarded = true
	}
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		limiter:  limiter,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Bool("rate_limited", limiter != nil).
		Bool("trust_forwarded", h.trustForwarded).
		Msg("http handler created")
	return h
}
