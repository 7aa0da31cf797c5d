package handler

import (
	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/handler/http"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/ratelimit"
	"github.com/MKhiriev/cpoint/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. limiter may be
// nil to serve without rate limiting.
func NewHandlers(services *service.Services, limiter ratelimit.Limiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		var opts []http.Option
		if cfg.TrustForwardedHeaders {
			opts = append(opts, http.WithForwardedClientAddress())
		}
		handlers.HTTP = http.NewHandler(services, limiter, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
