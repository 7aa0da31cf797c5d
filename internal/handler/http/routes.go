package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodySize caps JSON payloads at 10 MiB.
const maxRequestBodySize = 10 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustForwarded {
		router.Use(middleware.RealIP)
	}
	router.Use(
		h.withTraceID,
		h.withLogging,
		withRecoverer,
		middleware.Compress(5, "application/json", "text/plain"),
		withGZipRequest,
		middleware.RequestSize(maxRequestBodySize),
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Group(func(r chi.Router) {
				r.Use(h.withRateLimit)
				r.Post("/register", h.register)
				r.Post("/login", h.login)
			})

			// routes behind the request gate
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.me)
				r.Put("/profile", h.updateProfile)
				r.Post("/logout", h.logout)
			})
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
