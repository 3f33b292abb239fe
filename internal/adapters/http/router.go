// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/club-records/internal/adapters/http/dto"
	"github.com/jsamuelsen11/club-records/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes and
// methods get problem+json bodies like every other error.
func NewRouter(
	recordHandler *handlers.RecordHandler,
	clubHandler *handlers.ClubHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/records", recordHandler.ListKinds)
		r.Post("/records/{kind}/validate", recordHandler.Validate)
		r.Post("/records/{kind}/batch", recordHandler.ValidateBatch)

		r.Post("/clubs/generate", clubHandler.Generate)
	})

	return r
}
