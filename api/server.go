/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/compute, /api/montecarlo   Model runs
  /api/assessments/*              Saved assessments
  /api/templates/*                Industry templates
  /api/export/*, /api/import      Configuration transfer
  /api/reset                      Store reset (dev only)

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Model routes
		r.Get("/defaults", h.GetDefaults)
		r.Post("/validate", h.ValidateParameters)
		r.Post("/compute", h.Compute)
		r.Post("/montecarlo", h.MonteCarlo)

		// Assessment routes
		r.Route("/assessments", func(r chi.Router) {
			r.Get("/", h.ListAssessments)
			r.Post("/", h.CreateAssessment)
			r.Get("/{id}", h.GetAssessment)
			r.Put("/{id}", h.UpdateAssessment)
			r.Delete("/{id}", h.DeleteAssessment)
			r.Post("/{id}/compute", h.ComputeAssessment)
		})

		// Template routes
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.ListTemplates)
			r.Post("/apply", h.ApplyTemplate)
			r.Get("/{name}", h.GetTemplateByName)
		})

		// Transfer routes
		r.Route("/export", func(r chi.Router) {
			r.Post("/csv", h.ExportCSV)
			r.Post("/json", h.ExportJSON)
		})
		r.Post("/import", h.Import)

		// Admin routes
		r.Post("/reset", h.ResetDatabase)
		r.Get("/health", h.Health)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Value Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Value Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/defaults">/api/defaults</a> - Default parameters</li>
<li><a href="/api/templates">/api/templates</a> - Industry templates</li>
<li><a href="/api/assessments">/api/assessments</a> - Saved assessments</li>
</ul>
</body>
</html>`))
	})

	return r
}
