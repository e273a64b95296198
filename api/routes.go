package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog/log"

	"github.com/enthugo/portfolio-site-backend/config"
	"github.com/enthugo/portfolio-site-backend/errs"
)

// setupRoutes wires the public site, the contact form, and the admin panel.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware, app config.App) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public pages
		r.Get("/", handlers.publicHandler.home())
		r.Get("/projects", handlers.publicHandler.listProjects())
		r.Get("/contact", handlers.publicHandler.contactPage())

		// Contact submission, throttled per originating client
		r.Group(func(r chi.Router) {
			r.Use(httprate.Limit(
				app.RateLimitRequests,
				app.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(rateLimitExceeded(app)),
			))
			r.Post("/inquiries", handlers.publicHandler.submitInquiry())
		})

		// Admin panel
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handlers.authHandler.login())

			r.Group(func(r chi.Router) {
				r.Use(auth.authenticate)

				r.Get("/", handlers.dashboardHandler.dashboard())

				r.Get("/projects", handlers.projectHandler.listProjects())
				r.Post("/projects", handlers.projectHandler.createProject())
				r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
				r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
				r.Patch("/projects/{projectID}", handlers.projectHandler.updateProject())
				r.Patch("/projects/{projectID}/quick", handlers.projectHandler.quickUpdateProject())
				r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

				r.Get("/inquiries", handlers.inquiryHandler.listInquiries())
				r.Delete("/inquiries/{inquiryID}", handlers.inquiryHandler.deleteInquiry())
			})
		})
	})
}

// rateLimitExceeded responds with the throttling error shape, deliberately
// distinct from validation failures.
func rateLimitExceeded(app config.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := NewResponder(log.Logger)
		responder.WriteError(w, errs.NewRateLimitedError(app.RateLimitWindow.String()))
	}
}
