// Package router sets up all HTTP routes and middleware chains for the
// lawsite API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawsite/internal/handlers"
	"lawsite/internal/middleware"
	"lawsite/internal/session"
)

// New creates the chi router with all middleware and route groups wired up.
// limiter throttles the credential and second-factor endpoints, each with its
// own buckets. secure marks the CSRF cookie Secure and enables HSTS.
func New(sessionStore *session.Store, limiter *middleware.RateLimiter, secure bool, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.NewSecureHeaders(secure))
	r.Use(middleware.LoadSession(sessionStore))

	// Health check: no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Public read API used by the site.
	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", public.Settings)
		r.Get("/pages/{key}", public.Page)
	})

	// Admin API: CSRF everywhere, sessions below login.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(middleware.NewCSRF(secure))

		r.With(limiter.Limit(middleware.RouteLogin)).Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		// 2FA: requires a session but not a completed second factor.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/me", auth.Me)
			r.Get("/2fa/setup", auth.TwoFASetup)
			r.With(limiter.Limit(middleware.RouteTwoFA)).Post("/2fa/verify", auth.TwoFAVerify)
		})

		// Authenticated and 2FA-verified.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/settings", admin.GetSettings)
			r.Get("/cache/log", admin.CacheLog)

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", admin.ListPages)
				r.Get("/{key}", admin.GetPage)
				r.Post("/{key}/edit", admin.EditPage)
			})

			// Global settings are admin only.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Put("/settings", admin.UpdateSettings)
				r.Post("/settings/invalidate", admin.InvalidateSettings)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
