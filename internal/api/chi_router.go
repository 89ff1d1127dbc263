// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bookrec/bookrec/internal/middleware"
)

// Router wires handlers and middleware into the served route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a new router with all routes configured. staticDir
// may be empty, in which case no frontend is served and unmatched paths
// return 404.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, staticDir string) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
		staticDir:     staticDir,
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. CORS must be
	// global to handle OPTIONS preflight.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Book endpoints. The paths and payload shapes are the contract the
	// frontend was built against; they live at the root, unversioned.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/top-books", router.handler.TopBooks)
		r.Get("/recommend", router.handler.Recommend)
	})

	// Health endpoints with permissive rate limiting for monitoring.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Observability
	r.Handle("/metrics", promhttp.Handler())

	// Static files & SPA fallback. Must be last, catches all unmatched
	// routes.
	if router.staticDir != "" {
		r.Get("/*", router.serveStaticOrIndex)
	}

	return r
}
