// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lexerlux/lexers-world/internal/middleware"
)

// Router assembles the HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router around the given handler and middleware
// factory.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	return &Router{handler: handler, chiMiddleware: chiMW}
}

// Setup configures all routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is handled

	r.Route("/api", func(r chi.Router) {
		r.With(router.chiMiddleware.RateLimitHealth()).Get("/health", router.handler.Health)
		r.With(router.chiMiddleware.RateLimitHealth()).Get("/health/live", router.handler.Liveness)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(middleware.PrometheusMetrics)

			r.Get("/events", router.handler.Events)
			r.Get("/fx", router.handler.FxRates)
			r.Get("/locations", router.handler.Locations)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
