// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/lexerlux/lexers-world/internal/config"
)

// ChiMiddleware provides Chi-compatible middleware factories built on
// the go-chi ecosystem (cors, httprate).
type ChiMiddleware struct {
	cfg  config.APIConfig
	cors func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware factory. CORS origins default
// to empty, which blocks cross-origin browser calls until explicitly
// configured.
func NewChiMiddleware(cfg config.APIConfig) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Lexer-Viewer",
			"X-Insider-Preview-Token",
		},
		ExposedHeaders: []string{
			"X-Lexer-Viewer-Mode",
			"X-Lexer-Location-Precision",
			"X-Lexer-Fuzz-Min-Km",
			"X-Lexer-Fuzz-Max-Km",
			"X-Lexer-Fuzz-Coordinate-Decimals",
			"X-Lexer-Fx-Source",
			"X-Request-ID",
		},
		MaxAge: 86400,
	})

	return &ChiMiddleware{cfg: cfg, cors: corsHandler}
}

// CORS returns the CORS middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns an IP-keyed rate limiter for the API routes, or a
// no-op when disabled.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		m.cfg.RateLimitRequests,
		m.cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}

// RateLimitHealth returns a permissive limiter for health probes so
// aggressive monitoring never starves real traffic of budget.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	if m.cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(1000, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP))
}
