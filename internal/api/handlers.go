// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package api provides the HTTP surface: Chi routing, middleware wiring,
// and the events/FX/health handlers.
package api

import (
	"time"

	"github.com/lexerlux/lexers-world/internal/auth"
	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/events"
	"github.com/lexerlux/lexers-world/internal/fx"
	"github.com/lexerlux/lexers-world/internal/privacy"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Handler carries the resolved dependencies for all endpoints.
type Handler struct {
	cfg            *config.Config
	statusResolver *auth.StatusResolver
	modeResolver   *auth.ModeResolver
	projector      *privacy.Projector
	loader         events.Loader // nil when the datastore is not configured
	fxService      *fx.Service
	startTime      time.Time
}

// NewHandler wires a Handler. loader may be nil; the events endpoint
// then serves the mock dataset.
func NewHandler(
	cfg *config.Config,
	statusResolver *auth.StatusResolver,
	modeResolver *auth.ModeResolver,
	projector *privacy.Projector,
	loader events.Loader,
	fxService *fx.Service,
) *Handler {
	return &Handler{
		cfg:            cfg,
		statusResolver: statusResolver,
		modeResolver:   modeResolver,
		projector:      projector,
		loader:         loader,
		fxService:      fxService,
		startTime:      time.Now(),
	}
}
