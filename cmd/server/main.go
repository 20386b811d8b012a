// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Command server runs the Lexer's World API: the event globe endpoint
// with viewer-privacy projection, FX rates, and health/metrics, all
// supervised under a suture tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lexerlux/lexers-world/internal/api"
	"github.com/lexerlux/lexers-world/internal/auth"
	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/events"
	"github.com/lexerlux/lexers-world/internal/fx"
	"github.com/lexerlux/lexers-world/internal/logging"
	"github.com/lexerlux/lexers-world/internal/privacy"
	"github.com/lexerlux/lexers-world/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Int("port", cfg.Server.Port).
		Msg("Starting Lexer's World")

	// Identity resolution. A configured JWT secret switches token
	// verification from the per-request auth/v1/user call to local HS256.
	var provider auth.IdentityProvider
	var store auth.AllowlistStore
	var loader events.Loader
	switch {
	case cfg.Supabase.JWTSecret != "":
		provider = auth.NewHSVerifier(cfg.Supabase.JWTSecret)
		logging.Info().Msg("Identity provider: local HS256 verification")
	case cfg.Supabase.Configured():
		provider = auth.NewSupabaseProvider(cfg.Supabase)
		logging.Info().Msg("Identity provider: Supabase auth endpoint")
	default:
		logging.Warn().Msg("No identity provider configured; all viewers resolve as outsiders")
	}
	if cfg.Supabase.Configured() {
		store = auth.NewSupabaseAllowlistStore(cfg.Supabase)
		loader = events.NewSupabaseStore(cfg.Supabase)
	} else {
		logging.Warn().Msg("Datastore not configured; serving the mock event dataset")
	}

	allowlist := auth.NewAllowlistResolver(cfg.Auth.InsiderAllowlist, store)
	statusResolver := auth.NewStatusResolver(provider, allowlist)
	modeResolver := auth.NewModeResolver(cfg.Auth.PreviewToken, cfg.Server.IsProduction())

	projector := privacy.NewProjector(privacy.NewFuzzer(cfg.Privacy))
	fxService := fx.NewService(cfg.FX)

	handler := api.NewHandler(cfg, statusResolver, modeResolver, projector, loader, fxService)
	router := api.NewRouter(handler, api.NewChiMiddleware(cfg.API))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)
	tree.Add(supervisor.NewHTTPServerService(server, treeCfg.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree exited with error")
	}
	logging.Info().Msg("Shutdown complete")
}
