// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package config loads and validates the application configuration.
//
// Configuration is loaded once at startup via Koanf v2 with layered
// sources (highest priority wins): environment variables > optional YAML
// config file > built-in defaults. The resulting Config is immutable and
// passed to constructors; nothing reads environment variables at request
// time.
package config

import (
	"strings"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Supabase SupabaseConfig `koanf:"supabase"`
	Auth     AuthConfig     `koanf:"auth"`
	Privacy  PrivacyConfig  `koanf:"privacy"`
	FX       FXConfig       `koanf:"fx"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`     // read/write timeout
	Environment string        `koanf:"environment"` // development or production
}

// IsProduction reports whether the process runs with production semantics.
// The insider preview override is inert in production unless a preview
// token is explicitly configured.
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// SupabaseConfig holds the shared Supabase project settings. One project
// serves three roles: identity provider (auth/v1/user), allowlist store,
// and event datastore (rest/v1).
type SupabaseConfig struct {
	URL     string `koanf:"url"`
	AnonKey string `koanf:"anon_key"`

	// JWTSecret optionally enables local HS256 verification of Supabase
	// access tokens, replacing the per-request auth/v1/user network call.
	JWTSecret string `koanf:"jwt_secret"`

	// Timeout bounds identity-provider and datastore HTTP calls.
	Timeout time.Duration `koanf:"timeout"`
}

// Configured reports whether the Supabase project credentials are present.
// When false, auth resolves to unauthenticated and events fall back to the
// mock dataset.
func (s SupabaseConfig) Configured() bool {
	return s.URL != "" && s.AnonKey != ""
}

// AuthConfig holds access-resolution settings.
type AuthConfig struct {
	// InsiderAllowlist is the statically configured allowlist of handles.
	// Entries are normalized at resolver construction; invalid entries are
	// dropped.
	InsiderAllowlist []string `koanf:"insider_allowlist"`

	// PreviewToken gates the insider preview override. When empty, the
	// override is only honored outside production.
	PreviewToken string `koanf:"preview_token"`
}

// PrivacyConfig holds the geo-fuzzing parameters.
type PrivacyConfig struct {
	// FuzzSecret keys the deterministic coordinate fuzz. When empty, a
	// fixed development secret is used and a one-time warning is logged.
	FuzzSecret string `koanf:"fuzz_secret"`

	MinDistanceKm      float64 `koanf:"min_distance_km"`
	MaxDistanceKm      float64 `koanf:"max_distance_km"`
	CoordinateDecimals int     `koanf:"coordinate_decimals"`
}

// FXConfig holds currency-conversion service settings.
type FXConfig struct {
	ProviderURL     string        `koanf:"provider_url"`
	CacheTTLSeconds int           `koanf:"cache_ttl_seconds"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
}

// CacheTTL returns the cache lifetime as a duration.
func (f FXConfig) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSeconds) * time.Second
}

// APIConfig holds HTTP middleware settings.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			// 4326 references EPSG:4326, the lat/lng coordinate system the
			// globe pins use.
			Port:        4326,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Supabase: SupabaseConfig{
			URL:     "",
			AnonKey: "",
			Timeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			InsiderAllowlist: []string{},
			PreviewToken:     "",
		},
		Privacy: PrivacyConfig{
			FuzzSecret:         "",
			MinDistanceKm:      2,
			MaxDistanceKm:      8,
			CoordinateDecimals: 5,
		},
		FX: FXConfig{
			ProviderURL:     "https://open.er-api.com/v6/latest/USD",
			CacheTTLSeconds: 6 * 60 * 60,
			RequestTimeout:  4500 * time.Millisecond,
		},
		API: APIConfig{
			CORSOrigins:       []string{},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
