// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Clamp bounds for tunable parameters. Out-of-range values are clamped
// rather than rejected so a bad deployment value degrades instead of
// crashing the server.
const (
	minFuzzDistanceKm = 0.1
	maxFuzzDistanceKm = 50.0

	minCoordinateDecimals = 2
	maxCoordinateDecimals = 6

	minFXCacheTTLSeconds = 300
	maxFXCacheTTLSeconds = 86400
)

// Validate normalizes and validates the configuration. It mutates the
// receiver: out-of-range privacy and FX parameters are clamped into their
// supported ranges, and allowlist entries are trimmed.
func (c *Config) Validate() error {
	c.normalize()

	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSupabase(); err != nil {
		return err
	}
	if err := c.validatePrivacy(); err != nil {
		return err
	}
	if err := c.validateFX(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	return c.validateLogging()
}

// normalize clamps tunables into their supported ranges and tidies
// string fields before validation runs.
func (c *Config) normalize() {
	c.Server.Environment = strings.ToLower(strings.TrimSpace(c.Server.Environment))
	c.Supabase.URL = strings.TrimRight(strings.TrimSpace(c.Supabase.URL), "/")

	// Fuzz distances: clamp, then force min <= max.
	c.Privacy.MinDistanceKm = clampFloat(c.Privacy.MinDistanceKm, minFuzzDistanceKm, maxFuzzDistanceKm)
	c.Privacy.MaxDistanceKm = clampFloat(c.Privacy.MaxDistanceKm, minFuzzDistanceKm, maxFuzzDistanceKm)
	if c.Privacy.MaxDistanceKm < c.Privacy.MinDistanceKm {
		c.Privacy.MaxDistanceKm = c.Privacy.MinDistanceKm
	}
	c.Privacy.CoordinateDecimals = clampInt(c.Privacy.CoordinateDecimals, minCoordinateDecimals, maxCoordinateDecimals)

	c.FX.CacheTTLSeconds = clampInt(c.FX.CacheTTLSeconds, minFXCacheTTLSeconds, maxFXCacheTTLSeconds)

	trimmed := make([]string, 0, len(c.Auth.InsiderAllowlist))
	for _, entry := range c.Auth.InsiderAllowlist {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			trimmed = append(trimmed, entry)
		}
	}
	c.Auth.InsiderAllowlist = trimmed
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "production", "test":
		return nil
	default:
		return fmt.Errorf("server.environment must be development, production, or test, got %q", c.Server.Environment)
	}
}

func (c *Config) validateSupabase() error {
	if c.Supabase.URL != "" {
		parsed, err := url.Parse(c.Supabase.URL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("supabase.url is not a valid URL: %q", c.Supabase.URL)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("supabase.url must use http or https, got %q", parsed.Scheme)
		}
	}
	if c.Supabase.Timeout <= 0 {
		return fmt.Errorf("supabase.timeout must be positive, got %v", c.Supabase.Timeout)
	}
	return nil
}

func (c *Config) validatePrivacy() error {
	// Clamping in normalize guarantees the ranges; this guards against a
	// future refactor dropping that step.
	if c.Privacy.MinDistanceKm > c.Privacy.MaxDistanceKm {
		return fmt.Errorf("privacy.min_distance_km (%v) exceeds privacy.max_distance_km (%v)",
			c.Privacy.MinDistanceKm, c.Privacy.MaxDistanceKm)
	}
	return nil
}

func (c *Config) validateFX() error {
	if c.FX.ProviderURL == "" {
		return fmt.Errorf("fx.provider_url must not be empty")
	}
	parsed, err := url.Parse(c.FX.ProviderURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("fx.provider_url is not a valid URL: %q", c.FX.ProviderURL)
	}
	if c.FX.RequestTimeout <= 0 || c.FX.RequestTimeout > time.Minute {
		return fmt.Errorf("fx.request_timeout must be in (0, 1m], got %v", c.FX.RequestTimeout)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.RateLimitRequests < 1 {
		return fmt.Errorf("api.rate_limit_requests must be at least 1, got %d", c.API.RateLimitRequests)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive, got %v", c.API.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "":
	default:
		return fmt.Errorf("logging.level %q is not a recognized level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
		return nil
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
