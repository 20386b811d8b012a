// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package models

// FxSourceLive is the only source the FX service ever reports on success.
// Failures are surfaced as errors, never as a degraded payload.
const FxSourceLive = "live"

// FxRatesResponse is the normalized currency snapshot served by /api/fx.
// RatesToUsd maps ISO 4217 codes to "multiply by this to get USD"
// factors; USD itself is always exactly 1.
//
// Invariant: every rate value is finite and > 0. A provider snapshot that
// cannot satisfy this for the full supported-currency set is rejected
// outright rather than served partially.
type FxRatesResponse struct {
	RatesToUsd map[string]float64 `json:"ratesToUsd"`
	Source     string             `json:"source"`
	UpdatedAt  *string            `json:"updatedAt"` // provider timestamp, nil when absent
}

// FxErrorResponse is the 503 body when live rates are unavailable.
type FxErrorResponse struct {
	Error string `json:"error"`
}
