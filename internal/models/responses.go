// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package models

// EventsSource labels where the served events came from, for observability.
type EventsSource string

const (
	// SourceSupabase means events were loaded live from the datastore.
	SourceSupabase EventsSource = "supabase"

	// SourceMock means the fixed local dataset was served, either because
	// the datastore is not configured or because loading it failed.
	SourceMock EventsSource = "mock"
)

// GeolocationPrivacySettings are the fuzz parameters in effect for this
// process. They are echoed in the events response (and response headers) so
// the frontend can explain the privacy radius to outsiders.
type GeolocationPrivacySettings struct {
	MinDistanceKm      float64 `json:"minDistanceKm"`
	MaxDistanceKm      float64 `json:"maxDistanceKm"`
	CoordinateDecimals int     `json:"coordinateDecimals"`
}

// EventsResponse is the full payload of GET /api/events.
//
// AuthStatus is not always the literal resolution result: when the insider
// preview override is active, it is synthesized as approved so that
// downstream consumers cannot distinguish preview access from a real
// approval. ApprovalMessage carries the auditable distinction.
type EventsResponse struct {
	Events              []EventProjection          `json:"events"`
	Source              EventsSource               `json:"source"`
	ViewerMode          ViewerMode                 `json:"viewerMode"`
	PrivacyDisclaimer   string                     `json:"privacyDisclaimer"`
	GeolocationSettings GeolocationPrivacySettings `json:"geolocationSettings"`
	AuthStatus          ViewerAuthStatus           `json:"authStatus"`
	ApprovalMessage     string                     `json:"approvalMessage"`
}
