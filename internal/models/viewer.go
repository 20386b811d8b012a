// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package models

// ViewerMode is the binary access level resolved per request. It is derived
// from the auth status (or the dev preview override) and never stored.
type ViewerMode string

const (
	// ViewerOutsider sees fuzzed coordinates and redacted venue details.
	ViewerOutsider ViewerMode = "outsider"

	// ViewerInsider sees precise data. Requires authentication plus
	// allowlist approval, or an explicit preview override.
	ViewerInsider ViewerMode = "insider"
)

// ViewerAuthStatus is the normalized result of resolving a request's
// credentials against the identity provider and the allowlist.
//
// Invariants: IsApproved implies IsAuthenticated; TwitterUsername is nil
// whenever the viewer is unauthenticated or no normalizable handle was
// found in the identity metadata.
type ViewerAuthStatus struct {
	IsAuthenticated bool    `json:"isAuthenticated"`
	IsApproved      bool    `json:"isApproved"`
	TwitterUsername *string `json:"twitterUsername"`
}

// Unauthenticated is the terminal status for requests without a verifiable
// credential.
func Unauthenticated() ViewerAuthStatus {
	return ViewerAuthStatus{}
}

// Handle returns the normalized handle or "" when none is present.
func (s ViewerAuthStatus) Handle() string {
	if s.TwitterUsername == nil {
		return ""
	}
	return *s.TwitterUsername
}
