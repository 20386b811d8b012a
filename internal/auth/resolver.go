// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lexerlux/lexers-world/internal/logging"
	"github.com/lexerlux/lexers-world/internal/models"
)

// Approval messages surfaced to the frontend.
const (
	MessageUnauthenticated  = "Outsider access only. Sign in with X to request insider approval."
	MessageApprovedNoHandle = "Insider approved."
	MessageNoHandle         = "Signed in, but no Twitter handle was found. Awaiting manual approval."
)

// StatusResolver turns a request's bearer credential into a
// ViewerAuthStatus.
type StatusResolver struct {
	provider  IdentityProvider // nil when Supabase is not configured
	allowlist *AllowlistResolver
}

// NewStatusResolver creates a resolver. A nil provider means every
// request resolves to unauthenticated.
func NewStatusResolver(provider IdentityProvider, allowlist *AllowlistResolver) *StatusResolver {
	return &StatusResolver{provider: provider, allowlist: allowlist}
}

// BearerToken extracts the bearer credential from a request, or "" when
// absent.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

// Resolve runs the auth state machine for one request:
//
//	no credential                      -> {false, false, nil}
//	credential unverifiable            -> {false, false, nil}  (fail-closed)
//	verified, no extractable handle    -> {true, false, nil}
//	verified, handle extracted         -> {true, allowlisted?, handle}
//
// Status is computed fresh per request; approval can change between
// requests without a session invalidation.
func (sr *StatusResolver) Resolve(r *http.Request) models.ViewerAuthStatus {
	ctx := r.Context()

	token := BearerToken(r)
	if token == "" || sr.provider == nil {
		return models.Unauthenticated()
	}

	identity, err := sr.provider.ResolveIdentity(ctx, token)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Bearer token rejected")
		return models.Unauthenticated()
	}

	handle := identity.Handle()
	if handle == "" {
		return models.ViewerAuthStatus{IsAuthenticated: true}
	}

	return models.ViewerAuthStatus{
		IsAuthenticated: true,
		IsApproved:      sr.allowlist.IsApproved(ctx, handle),
		TwitterUsername: &handle,
	}
}

// ApprovalMessage renders the human-readable approval state.
func ApprovalMessage(status models.ViewerAuthStatus) string {
	if !status.IsAuthenticated {
		return MessageUnauthenticated
	}
	if status.IsApproved {
		if handle := status.Handle(); handle != "" {
			return fmt.Sprintf("Insider approved for @%s.", handle)
		}
		return MessageApprovedNoHandle
	}
	if handle := status.Handle(); handle != "" {
		return fmt.Sprintf("Signed in as @%s. Awaiting allowlist approval.", handle)
	}
	return MessageNoHandle
}
