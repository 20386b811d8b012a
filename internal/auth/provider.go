// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned by identity providers when a credential
// cannot be verified: expired, malformed, revoked, or the provider itself
// is unreachable. Callers treat all of these identically (fail-closed).
var ErrUnauthenticated = errors.New("credential could not be verified")

// Identity is a verified user record from the identity provider.
type Identity struct {
	UserID string

	// Metadata carries the provider's user_metadata object. Handle
	// extraction reads platform-handle fields from it.
	Metadata map[string]any
}

// Handle extracts the normalized platform handle from the identity
// metadata, or "" when none is present.
func (i *Identity) Handle() string {
	return HandleFromMetadata(i.Metadata)
}

// IdentityProvider verifies a bearer credential and returns the identity
// it belongs to.
//
// Implementations must return ErrUnauthenticated (possibly wrapped) for
// any verification failure, including provider unavailability. A token
// that cannot be verified is treated as no token at all.
type IdentityProvider interface {
	ResolveIdentity(ctx context.Context, accessToken string) (*Identity, error)
}
