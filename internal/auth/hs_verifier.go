// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HSVerifier verifies Supabase access tokens locally using the project's
// JWT secret (HS256). It avoids the per-request network round-trip of
// SupabaseProvider at the cost of not seeing session revocations before
// token expiry. Enabled when SUPABASE_JWT_SECRET is configured.
type HSVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewHSVerifier creates a local verifier for the given HS256 secret.
func NewHSVerifier(secret string) *HSVerifier {
	return &HSVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithExpirationRequired(),
		),
	}
}

// ResolveIdentity parses and verifies the token signature and expiry,
// then extracts the subject and user metadata from the claims.
func (v *HSVerifier) ResolveIdentity(_ context.Context, accessToken string) (*Identity, error) {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(accessToken, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("%w: token missing subject", ErrUnauthenticated)
	}

	metadata, _ := claims["user_metadata"].(map[string]any)

	return &Identity{UserID: subject, Metadata: metadata}, nil
}
