// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/logging"
)

// maxUserResponseBytes bounds the identity-provider response body.
const maxUserResponseBytes = 1 << 20

// SupabaseProvider verifies bearer tokens by calling the Supabase Auth
// user endpoint (GET /auth/v1/user). The provider is the source of truth:
// revoked sessions fail here even if the token is well-formed.
type SupabaseProvider struct {
	baseURL string
	anonKey string
	client  *http.Client
}

// NewSupabaseProvider creates a provider from the Supabase settings.
func NewSupabaseProvider(cfg config.SupabaseConfig) *SupabaseProvider {
	return &SupabaseProvider{
		baseURL: cfg.URL,
		anonKey: cfg.AnonKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// supabaseUser is the subset of the Auth user payload we consume.
type supabaseUser struct {
	ID           string         `json:"id"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// ResolveIdentity verifies the token against the Auth user endpoint.
// Any failure, including network errors and non-200 responses, returns
// ErrUnauthenticated.
func (p *SupabaseProvider) ResolveIdentity(ctx context.Context, accessToken string) (*Identity, error) {
	endpoint := p.baseURL + "/auth/v1/user"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", p.anonKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		logging.Ctx(ctx).Debug().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("Identity provider request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxUserResponseBytes))
		return nil, fmt.Errorf("%w: identity provider returned status %d", ErrUnauthenticated, resp.StatusCode)
	}

	var user supabaseUser
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxUserResponseBytes)).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: malformed user payload: %v", ErrUnauthenticated, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: user payload missing id", ErrUnauthenticated)
	}

	return &Identity{UserID: user.ID, Metadata: user.UserMetadata}, nil
}
