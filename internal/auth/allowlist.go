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
	"net/url"

	"github.com/goccy/go-json"

	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/logging"
)

// AllowlistStore answers whether a handle appears in an externally
// managed allowlist.
type AllowlistStore interface {
	Contains(ctx context.Context, handle string) (bool, error)
}

// SupabaseAllowlistStore queries the allowlist table through the
// Supabase REST endpoint with a case-insensitive handle match.
type SupabaseAllowlistStore struct {
	baseURL string
	anonKey string
	client  *http.Client
}

// NewSupabaseAllowlistStore creates a store from the Supabase settings.
func NewSupabaseAllowlistStore(cfg config.SupabaseConfig) *SupabaseAllowlistStore {
	return &SupabaseAllowlistStore{
		baseURL: cfg.URL,
		anonKey: cfg.AnonKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// allowlistRow is a single REST row from the allowlist table.
type allowlistRow struct {
	TwitterUsername string `json:"twitter_username"`
}

// Contains queries the allowlist table for the handle. Rows are
// re-normalized before comparison so a sloppily entered admin row
// ("@Handle ") still matches.
func (s *SupabaseAllowlistStore) Contains(ctx context.Context, handle string) (bool, error) {
	query := url.Values{}
	query.Set("select", "twitter_username")
	query.Set("twitter_username", "ilike."+handle)
	endpoint := s.baseURL + "/rest/v1/allowlist?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build allowlist request: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("allowlist query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxUserResponseBytes))
		return false, fmt.Errorf("allowlist query returned status %d", resp.StatusCode)
	}

	var rows []allowlistRow
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxUserResponseBytes)).Decode(&rows); err != nil {
		return false, fmt.Errorf("malformed allowlist payload: %w", err)
	}

	for _, row := range rows {
		if NormalizeHandle(row.TwitterUsername) == handle {
			return true, nil
		}
	}
	return false, nil
}

// AllowlistResolver combines the statically configured allowlist with an
// external store. Approval is the union of both sources.
type AllowlistResolver struct {
	static map[string]struct{}
	store  AllowlistStore
}

// NewAllowlistResolver builds a resolver from configured entries and an
// optional store (nil means static-only). Entries that do not normalize
// to valid handles are dropped.
func NewAllowlistResolver(entries []string, store AllowlistStore) *AllowlistResolver {
	static := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if handle := NormalizeHandle(entry); handle != "" {
			static[handle] = struct{}{}
		}
	}
	return &AllowlistResolver{static: static, store: store}
}

// IsApproved reports whether the normalized handle is allowlisted.
//
// The static list is authoritative and consulted first; a static hit
// never depends on store availability. Store failures degrade to "not
// approved by store" with a log line, never an error to the caller.
func (r *AllowlistResolver) IsApproved(ctx context.Context, handle string) bool {
	if _, ok := r.static[handle]; ok {
		return true
	}
	if r.store == nil {
		return false
	}

	approved, err := r.store.Contains(ctx, handle)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Msg("Allowlist store unavailable, treating handle as not approved")
		return false
	}
	return approved
}
