// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexerlux/lexers-world/internal/config"
)

func supabaseConfig(url string) config.SupabaseConfig {
	return config.SupabaseConfig{URL: url, AnonKey: "anon-key", Timeout: 2 * time.Second}
}

func TestSupabaseProvider_ResolvesIdentity(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("Unexpected apikey header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-1","user_metadata":{"user_name":"@Lexer"}}`))
	}))
	defer srv.Close()

	p := NewSupabaseProvider(supabaseConfig(srv.URL))
	identity, err := p.ResolveIdentity(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("ResolveIdentity failed: %v", err)
	}
	if identity.UserID != "user-1" {
		t.Errorf("Expected user-1, got %q", identity.UserID)
	}
	if identity.Handle() != "lexer" {
		t.Errorf("Expected handle lexer, got %q", identity.Handle())
	}
}

func TestSupabaseProvider_FailsClosed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "401 response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "missing id",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"user_metadata":{}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			p := NewSupabaseProvider(supabaseConfig(srv.URL))
			_, err := p.ResolveIdentity(context.Background(), "tok")
			if !errors.Is(err, ErrUnauthenticated) {
				t.Errorf("Expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestSupabaseProvider_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // provoke connection refused

	p := NewSupabaseProvider(supabaseConfig(srv.URL))
	if _, err := p.ResolveIdentity(context.Background(), "tok"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func TestHSVerifier_ResolvesIdentity(t *testing.T) {
	t.Parallel()

	v := NewHSVerifier("jwt-secret")
	token := signedToken(t, "jwt-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{
			"preferred_username": "Friend",
		},
	})

	identity, err := v.ResolveIdentity(context.Background(), token)
	if err != nil {
		t.Fatalf("ResolveIdentity failed: %v", err)
	}
	if identity.UserID != "user-1" || identity.Handle() != "friend" {
		t.Errorf("Unexpected identity %+v", identity)
	}
}

func TestHSVerifier_RejectsBadTokens(t *testing.T) {
	t.Parallel()

	v := NewHSVerifier("jwt-secret")
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"wrong secret", signedToken(t, "other-secret", jwt.MapClaims{"sub": "u", "exp": future})},
		{"expired", signedToken(t, "jwt-secret", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()})},
		{"no expiry", signedToken(t, "jwt-secret", jwt.MapClaims{"sub": "u"})},
		{"no subject", signedToken(t, "jwt-secret", jwt.MapClaims{"exp": future})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := v.ResolveIdentity(context.Background(), tt.token); !errors.Is(err, ErrUnauthenticated) {
				t.Errorf("Expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}
