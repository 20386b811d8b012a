// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/lexerlux/lexers-world/internal/auth"
	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/events"
	"github.com/lexerlux/lexers-world/internal/fx"
	"github.com/lexerlux/lexers-world/internal/models"
	"github.com/lexerlux/lexers-world/internal/privacy"
)

// stubIdentityProvider resolves every token to a fixed identity.
type stubIdentityProvider struct {
	identity *auth.Identity
	err      error
}

func (s *stubIdentityProvider) ResolveIdentity(context.Context, string) (*auth.Identity, error) {
	return s.identity, s.err
}

// stubLoader returns fixed events or an error.
type stubLoader struct {
	events []models.Event
	err    error
}

func (s *stubLoader) LoadEvents(context.Context) ([]models.Event, error) {
	return s.events, s.err
}

func preciseEvent() models.Event {
	return models.Event{
		ID:             "evt-live",
		Name:           "Warehouse Rave",
		ManualLocation: "London, UK",
		Address:        "1 Secret Lane, London",
		Lat:            51.5007,
		Lng:            -0.1246,
		Description:    "Find the blue door.",
		IsLexerComing:  models.AttendanceYes,
		InviteURL:      "https://example.com/rave",
		Date:           "2026-10-01T22:00:00Z",
		Cost:           30,
		Currency:       "GBP",
	}
}

type testServerOpts struct {
	provider  auth.IdentityProvider
	allowlist []string
	loader    *stubLoader
	preview   string
	prod      bool
	fxURL     string
}

func newTestServer(t *testing.T, opts testServerOpts) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Environment = "development"
	if opts.prod {
		cfg.Server.Environment = "production"
	}
	cfg.Auth.PreviewToken = opts.preview

	fuzzer := privacy.NewFuzzer(config.PrivacyConfig{
		FuzzSecret:         "api-test-secret",
		MinDistanceKm:      2,
		MaxDistanceKm:      8,
		CoordinateDecimals: 5,
	})

	fxURL := opts.fxURL
	if fxURL == "" {
		fxURL = "http://127.0.0.1:1" // unreachable; FX tests override
	}
	fxService := fx.NewService(config.FXConfig{
		ProviderURL:     fxURL,
		CacheTTLSeconds: 3600,
		RequestTimeout:  500 * time.Millisecond,
	})

	statusResolver := auth.NewStatusResolver(opts.provider, auth.NewAllowlistResolver(opts.allowlist, nil))
	modeResolver := auth.NewModeResolver(opts.preview, opts.prod)

	var loader events.Loader
	if opts.loader != nil {
		loader = opts.loader
	}

	handler := NewHandler(cfg, statusResolver, modeResolver, privacy.NewProjector(fuzzer), loader, fxService)
	srv := httptest.NewServer(NewRouter(handler, NewChiMiddleware(config.APIConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
	})).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func getEvents(t *testing.T, srv *httptest.Server, mutate func(*http.Request)) (*http.Response, []byte, models.EventsResponse) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/events", nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if mutate != nil {
		mutate(req)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	var payload models.EventsResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("Failed to decode events response: %v", err)
	}
	return resp, raw, payload
}

func TestEvents_UnauthenticatedOutsider(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOpts{
		loader: &stubLoader{events: []models.Event{preciseEvent()}},
		prod:   true,
	})

	resp, raw, payload := getEvents(t, srv, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if payload.ViewerMode != models.ViewerOutsider {
		t.Errorf("Expected outsider mode, got %q", payload.ViewerMode)
	}
	if payload.Source != models.SourceSupabase {
		t.Errorf("Expected supabase source, got %q", payload.Source)
	}
	if len(payload.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(payload.Events))
	}

	event := payload.Events[0]
	if event.Address != privacy.RedactionLabel {
		t.Errorf("Expected blackboxed address, got %q", event.Address)
	}
	if event.IsLexerComing != models.AttendanceUnknown {
		t.Errorf("Expected unknown attendance, got %v", event.IsLexerComing)
	}
	if event.Lat == 51.5007 && event.Lng == -0.1246 {
		t.Error("Outsider response leaked precise coordinates")
	}
	if event.LocationPrecision != models.PrecisionFuzzed {
		t.Errorf("Expected fuzzed precision, got %q", event.LocationPrecision)
	}
	if !strings.Contains(string(raw), `"isLexerComing":"?"`) {
		t.Error(`Expected "?" attendance sentinel on the wire`)
	}
	if payload.ApprovalMessage != auth.MessageUnauthenticated {
		t.Errorf("Unexpected approval message %q", payload.ApprovalMessage)
	}
	if payload.PrivacyDisclaimer != privacy.DisclaimerOutsider {
		t.Errorf("Unexpected disclaimer %q", payload.PrivacyDisclaimer)
	}

	if got := resp.Header.Get("X-Lexer-Viewer-Mode"); got != "outsider" {
		t.Errorf("Viewer mode header = %q", got)
	}
	if got := resp.Header.Get("X-Lexer-Location-Precision"); got != "fuzzed" {
		t.Errorf("Precision header = %q", got)
	}
	if got := resp.Header.Get("X-Lexer-Fuzz-Min-Km"); got != "2" {
		t.Errorf("Fuzz min header = %q", got)
	}
	if got := resp.Header.Get("X-Lexer-Fuzz-Max-Km"); got != "8" {
		t.Errorf("Fuzz max header = %q", got)
	}
	if got := resp.Header.Get("X-Lexer-Fuzz-Coordinate-Decimals"); got != "5" {
		t.Errorf("Fuzz decimals header = %q", got)
	}
	if got := resp.Header.Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestEvents_AllowlistedInsider(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOpts{
		provider: &stubIdentityProvider{identity: &auth.Identity{
			UserID:   "u1",
			Metadata: map[string]any{"user_name": "@Lexer"},
		}},
		allowlist: []string{"lexer"},
		loader:    &stubLoader{events: []models.Event{preciseEvent()}},
		prod:      true,
	})

	resp, _, payload := getEvents(t, srv, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer valid-token")
	})

	if payload.ViewerMode != models.ViewerInsider {
		t.Fatalf("Expected insider mode, got %q", payload.ViewerMode)
	}
	if !payload.AuthStatus.IsApproved || !payload.AuthStatus.IsAuthenticated {
		t.Errorf("Expected approved auth status, got %+v", payload.AuthStatus)
	}

	event := payload.Events[0]
	if event.Address != "1 Secret Lane, London" {
		t.Errorf("Insider should see the precise address, got %q", event.Address)
	}
	if event.Lat != 51.5007 || event.Lng != -0.1246 {
		t.Errorf("Insider should see precise coordinates, got (%v,%v)", event.Lat, event.Lng)
	}
	if event.IsLexerComing != models.AttendanceYes {
		t.Errorf("Insider should see real attendance, got %v", event.IsLexerComing)
	}
	if payload.ApprovalMessage != "Insider approved for @lexer." {
		t.Errorf("Unexpected approval message %q", payload.ApprovalMessage)
	}
	if got := resp.Header.Get("X-Lexer-Location-Precision"); got != "precise" {
		t.Errorf("Precision header = %q", got)
	}
}

func TestEvents_DatastoreFailureFallsBackToMock(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOpts{
		loader: &stubLoader{err: errors.New("datastore exploded")},
		prod:   true,
	})

	resp, _, payload := getEvents(t, srv, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Events endpoint must never hard-fail, got %d", resp.StatusCode)
	}
	if payload.Source != models.SourceMock {
		t.Errorf("Expected mock source, got %q", payload.Source)
	}
	if len(payload.Events) == 0 {
		t.Error("Expected non-empty mock events")
	}
	for _, event := range payload.Events {
		if event.Address != privacy.RedactionLabel {
			t.Errorf("Mock event %s leaked address to outsider", event.ID)
		}
	}
}

func TestEvents_NoLoaderServesMock(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOpts{prod: true})

	_, _, payload := getEvents(t, srv, nil)
	if payload.Source != models.SourceMock {
		t.Errorf("Expected mock source without a datastore, got %q", payload.Source)
	}
	if len(payload.Events) == 0 {
		t.Error("Expected mock events")
	}
}

func TestEvents_PreviewInsiderSynthesizesApproval(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOpts{
		loader:  &stubLoader{events: []models.Event{preciseEvent()}},
		preview: "sesame",
		prod:    true,
	})

	_, _, payload := getEvents(t, srv, func(r *http.Request) {
		r.Header.Set(auth.ViewerHeader, "insider")
		r.Header.Set(auth.PreviewTokenHeader, "sesame")
	})

	if payload.ViewerMode != models.ViewerInsider {
		t.Fatalf("Expected insider via preview, got %q", payload.ViewerMode)
	}
	// Downstream consumers see an approved status; only the message
	// reveals the override.
	if !payload.AuthStatus.IsAuthenticated || !payload.AuthStatus.IsApproved {
		t.Errorf("Expected synthesized approved status, got %+v", payload.AuthStatus)
	}
	if payload.ApprovalMessage != MessagePreviewMode {
		t.Errorf("Expected preview message, got %q", payload.ApprovalMessage)
	}
	if payload.Events[0].Address != "1 Secret Lane, London" {
		t.Error("Preview insider should see precise data")
	}
}

func TestEvents_PreviewInertInProductionWithoutToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOpts{
		loader: &stubLoader{events: []models.Event{preciseEvent()}},
		prod:   true,
	})

	_, _, payload := getEvents(t, srv, func(r *http.Request) {
		r.Header.Set(auth.ViewerHeader, "insider")
	})

	if payload.ViewerMode != models.ViewerOutsider {
		t.Errorf("Preview must be inert in production without a token, got %q", payload.ViewerMode)
	}
}

func TestEvents_OutsiderFuzzIsDeterministicAcrossRequests(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, testServerOpts{
		loader: &stubLoader{events: []models.Event{preciseEvent()}},
		prod:   true,
	})

	_, _, first := getEvents(t, srv, nil)
	_, _, second := getEvents(t, srv, nil)

	if first.Events[0].Lat != second.Events[0].Lat || first.Events[0].Lng != second.Events[0].Lng {
		t.Error("Fuzzed pin moved between requests")
	}
}
