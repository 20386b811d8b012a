// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/models"
)

const validRowJSON = `{
	"id": "evt-1",
	"name": "Rooftop Social",
	"manual_location": "London, UK",
	"address": "14 Example Street, EC1",
	"lat": 51.5074,
	"lng": -0.1278,
	"description": "Drinks and demos.",
	"is_lexer_coming": true,
	"recurrent": false,
	"invite_url": "https://lu.ma/rooftop",
	"date": "2026-09-12T18:00:00Z",
	"cost": 25,
	"currency": "GBP",
	"has_additional_tiers": false
}`

func storeFor(t *testing.T, handler http.HandlerFunc) (*SupabaseStore, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	store := NewSupabaseStore(config.SupabaseConfig{
		URL:     srv.URL,
		AnonKey: "anon-key",
		Timeout: 2 * time.Second,
	})
	return store, srv.Close
}

func TestLoadEvents_MapsRows(t *testing.T) {
	t.Parallel()

	store, done := storeFor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/events" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("order") != "date.asc" {
			t.Errorf("Unexpected order %q", q.Get("order"))
		}
		if q.Get("select") != eventSelectColumns {
			t.Errorf("Unexpected select %q", q.Get("select"))
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("Unexpected apikey %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + validRowJSON + "]"))
	})
	defer done()

	loaded, err := store.LoadEvents(context.Background())
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(loaded))
	}

	event := loaded[0]
	if event.ID != "evt-1" || event.Name != "Rooftop Social" {
		t.Errorf("Unexpected event %+v", event)
	}
	if event.Lat != 51.5074 || event.Lng != -0.1278 {
		t.Errorf("Unexpected coordinates (%v,%v)", event.Lat, event.Lng)
	}
	if event.IsLexerComing != models.AttendanceYes {
		t.Errorf("Expected attendance yes, got %v", event.IsLexerComing)
	}
}

func TestLoadEvents_AcceptsStringNumerics(t *testing.T) {
	t.Parallel()

	store, done := storeFor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{
			"id": "evt-1", "name": "A", "date": "2026-01-01T00:00:00Z",
			"lat": "51.5", "lng": "-0.12", "cost": "12.50", "currency": "GBP"
		}]`))
	})
	defer done()

	loaded, err := store.LoadEvents(context.Background())
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if loaded[0].Lat != 51.5 || loaded[0].Cost != 12.5 {
		t.Errorf("String numerics mis-parsed: %+v", loaded[0])
	}
}

func TestLoadEvents_SkipsInvalidRows(t *testing.T) {
	t.Parallel()

	store, done := storeFor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			` + validRowJSON + `,
			{"id": "bad-lat", "name": "B", "date": "d", "lat": 99, "lng": 0, "currency": "USD"},
			{"id": "bad-currency", "name": "C", "date": "d", "lat": 0, "lng": 0, "currency": "FAKE"},
			{"id": "", "name": "no id", "date": "d", "lat": 0, "lng": 0, "currency": "USD"},
			{"id": "bad-cost", "name": "D", "date": "d", "lat": 0, "lng": 0, "currency": "USD", "cost": -5}
		]`))
	})
	defer done()

	loaded, err := store.LoadEvents(context.Background())
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "evt-1" {
		t.Errorf("Expected only the valid row, got %+v", loaded)
	}
}

func TestLoadEvents_AllInvalidIsFailure(t *testing.T) {
	t.Parallel()

	store, done := storeFor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": "", "lat": 999},
			{"name": "still bad"}
		]`))
	})
	defer done()

	if _, err := store.LoadEvents(context.Background()); err == nil {
		t.Error("Fully-malformed payload must be a load failure, not an empty list")
	}
}

func TestLoadEvents_EmptyPayloadIsEmptyList(t *testing.T) {
	t.Parallel()

	store, done := storeFor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	defer done()

	loaded, err := store.LoadEvents(context.Background())
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty list, got %+v", loaded)
	}
}

func TestLoadEvents_UpstreamErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "500 response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "non-array payload",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"unexpected": true}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, done := storeFor(t, tt.handler)
			defer done()

			if _, err := store.LoadEvents(context.Background()); err == nil {
				t.Error("Expected load error")
			}
		})
	}
}

func TestMockEvents_NonEmptyAndWellFormed(t *testing.T) {
	t.Parallel()

	mock := MockEvents()
	if len(mock) == 0 {
		t.Fatal("Mock dataset must be non-empty")
	}

	seen := make(map[string]bool, len(mock))
	for _, event := range mock {
		if event.ID == "" || event.Name == "" || event.Date == "" {
			t.Errorf("Mock event missing required fields: %+v", event)
		}
		if seen[event.ID] {
			t.Errorf("Duplicate mock event id %s", event.ID)
		}
		seen[event.ID] = true
		if event.Lat < -90 || event.Lat > 90 || event.Lng < -180 || event.Lng > 180 {
			t.Errorf("Mock event %s has out-of-range coordinates", event.ID)
		}
	}
}

func TestEventsForLocation(t *testing.T) {
	t.Parallel()

	matched := EventsForLocation("London, UK", MockEvents())
	if len(matched) != 2 {
		t.Errorf("Expected 2 London events, got %d", len(matched))
	}
	for _, event := range matched {
		if event.ManualLocation != "London, UK" {
			t.Errorf("Filter returned %q", event.ManualLocation)
		}
	}

	if got := EventsForLocation("Nowhere", MockEvents()); len(got) != 0 {
		t.Errorf("Expected no matches, got %d", len(got))
	}
}
