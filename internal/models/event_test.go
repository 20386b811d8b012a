// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestAttendance_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Attendance
		want string
	}{
		{"yes serializes as true", AttendanceYes, "true"},
		{"no serializes as false", AttendanceNo, "false"},
		{"unknown serializes as question mark", AttendanceUnknown, `"?"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAttendance_MarshalJSON_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := json.Marshal(Attendance(42)); err == nil {
		t.Error("Expected error for out-of-range attendance value")
	}
}

func TestAttendance_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Attendance
		wantErr bool
	}{
		{"true", "true", AttendanceYes, false},
		{"false", "false", AttendanceNo, false},
		{"question mark", `"?"`, AttendanceUnknown, false},
		{"null treated as unknown", "null", AttendanceUnknown, false},
		{"arbitrary string rejected", `"maybe"`, 0, true},
		{"number rejected", "1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var a Attendance
			err := json.Unmarshal([]byte(tt.in), &a)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for input %s", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if a != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, a)
			}
		})
	}
}

func TestEvent_FormatCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"free", Event{Cost: 0, Currency: "USD"}, "FREE"},
		{"free with tiers", Event{Cost: 0, Currency: "USD", HasAdditionalTiers: true}, "FREE+"},
		{"integer dollars", Event{Cost: 15, Currency: "USD"}, "$15"},
		{"fractional dollars", Event{Cost: 12.5, Currency: "USD"}, "$12.50"},
		{"tiers suffix", Event{Cost: 15, Currency: "USD", HasAdditionalTiers: true}, "$15+"},
		{"euro symbol", Event{Cost: 20, Currency: "EUR"}, "€20"},
		{"canadian dollars", Event{Cost: 30, Currency: "CAD"}, "CA$30"},
		{"unknown currency falls back to code", Event{Cost: 100, Currency: "SEK"}, "SEK 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.event.FormatCost(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestViewerAuthStatus_Handle(t *testing.T) {
	t.Parallel()

	if got := Unauthenticated().Handle(); got != "" {
		t.Errorf("Expected empty handle, got %q", got)
	}

	handle := "lexerlux"
	status := ViewerAuthStatus{IsAuthenticated: true, TwitterUsername: &handle}
	if got := status.Handle(); got != "lexerlux" {
		t.Errorf("Expected lexerlux, got %q", got)
	}
}

func TestEventProjection_WireFormat(t *testing.T) {
	t.Parallel()

	proj := EventProjection{
		Event: Event{
			ID:            "evt-1",
			Name:          "Neon Nights",
			Address:       "[ LOCATION BLACKBOXED ]",
			IsLexerComing: AttendanceUnknown,
		},
		LocationPrecision: PrecisionFuzzed,
	}

	data, err := json.Marshal(proj)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded["isLexerComing"] != "?" {
		t.Errorf("Expected isLexerComing to be \"?\", got %v", decoded["isLexerComing"])
	}
	if decoded["locationPrecision"] != "fuzzed" {
		t.Errorf("Expected locationPrecision fuzzed, got %v", decoded["locationPrecision"])
	}
}
