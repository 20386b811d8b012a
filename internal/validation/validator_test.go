// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package validation

import (
	"strings"
	"testing"
)

type sampleRow struct {
	ID       string  `validate:"required"`
	Lat      float64 `validate:"latitude"`
	Lng      float64 `validate:"longitude"`
	Currency string  `validate:"iso4217"`
	Link     string  `validate:"omitempty,url"`
	Cost     float64 `validate:"gte=0"`
}

func validRow() sampleRow {
	return sampleRow{
		ID:       "evt-1",
		Lat:      51.5,
		Lng:      -0.12,
		Currency: "GBP",
		Link:     "https://example.com/x",
		Cost:     10,
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	row := validRow()
	if err := ValidateStruct(&row); err != nil {
		t.Errorf("Expected valid struct, got %v", err)
	}
}

func TestValidateStruct_FieldFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*sampleRow)
		tag     string
		message string
	}{
		{"missing id", func(r *sampleRow) { r.ID = "" }, "required", "ID is required"},
		{"latitude out of range", func(r *sampleRow) { r.Lat = 95 }, "latitude", "valid latitude"},
		{"longitude out of range", func(r *sampleRow) { r.Lng = 181 }, "longitude", "valid longitude"},
		{"bad currency", func(r *sampleRow) { r.Currency = "ZZZ" }, "iso4217", "ISO 4217"},
		{"bad url", func(r *sampleRow) { r.Link = "not a url" }, "url", "valid URL"},
		{"negative cost", func(r *sampleRow) { r.Cost = -1 }, "gte", "at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row := validRow()
			tt.mutate(&row)

			err := ValidateStruct(&row)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if len(err.Errors()) != 1 {
				t.Fatalf("Expected 1 error, got %d: %v", len(err.Errors()), err)
			}
			if got := err.Errors()[0].Tag(); got != tt.tag {
				t.Errorf("Expected tag %q, got %q", tt.tag, got)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected message containing %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestValidateStruct_MultipleFailuresJoined(t *testing.T) {
	t.Parallel()

	row := validRow()
	row.ID = ""
	row.Lat = 100

	err := ValidateStruct(&row)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("Expected joined message, got %q", err.Error())
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("Expected the same validator instance")
	}
}
