// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package models

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Attendance is the tri-state flag for whether Lexer is attending an event.
// It serializes as true, false, or "?" to match the frontend wire format.
// The unknown state only ever appears in outsider projections.
type Attendance int

const (
	// AttendanceNo means Lexer is confirmed not coming.
	AttendanceNo Attendance = iota

	// AttendanceYes means Lexer is confirmed coming.
	AttendanceYes

	// AttendanceUnknown is the redacted sentinel shown to outsiders.
	AttendanceUnknown
)

// attendanceUnknownWire is the JSON sentinel for the unknown state.
const attendanceUnknownWire = "?"

// MarshalJSON serializes the tri-state as true / false / "?".
func (a Attendance) MarshalJSON() ([]byte, error) {
	switch a {
	case AttendanceYes:
		return []byte("true"), nil
	case AttendanceNo:
		return []byte("false"), nil
	case AttendanceUnknown:
		return json.Marshal(attendanceUnknownWire)
	default:
		return nil, fmt.Errorf("invalid attendance value %d", int(a))
	}
}

// UnmarshalJSON accepts booleans, the "?" sentinel, and null (treated as
// unknown). Any other value is rejected.
func (a *Attendance) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*a = AttendanceYes
		return nil
	case "false":
		*a = AttendanceNo
		return nil
	case "null":
		*a = AttendanceUnknown
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == attendanceUnknownWire {
		*a = AttendanceUnknown
		return nil
	}

	return fmt.Errorf("invalid attendance value %s", string(data))
}

// AttendanceFromBool converts a datastore boolean to the enum.
func AttendanceFromBool(coming bool) Attendance {
	if coming {
		return AttendanceYes
	}
	return AttendanceNo
}

// LocationPrecision marks whether an event projection carries the real
// coordinates or a privacy fuzz.
type LocationPrecision string

const (
	// PrecisionPrecise means the projection carries unmodified coordinates.
	PrecisionPrecise LocationPrecision = "precise"

	// PrecisionFuzzed means the coordinates were deterministically perturbed
	// and venue details redacted.
	PrecisionFuzzed LocationPrecision = "fuzzed"
)

// Event is a raw event record as loaded from the datastore. It always holds
// precise data; privacy decisions happen at projection time.
type Event struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ManualLocation string `json:"manualLocation"` // key location name or nearest major city
	Address        string `json:"address"`        // precise street address, redacted for outsiders

	// Lat and Lng are decimal degrees: -90..90 and -180..180.
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Description   string     `json:"description"`
	IsLexerComing Attendance `json:"isLexerComing"`
	Recurrent     bool       `json:"recurrent"`
	InviteURL     string     `json:"inviteUrl"`
	Date          string     `json:"date"` // ISO 8601

	Cost               float64 `json:"cost"`     // base price, 0 means free
	Currency           string  `json:"currency"` // ISO 4217
	HasAdditionalTiers bool    `json:"hasAdditionalTiers"`
}

// EventProjection is an Event as exposed to a specific viewer, tagged with
// the location precision that was applied.
//
// Invariant: when LocationPrecision is fuzzed, Address equals the redaction
// label, IsLexerComing is AttendanceUnknown, and Lat/Lng differ from the
// source event by a bounded, keyed, deterministic offset.
type EventProjection struct {
	Event
	LocationPrecision LocationPrecision `json:"locationPrecision"`
}

// currencySymbols maps common ISO 4217 codes to display symbols. Unknown
// codes fall back to "CODE " prefixing.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "CA$",
	"JPY": "¥",
}

// FormatCost renders the event price the way the globe UI displays it:
// "FREE" or "FREE+" for zero cost, otherwise symbol + amount with an
// optional "+" suffix when additional pricing tiers exist.
func (e *Event) FormatCost() string {
	if e.Cost == 0 {
		if e.HasAdditionalTiers {
			return "FREE+"
		}
		return "FREE"
	}

	symbol, ok := currencySymbols[e.Currency]
	if !ok {
		symbol = e.Currency + " "
	}

	var price string
	if e.Cost == math.Trunc(e.Cost) {
		price = strconv.FormatFloat(e.Cost, 'f', 0, 64)
	} else {
		price = strconv.FormatFloat(e.Cost, 'f', 2, 64)
	}

	if e.HasAdditionalTiers {
		return symbol + price + "+"
	}
	return symbol + price
}
