// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package privacy

import (
	"github.com/lexerlux/lexers-world/internal/models"
)

// RedactionLabel replaces the street address in outsider projections.
const RedactionLabel = "[ LOCATION BLACKBOXED ]"

// Viewer-mode disclaimers included verbatim in every events response.
const (
	DisclaimerInsider  = "Insider mode: precise coordinates and Lexer attendance are visible."
	DisclaimerOutsider = "Outsider mode: map coordinates are deterministic privacy fuzzes and venue details are blackboxed."
)

// Projector turns raw events into viewer-appropriate projections.
type Projector struct {
	fuzzer *Fuzzer
}

// NewProjector creates a Projector backed by the given fuzzer.
func NewProjector(fuzzer *Fuzzer) *Projector {
	return &Projector{fuzzer: fuzzer}
}

// Settings exposes the fuzz parameters of the underlying fuzzer.
func (p *Projector) Settings() models.GeolocationPrivacySettings {
	return p.fuzzer.Settings()
}

// Apply projects a single event for the given viewer mode.
//
// Insiders get the event unchanged with precise location. Outsiders get
// fuzzed coordinates, the redaction label in place of the address, and
// the unknown attendance sentinel. Name, description, cost, date,
// recurrence, invite URL, and the coarse manual location pass through
// either way; outsiders may discover an event and its price, just not
// its exact place or confirmed attendance.
func (p *Projector) Apply(event models.Event, mode models.ViewerMode) models.EventProjection {
	if mode == models.ViewerInsider {
		return models.EventProjection{
			Event:             event,
			LocationPrecision: models.PrecisionPrecise,
		}
	}

	fuzzedLat, fuzzedLng := p.fuzzer.FuzzCoordinates(event.Lat, event.Lng)

	projected := event
	projected.Lat = fuzzedLat
	projected.Lng = fuzzedLng
	projected.Address = RedactionLabel
	projected.IsLexerComing = models.AttendanceUnknown

	return models.EventProjection{
		Event:             projected,
		LocationPrecision: models.PrecisionFuzzed,
	}
}

// ApplyAll projects a slice of events, preserving order. The result is
// never nil so it serializes as [] rather than null.
func (p *Projector) ApplyAll(events []models.Event, mode models.ViewerMode) []models.EventProjection {
	projections := make([]models.EventProjection, 0, len(events))
	for _, event := range events {
		projections = append(projections, p.Apply(event, mode))
	}
	return projections
}

// Disclaimer returns the privacy disclaimer for a viewer mode.
func Disclaimer(mode models.ViewerMode) string {
	if mode == models.ViewerInsider {
		return DisclaimerInsider
	}
	return DisclaimerOutsider
}
