// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package events

import "github.com/lexerlux/lexers-world/internal/models"

// KeyLocations returns the named globe anchors.
func KeyLocations() []models.KeyLocation {
	return []models.KeyLocation{
		{ID: "bay-area", Name: "Bay Area, CA", Lat: 37.7749, Lng: -122.4194},
		{ID: "london", Name: "London, UK", Lat: 51.5074, Lng: -0.1278},
		{ID: "new-york", Name: "New York, NY", Lat: 40.7128, Lng: -74.006},
		{ID: "toronto", Name: "Toronto, ON", Lat: 43.6532, Lng: -79.3832},
		{ID: "austin", Name: "Austin, TX", Lat: 30.2672, Lng: -97.7431},
	}
}

// EventsForLocation filters events whose manual location matches the
// given key-location name exactly.
func EventsForLocation(name string, list []models.Event) []models.Event {
	matched := make([]models.Event, 0)
	for _, event := range list {
		if event.ManualLocation == name {
			matched = append(matched, event)
		}
	}
	return matched
}
