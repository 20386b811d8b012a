// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package api

import (
	"net/http"
	"time"

	"github.com/lexerlux/lexers-world/internal/events"
	"github.com/lexerlux/lexers-world/internal/models"
)

// healthResponse is the GET /api/health payload.
type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Datastore     string `json:"datastore"` // "supabase" or "mock"
	FxBreaker     string `json:"fxBreaker"` // "closed", "half-open", "open"
}

// Health serves GET /api/health. The process is healthy as long as it
// can answer; datastore reachability is reported, not required, since
// the events endpoint degrades to mock data anyway.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	datastore := string(models.SourceMock)
	if h.loader != nil {
		datastore = string(models.SourceSupabase)
	}

	respondJSON(w, http.StatusOK, &healthResponse{
		Status:        "ok",
		Version:       Version,
		UptimeSeconds: int64(time.Since(h.startTime) / time.Second),
		Datastore:     datastore,
		FxBreaker:     h.fxService.BreakerState(),
	})
}

// Liveness serves GET /api/health/live: process-up only, no
// collaborator state. Suitable for container liveness probes.
func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// locationsResponse is the GET /api/locations payload.
type locationsResponse struct {
	Locations []models.KeyLocation `json:"locations"`
}

// Locations serves GET /api/locations: the named globe anchor points.
// These are public city coordinates and need no privacy treatment.
func (h *Handler) Locations(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &locationsResponse{Locations: events.KeyLocations()})
}
