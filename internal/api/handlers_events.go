// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package api

import (
	"net/http"
	"strconv"

	"github.com/lexerlux/lexers-world/internal/auth"
	"github.com/lexerlux/lexers-world/internal/events"
	"github.com/lexerlux/lexers-world/internal/logging"
	"github.com/lexerlux/lexers-world/internal/metrics"
	"github.com/lexerlux/lexers-world/internal/models"
	"github.com/lexerlux/lexers-world/internal/privacy"
)

// MessagePreviewMode replaces the approval message when insider access
// came from the preview override rather than a real approval.
const MessagePreviewMode = "Insider preview mode active. Manual allowlist checks are bypassed for this request."

// Events serves GET /api/events.
//
// Auth resolution runs first, then viewer-mode resolution, then the
// event load with mock fallback, then per-event privacy projection. The
// endpoint never hard-fails: a broken datastore degrades to the mock
// dataset, still projected for the resolved viewer.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := h.statusResolver.Resolve(r)
	metrics.RecordAuthOutcome(authOutcomeLabel(status))

	mode := h.modeResolver.Resolve(r, status)
	metrics.RecordViewerMode(string(mode))

	raw, source := h.loadEvents(r)
	projections := h.projector.ApplyAll(raw, mode)
	metrics.EventsProjected.WithLabelValues(string(precisionFor(mode))).Add(float64(len(projections)))

	settings := h.projector.Settings()

	// Preview-driven insider access reports a synthesized approved
	// status; the distinct message keeps the override auditable.
	effectiveStatus := status
	approvalMessage := auth.ApprovalMessage(status)
	if mode == models.ViewerInsider && !status.IsApproved {
		effectiveStatus = models.ViewerAuthStatus{
			IsAuthenticated: true,
			IsApproved:      true,
			TwitterUsername: status.TwitterUsername,
		}
		approvalMessage = MessagePreviewMode
	}

	logging.Ctx(ctx).Info().
		Str("viewer_mode", string(mode)).
		Str("source", string(source)).
		Int("events", len(projections)).
		Bool("authenticated", status.IsAuthenticated).
		Msg("Events served")

	w.Header().Set("X-Lexer-Viewer-Mode", string(mode))
	w.Header().Set("X-Lexer-Location-Precision", string(precisionFor(mode)))
	w.Header().Set("X-Lexer-Fuzz-Min-Km", strconv.FormatFloat(settings.MinDistanceKm, 'f', -1, 64))
	w.Header().Set("X-Lexer-Fuzz-Max-Km", strconv.FormatFloat(settings.MaxDistanceKm, 'f', -1, 64))
	w.Header().Set("X-Lexer-Fuzz-Coordinate-Decimals", strconv.Itoa(settings.CoordinateDecimals))

	respondJSON(w, http.StatusOK, &models.EventsResponse{
		Events:              projections,
		Source:              source,
		ViewerMode:          mode,
		PrivacyDisclaimer:   privacy.Disclaimer(mode),
		GeolocationSettings: settings,
		AuthStatus:          effectiveStatus,
		ApprovalMessage:     approvalMessage,
	})
}

// loadEvents returns raw events plus the source label, falling back to
// the mock dataset on any load failure.
func (h *Handler) loadEvents(r *http.Request) ([]models.Event, models.EventsSource) {
	if h.loader == nil {
		metrics.RecordEventsLoad(string(models.SourceMock), "success")
		return events.MockEvents(), models.SourceMock
	}

	loaded, err := h.loader.LoadEvents(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Warn().
			Err(err).
			Msg("Event load failed, serving mock dataset")
		metrics.RecordEventsLoad(string(models.SourceSupabase), "error")
		return events.MockEvents(), models.SourceMock
	}

	metrics.RecordEventsLoad(string(models.SourceSupabase), "success")
	return loaded, models.SourceSupabase
}

// precisionFor maps a viewer mode to the precision label exposed in
// diagnostic headers.
func precisionFor(mode models.ViewerMode) models.LocationPrecision {
	if mode == models.ViewerInsider {
		return models.PrecisionPrecise
	}
	return models.PrecisionFuzzed
}

// authOutcomeLabel buckets an auth status for metrics.
func authOutcomeLabel(status models.ViewerAuthStatus) string {
	switch {
	case !status.IsAuthenticated:
		return "unauthenticated"
	case status.IsApproved:
		return "approved"
	case status.TwitterUsername != nil:
		return "pending"
	default:
		return "no_handle"
	}
}
