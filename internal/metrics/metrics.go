// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package metrics exposes Prometheus instrumentation for the API:
// request latency, viewer-mode and auth resolution outcomes, event load
// results, and FX fetch/cache behavior.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Viewer privacy metrics
	ViewerModeResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewer_mode_resolutions_total",
			Help: "Viewer modes resolved per request",
		},
		[]string{"mode"}, // "insider", "outsider"
	)

	AuthResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_resolutions_total",
			Help: "Auth status resolution outcomes",
		},
		[]string{"outcome"}, // "unauthenticated", "no_handle", "pending", "approved"
	)

	EventsProjected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_projected_total",
			Help: "Event projections emitted per precision",
		},
		[]string{"precision"}, // "precise", "fuzzed"
	)

	// Event datastore metrics
	EventsLoadTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_load_total",
			Help: "Event load attempts by source and outcome",
		},
		[]string{"source", "outcome"}, // source: "supabase", "mock"; outcome: "success", "error"
	)

	EventRowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_rows_skipped_total",
			Help: "Datastore event rows skipped due to validation failures",
		},
	)

	// FX metrics
	FxFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_fetch_total",
			Help: "Outbound FX provider fetches by outcome",
		},
		[]string{"outcome"}, // "success", "error"
	)

	FxCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fx_cache_hits_total",
			Help: "FX requests served from the in-process cache",
		},
	)

	FxCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fx_cache_misses_total",
			Help: "FX requests that required a provider fetch",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	statusStr := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
}

// RecordViewerMode records a resolved viewer mode.
func RecordViewerMode(mode string) {
	ViewerModeResolutions.WithLabelValues(mode).Inc()
}

// RecordAuthOutcome records an auth resolution outcome.
func RecordAuthOutcome(outcome string) {
	AuthResolutions.WithLabelValues(outcome).Inc()
}

// RecordEventsLoad records an event load attempt.
func RecordEventsLoad(source, outcome string) {
	EventsLoadTotal.WithLabelValues(source, outcome).Inc()
}
