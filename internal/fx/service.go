// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package fx serves USD-normalized exchange rates from an external
// provider with an in-process TTL cache and a circuit breaker. FX is
// fail-loud: when live rates are unavailable the caller gets an error,
// never stale or partial data.
package fx

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/logging"
	"github.com/lexerlux/lexers-world/internal/metrics"
	"github.com/lexerlux/lexers-world/internal/models"
)

// SupportedCurrencies is the fixed set served by the conversion UI. A
// provider snapshot missing any of these is rejected in full.
var SupportedCurrencies = []string{
	"USD", "CAD", "GBP", "EUR", "JPY", "AUD", "NZD", "CHF", "SEK", "NOK", "DKK",
}

// rateDecimals is the precision of inverted to-USD rates.
const rateDecimals = 6

// maxFxResponseBytes bounds the provider response body.
const maxFxResponseBytes = 1 << 20

// providerPayload is the raw provider response shape (open.er-api.com
// compatible).
type providerPayload struct {
	Result            string             `json:"result"`
	Rates             map[string]float64 `json:"rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}

// cachedRates is the single process-wide cache slot.
type cachedRates struct {
	payload   *models.FxRatesResponse
	expiresAt time.Time
}

// Service fetches and caches FX rates.
//
// The cache is one slot guarded by a mutex for reads and writes, but the
// mutex is not held across the provider fetch. Two concurrent requests
// that both miss may both fetch; the loser's write is simply overwritten.
// That duplicate fetch is accepted behavior, not worth serializing every
// request for.
type Service struct {
	providerURL string
	ttl         time.Duration
	client      *http.Client
	breaker     *gobreaker.CircuitBreaker[*models.FxRatesResponse]

	mu     sync.Mutex
	cached *cachedRates

	now func() time.Time
}

// NewService creates an FX service from configuration. The config
// arrives with TTL already clamped by config.Validate.
func NewService(cfg config.FXConfig) *Service {
	breakerName := "fx-provider"
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[*models.FxRatesResponse](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("FX circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Service{
		providerURL: cfg.ProviderURL,
		ttl:         cfg.CacheTTL(),
		client:      &http.Client{Timeout: cfg.RequestTimeout},
		breaker:     breaker,
		now:         time.Now,
	}
}

// BreakerState reports the circuit breaker state for health reporting.
func (s *Service) BreakerState() string {
	return s.breaker.State().String()
}

// GetRates returns the current rate snapshot, serving from cache within
// the TTL window. On cache miss the provider is fetched through the
// circuit breaker; failure is returned to the caller without touching
// the cache, and an expired cache entry is never served.
func (s *Service) GetRates(ctx context.Context) (*models.FxRatesResponse, error) {
	now := s.now()

	s.mu.Lock()
	if s.cached != nil && now.Before(s.cached.expiresAt) {
		payload := s.cached.payload
		s.mu.Unlock()
		metrics.FxCacheHits.Inc()
		return payload, nil
	}
	s.mu.Unlock()
	metrics.FxCacheMisses.Inc()

	payload, err := s.breaker.Execute(func() (*models.FxRatesResponse, error) {
		return s.fetchLiveRates(ctx)
	})
	if err != nil {
		metrics.FxFetchTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.FxFetchTotal.WithLabelValues("success").Inc()

	s.mu.Lock()
	s.cached = &cachedRates{payload: payload, expiresAt: now.Add(s.ttl)}
	s.mu.Unlock()

	return payload, nil
}

// fetchLiveRates calls the provider and normalizes its snapshot.
func (s *Service) fetchLiveRates(ctx context.Context) (*models.FxRatesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.providerURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build FX request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FX provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxFxResponseBytes))
		return nil, fmt.Errorf("FX provider returned status %d", resp.StatusCode)
	}

	var payload providerPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("FX provider returned malformed payload: %w", err)
	}
	if payload.Result != "success" || payload.Rates == nil {
		return nil, fmt.Errorf("FX provider returned invalid payload")
	}

	rates, err := normalizeRatesToUSD(payload.Rates)
	if err != nil {
		return nil, err
	}

	var updatedAt *string
	if payload.TimeLastUpdateUTC != "" {
		updatedAt = &payload.TimeLastUpdateUTC
	}

	return &models.FxRatesResponse{
		RatesToUsd: rates,
		Source:     models.FxSourceLive,
		UpdatedAt:  updatedAt,
	}, nil
}

// normalizeRatesToUSD inverts the provider's USD-based multipliers to
// to-USD factors for the supported set. All-or-nothing: one missing or
// non-positive rate fails the whole snapshot.
func normalizeRatesToUSD(providerRates map[string]float64) (map[string]float64, error) {
	normalized := make(map[string]float64, len(SupportedCurrencies))
	normalized["USD"] = 1

	for _, currency := range SupportedCurrencies {
		if currency == "USD" {
			continue
		}
		usdToCurrency, ok := providerRates[currency]
		if !ok || usdToCurrency <= 0 || math.IsNaN(usdToCurrency) || math.IsInf(usdToCurrency, 0) {
			return nil, fmt.Errorf("missing or invalid live FX rate for %s", currency)
		}
		normalized[currency] = roundRate(1 / usdToCurrency)
	}
	return normalized, nil
}

// roundRate rounds to the fixed rate precision.
func roundRate(v float64) float64 {
	scale := math.Pow10(rateDecimals)
	return math.Round(v*scale) / scale
}

// breakerStateValue maps breaker states onto gauge values.
func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
