// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package privacy implements the viewer-privacy layer: deterministic
// keyed coordinate fuzzing and per-event projection for outsider viewers.
package privacy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/logging"
	"github.com/lexerlux/lexers-world/internal/models"
)

// FallbackFuzzSecret keys the fuzz when no secret is configured. It is a
// development convenience only; production deployments must set a real
// secret or fuzzed coordinates are predictable.
const FallbackFuzzSecret = "dev-fuzz-secret-change-me"

// earthRadiusKm is the mean spherical Earth radius used by the
// destination-point formula.
const earthRadiusKm = 6371.0

var fallbackSecretWarning sync.Once

// Fuzzer derives a deterministic offset point for a coordinate pair.
//
// The offset is keyed: HMAC-SHA256 over the pair formatted to 6 decimal
// places. The first 4 digest bytes select a distance within
// [MinDistanceKm, MaxDistanceKm] and the next 4 select a bearing in
// [0, 2pi). The same input always fuzzes to the same output for a given
// secret, so pins do not jitter between page loads, and without the
// secret the true location cannot be recovered from the fuzzed one.
type Fuzzer struct {
	secret   []byte
	minKm    float64
	maxKm    float64
	decimals int
}

// NewFuzzer builds a Fuzzer from the privacy configuration. The config
// arrives pre-clamped by config.Validate. An empty secret falls back to
// the development secret with a one-time warning.
func NewFuzzer(cfg config.PrivacyConfig) *Fuzzer {
	secret := strings.TrimSpace(cfg.FuzzSecret)
	if secret == "" {
		fallbackSecretWarning.Do(func() {
			logging.Warn().
				Str("component", "privacy").
				Msg("FUZZ_SECRET is missing. Using development fallback secret.")
		})
		secret = FallbackFuzzSecret
	}

	return &Fuzzer{
		secret:   []byte(secret),
		minKm:    cfg.MinDistanceKm,
		maxKm:    cfg.MaxDistanceKm,
		decimals: cfg.CoordinateDecimals,
	}
}

// Settings returns the active fuzz parameters for inclusion in API
// responses and headers.
func (f *Fuzzer) Settings() models.GeolocationPrivacySettings {
	return models.GeolocationPrivacySettings{
		MinDistanceKm:      f.minKm,
		MaxDistanceKm:      f.maxKm,
		CoordinateDecimals: f.decimals,
	}
}

// FuzzCoordinates returns the deterministic fuzzed point for lat/lng.
// The result is rounded to the configured decimal count with longitude
// wrapped into [-180, 180].
func (f *Fuzzer) FuzzCoordinates(lat, lng float64) (fuzzedLat, fuzzedLng float64) {
	seed := fmt.Sprintf("%.6f|%.6f", lat, lng)

	mac := hmac.New(sha256.New, f.secret)
	mac.Write([]byte(seed))
	digest := mac.Sum(nil)

	distanceFrac := float64(binary.BigEndian.Uint32(digest[0:4])) / (1 << 32)
	bearingFrac := float64(binary.BigEndian.Uint32(digest[4:8])) / (1 << 32)

	distanceKm := f.minKm + distanceFrac*(f.maxKm-f.minKm)
	angularDistance := distanceKm / earthRadiusKm
	bearing := bearingFrac * 2 * math.Pi

	latRad := lat * math.Pi / 180
	lngRad := lng * math.Pi / 180

	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	sinAng := math.Sin(angularDistance)
	cosAng := math.Cos(angularDistance)

	fuzzedLatRad := math.Asin(sinLat*cosAng + cosLat*sinAng*math.Cos(bearing))
	fuzzedLngRad := lngRad + math.Atan2(
		math.Sin(bearing)*sinAng*cosLat,
		cosAng-sinLat*math.Sin(fuzzedLatRad),
	)

	fuzzedLat = roundTo(fuzzedLatRad*180/math.Pi, f.decimals)
	fuzzedLng = roundTo(normalizeLng(fuzzedLngRad*180/math.Pi), f.decimals)
	return fuzzedLat, fuzzedLng
}

// normalizeLng wraps a longitude into [-180, 180].
func normalizeLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
