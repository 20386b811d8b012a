// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package events

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/lexerlux/lexers-world/internal/config"
	"github.com/lexerlux/lexers-world/internal/logging"
	"github.com/lexerlux/lexers-world/internal/metrics"
	"github.com/lexerlux/lexers-world/internal/models"
	"github.com/lexerlux/lexers-world/internal/validation"
)

// eventSelectColumns is the REST select list, ordered to match the row
// struct below.
const eventSelectColumns = "id,name,manual_location,address,lat,lng,description," +
	"is_lexer_coming,recurrent,invite_url,date,cost,currency,has_additional_tiers"

// maxEventsResponseBytes bounds the datastore response body.
const maxEventsResponseBytes = 8 << 20

// flexFloat decodes a JSON number or a numeric string. The datastore
// occasionally returns numerics as strings depending on column type.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric string %q", s)
		}
		*f = flexFloat(parsed)
	} else {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexFloat(v)
	}

	if math.IsNaN(float64(*f)) || math.IsInf(float64(*f), 0) {
		return fmt.Errorf("non-finite numeric value")
	}
	return nil
}

// eventRow is one datastore row. Validation tags define what a usable
// row looks like; anything else is skipped at load time.
type eventRow struct {
	ID                 string    `json:"id" validate:"required"`
	Name               string    `json:"name" validate:"required"`
	ManualLocation     string    `json:"manual_location"`
	Address            string    `json:"address"`
	Lat                flexFloat `json:"lat" validate:"latitude"`
	Lng                flexFloat `json:"lng" validate:"longitude"`
	Description        string    `json:"description"`
	IsLexerComing      bool      `json:"is_lexer_coming"`
	Recurrent          bool      `json:"recurrent"`
	InviteURL          string    `json:"invite_url" validate:"omitempty,url"`
	Date               string    `json:"date" validate:"required"`
	Cost               flexFloat `json:"cost" validate:"gte=0"`
	Currency           string    `json:"currency" validate:"iso4217"`
	HasAdditionalTiers bool      `json:"has_additional_tiers"`
}

// toEvent converts a validated row to the domain type.
func (r *eventRow) toEvent() models.Event {
	return models.Event{
		ID:                 r.ID,
		Name:               r.Name,
		ManualLocation:     r.ManualLocation,
		Address:            r.Address,
		Lat:                float64(r.Lat),
		Lng:                float64(r.Lng),
		Description:        r.Description,
		IsLexerComing:      models.AttendanceFromBool(r.IsLexerComing),
		Recurrent:          r.Recurrent,
		InviteURL:          r.InviteURL,
		Date:               r.Date,
		Cost:               float64(r.Cost),
		Currency:           r.Currency,
		HasAdditionalTiers: r.HasAdditionalTiers,
	}
}

// SupabaseStore loads events through the Supabase REST endpoint.
type SupabaseStore struct {
	baseURL string
	anonKey string
	client  *http.Client
}

// NewSupabaseStore creates a store from the Supabase settings.
func NewSupabaseStore(cfg config.SupabaseConfig) *SupabaseStore {
	return &SupabaseStore{
		baseURL: cfg.URL,
		anonKey: cfg.AnonKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// LoadEvents fetches all events ordered by date.
//
// Individual rows that fail validation are skipped with a log line. A
// non-empty payload where every row is invalid is a load failure: a
// fully-malformed response must not silently present as "no events".
func (s *SupabaseStore) LoadEvents(ctx context.Context) ([]models.Event, error) {
	query := url.Values{}
	query.Set("select", eventSelectColumns)
	query.Set("order", "date.asc")
	endpoint := s.baseURL + "/rest/v1/events?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build events request: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxEventsResponseBytes))
		return nil, fmt.Errorf("events fetch returned status %d", resp.StatusCode)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxEventsResponseBytes)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed events payload: %w", err)
	}

	loaded := make([]models.Event, 0, len(raw))
	skipped := 0
	for i, rowBytes := range raw {
		var row eventRow
		if err := json.Unmarshal(rowBytes, &row); err != nil {
			skipped++
			logging.Ctx(ctx).Warn().
				Err(err).
				Int("row", i).
				Msg("Skipping undecodable event row")
			continue
		}
		if err := validation.ValidateStruct(&row); err != nil {
			skipped++
			logging.Ctx(ctx).Warn().
				Str("event_id", row.ID).
				Int("row", i).
				Str("reason", err.Error()).
				Msg("Skipping invalid event row")
			continue
		}
		loaded = append(loaded, row.toEvent())
	}

	if skipped > 0 {
		metrics.EventRowsSkipped.Add(float64(skipped))
	}
	if len(raw) > 0 && len(loaded) == 0 {
		return nil, fmt.Errorf("all %d event rows failed validation", len(raw))
	}

	logging.Ctx(ctx).Debug().
		Int("loaded", len(loaded)).
		Int("skipped", skipped).
		Msg("Events loaded from datastore")

	return loaded, nil
}
