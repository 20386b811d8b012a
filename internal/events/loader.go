// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package events loads raw event records from the external datastore,
// with a fixed mock dataset as the availability fallback.
package events

import (
	"context"

	"github.com/lexerlux/lexers-world/internal/models"
)

// Loader fetches the raw event list. Implementations return precise
// data; privacy projection happens downstream.
type Loader interface {
	LoadEvents(ctx context.Context) ([]models.Event, error)
}
