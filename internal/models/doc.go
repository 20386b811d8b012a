// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package models defines the shared data types of the Lexer's World API:
// events and their privacy projections, viewer authentication status, and
// FX rate payloads.
//
// Types in this package are transport-shaped: JSON tags match the wire
// format consumed by the globe frontend and must not change without a
// coordinated frontend update.
package models
