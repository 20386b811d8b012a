// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

// Package auth resolves a request's viewer auth status: bearer-token
// verification against an identity provider, handle extraction from
// identity metadata, and allowlist approval. All failures resolve to
// less access, never more.
package auth

import (
	"regexp"
	"strings"
)

// handlePattern is the platform handle grammar: 1-15 chars of [a-z0-9_]
// after normalization.
var handlePattern = regexp.MustCompile(`^[a-z0-9_]{1,15}$`)

// metadataHandleKeys are the identity-metadata fields checked for a
// platform handle, in priority order. Different OAuth flows populate
// different fields.
var metadataHandleKeys = []string{"user_name", "preferred_username", "username"}

// NormalizeHandle strips leading "@" characters, trims whitespace, and
// lowercases. Returns "" when the input does not normalize to a valid
// handle.
func NormalizeHandle(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimLeft(trimmed, "@")
	trimmed = strings.ToLower(trimmed)

	if !handlePattern.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

// HandleFromMetadata extracts the first normalizable handle from identity
// metadata, checking fields in priority order. Returns "" when no field
// yields a valid handle.
func HandleFromMetadata(metadata map[string]any) string {
	for _, key := range metadataHandleKeys {
		raw, ok := metadata[key].(string)
		if !ok {
			continue
		}
		if handle := NormalizeHandle(raw); handle != "" {
			return handle
		}
	}
	return ""
}
