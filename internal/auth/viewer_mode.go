// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/lexerlux/lexers-world/internal/models"
)

// Viewer override request surface.
const (
	ViewerQueryParam   = "viewer"
	ViewerHeader       = "X-Lexer-Viewer"
	PreviewTokenQuery  = "token"
	PreviewTokenHeader = "X-Insider-Preview-Token"
)

// ModeResolver maps an auth status (plus the optional preview override)
// to a viewer mode.
type ModeResolver struct {
	previewToken string
	production   bool
}

// NewModeResolver creates a resolver. previewToken may be empty; in that
// case the override only works outside production.
func NewModeResolver(previewToken string, production bool) *ModeResolver {
	return &ModeResolver{
		previewToken: strings.TrimSpace(previewToken),
		production:   production,
	}
}

// Resolve returns insider for approved viewers, insider for requests
// carrying a permitted preview override, and outsider otherwise.
func (mr *ModeResolver) Resolve(r *http.Request, status models.ViewerAuthStatus) models.ViewerMode {
	if status.IsApproved {
		return models.ViewerInsider
	}
	if requestsInsiderPreview(r) && mr.previewPermitted(r) {
		return models.ViewerInsider
	}
	return models.ViewerOutsider
}

// requestsInsiderPreview reports whether the request asks for the
// insider override. The header wins over the query parameter.
func requestsInsiderPreview(r *http.Request) bool {
	requested := r.Header.Get(ViewerHeader)
	if requested == "" {
		requested = r.URL.Query().Get(ViewerQueryParam)
	}
	return strings.EqualFold(requested, string(models.ViewerInsider))
}

// previewPermitted checks the override gate. With a configured token the
// supplied token must match exactly; without one the override is only
// honored outside production. The override must be inert in production
// unless a token is explicitly configured and supplied.
func (mr *ModeResolver) previewPermitted(r *http.Request) bool {
	supplied := r.Header.Get(PreviewTokenHeader)
	if supplied == "" {
		supplied = r.URL.Query().Get(PreviewTokenQuery)
	}

	if mr.previewToken == "" {
		return !mr.production
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(mr.previewToken)) == 1
}
