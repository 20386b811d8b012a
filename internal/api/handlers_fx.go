// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package api

import (
	"net/http"

	"github.com/lexerlux/lexers-world/internal/logging"
	"github.com/lexerlux/lexers-world/internal/models"
)

// FxRates serves GET /api/fx. Live rates or a 503; never stale, never
// partial.
func (h *Handler) FxRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.fxService.GetRates(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("FX rates unavailable")

		w.Header().Set("X-Lexer-Fx-Source", "error")
		respondJSON(w, http.StatusServiceUnavailable, &models.FxErrorResponse{
			Error: err.Error(),
		})
		return
	}

	w.Header().Set("X-Lexer-Fx-Source", rates.Source)
	respondJSON(w, http.StatusOK, rates)
}
