// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tomtom215/animerec/internal/logging"
)

// indexFallback is served when the front-end page is missing.
const indexFallback = "<h1>Error: index.html not found</h1>"

// ServeIndex handles GET / with index.html from the static directory.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")

	path := filepath.Join(h.staticDir, "index.html")
	page, err := afero.ReadFile(h.fs, path)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("path", path).Msg("Front-end page not found")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(indexFallback))
		return
	}
	_, _ = w.Write(page)
}
