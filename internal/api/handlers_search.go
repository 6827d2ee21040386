// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
)

func searchWith(m *recommend.Model, query string) models.SearchResponse {
	results := m.SearchTitles(query)
	metrics.RecordSearch(len(results))
	return models.SearchResponse{Results: results}
}

// pathQuery returns the decoded {query} URL parameter.
func pathQuery(r *http.Request) string {
	raw := chi.URLParam(r, "query")
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// SearchLegacy handles GET /search/{query} and replies {results:[...]}.
func (h *Handler) SearchLegacy(w http.ResponseWriter, r *http.Request) {
	q := models.SearchQuery{Query: pathQuery(r)}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	m := h.currentModel(w, r)
	if m == nil {
		return
	}
	writeJSON(w, http.StatusOK, searchWith(m, q.Query))
}

// Search handles GET /api/v1/search?q=. An empty q lists the first titles
// of the catalog.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := models.SearchQuery{Query: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	m := h.currentModel(w, r)
	if m == nil {
		return
	}
	respondSuccess(w, r, searchWith(m, q.Query), start)
}
