// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/middleware"
	"github.com/tomtom215/animerec/internal/models"
)

// sampleSize is how many entries the image sample shows.
const sampleSize = 5

// CatalogSample handles GET /api/v1/catalog/sample and its legacy alias
// /test/images. It shows the first entries with their image fields so a
// broken image column is easy to spot.
func (h *Handler) CatalogSample(w http.ResponseWriter, r *http.Request) {
	m := h.currentModel(w, r)
	if m == nil {
		return
	}
	writeJSON(w, http.StatusOK, models.CatalogSample{
		SampleData: catalog.Sample(m.Entries(), sampleSize),
	})
}

// CatalogStats handles GET /api/v1/catalog/stats.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	m, gen, loadedAt := h.index.Snapshot()
	if m == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeModelNotReady, "Recommendation model is not ready", nil)
		return
	}

	build := m.Stats()
	respondSuccess(w, r, models.CatalogStats{
		Images:         catalog.ComputeImageStats(m.Entries()),
		RowsIn:         build.RowsIn,
		RowsDropped:    build.RowsDropped,
		Entries:        build.Entries,
		VocabularySize: build.VocabularySize,
		Stemmer:        build.Stemmer,
		BuildTimeMS:    build.Duration.Milliseconds(),
		Generation:     gen,
		LoadedAt:       loadedAt.UTC(),
	}, start)
}

// EndpointStats handles GET /api/v1/stats/endpoints with the rolling
// latency summary of each route.
func (h *Handler) EndpointStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats := []middleware.EndpointStats{}
	if h.perfMon != nil {
		stats = h.perfMon.Stats()
	}
	respondSuccess(w, r, stats, start)
}
