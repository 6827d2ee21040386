// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
)

// recommendWith runs one query against m and records its metrics and logs.
// gen is the index generation m was published under; it scopes the result
// cache.
func (h *Handler) recommendWith(r *http.Request, m *recommend.Model, gen int64, title, genre string) recommend.Result {
	start := time.Now()
	res, cached := h.cachedRecommend(m, gen, title, genre)
	elapsed := time.Since(start)

	metrics.RecordRecommendation(string(res.MatchKind), len(res.Recommendations), len(res.Suggestions), elapsed)

	event := logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(title)).
		Strs("genres", res.Genres).
		Str("match_kind", string(res.MatchKind)).
		Bool("cached", cached).
		Dur("duration", elapsed)
	if res.Match != nil {
		event = event.Str("matched_title", sanitizeLogValue(res.Match.Title)).
			Int("partial_matches", res.PartialMatches).
			Int("candidates", res.Candidates)
	}
	event.Int("results", len(res.Recommendations)).
		Int("suggestions", len(res.Suggestions)).
		Msg("Recommendation query")

	return res
}

func (h *Handler) cachedRecommend(m *recommend.Model, gen int64, title, genre string) (recommend.Result, bool) {
	if h.results == nil {
		return m.Recommend(title, genre), false
	}

	key := strconv.FormatInt(gen, 10) + "\x00" + title + "\x00" + genre
	if res, ok := h.results.Get(key); ok {
		metrics.RecordResultCache(true)
		return res, true
	}
	metrics.RecordResultCache(false)

	res := m.Recommend(title, genre)
	h.results.Add(key, res)
	return res, false
}

// RecommendLegacy handles POST /recommend with body {animeName, genre}.
// The reply is always {success, message, recommendations}; an unknown title
// or an empty result after genre filtering is success=false with status 200,
// each with its own message.
func (h *Handler) RecommendLegacy(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.RecommendResponse{
			Success:         false,
			Message:         fmt.Sprintf("Error: %s", err),
			Recommendations: []recommend.Recommendation{},
		})
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeJSON(w, http.StatusBadRequest, models.RecommendResponse{
			Success:         false,
			Message:         fmt.Sprintf("Error: %s", apiErr.Message),
			Recommendations: []recommend.Recommendation{},
		})
		return
	}

	m, gen := h.index.Current()
	if m == nil {
		writeJSON(w, http.StatusServiceUnavailable, models.RecommendResponse{
			Success:         false,
			Message:         "Error: recommendation model is not ready",
			Recommendations: []recommend.Recommendation{},
		})
		return
	}

	res := h.recommendWith(r, m, gen, req.AnimeName, req.Genre)
	if !res.Found {
		writeJSON(w, http.StatusOK, models.RecommendResponse{
			Success:         false,
			Message:         fmt.Sprintf("No anime found matching '%s'. Please check spelling or try another anime.", req.AnimeName),
			Recommendations: res.Recommendations,
			Suggestions:     res.Suggestions,
		})
		return
	}
	if len(res.Recommendations) == 0 {
		writeJSON(w, http.StatusOK, models.RecommendResponse{
			Success:         false,
			Message:         emptyResultMessage(res),
			Recommendations: res.Recommendations,
		})
		return
	}

	writeJSON(w, http.StatusOK, models.RecommendResponse{
		Success:         true,
		Message:         fmt.Sprintf("Found %d recommendations!", len(res.Recommendations)),
		Recommendations: res.Recommendations,
	})
}

// emptyResultMessage explains a resolved title that yielded no
// recommendations.
func emptyResultMessage(res recommend.Result) string {
	if len(res.Genres) > 0 {
		return fmt.Sprintf("Found '%s' but no recommendations match genre(s) %s.",
			res.Match.Title, strings.Join(res.Genres, ", "))
	}
	return fmt.Sprintf("Found '%s' but no similar anime are available.", res.Match.Title)
}

// Recommendations handles GET /api/v1/recommendations?title=&genre=.
// An unmatched title is a success with found=false and suggestions.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := models.RecommendationsQuery{
		Title: r.URL.Query().Get("title"),
		Genre: r.URL.Query().Get("genre"),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	m, gen := h.index.Current()
	if m == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeModelNotReady, "Recommendation model is not ready", nil)
		return
	}

	respondSuccess(w, r, h.recommendWith(r, m, gen, q.Title, q.Genre), start)
}
