// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"strings"

	"github.com/tomtom215/animerec/internal/catalog"
)

// MatchKind describes how a title query was resolved.
type MatchKind string

// Match kinds.
const (
	MatchExact   MatchKind = "exact"
	MatchPartial MatchKind = "partial"
	MatchNone    MatchKind = "none"
)

// Recommendation is one ranked result.
type Recommendation struct {
	ID       int     `json:"anime_id"`
	Title    string  `json:"title"`
	Genres   string  `json:"genres"`
	ImageURL string  `json:"main_picture"`
	Score    float64 `json:"score"`
}

// Result is the outcome of a recommendation query. Found=false is the
// no-match outcome; Suggestions are advisory and only set in that case.
type Result struct {
	Query           string           `json:"query"`
	Genres          []string         `json:"genres"`
	Found           bool             `json:"found"`
	MatchKind       MatchKind        `json:"match_kind"`
	Match           *catalog.Entry   `json:"match,omitempty"`
	PartialMatches  int              `json:"partial_matches,omitempty"`
	Candidates      int              `json:"candidates"`
	Recommendations []Recommendation `json:"recommendations"`
	Suggestions     []string         `json:"suggestions,omitempty"`
}

// ParseGenreFilter splits a comma-separated genre filter into trimmed,
// lowercase tokens. Empty tokens are dropped; an empty filter yields nil.
func ParseGenreFilter(filter string) []string {
	var genres []string
	for _, g := range strings.Split(filter, ",") {
		g = lower(strings.TrimSpace(g))
		if g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// Resolve maps a title query to an entry index. It prefers the first
// case-insensitive exact match, then the first entry whose title contains
// the query. A blank query never matches. partial counts the entries that
// contain the query when the match is not exact.
func (m *Model) Resolve(query string) (idx int, kind MatchKind, partial int) {
	q := lower(strings.TrimSpace(query))
	if q == "" {
		return -1, MatchNone, 0
	}

	for i, t := range m.lowerTitles {
		if t == q {
			return i, MatchExact, 0
		}
	}

	idx = -1
	for i, t := range m.lowerTitles {
		if strings.Contains(t, q) {
			if idx < 0 {
				idx = i
			}
			partial++
		}
	}
	if idx < 0 {
		return -1, MatchNone, 0
	}
	return idx, MatchPartial, partial
}

// Recommend returns the entries most similar to the title matching query,
// optionally restricted to the comma-separated genres in genreFilter.
func (m *Model) Recommend(query, genreFilter string) Result {
	res := Result{
		Query:           query,
		Genres:          ParseGenreFilter(genreFilter),
		MatchKind:       MatchNone,
		Recommendations: []Recommendation{},
	}

	idx, kind, partial := m.Resolve(query)
	if idx < 0 {
		res.Suggestions = m.Suggest(query)
		return res
	}

	match := m.entries[idx]
	res.Found = true
	res.MatchKind = kind
	res.Match = &match
	res.PartialMatches = partial

	candidates := m.rank(idx)
	res.Candidates = len(candidates)
	for _, c := range candidates {
		if len(res.Recommendations) >= m.cfg.ResultLimit {
			break
		}
		if !m.matchesGenres(c, res.Genres) {
			continue
		}
		e := m.entries[c]
		res.Recommendations = append(res.Recommendations, Recommendation{
			ID:       e.ID,
			Title:    e.Title,
			Genres:   e.Genres,
			ImageURL: e.ImageURL,
			Score:    m.content.Score(idx, c),
		})
	}
	return res
}

// rank orders every entry except idx by descending similarity to idx,
// breaking ties by ascending index, and keeps the candidate pool.
// PredictSimilar cannot fail for an idx returned by Resolve.
func (m *Model) rank(idx int) []int {
	order, err := m.content.PredictSimilar(context.Background(), idx, m.cfg.CandidatePool)
	if err != nil {
		return nil
	}
	return order
}

// matchesGenres reports whether entry i lists at least one of genres.
// An empty filter matches everything.
func (m *Model) matchesGenres(i int, genres []string) bool {
	if len(genres) == 0 {
		return true
	}
	for _, g := range genres {
		if strings.Contains(m.lowerGenres[i], g) {
			return true
		}
	}
	return false
}
