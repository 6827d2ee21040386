// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// TitleMatch is a search hit.
type TitleMatch struct {
	ID    int    `json:"anime_id"`
	Title string `json:"title"`
}

// SearchTitles returns, in catalog order, the entries whose title contains
// substring ignoring case, up to the configured search limit. An empty
// substring matches every title.
func (m *Model) SearchTitles(substring string) []TitleMatch {
	q := lower(substring)
	out := []TitleMatch{}
	for i, t := range m.lowerTitles {
		if len(out) >= m.cfg.SearchLimit {
			break
		}
		if strings.Contains(t, q) {
			out = append(out, TitleMatch{ID: m.entries[i].ID, Title: m.entries[i].Title})
		}
	}
	return out
}

// Suggest proposes titles for a query that resolved to nothing. Titles
// containing the first word of the query come first, in catalog order.
// When there are none, titles whose Jaro-Winkler similarity to the query
// reaches the fuzzy threshold are returned, best first.
func (m *Model) Suggest(query string) []string {
	limit := m.cfg.SuggestionLimit
	fields := strings.Fields(query)
	if len(fields) == 0 || limit == 0 {
		return nil
	}

	first := lower(fields[0])
	var out []string
	for i, t := range m.lowerTitles {
		if len(out) >= limit {
			return out
		}
		if strings.Contains(t, first) {
			out = append(out, m.entries[i].Title)
		}
	}
	if len(out) > 0 {
		return out
	}
	return m.fuzzySuggest(lower(strings.Join(fields, " ")), limit)
}

type scoredTitle struct {
	idx   int
	score float32
}

func (m *Model) fuzzySuggest(q string, limit int) []string {
	if m.cfg.FuzzyThreshold <= 0 {
		return nil
	}
	threshold := float32(m.cfg.FuzzyThreshold)

	var hits []scoredTitle
	for i, t := range m.lowerTitles {
		if s := edlib.JaroWinklerSimilarity(q, t); s >= threshold {
			hits = append(hits, scoredTitle{idx: i, score: s})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = m.entries[h.idx].Title
	}
	return out
}
