// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/recommend/algorithms"
	"github.com/tomtom215/animerec/internal/recommend/text"
	"github.com/tomtom215/animerec/internal/recommend/vectorize"
)

// ErrDatasetUnusable is returned by BuildIndex when no row survives tag
// extraction.
var ErrDatasetUnusable = errors.New("dataset unusable: no entries with non-empty tags")

// BuildStats describes one index build.
type BuildStats struct {
	RowsIn         int           `json:"rows_in"`
	RowsDropped    int           `json:"rows_dropped"`
	Entries        int           `json:"entries"`
	VocabularySize int           `json:"vocabulary_size"`
	Stemmer        string        `json:"stemmer"`
	Duration       time.Duration `json:"duration"`
}

// Model is the immutable similarity index built from one catalog.
type Model struct {
	cfg         Config
	entries     []catalog.Entry
	tags        []string
	lowerTitles []string
	lowerGenres []string
	content     *algorithms.ContentBased
	stats       BuildStats
}

// lower folds s the same way for titles, genres and queries.
// A Caser is stateful, so one is created per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// BuildIndex derives tag strings from entries and trains the content-based
// algorithm on them. Entry order is preserved; entries whose
// tag string is empty are dropped.
func BuildIndex(ctx context.Context, entries []catalog.Entry, cfg Config) (*Model, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	stemmer, err := text.NewStemmer(cfg.Stemmer)
	if err != nil {
		return nil, err
	}

	m := &Model{cfg: cfg}
	for i := range entries {
		e := entries[i]
		tags := text.BuildTags(stemmer, e.Genres, e.Themes, e.Studios, e.Producers)
		if tags == "" {
			continue
		}
		m.entries = append(m.entries, e)
		m.tags = append(m.tags, tags)
		m.lowerTitles = append(m.lowerTitles, lower(e.Title))
		m.lowerGenres = append(m.lowerGenres, lower(e.Genres))
	}
	if len(m.entries) == 0 {
		return nil, ErrDatasetUnusable
	}

	m.content = algorithms.NewContentBased(algorithms.ContentBasedConfig{MaxFeatures: cfg.MaxFeatures})
	if err := m.content.Train(ctx, m.tags); err != nil {
		return nil, err
	}

	m.stats = BuildStats{
		RowsIn:         len(entries),
		RowsDropped:    len(entries) - len(m.entries),
		Entries:        len(m.entries),
		VocabularySize: m.content.Vocabulary().Len(),
		Stemmer:        stemmer.Name(),
		Duration:       time.Since(start),
	}
	return m, nil
}

// Len returns the number of retained entries.
func (m *Model) Len() int { return len(m.entries) }

// Entry returns the entry at index i.
func (m *Model) Entry(i int) catalog.Entry { return m.entries[i] }

// Entries returns a copy of the retained entries in catalog order.
func (m *Model) Entries() []catalog.Entry {
	out := make([]catalog.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Tags returns the tag string of entry i.
func (m *Model) Tags(i int) string { return m.tags[i] }

// Vocabulary returns the fitted vocabulary.
func (m *Model) Vocabulary() *vectorize.Vocabulary { return m.content.Vocabulary() }

// Similarity returns sim(i, j).
func (m *Model) Similarity(i, j int) float64 { return m.content.Score(i, j) }

// Stats returns the statistics of the build that produced m.
func (m *Model) Stats() BuildStats { return m.stats }

// Config returns the configuration m was built with.
func (m *Model) Config() Config { return m.cfg }
