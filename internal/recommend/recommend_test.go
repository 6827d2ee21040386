// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/animerec/internal/catalog"
)

func entry(id int, title, genres, studios string) catalog.Entry {
	return catalog.Entry{
		ID:        id,
		Title:     title,
		Genres:    genres,
		Themes:    "[]",
		Studios:   studios,
		Producers: "[]",
		ImageURL:  fmt.Sprintf("https://cdn.example/%d.jpg", id),
	}
}

func testCatalog() []catalog.Entry {
	return []catalog.Entry{
		entry(1, "Alpha Force", "['Action', 'Comedy']", "['Madhouse']"),
		entry(2, "Beta Strike", "['Action']", "['Madhouse']"),
		entry(3, "Cherry Blossom", "['Romance']", "['Madhouse']"),
		entry(4, "Naruto", "['Action', 'Adventure']", "['Pierrot']"),
		entry(5, "Naruto Shippuden", "['Action', 'Adventure']", "['Pierrot']"),
		{ID: 6, Title: "Untagged", Genres: "[]", Themes: "[]", Studios: "[]", Producers: "[]"},
	}
}

func buildTestModel(t *testing.T, entries []catalog.Entry) *Model {
	t.Helper()
	m, err := BuildIndex(context.Background(), entries, DefaultConfig())
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	return m
}

func titles(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestBuildIndex_DropsUntaggedEntries(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())

	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", m.Len())
	}
	for i := 0; i < m.Len(); i++ {
		if m.Tags(i) == "" {
			t.Errorf("entry %d (%s) has empty tags", i, m.Entry(i).Title)
		}
		if m.Entry(i).Title == "Untagged" {
			t.Error("untagged entry was retained")
		}
	}

	stats := m.Stats()
	if stats.RowsIn != 6 || stats.RowsDropped != 1 || stats.Entries != 5 {
		t.Errorf("Stats() = %+v, want 6 in, 1 dropped, 5 entries", stats)
	}
	if stats.VocabularySize != m.Vocabulary().Len() || stats.VocabularySize == 0 {
		t.Errorf("VocabularySize = %d, vocabulary has %d terms", stats.VocabularySize, m.Vocabulary().Len())
	}
	if stats.Stemmer != "porter" {
		t.Errorf("Stemmer = %q, want porter", stats.Stemmer)
	}
}

func TestBuildIndex_DatasetUnusable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []catalog.Entry
	}{
		{"no rows", nil},
		{"only untagged rows", []catalog.Entry{{ID: 1, Title: "x", Genres: "[]"}, {ID: 2, Title: "y"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildIndex(context.Background(), tt.entries, DefaultConfig())
			if !errors.Is(err, ErrDatasetUnusable) {
				t.Errorf("BuildIndex() error = %v, want ErrDatasetUnusable", err)
			}
		})
	}
}

func TestBuildIndex_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxFeatures = 0
	if _, err := BuildIndex(context.Background(), testCatalog(), cfg); err == nil {
		t.Error("BuildIndex() with invalid config error = nil, want error")
	}
}

func TestBuildIndex_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := BuildIndex(ctx, testCatalog(), DefaultConfig()); !errors.Is(err, context.Canceled) {
		t.Errorf("BuildIndex() error = %v, want context.Canceled", err)
	}
}

func TestBuildIndex_SnowballStemmer(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Stemmer = "snowball"
	m, err := BuildIndex(context.Background(), testCatalog(), cfg)
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	if m.Stats().Stemmer != "snowball" {
		t.Errorf("Stemmer = %q, want snowball", m.Stats().Stemmer)
	}
}

func TestModel_SimilaritySymmetric(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())
	for i := 0; i < m.Len(); i++ {
		for j := 0; j < m.Len(); j++ {
			if m.Similarity(i, j) != m.Similarity(j, i) {
				t.Errorf("Similarity(%d,%d) = %v, Similarity(%d,%d) = %v", i, j, m.Similarity(i, j), j, i, m.Similarity(j, i))
			}
		}
	}
}

func TestRecommend_RanksByTagOverlap(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog()[:3])
	res := m.Recommend("Alpha Force", "")

	if !res.Found || res.MatchKind != MatchExact {
		t.Fatalf("Found = %v, MatchKind = %q, want exact match", res.Found, res.MatchKind)
	}
	want := []string{"Beta Strike", "Cherry Blossom"}
	if got := titles(res.Recommendations); !reflect.DeepEqual(got, want) {
		t.Errorf("recommendations = %v, want %v", got, want)
	}
	if res.Recommendations[0].Score <= res.Recommendations[1].Score {
		t.Errorf("scores not descending: %v", res.Recommendations)
	}
	if res.Recommendations[0].ImageURL != "https://cdn.example/2.jpg" {
		t.Errorf("ImageURL = %q", res.Recommendations[0].ImageURL)
	}
}

func TestRecommend_ExcludesQueriedEntry(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())
	for i := 0; i < m.Len(); i++ {
		e := m.Entry(i)
		res := m.Recommend(e.Title, "")
		for _, r := range res.Recommendations {
			if r.ID == e.ID {
				t.Errorf("Recommend(%q) includes itself", e.Title)
			}
		}
	}
}

func TestRecommend_PartialMatchEqualsExact(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())
	exact := m.Recommend("Naruto", "")
	lowered := m.Recommend("naruto", "")
	partial := m.Recommend("  NARUT ", "")

	if lowered.MatchKind != MatchExact {
		t.Errorf("lowercase query MatchKind = %q, want exact", lowered.MatchKind)
	}
	if partial.MatchKind != MatchPartial || partial.Match.Title != "Naruto" {
		t.Fatalf("partial query resolved to %+v (%q), want Naruto via partial", partial.Match, partial.MatchKind)
	}
	if partial.PartialMatches != 2 {
		t.Errorf("PartialMatches = %d, want 2", partial.PartialMatches)
	}
	if !reflect.DeepEqual(exact.Recommendations, lowered.Recommendations) ||
		!reflect.DeepEqual(exact.Recommendations, partial.Recommendations) {
		t.Errorf("results differ: exact=%v lowered=%v partial=%v",
			titles(exact.Recommendations), titles(lowered.Recommendations), titles(partial.Recommendations))
	}
}

func TestRecommend_NoMatch(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())
	tests := []struct {
		name  string
		query string
	}{
		{"unknown title", "Completely Unknown Show"},
		{"empty", ""},
		{"blank", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Recommend(tt.query, "action")
			if res.Found || res.MatchKind != MatchNone || res.Match != nil {
				t.Errorf("Recommend(%q) = %+v, want no match", tt.query, res)
			}
			if res.Recommendations == nil || len(res.Recommendations) != 0 {
				t.Errorf("Recommendations = %#v, want empty non-nil slice", res.Recommendations)
			}
		})
	}
}

func TestRecommend_GenreFilter(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"romance eliminates action set", "romance", []string{"Cherry Blossom"}},
		{"case insensitive", "ADVENTURE", []string{"Naruto Shippuden"}},
		{"or semantics", "comedy, romance", []string{"Alpha Force", "Cherry Blossom"}},
		{"empty tokens ignored", " , ,", nil},
		{"unknown genre", "horror", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Recommend("Naruto", tt.filter)
			got := titles(res.Recommendations)
			if tt.want == nil {
				if len(got) != m.Len()-1 {
					t.Errorf("filter %q returned %v, want every other entry", tt.filter, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filter %q = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestRecommend_AllActionCandidatesRomanceFilter(t *testing.T) {
	t.Parallel()

	entries := []catalog.Entry{
		entry(1, "One", "['Action']", "['Bones']"),
		entry(2, "Two", "['Action']", "['Bones']"),
		entry(3, "Three", "['Action', 'Mecha']", "['Bones']"),
	}
	m := buildTestModel(t, entries)

	res := m.Recommend("One", "romance")
	if !res.Found {
		t.Fatal("Found = false, want true")
	}
	if len(res.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want empty", titles(res.Recommendations))
	}
}

func TestRecommend_LimitsAndCandidatePool(t *testing.T) {
	t.Parallel()

	var entries []catalog.Entry
	entries = append(entries, entry(0, "Seed", "['Action', 'Drama']", "['Bones']"))
	for i := 1; i <= 80; i++ {
		genres := "['Action']"
		if i > 60 {
			genres = "['Action', 'Drama']"
		}
		entries = append(entries, entry(i, fmt.Sprintf("Show %02d", i), genres, "['Bones']"))
	}
	m := buildTestModel(t, entries)

	res := m.Recommend("Seed", "")
	if len(res.Recommendations) != 10 {
		t.Fatalf("len = %d, want 10", len(res.Recommendations))
	}
	if res.Candidates != 50 {
		t.Errorf("Candidates = %d, want 50", res.Candidates)
	}

	pool := m.rank(0)
	inPool := make(map[int]bool, len(pool))
	for _, idx := range pool {
		inPool[m.Entry(idx).ID] = true
	}

	filtered := m.Recommend("Seed", "drama")
	if len(filtered.Recommendations) > 10 {
		t.Errorf("len = %d, want <= 10", len(filtered.Recommendations))
	}
	for _, r := range filtered.Recommendations {
		if !inPool[r.ID] {
			t.Errorf("recommendation %q is outside the candidate pool", r.Title)
		}
	}
}

func TestRank_TieBreakByIndex(t *testing.T) {
	t.Parallel()

	entries := []catalog.Entry{
		entry(1, "Q", "['Action']", "['Bones']"),
		entry(2, "R", "['Action']", "['Bones']"),
		entry(3, "S", "['Action']", "['Bones']"),
		entry(4, "T", "['Action']", "['Bones']"),
	}
	m := buildTestModel(t, entries)

	if got := m.rank(2); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("rank(2) = %v, want [0 1 3]", got)
	}
}

func TestResolve_DuplicateTitlesUseFirst(t *testing.T) {
	t.Parallel()

	entries := []catalog.Entry{
		entry(10, "Hero", "['Action']", "['A1']"),
		entry(11, "Hero", "['Drama']", "['A1']"),
	}
	m := buildTestModel(t, entries)

	idx, kind, _ := m.Resolve("hero")
	if idx != 0 || kind != MatchExact {
		t.Errorf("Resolve(hero) = %d, %q, want 0, exact", idx, kind)
	}
}

func TestParseGenreFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"Action", []string{"action"}},
		{" Action , Sci-Fi ,, ", []string{"action", "sci-fi"}},
		{",", nil},
	}
	for _, tt := range tests {
		if got := ParseGenreFilter(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseGenreFilter(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestSearchTitles(t *testing.T) {
	t.Parallel()

	var entries []catalog.Entry
	for i := 0; i < 30; i++ {
		entries = append(entries, entry(i, fmt.Sprintf("Gundam %02d", i), "['Mecha']", "['Sunrise']"))
	}
	entries = append(entries, entry(100, "Monster", "['Mystery']", "['Madhouse']"))
	m := buildTestModel(t, entries)

	tests := []struct {
		name      string
		query     string
		wantLen   int
		wantFirst string
	}{
		{"limited to twenty", "gundam", 20, "Gundam 00"},
		{"case insensitive", "MONSTER", 1, "Monster"},
		{"empty matches all", "", 20, "Gundam 00"},
		{"no match", "evangelion", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.SearchTitles(tt.query)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].Title != tt.wantFirst {
				t.Errorf("first = %q, want %q", got[0].Title, tt.wantFirst)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"first word substring", "Naruto The Movie", []string{"Naruto", "Naruto Shippuden"}},
		{"fuzzy fallback", "Narutp", []string{"Naruto"}},
		{"nothing close", "Xylophone", nil},
		{"blank", " ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Suggest(tt.query)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if len(got) == 0 || got[0] != tt.want[0] {
				t.Errorf("Suggest(%q) = %v, want prefix %v", tt.query, got, tt.want)
			}
			if len(tt.want) > 1 && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestRecommend_NoMatchCarriesSuggestions(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())
	res := m.Recommend("Naruto The Lost Tower", "")
	if res.Found {
		t.Fatal("Found = true, want false")
	}
	if len(res.Suggestions) == 0 {
		t.Error("Suggestions empty, want titles containing the first word")
	}
}

func TestModel_ConcurrentQueries(t *testing.T) {
	t.Parallel()

	m := buildTestModel(t, testCatalog())
	want := titles(m.Recommend("Naruto", "action").Recommendations)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := titles(m.Recommend("Naruto", "action").Recommendations)
			if !reflect.DeepEqual(got, want) {
				errs <- fmt.Sprintf("got %v, want %v", got, want)
			}
			_ = m.SearchTitles("a")
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"unknown stemmer", func(c *Config) { c.Stemmer = "lovins" }, true},
		{"zero max features", func(c *Config) { c.MaxFeatures = 0 }, true},
		{"zero candidate pool", func(c *Config) { c.CandidatePool = 0 }, true},
		{"zero result limit", func(c *Config) { c.ResultLimit = 0 }, true},
		{"result limit above pool", func(c *Config) { c.ResultLimit = 60 }, true},
		{"zero search limit", func(c *Config) { c.SearchLimit = 0 }, true},
		{"negative suggestion limit", func(c *Config) { c.SuggestionLimit = -1 }, true},
		{"threshold above one", func(c *Config) { c.FuzzyThreshold = 1.5 }, true},
		{"fuzzy disabled", func(c *Config) { c.FuzzyThreshold = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
