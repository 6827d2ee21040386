// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"fmt"

	"github.com/tomtom215/animerec/internal/recommend/text"
	"github.com/tomtom215/animerec/internal/recommend/vectorize"
)

// Config contains all tunables of the recommendation pipeline.
type Config struct {
	// Stemmer selects the stemming algorithm: "porter" or "snowball".
	Stemmer string `json:"stemmer"`

	// MaxFeatures bounds the vocabulary size.
	MaxFeatures int `json:"max_features"`

	// CandidatePool is how many of the most similar entries are considered
	// before the genre filter runs.
	CandidatePool int `json:"candidate_pool"`

	// ResultLimit caps the number of recommendations returned.
	ResultLimit int `json:"result_limit"`

	// SearchLimit caps SearchTitles results.
	SearchLimit int `json:"search_limit"`

	// SuggestionLimit caps the suggestions returned for an unknown title.
	SuggestionLimit int `json:"suggestion_limit"`

	// FuzzyThreshold is the minimum Jaro-Winkler similarity for a fuzzy
	// suggestion, in [0, 1]. Zero disables fuzzy suggestions.
	FuzzyThreshold float64 `json:"fuzzy_threshold"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Stemmer:         text.StemmerPorter,
		MaxFeatures:     vectorize.DefaultMaxFeatures,
		CandidatePool:   50,
		ResultLimit:     10,
		SearchLimit:     20,
		SuggestionLimit: 10,
		FuzzyThreshold:  0.85,
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if _, err := text.NewStemmer(c.Stemmer); err != nil {
		return err
	}
	if c.MaxFeatures < 1 {
		return fmt.Errorf("max_features must be positive, got %d", c.MaxFeatures)
	}
	if c.CandidatePool < 1 {
		return fmt.Errorf("candidate_pool must be positive, got %d", c.CandidatePool)
	}
	if c.ResultLimit < 1 {
		return fmt.Errorf("result_limit must be positive, got %d", c.ResultLimit)
	}
	if c.ResultLimit > c.CandidatePool {
		return fmt.Errorf("result_limit (%d) must not exceed candidate_pool (%d)", c.ResultLimit, c.CandidatePool)
	}
	if c.SearchLimit < 1 {
		return fmt.Errorf("search_limit must be positive, got %d", c.SearchLimit)
	}
	if c.SuggestionLimit < 0 {
		return fmt.Errorf("suggestion_limit must be non-negative, got %d", c.SuggestionLimit)
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy_threshold must be in [0, 1], got %f", c.FuzzyThreshold)
	}
	return nil
}
