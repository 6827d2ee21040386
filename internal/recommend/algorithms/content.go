// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package algorithms

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomtom215/animerec/internal/recommend/similarity"
	"github.com/tomtom215/animerec/internal/recommend/vectorize"
)

// ContentBasedConfig contains configuration for the content-based algorithm.
type ContentBasedConfig struct {
	// MaxFeatures bounds the vocabulary size.
	MaxFeatures int
}

// DefaultContentBasedConfig returns default configuration.
func DefaultContentBasedConfig() ContentBasedConfig {
	return ContentBasedConfig{MaxFeatures: vectorize.DefaultMaxFeatures}
}

// ContentBased scores items by the cosine similarity of their tag term
// counts. Training fits the vocabulary and precomputes the dense all-pairs
// similarity matrix, so prediction is a sort over one matrix row.
type ContentBased struct {
	BaseAlgorithm
	config ContentBasedConfig

	vocab *vectorize.Vocabulary
	sim   *similarity.Matrix
}

// NewContentBased creates a new content-based algorithm.
func NewContentBased(cfg ContentBasedConfig) *ContentBased {
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = vectorize.DefaultMaxFeatures
	}
	return &ContentBased{
		BaseAlgorithm: NewBaseAlgorithm("content"),
		config:        cfg,
	}
}

// Train fits the vocabulary to corpus and computes the similarity matrix.
// A failed Train leaves the previous state untouched.
func (c *ContentBased) Train(ctx context.Context, corpus []string) error {
	c.acquireTrainLock()
	defer c.releaseTrainLock()

	if ContextCancelled(ctx) {
		return ctx.Err()
	}

	vz, err := vectorize.New(c.config.MaxFeatures)
	if err != nil {
		return err
	}
	vocab, vectors := vz.Fit(corpus)

	sim, err := similarity.Compute(ctx, vectors)
	if err != nil {
		return fmt.Errorf("compute similarity: %w", err)
	}

	c.vocab = vocab
	c.sim = sim
	c.markTrained()
	return nil
}

// PredictSimilar returns up to limit items ordered by descending similarity
// to item. Ties are broken by ascending item position. The item itself is
// never returned.
func (c *ContentBased) PredictSimilar(ctx context.Context, item, limit int) ([]int, error) {
	c.acquirePredictLock()
	defer c.releasePredictLock()

	if !c.trained {
		return nil, ErrNotTrained
	}
	if item < 0 || item >= c.sim.Size() {
		return nil, fmt.Errorf("%w: %d", ErrItemOutOfRange, item)
	}
	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	row := c.sim.Row(item)
	order := make([]int, 0, len(row)-1)
	for j := range row {
		if j != item {
			order = append(order, j)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		sa, sb := row[order[a]], row[order[b]]
		if sa != sb {
			return sa > sb
		}
		return order[a] < order[b]
	})
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}
	return order, nil
}

// Score returns sim(i, j). It panics if the algorithm is untrained or
// either position is out of range.
func (c *ContentBased) Score(i, j int) float64 {
	c.acquirePredictLock()
	defer c.releasePredictLock()
	return c.sim.At(i, j)
}

// Vocabulary returns the fitted vocabulary, or nil before training.
func (c *ContentBased) Vocabulary() *vectorize.Vocabulary {
	c.acquirePredictLock()
	defer c.releasePredictLock()
	return c.vocab
}

var _ Algorithm = (*ContentBased)(nil)
