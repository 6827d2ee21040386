// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package vectorize converts tag strings into term-count vectors over a
// bounded vocabulary.
//
// Vocabulary selection keeps the MaxFeatures most frequent non-stop-word
// terms of the corpus. Terms with equal corpus counts are ranked by their
// first appearance in the corpus. The retained terms are then assigned
// columns in lexical order, so the column of a term does not depend on
// corpus order.
package vectorize

import (
	"fmt"
	"sort"

	"github.com/tomtom215/animerec/internal/recommend/text"
)

// DefaultMaxFeatures bounds the vocabulary when no limit is configured.
const DefaultMaxFeatures = 5000

// Vocabulary maps a term to its fixed column position.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// Len returns the number of columns.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Column returns the column of term and whether the term is known.
func (v *Vocabulary) Column(term string) (int, bool) {
	col, ok := v.index[term]
	return col, ok
}

// Terms returns a copy of the vocabulary in column order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Cell is one non-zero component of a vector.
type Cell struct {
	Col   int
	Count int
}

// Vector is a term-count vector stored as non-zero cells sorted by column.
type Vector []Cell

// Dense expands the vector to width columns.
func (vec Vector) Dense(width int) []int {
	out := make([]int, width)
	for _, c := range vec {
		out[c.Col] = c.Count
	}
	return out
}

// Matrix holds one vector per corpus document in corpus order.
type Matrix struct {
	Width int
	Rows  []Vector
}

// Vectorizer builds a vocabulary and count vectors from a corpus.
type Vectorizer struct {
	maxFeatures int
}

// New creates a vectorizer keeping at most maxFeatures terms.
func New(maxFeatures int) (*Vectorizer, error) {
	if maxFeatures < 1 {
		return nil, fmt.Errorf("max features must be positive, got %d", maxFeatures)
	}
	return &Vectorizer{maxFeatures: maxFeatures}, nil
}

type termStat struct {
	term  string
	count int
	first int
}

// Fit selects the vocabulary from corpus and vectorizes every document.
func (v *Vectorizer) Fit(corpus []string) (*Vocabulary, Matrix) {
	docs := make([][]string, len(corpus))
	stats := make(map[string]*termStat)
	order := 0
	for i, doc := range corpus {
		terms := text.Terms(doc)
		docs[i] = terms
		for _, t := range terms {
			st, ok := stats[t]
			if !ok {
				st = &termStat{term: t, first: order}
				stats[t] = st
				order++
			}
			st.count++
		}
	}

	ranked := make([]*termStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})
	if len(ranked) > v.maxFeatures {
		ranked = ranked[:v.maxFeatures]
	}

	terms := make([]string, len(ranked))
	for i, st := range ranked {
		terms[i] = st.term
	}
	sort.Strings(terms)

	vocab := &Vocabulary{terms: terms, index: make(map[string]int, len(terms))}
	for col, t := range terms {
		vocab.index[t] = col
	}

	m := Matrix{Width: len(terms), Rows: make([]Vector, len(docs))}
	for i, d := range docs {
		m.Rows[i] = vocab.vectorOf(d)
	}
	return vocab, m
}

// Transform vectorizes a document against the fitted vocabulary.
// Unknown terms are ignored.
func (v *Vocabulary) Transform(doc string) Vector {
	return v.vectorOf(text.Terms(doc))
}

func (v *Vocabulary) vectorOf(terms []string) Vector {
	counts := make(map[int]int)
	for _, t := range terms {
		if col, ok := v.index[t]; ok {
			counts[col]++
		}
	}
	vec := make(Vector, 0, len(counts))
	for col, n := range counts {
		vec = append(vec, Cell{Col: col, Count: n})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Col < vec[j].Col })
	return vec
}
