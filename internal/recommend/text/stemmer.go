// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package text

import (
	"fmt"
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
	"github.com/kljensen/snowball"
)

// Stemmer names accepted by NewStemmer.
const (
	StemmerPorter   = "porter"
	StemmerSnowball = "snowball"
)

// Stemmer reduces a single word to its stem.
// Implementations must lowercase and be deterministic.
type Stemmer interface {
	Name() string
	Stem(word string) string
}

// NewStemmer returns the stemmer registered under name.
// An empty name selects the Porter stemmer.
func NewStemmer(name string) (Stemmer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StemmerPorter:
		return PorterStemmer{}, nil
	case StemmerSnowball:
		return SnowballStemmer{}, nil
	default:
		return nil, fmt.Errorf("unknown stemmer %q: must be %q or %q", name, StemmerPorter, StemmerSnowball)
	}
}

// PorterStemmer applies the original Porter suffix-stripping algorithm.
type PorterStemmer struct{}

// Name implements Stemmer.
func (PorterStemmer) Name() string { return StemmerPorter }

// Stem implements Stemmer. Words of two runes or fewer are only lowercased.
func (PorterStemmer) Stem(word string) string {
	if word == "" {
		return ""
	}
	if len([]rune(word)) <= 2 {
		return strings.ToLower(word)
	}
	return porterstemmer.StemString(word)
}

// SnowballStemmer applies the English Snowball (Porter2) algorithm.
type SnowballStemmer struct{}

// Name implements Stemmer.
func (SnowballStemmer) Name() string { return StemmerSnowball }

// Stem implements Stemmer. Stop words are stemmed like any other word so
// the output does not depend on a second word list.
func (SnowballStemmer) Stem(word string) string {
	if word == "" {
		return ""
	}
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return strings.ToLower(word)
	}
	return stemmed
}

// StemText stems every whitespace-delimited word of phrase and joins the
// stems with single spaces. Blank input yields "".
func StemText(s Stemmer, phrase string) string {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return ""
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if stem := s.Stem(w); stem != "" {
			out = append(out, stem)
		}
	}
	return strings.Join(out, " ")
}
