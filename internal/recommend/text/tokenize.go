// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes is the shortest run of word characters kept as a term.
const minTokenRunes = 2

// isWordRune reports whether r belongs to a term: letters, numbers and
// the underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize lowercases s and splits it into maximal runs of word characters
// at least two runes long. Stop words are not removed here.
func Tokenize(s string) []string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) >= minTokenRunes {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// Terms returns the tokens of s that are not English stop words.
func Terms(s string) []string {
	tokens := Tokenize(s)
	terms := tokens[:0]
	for _, t := range tokens {
		if !IsStopWord(t) {
			terms = append(terms, t)
		}
	}
	return terms
}
