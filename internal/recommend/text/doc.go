// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package text normalizes catalog metadata into tag strings.
//
// A catalog row stores its genres, themes, studios and producers as
// list-like strings such as "['Action', 'Slice of Life']". ParseTags pulls
// the quoted items out of such a field, stems every word and joins the
// result with single spaces. Tokenize splits a tag string into the terms
// counted by the vectorizer.
//
// # Stemming
//
// Two stemmers are available:
//
//   - porter: the classic Porter algorithm (default)
//   - snowball: the English Snowball (Porter2) algorithm
//
// Both lowercase their input and are deterministic.
//
//	s, _ := text.NewStemmer(text.StemmerPorter)
//	tags := text.ParseTags(s, "['Action', 'Adventure']") // "action adventur"
package text
