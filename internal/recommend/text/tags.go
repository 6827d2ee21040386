// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package text

import (
	"strings"
)

// emptyList is the literal stored for a metadata field with no items.
const emptyList = "[]"

// ExtractQuoted returns the substrings enclosed in single quotes, in order.
// When the field contains no single-quoted item it falls back to double
// quotes. An unterminated quote ends the scan; it never fails.
func ExtractQuoted(raw string) []string {
	if items := scanQuoted(raw, '\''); len(items) > 0 {
		return items
	}
	return scanQuoted(raw, '"')
}

// scanQuoted collects every quote...quote pair left to right. The text
// between a closing quote and the next opening quote is skipped.
func scanQuoted(raw string, quote byte) []string {
	var items []string
	for {
		open := strings.IndexByte(raw, quote)
		if open < 0 {
			return items
		}
		rest := raw[open+1:]
		end := strings.IndexByte(rest, quote)
		if end < 0 {
			return items
		}
		items = append(items, rest[:end])
		raw = rest[end+1:]
	}
}

// ParseTags turns a list-like field into a tag string: quoted items are
// extracted, blank items dropped and every word stemmed. Empty input, blank
// input and the empty-list marker yield "".
func ParseTags(s Stemmer, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == emptyList {
		return ""
	}

	items := ExtractQuoted(raw)
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if stemmed := StemText(s, item); stemmed != "" {
			parts = append(parts, stemmed)
		}
	}
	return strings.Join(parts, " ")
}

// BuildTagSource concatenates the four metadata fields that feed the tag
// string. Missing fields are replaced by the empty-list marker.
func BuildTagSource(genres, themes, studios, producers string) string {
	fields := [4]string{genres, themes, studios, producers}
	for i, f := range fields {
		if strings.TrimSpace(f) == "" {
			fields[i] = emptyList
		}
	}
	return strings.Join(fields[:], " ")
}

// BuildTags derives the normalized tag string for one catalog row.
func BuildTags(s Stemmer, genres, themes, studios, producers string) string {
	return ParseTags(s, BuildTagSource(genres, themes, studios, producers))
}
