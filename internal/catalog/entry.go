// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"strconv"
	"strings"
)

// Entry is one catalog item. Metadata fields hold stringified lists such as
// "['Action', 'Drama']"; an absent list is stored as "[]".
type Entry struct {
	ID        int    `json:"anime_id"`
	Title     string `json:"title"`
	Genres    string `json:"genres"`
	Themes    string `json:"themes"`
	Studios   string `json:"studios"`
	Producers string `json:"producers"`
	ImageURL  string `json:"main_picture"`
}

// HasImage reports whether the entry carries an image URL.
func (e *Entry) HasImage() bool {
	return strings.TrimSpace(e.ImageURL) != ""
}

// Row is a raw CSV record. Every column is read as text so that a single
// malformed cell does not abort the whole file.
type Row struct {
	AnimeID     string `csv:"anime_id"`
	Title       string `csv:"title"`
	Genres      string `csv:"genres"`
	Themes      string `csv:"themes"`
	Studios     string `csv:"studios"`
	Producers   string `csv:"producers"`
	MainPicture string `csv:"main_picture"`
}

// missingValues are cell contents treated as absent.
var missingValues = map[string]bool{
	"":    true,
	"nan": true,
	"NaN": true,
	"NA":  true,
	"N/A": true,
}

func isMissing(s string) bool {
	return missingValues[strings.TrimSpace(s)]
}

func listOrEmpty(s string) string {
	if isMissing(s) {
		return "[]"
	}
	return s
}

// Entry converts the row, filling absent list fields with "[]" and an
// absent image with "". It reports false when the id is not an integer.
func (r *Row) Entry() (Entry, bool) {
	raw := strings.TrimSpace(r.AnimeID)
	id, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return Entry{}, false
		}
		id = int(f)
	}

	image := strings.TrimSpace(r.MainPicture)
	if isMissing(image) {
		image = ""
	}

	return Entry{
		ID:        id,
		Title:     r.Title,
		Genres:    listOrEmpty(r.Genres),
		Themes:    listOrEmpty(r.Themes),
		Studios:   listOrEmpty(r.Studios),
		Producers: listOrEmpty(r.Producers),
		ImageURL:  image,
	}, true
}
