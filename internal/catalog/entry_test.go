// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import "testing"

func TestRowEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		row    Row
		wantOK bool
		wantID int
	}{
		{"integer", Row{AnimeID: "21"}, true, 21},
		{"padded", Row{AnimeID: " 21 "}, true, 21},
		{"float integer", Row{AnimeID: "21.0"}, true, 21},
		{"fraction", Row{AnimeID: "21.5"}, false, 0},
		{"text", Row{AnimeID: "one"}, false, 0},
		{"empty", Row{AnimeID: ""}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, ok := tt.row.Entry()
			if ok != tt.wantOK || e.ID != tt.wantID {
				t.Errorf("Entry() = (%d, %v), want (%d, %v)", e.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestRowEntry_MissingValues(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "nan", "NaN", "NA", "N/A", "  "} {
		row := Row{AnimeID: "1", Title: "X", Genres: v, Themes: v, Studios: v, Producers: v, MainPicture: v}
		e, ok := row.Entry()
		if !ok {
			t.Fatalf("Entry() not ok for %q", v)
		}
		if e.Genres != "[]" || e.Themes != "[]" || e.Studios != "[]" || e.Producers != "[]" {
			t.Errorf("missing %q: lists = %+v", v, e)
		}
		if e.ImageURL != "" {
			t.Errorf("missing %q: ImageURL = %q", v, e.ImageURL)
		}
	}
}
