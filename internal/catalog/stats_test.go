// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import "testing"

func TestComputeImageStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
		want    ImageStats
	}{
		{"empty", nil, ImageStats{}},
		{
			"mixed",
			[]Entry{{ImageURL: "https://a"}, {ImageURL: ""}, {ImageURL: "  "}, {ImageURL: "https://b"}},
			ImageStats{Total: 4, WithImage: 2, WithoutImage: 2, WithImagePercent: 50, WithoutImagePercent: 50},
		},
		{
			"all present",
			[]Entry{{ImageURL: "https://a"}},
			ImageStats{Total: 1, WithImage: 1, WithImagePercent: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComputeImageStats(tt.entries); got != tt.want {
				t.Errorf("ComputeImageStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSample(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{ID: 1, Title: "Cowboy Bebop", ImageURL: "https://a"},
		{ID: 5, Title: "Tengoku no Tobira"},
		{ID: 6, Title: "Trigun", ImageURL: "https://c"},
	}

	tests := []struct {
		n    int
		want int
	}{
		{-1, 0},
		{0, 0},
		{2, 2},
		{10, 3},
	}
	for _, tt := range tests {
		got := Sample(entries, tt.n)
		if len(got) != tt.want {
			t.Errorf("Sample(%d) len = %d, want %d", tt.n, len(got), tt.want)
		}
	}

	got := Sample(entries, 2)
	if got[0].ID != 1 || got[1].Title != "Tengoku no Tobira" || got[0].ImageURL != "https://a" {
		t.Errorf("Sample() = %+v", got)
	}
}
