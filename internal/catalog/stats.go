// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

// ImageStats summarizes image URL coverage of a catalog.
type ImageStats struct {
	Total               int     `json:"total"`
	WithImage           int     `json:"with_image"`
	WithoutImage        int     `json:"without_image"`
	WithImagePercent    float64 `json:"with_image_percent"`
	WithoutImagePercent float64 `json:"without_image_percent"`
}

// ComputeImageStats counts entries with and without an image URL.
// Percentages are zero for an empty catalog.
func ComputeImageStats(entries []Entry) ImageStats {
	stats := ImageStats{Total: len(entries)}
	for i := range entries {
		if entries[i].HasImage() {
			stats.WithImage++
		}
	}
	stats.WithoutImage = stats.Total - stats.WithImage
	if stats.Total > 0 {
		stats.WithImagePercent = float64(stats.WithImage) / float64(stats.Total) * 100
		stats.WithoutImagePercent = float64(stats.WithoutImage) / float64(stats.Total) * 100
	}
	return stats
}

// SampleEntry is the image-check view of an entry.
type SampleEntry struct {
	ID       int    `json:"anime_id"`
	Title    string `json:"title"`
	ImageURL string `json:"main_picture"`
}

// Sample returns the first n entries in catalog order.
func Sample(entries []Entry, n int) []SampleEntry {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]SampleEntry, n)
	for i := 0; i < n; i++ {
		out[i] = SampleEntry{ID: entries[i].ID, Title: entries[i].Title, ImageURL: entries[i].ImageURL}
	}
	return out
}
