// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package catalog loads the anime catalog from CSV.
//
// The CSV must carry a header row with at least the anime_id and title
// columns. The genres, themes, studios, producers and main_picture columns
// are optional; extra columns are ignored. Rows whose anime_id is not an
// integer are skipped and counted.
//
// Two sources are supported:
//
//   - FileSource reads a path through an afero filesystem
//   - HTTPSource downloads the file, retrying transient failures behind a
//     circuit breaker
//
// Example:
//
//	src := catalog.NewFileSource(afero.NewOsFs(), "anime.csv")
//	res, err := catalog.Load(ctx, src)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(res.Entries), "entries,", res.Skipped, "skipped")
package catalog
