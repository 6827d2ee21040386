// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package recommend implements content-based recommendation over a static
// anime catalog.
//
// # Architecture
//
// BuildIndex runs the whole pipeline once:
//
//  1. Tag strings are derived from genres, themes, studios and producers
//     (package text). Rows with an empty tag string are dropped.
//  2. The tag corpus is vectorized into term counts over a bounded
//     vocabulary (package vectorize).
//  3. The dense all-pairs cosine similarity matrix is computed
//     (package similarity).
//
// Steps 2 and 3 are the training of algorithms.ContentBased, which then
// ranks neighbours for Recommend through PredictSimilar.
//
// The resulting Model is immutable. Recommend, SearchTitles and Suggest
// only read it, so a single Model may serve any number of goroutines
// without locking.
//
// # Title Resolution
//
// A query resolves to the first title equal to it ignoring case, then to
// the first title containing it. When neither exists the Result reports
// Found=false together with advisory suggestions. Not finding a title is a
// normal outcome, never an error.
//
// # Usage
//
//	model, err := recommend.BuildIndex(ctx, entries, recommend.DefaultConfig())
//	if errors.Is(err, recommend.ErrDatasetUnusable) {
//	    // nothing to serve
//	}
//	res := model.Recommend("naruto", "action, comedy")
//	for _, r := range res.Recommendations {
//	    fmt.Println(r.Title, r.Score)
//	}
//
// Index holds the Model currently being served. A periodic rebuild
// publishes a fresh Model with Swap; readers call Model once per request and
// keep using that value.
//
// The package never logs; callers decide what to report from the Result
// and BuildStats values.
package recommend
