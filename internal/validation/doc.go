// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package validation validates request structs with go-playground/validator.
//
// A single validator instance is shared; it caches struct metadata and is
// safe for concurrent use. Error field names follow the json tag (or the
// query tag for query-string structs), so messages name "animeName" rather
// than the Go field.
//
// Custom rules:
//   - nocontrol: rejects control characters other than tab
//
// Genre filters are only length-checked here. Unknown or empty genre tokens
// are dropped later by the recommender and never cause a 400.
package validation
