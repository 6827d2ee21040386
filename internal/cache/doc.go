// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiration.

The API layer keeps recent recommendation results in it, keyed by index
generation, title and genre filter. A rebuilt index bumps the generation, so
stale results are never served; they age out through LRU eviction or TTL.

# Usage

	results := cache.NewLRUCache[recommend.Result](1024, 5*time.Minute)

	if res, ok := results.Get(key); ok {
		return res
	}
	res := model.Recommend(title, genre)
	results.Add(key, res)

# Complexity

Get, Add and Remove are O(1). CleanupExpired walks the whole list.
*/
package cache
