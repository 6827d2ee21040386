// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package metrics provides Prometheus metrics collection and export.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)

Recommendation Metrics:
  - recommendation_queries_total: Queries by title match kind (counter)
    Labels: match_kind (exact, partial, none)
  - recommendation_results: Recommendations per resolved query (histogram)
  - recommendation_duration_seconds: Resolve and rank time (histogram)
  - recommendation_suggestions_total: Suggested titles for unresolved queries (counter)
  - title_search_queries_total: Title searches (counter)
    Labels: result (hit, miss)
  - result_cache_requests_total: Result cache lookups (counter)
    Labels: result (hit, miss)

Catalog and Model Metrics:
  - catalog_entries, catalog_entries_dropped, catalog_rows_skipped (gauges)
  - catalog_load_duration_seconds: Catalog load time (histogram)
    Labels: source (file, http), status
  - model_vocabulary_size, model_build_duration_seconds, model_ready (gauges)
  - index_reloads_total: Scheduled rebuilds (counter)
    Labels: status (success, error)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state (counter)

# Usage

	start := time.Now()
	res := model.Recommend(title, genres)
	metrics.RecordRecommendation(string(res.MatchKind), len(res.Recommendations),
	    len(res.Suggestions), time.Since(start))
*/
package metrics
