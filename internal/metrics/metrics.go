// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - API endpoint latency and throughput
// - Recommendation and search outcomes
// - Catalog loading and index construction
// - Circuit breaker state of the remote catalog source

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_queries_total",
			Help: "Total number of recommendation queries by title match kind",
		},
		[]string{"match_kind"}, // "exact", "partial", "none"
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per resolved query",
			Buckets: []float64{0, 1, 2, 5, 10},
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent resolving and ranking a recommendation query",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendationSuggestions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_suggestions_total",
			Help: "Total number of suggested titles returned for unresolved queries",
		},
	)

	SearchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "title_search_queries_total",
			Help: "Total number of title searches",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Catalog and Index Metrics
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_entries",
			Help: "Number of catalog entries served by the current model",
		},
	)

	CatalogRowsSkipped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_rows_skipped",
			Help: "Number of CSV rows skipped for an invalid anime_id",
		},
	)

	CatalogEntriesDropped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_entries_dropped",
			Help: "Number of entries dropped because their tag string was empty",
		},
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "status"},
	)

	ModelVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_vocabulary_size",
			Help: "Number of terms in the model vocabulary",
		},
	)

	ModelBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_build_duration_seconds",
			Help: "Duration of the last similarity index build in seconds",
		},
	)

	ModelReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_ready",
			Help: "Whether a similarity model is loaded (1) or not (0)",
		},
	)

	IndexReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "index_reloads_total",
			Help: "Scheduled index rebuilds by outcome",
		},
		[]string{"status"}, // success, error
	)

	// Result Cache Metrics
	ResultCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_requests_total",
			Help: "Recommendation result cache lookups",
		},
		[]string{"result"}, // hit, miss
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation records one recommendation query.
// results is ignored for unresolved queries.
func RecordRecommendation(matchKind string, results, suggestions int, duration time.Duration) {
	RecommendationQueries.WithLabelValues(matchKind).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if matchKind == "none" {
		RecommendationSuggestions.Add(float64(suggestions))
		return
	}
	RecommendationResults.Observe(float64(results))
}

// RecordSearch records one title search.
func RecordSearch(results int) {
	if results == 0 {
		SearchQueries.WithLabelValues("miss").Inc()
		return
	}
	SearchQueries.WithLabelValues("hit").Inc()
}

// RecordCatalogLoad records a catalog load attempt.
func RecordCatalogLoad(source string, skipped int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	CatalogLoadDuration.WithLabelValues(source, status).Observe(duration.Seconds())
	if err == nil {
		CatalogRowsSkipped.Set(float64(skipped))
	}
}

// RecordModelBuild publishes the statistics of a finished index build.
func RecordModelBuild(entries, dropped, vocabulary int, duration time.Duration) {
	CatalogEntries.Set(float64(entries))
	CatalogEntriesDropped.Set(float64(dropped))
	ModelVocabularySize.Set(float64(vocabulary))
	ModelBuildDuration.Set(duration.Seconds())
	ModelReady.Set(1)
}

// RecordIndexReload counts one scheduled rebuild.
func RecordIndexReload(err error) {
	if err != nil {
		IndexReloads.WithLabelValues("error").Inc()
		return
	}
	IndexReloads.WithLabelValues("success").Inc()
}

// RecordResultCache counts one result cache lookup.
func RecordResultCache(hit bool) {
	if hit {
		ResultCacheRequests.WithLabelValues("hit").Inc()
		return
	}
	ResultCacheRequests.WithLabelValues("miss").Inc()
}
