// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package middleware provides the HTTP middleware mounted by the chi router.

Key Components:

  - RequestID: X-Request-ID propagation into chi and logging contexts
  - PrometheusMetrics: request counters, latency histograms, in-flight gauge
  - PerformanceMonitor: rolling latency window with per-route percentiles
  - Compression: gzip for clients sending Accept-Encoding: gzip

Every middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMon.Middleware)
	r.Use(middleware.Compression)

Metric and latency series are labelled by the chi route pattern
("/search/{query}") rather than the raw path, so user input never becomes a
label value.
*/
package middleware
