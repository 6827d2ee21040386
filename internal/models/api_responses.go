// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package models

import (
	"time"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/recommend"
)

// APIResponse is the envelope returned by every /api/v1 endpoint.
//
// Status field values:
//   - "success": see Data
//   - "error": see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query": "naruto", "found": true, "recommendations": [...]},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z", "query_time_ms": 2}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "title is required"},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata accompanies every APIResponse.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the error body of an APIResponse.
//
// Codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - BAD_REQUEST: undecodable request body
//   - NOT_FOUND: unknown route
//   - METHOD_NOT_ALLOWED: route exists for another method
//   - MODEL_NOT_READY: no index has been built yet
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	AnimeName string `json:"animeName" validate:"max=500,nocontrol"`
	Genre     string `json:"genre" validate:"max=500,nocontrol"`
}

// RecommendResponse is the body returned by POST /recommend. Its shape is
// kept stable for the bundled front-end.
type RecommendResponse struct {
	Success         bool                       `json:"success"`
	Message         string                     `json:"message"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Suggestions     []string                   `json:"suggestions,omitempty"`
}

// RecommendationsQuery holds the query string of GET /api/v1/recommendations.
type RecommendationsQuery struct {
	Title string `query:"title" validate:"required,max=500,nocontrol"`
	Genre string `query:"genre" validate:"max=500,nocontrol"`
}

// SearchQuery holds the query string of GET /api/v1/search.
type SearchQuery struct {
	Query string `query:"q" validate:"max=500,nocontrol"`
}

// SearchResponse lists title matches in catalog order.
type SearchResponse struct {
	Results []recommend.TitleMatch `json:"results"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status     string `json:"status"`
	AnimeCount int    `json:"anime_count"`
	ModelReady bool   `json:"model_ready"`
}

// ReadinessStatus is the data of GET /api/v1/health/ready.
type ReadinessStatus struct {
	Ready      bool       `json:"ready"`
	AnimeCount int        `json:"anime_count"`
	Generation int64      `json:"generation"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	Uptime     float64    `json:"uptime_seconds"`
}

// CatalogSample is the body of the image sample endpoint.
type CatalogSample struct {
	SampleData []catalog.SampleEntry `json:"sample_data"`
}

// CatalogStats describes the catalog behind the served model.
type CatalogStats struct {
	Images         catalog.ImageStats `json:"images"`
	RowsIn         int                `json:"rows_in"`
	RowsDropped    int                `json:"rows_dropped"`
	Entries        int                `json:"entries"`
	VocabularySize int                `json:"vocabulary_size"`
	Stemmer        string             `json:"stemmer"`
	BuildTimeMS    int64              `json:"build_time_ms"`
	Generation     int64              `json:"generation"`
	LoadedAt       time.Time          `json:"loaded_at"`
}
