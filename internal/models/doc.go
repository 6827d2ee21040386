// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package models defines the request and response bodies of the HTTP API.

Key Components:

  - APIResponse: {status, data, metadata, error} envelope for /api/v1 routes
  - APIError: machine-readable code plus message
  - RecommendRequest / RecommendResponse: the POST /recommend contract used by
    the bundled front-end
  - SearchResponse, HealthStatus, CatalogSample, CatalogStats

Request structs carry validate tags checked by internal/validation.
*/
package models
