// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package api provides the HTTP surface of the recommendation service.

Routes:

	GET  /                            front-end page (index.html)
	POST /recommend                   {animeName, genre} -> {success, message, recommendations}
	GET  /search/{query}              {results: [{anime_id, title}]}
	GET  /test/images                 first catalog entries with image fields
	GET  /health                      {status, anime_count, model_ready}
	GET  /api/v1/health/live          liveness check
	GET  /api/v1/health/ready         readiness check, 503 until a model is served
	GET  /api/v1/recommendations      ?title=&genre=
	GET  /api/v1/search               ?q=
	GET  /api/v1/catalog/sample       same data as /test/images
	GET  /api/v1/catalog/stats        catalog and model statistics
	GET  /api/v1/stats/endpoints      rolling per-route latency
	GET  /metrics                     Prometheus exposition

The unversioned routes keep the response shapes the bundled front-end
expects. Everything under /api/v1 uses the models.APIResponse envelope.

Handlers read the current model from a recommend.Index exactly once per
request, so a background rebuild never mixes two models in one response.
A title with no match is a normal response (found=false or success=false),
not an HTTP error.

Recommendation results may be served from an LRU cache (see the cache
package). Entries are keyed by index generation, so they never outlive the
model that produced them.
*/
package api
