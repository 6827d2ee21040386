// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package main is the entry point for the animerec server.

animerec answers "what should I watch next?" from a static anime catalog.
Each title is reduced to a bag of stemmed tags built from its genres, themes,
studios and producers; titles are compared by the cosine similarity of their
tag count vectors.

# Startup

The server initializes components in the following order:

 1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
 2. Logging: zerolog, JSON or console
 3. Catalog: CSV from CATALOG_PATH or CATALOG_URL
 4. Index: tags, vocabulary, count vectors, similarity matrix
 5. HTTP Server: chi router under the api-layer supervisor
 6. Index reloads (optional): data-layer supervisor service

A catalog that cannot be read, or that yields no entry with tags, stops the
process before the listener opens.

# Configuration

	HTTP_HOST, HTTP_PORT          listen address (default 127.0.0.1:8000)
	CATALOG_PATH                  local CSV (default anime.csv)
	CATALOG_URL                   remote CSV, overrides CATALOG_PATH
	CATALOG_RELOAD_INTERVAL       periodic rebuild, 0 disables (default 0)
	RECOMMEND_STEMMER             porter or snowball (default porter)
	RECOMMEND_MAX_FEATURES        vocabulary cap (default 5000)
	CORS_ORIGINS                  comma separated origins (default *)
	RATE_LIMIT_REQUESTS           requests per window per IP (default 100)
	RECOMMEND_RESULT_CACHE_SIZE   cached recommendation results, 0 disables (default 1024)
	WEB_STATIC_DIR                front-end directory (default web)
	LOG_LEVEL, LOG_FORMAT         logging

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and drains in-flight requests within
HTTP_SHUTDOWN_TIMEOUT.

# Example Usage

	export CATALOG_PATH=/data/anime.csv
	export LOG_FORMAT=console
	./animerec

	curl -s -X POST localhost:8000/recommend \
	  -H 'Content-Type: application/json' \
	  -d '{"animeName":"Naruto","genre":"Action"}'
*/
package main
