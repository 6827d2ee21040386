// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package config provides layered configuration for the recommendation service.

# Configuration Sources

Values are applied in order, later sources winning:
  - Built-in defaults (defaultConfig)
  - YAML file: CONFIG_PATH, else config.yaml / config.yml in the working
    directory, else /etc/animerec/config.yaml
  - Environment variables listed below

# Environment Variables

Server:
  - HTTP_HOST: bind address (default: 127.0.0.1)
  - HTTP_PORT: listen port (default: 8000)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown bound (default: 10s)
  - ENVIRONMENT: development, staging, production (default: development)

Catalog:
  - CATALOG_PATH: CSV file (default: anime.csv)
  - CATALOG_URL: http(s) CSV location, overrides CATALOG_PATH
  - CATALOG_TIMEOUT, CATALOG_RETRIES, CATALOG_RETRY_DELAY
  - CATALOG_RELOAD_INTERVAL: periodic rebuild, 0 disables (default: 0)

Recommendation:
  - RECOMMEND_STEMMER: porter or snowball (default: porter)
  - RECOMMEND_MAX_FEATURES: vocabulary bound (default: 5000)
  - RECOMMEND_CANDIDATE_POOL (50), RECOMMEND_RESULT_LIMIT (10)
  - RECOMMEND_SEARCH_LIMIT (20), RECOMMEND_SUGGESTION_LIMIT (10)
  - RECOMMEND_FUZZY_THRESHOLD: Jaro-Winkler floor, 0 disables (default: 0.85)
  - RECOMMEND_RESULT_CACHE_SIZE (1024, 0 disables), RECOMMEND_RESULT_CACHE_TTL (5m)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Web:
  - WEB_STATIC_DIR: directory holding index.html (default: web)

# Example config.yaml

	server:
	  host: 0.0.0.0
	  port: 8000
	catalog:
	  path: /data/anime.csv
	recommend:
	  stemmer: snowball
	security:
	  cors_origins: ["https://anime.example.com"]
*/
package config
