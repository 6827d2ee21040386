// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig
//  2. Config File: optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: mapped names such as HTTP_PORT or CATALOG_PATH
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Web       WebConfig       `koanf:"web"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig locates the catalog CSV.
//
// Environment Variables:
//   - CATALOG_PATH: local CSV path (default: anime.csv)
//   - CATALOG_URL: http(s) URL, takes precedence over CATALOG_PATH
//   - CATALOG_TIMEOUT, CATALOG_RETRIES, CATALOG_RETRY_DELAY: HTTP download tuning
//   - CATALOG_RELOAD_INTERVAL: periodic full rebuild, 0 disables (default: 0)
type CatalogConfig struct {
	Path           string        `koanf:"path"`
	URL            string        `koanf:"url"`
	Timeout        time.Duration `koanf:"timeout"`
	Retries        int           `koanf:"retries"`
	RetryDelay     time.Duration `koanf:"retry_delay"`
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// Location returns the URL when set, otherwise the path.
func (c CatalogConfig) Location() string {
	if c.URL != "" {
		return c.URL
	}
	return c.Path
}

// HTTPConfig returns the download settings for a remote catalog.
func (c CatalogConfig) HTTPConfig() catalog.HTTPConfig {
	return catalog.HTTPConfig{
		URL:        c.URL,
		Timeout:    c.Timeout,
		Retries:    c.Retries,
		RetryDelay: c.RetryDelay,
	}
}

// RecommendConfig mirrors recommend.Config.
type RecommendConfig struct {
	Stemmer         string  `koanf:"stemmer"`
	MaxFeatures     int     `koanf:"max_features"`
	CandidatePool   int     `koanf:"candidate_pool"`
	ResultLimit     int     `koanf:"result_limit"`
	SearchLimit     int     `koanf:"search_limit"`
	SuggestionLimit int     `koanf:"suggestion_limit"`
	FuzzyThreshold  float64 `koanf:"fuzzy_threshold"`

	// ResultCacheSize bounds the API result cache; 0 disables it.
	ResultCacheSize int           `koanf:"result_cache_size"`
	ResultCacheTTL  time.Duration `koanf:"result_cache_ttl"`
}

// Engine converts to the recommend package configuration.
func (r RecommendConfig) Engine() recommend.Config {
	return recommend.Config{
		Stemmer:         r.Stemmer,
		MaxFeatures:     r.MaxFeatures,
		CandidatePool:   r.CandidatePool,
		ResultLimit:     r.ResultLimit,
		SearchLimit:     r.SearchLimit,
		SuggestionLimit: r.SuggestionLimit,
		FuzzyThreshold:  r.FuzzyThreshold,
	}
}

// SecurityConfig holds CORS and rate limiting settings. There is no
// authentication; the API is read-only.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Logger converts to the logging package configuration.
func (l LoggingConfig) Logger() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// WebConfig locates the static front-end.
type WebConfig struct {
	// StaticDir holds index.html and assets. A missing directory serves a
	// short error page at / instead.
	StaticDir string `koanf:"static_dir"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
