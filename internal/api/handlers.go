// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/middleware"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor
//   - handlers_helpers.go: response and validation helpers
//   - handlers_health.go: health checks
//   - handlers_recommend.go: recommendation endpoints
//   - handlers_search.go: title search endpoints
//   - handlers_catalog.go: catalog inspection and latency stats
//   - handlers_static.go: the front-end page
type Handler struct {
	index     *recommend.Index
	perfMon   *middleware.PerformanceMonitor
	fs        afero.Fs
	staticDir string
	results   *cache.LRUCache[recommend.Result]
	startTime time.Time
}

// HandlerOptions configures optional Handler dependencies.
type HandlerOptions struct {
	// PerfMon backs the endpoint stats route. Nil disables it.
	PerfMon *middleware.PerformanceMonitor
	// FS is where the front-end is read from. Nil means the OS filesystem.
	FS afero.Fs
	// StaticDir holds index.html.
	StaticDir string
	// ResultCacheSize bounds the recommendation result cache. 0 disables it.
	ResultCacheSize int
	ResultCacheTTL  time.Duration
}

// NewHandler creates a handler serving whatever model index currently holds.
//
//	index := recommend.NewIndex(model)
//	handler := api.NewHandler(index, api.HandlerOptions{StaticDir: "web"})
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(index *recommend.Index, opts HandlerOptions) *Handler {
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	var results *cache.LRUCache[recommend.Result]
	if opts.ResultCacheSize > 0 {
		results = cache.NewLRUCache[recommend.Result](opts.ResultCacheSize, opts.ResultCacheTTL)
	}
	return &Handler{
		index:     index,
		results:   results,
		perfMon:   opts.PerfMon,
		fs:        fs,
		staticDir: opts.StaticDir,
		startTime: time.Now(),
	}
}

// currentModel returns the served model or writes a 503 and returns nil.
// Each request reads the model once so a concurrent rebuild cannot mix two
// models within one response.
func (h *Handler) currentModel(w http.ResponseWriter, r *http.Request) *recommend.Model {
	m := h.index.Model()
	if m == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeModelNotReady, "Recommendation model is not ready", nil)
	}
	return m
}
