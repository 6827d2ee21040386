// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"github.com/tomtom215/animerec/internal/api"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/middleware"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/supervisor"
	"github.com/tomtom215/animerec/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.Logger())

	logging.Info().
		Str("catalog", cfg.Catalog.Location()).
		Str("stemmer", cfg.Recommend.Stemmer).
		Int("max_features", cfg.Recommend.MaxFeatures).
		Str("environment", cfg.Server.Environment).
		Msg("Starting animerec")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.IsProduction() && cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*) in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The first build is synchronous: no model, no server.
	builder := newIndexBuilder(afero.NewOsFs(), cfg, logging.WithComponent("index"))
	index, err := initIndex(ctx, builder, logging.WithComponent("index"))
	if err != nil {
		if errors.Is(err, recommend.ErrDatasetUnusable) {
			logging.Fatal().Err(err).Msg("Catalog has no usable entries")
		}
		logging.Fatal().Err(err).Msg("Failed to build recommendation index")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	perfMon := middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowRequestThreshold)
	handler := api.NewHandler(index, api.HandlerOptions{
		PerfMon:         perfMon,
		StaticDir:       cfg.Web.StaticDir,
		ResultCacheSize: cfg.Recommend.ResultCacheSize,
		ResultCacheTTL:  cfg.Recommend.ResultCacheTTL,
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	addIndexService(tree, builder, index, cfg, logging.WithComponent("index"))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel yields exactly one result when the tree stops.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
