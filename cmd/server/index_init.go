// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/supervisor"
	"github.com/tomtom215/animerec/internal/supervisor/services"
)

// indexBuilder loads the catalog and builds a model from it. It backs both
// the startup build and the scheduled reloads.
type indexBuilder struct {
	source catalog.Source
	kind   string
	engine recommend.Config
	logger zerolog.Logger
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func newIndexBuilder(fs afero.Fs, cfg *config.Config, logger zerolog.Logger) *indexBuilder {
	kind := "file"
	if cfg.Catalog.URL != "" {
		kind = "http"
	}
	return &indexBuilder{
		source: catalog.NewSource(fs, cfg.Catalog.Location(), cfg.Catalog.HTTPConfig()),
		kind:   kind,
		engine: cfg.Recommend.Engine(),
		logger: logger,
	}
}

// Rebuild implements services.Rebuilder.
func (b *indexBuilder) Rebuild(ctx context.Context) (*recommend.Model, error) {
	start := time.Now()
	res, err := catalog.Load(ctx, b.source)
	metrics.RecordCatalogLoad(b.kind, skipped(res), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", b.source.Name(), err)
	}

	b.logger.Info().
		Str("source", res.Source).
		Int("rows", res.Rows).
		Int("skipped", res.Skipped).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")

	return recommend.BuildIndex(ctx, res.Entries, b.engine)
}

func skipped(res *catalog.LoadResult) int {
	if res == nil {
		return 0
	}
	return res.Skipped
}

// initIndex performs the startup build. Any error here is fatal to the
// process, recommend.ErrDatasetUnusable included.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initIndex(ctx context.Context, builder *indexBuilder, logger zerolog.Logger) (*recommend.Index, error) {
	m, err := builder.Rebuild(ctx)
	if err != nil {
		return nil, err
	}

	stats := m.Stats()
	metrics.RecordModelBuild(stats.Entries, stats.RowsDropped, stats.VocabularySize, stats.Duration)
	logger.Info().
		Int("entries", stats.Entries).
		Int("dropped", stats.RowsDropped).
		Int("vocabulary", stats.VocabularySize).
		Str("stemmer", stats.Stemmer).
		Dur("duration", stats.Duration).
		Msg("recommendation index ready")

	return recommend.NewIndex(m), nil
}

// addIndexService registers periodic rebuilds with the data layer when a
// reload interval is configured.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func addIndexService(tree *supervisor.SupervisorTree, builder *indexBuilder, index *recommend.Index, cfg *config.Config, logger zerolog.Logger) bool {
	if cfg.Catalog.ReloadInterval <= 0 {
		logger.Info().Msg("index reload disabled (CATALOG_RELOAD_INTERVAL=0)")
		return false
	}
	svc := services.NewIndexService(builder, index, services.IndexServiceConfig{
		ReloadInterval: cfg.Catalog.ReloadInterval,
	}, logger)
	tree.AddDataService(svc)
	logger.Info().Dur("interval", cfg.Catalog.ReloadInterval).Msg("index service added to supervisor tree")
	return true
}
