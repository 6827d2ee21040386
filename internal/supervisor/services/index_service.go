// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Rebuilder produces a complete new model, typically by reloading the
// catalog and running recommend.BuildIndex.
type Rebuilder interface {
	Rebuild(ctx context.Context) (*recommend.Model, error)
}

// IndexServiceConfig holds configuration for the index reload service.
type IndexServiceConfig struct {
	// ReloadInterval is the time between full rebuilds. Zero or less
	// disables reloading.
	ReloadInterval time.Duration

	// RebuildTimeout bounds one rebuild. Default: 10m
	RebuildTimeout time.Duration
}

// IndexService periodically rebuilds the model and publishes it to an
// Index. A failed rebuild leaves the previous model in place.
type IndexService struct {
	rebuilder Rebuilder
	index     *recommend.Index
	config    IndexServiceConfig
	logger    zerolog.Logger
	name      string
}

// NewIndexService creates the reload service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIndexService(rebuilder Rebuilder, index *recommend.Index, cfg IndexServiceConfig, logger zerolog.Logger) *IndexService {
	if cfg.RebuildTimeout <= 0 {
		cfg.RebuildTimeout = 10 * time.Minute
	}
	return &IndexService{
		rebuilder: rebuilder,
		index:     index,
		config:    cfg,
		logger:    logger.With().Str("service", "index").Logger(),
		name:      "index-service",
	}
}

// Serve implements suture.Service. With reloading disabled it returns
// suture.ErrDoNotRestart at once.
func (s *IndexService) Serve(ctx context.Context) error {
	if s.config.ReloadInterval <= 0 {
		s.logger.Info().Msg("index reload disabled")
		return suture.ErrDoNotRestart
	}

	s.logger.Info().
		Dur("reload_interval", s.config.ReloadInterval).
		Int64("generation", s.index.Generation()).
		Msg("index service running")

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("index service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.Reload(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn().Err(err).Msg("scheduled index rebuild failed, keeping current model")
			}
		}
	}
}

// Reload performs one rebuild and swaps the result in on success.
func (s *IndexService) Reload(ctx context.Context) error {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	ctx, cancel := context.WithTimeout(ctx, s.config.RebuildTimeout)
	defer cancel()

	start := time.Now()
	m, err := s.rebuilder.Rebuild(ctx)
	metrics.RecordIndexReload(err)
	if err != nil {
		return err
	}

	stats := m.Stats()
	s.index.Swap(m)
	metrics.RecordModelBuild(stats.Entries, stats.RowsDropped, stats.VocabularySize, stats.Duration)

	s.logger.Info().
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
		Int("entries", stats.Entries).
		Int("vocabulary", stats.VocabularySize).
		Int64("generation", s.index.Generation()).
		Dur("duration", time.Since(start)).
		Msg("index rebuilt")
	return nil
}

// String implements fmt.Stringer; suture uses it in events.
func (s *IndexService) String() string {
	return s.name
}
