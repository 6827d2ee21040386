// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/spf13/afero"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// FileSource reads the catalog from a filesystem path.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a source reading path from fs.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return s.path }

// Open implements Source.
func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check catalog file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.path)
	}

	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	return f, nil
}

// HTTPConfig configures an HTTPSource.
type HTTPConfig struct {
	URL        string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	Client     *http.Client
}

// HTTPSource downloads the catalog over HTTP(S). Requests go through a
// circuit breaker so a failing host is not hammered by retries.
type HTTPSource struct {
	cfg    HTTPConfig
	client *http.Client
	cb     *gobreaker.CircuitBreaker[[]byte]
	name   string
}

// errNotFoundStatus marks a 404 so it is not retried.
var errNotFoundStatus = errors.New("status 404")

// NewHTTPSource creates an HTTP source. Zero values of cfg fall back to a
// 30s timeout, 3 retries and a 1s base retry delay.
func NewHTTPSource(cfg HTTPConfig) *HTTPSource {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	} else if cfg.Retries == 0 {
		cfg.Retries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	cbName := "catalog-http"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		// Opens after 3 consecutive failures
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},

		// A missing file is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNotFoundStatus)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &HTTPSource{cfg: cfg, client: client, cb: cb, name: cbName}
}

// Name implements Source.
func (s *HTTPSource) Name() string { return s.cfg.URL }

// Open implements Source. The body is fully downloaded before returning.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.Retries; attempt++ {
		if attempt > 0 {
			delay := s.cfg.RetryDelay * time.Duration(1<<(attempt-1))
			logging.Ctx(ctx).Warn().Err(lastErr).Int("attempt", attempt).Dur("delay", delay).Msg("Retrying catalog download")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		body, err := s.execute(ctx)
		if err == nil {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		if errors.Is(err, errNotFoundStatus) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.cfg.URL)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to download catalog after %d attempts: %w", s.cfg.Retries+1, lastErr)
}

func (s *HTTPSource) execute(ctx context.Context) ([]byte, error) {
	body, err := s.cb.Execute(func() ([]byte, error) {
		return s.fetch(ctx)
	})
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
	}
	return body, err
}

func (s *HTTPSource) fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFoundStatus
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// NewSource picks an HTTPSource for http(s) locations and a FileSource
// otherwise.
func NewSource(fs afero.Fs, location string, httpCfg HTTPConfig) Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		httpCfg.URL = location
		return NewHTTPSource(httpCfg)
	}
	return NewFileSource(fs, location)
}
