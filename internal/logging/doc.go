// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package logging provides the zerolog-based structured logger used across
// the service.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("entries", n).Msg("Index ready")
//	logging.Ctx(ctx).Warn().Str("title", q).Msg("No title match")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Context
//
// Ctx attaches the request_id set by the HTTP middleware and the
// correlation_id set per index rebuild.
//
// # slog
//
// SlogHandler lets slog consumers such as sutureslog write through zerolog.
//
// The recommendation core packages do not log. Their callers in api,
// supervisor and cmd/server do.
package logging
