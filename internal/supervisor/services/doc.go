// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package services wraps long-running components as suture services.

  - HTTPServerService: runs an *http.Server and shuts it down gracefully
  - IndexService: rebuilds the recommendation model on a fixed interval and
    swaps it into a recommend.Index

Each service implements suture.Service (Serve(ctx) error) and fmt.Stringer
for supervisor events.
*/
package services
