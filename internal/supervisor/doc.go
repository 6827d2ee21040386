// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package supervisor runs the long-lived services of the recommender under a
suture v4 supervisor tree.

# Overview

	RootSupervisor ("animerec")
	├── DataSupervisor ("data-layer")
	│   └── IndexService (if CATALOG_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing reload loop is restarted inside the data layer. The HTTP server
keeps serving the last published model meanwhile.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
		return err
	}
	tree.AddDataService(services.NewIndexService(builder, index, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

# Logging

Supervisor events (service panics, restarts, backoff) go through sutureslog
into the zerolog-backed slog handler from the logging package.

See the services subpackage for the service implementations.
*/
package supervisor
