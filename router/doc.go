// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the poll site.

	mux := router.NewRouter(db, cfg)

# Endpoints

	GET  /health
	GET  /               - Latest published questions
	GET  /{id}/          - Voting form
	GET  /{id}/results/  - Vote tally
	POST /{id}/vote/     - Cast a vote (form field "choice")

Poll pages are wrapped in middleware.WithLogging. Other methods on these
paths get 405 from the ServeMux.
*/
package router
