// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the olympiad API.

NewRouter returns the complete handler, wrapped in panic recovery and
CORS:

	handler := router.NewRouter(db, cfg)

# Endpoints

	GET     /health   - Liveness check
	GET     /metrics  - Prometheus metrics
	POST    /register - Register a participant
	GET     /tasks    - List tasks without answers
	POST    /results  - Submit answers
	GET     /results  - Fetch scored results
	OPTIONS (any of the three above) - CORS preflight

Each of /register, /tasks and /results is a middleware.Endpoint, so
preflight responses list only the methods that path supports.
*/
package router
