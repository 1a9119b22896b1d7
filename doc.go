// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the olympiad API server.

The API backs an online school olympiad: participants register, fetch the
task list, submit their answers and later look up their scored results.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..."

For a local run without PostgreSQL:

	go run main.go -t sqlite -d "file:olympiad.db?_pragma=foreign_keys(1)"

A .env file in the working directory is read on startup; variables
already set in the environment win.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - LOG_LEVEL (--log-level): debug, info, warn, error (default: info)
  - LOG_FORMAT (--log-format): json or text (default: json)
  - REQUEST_TIMEOUT (--request-timeout): database time per request (default: 10s)

# Architecture

  - handlers: registration, task listing, result submission and lookup
  - router: endpoint wiring, CORS preflight, metrics
  - middleware: logging, JSON helpers, error mapping, per-endpoint dispatch
  - models: request/response types and validation
  - apperr: error kinds and their status codes
  - metrics: Prometheus collectors
  - db: connection, schema, constraint errors
  - gateway: API Gateway proxy adapter used by cmd/lambda
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
