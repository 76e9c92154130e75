// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the tripvote API server.

Tripvote is the backend for a private group-trip planner: members collect
accommodation options (with coordinates for the map view), discuss them in
per-accommodation comment threads, rank them by drag-and-drop, and see a
group-wide Borda-count ranking. A free-form trip questionnaire is forwarded
to a chat webhook.

# Starting the Server

The server reads environment variables (a .env file is honored) or CLI flags:

	DATABASE_URL=tripvote.db go run .

Or with flags:

	go run . -p 8090 -t sqlite -d tripvote.db

# Configuration

Optional settings:

  - PORT (-p): server port (default: 8090)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: tripvote.db for sqlite)
  - WEBHOOK_URL (--webhook-url): chat webhook for questionnaire submissions
  - GEOCODER_URL (--geocoder-url): Nominatim-compatible search endpoint

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, accommodations, rankings, comments,
    questionnaire, geocode)
  - ranking: the pure ranking core (personal-order merge, Borda aggregation)
  - store: repositories for accommodations and ranking records
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - auth: session tokens and password hashing
  - db: schema creation
  - cliparse: configuration parsing
  - geocode, webhook: thin clients for the external collaborators

See package documentation for each component.
*/
package main
