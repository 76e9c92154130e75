// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

Flags take precedence; environment variables are the fallback. Every setting
has a usable default except the postgres connection string.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - -p / PORT: server port (default 8090)
  - -t / DATABASE_TYPE: sqlite or postgres (default sqlite)
  - -d / DATABASE_URL: connection string (default tripvote.db for sqlite,
    required for postgres)
  - --webhook-url / WEBHOOK_URL: chat webhook for the trip questionnaire
    (optional; the endpoint reports 503 when unset)
  - --geocoder-url / GEOCODER_URL: Nominatim-compatible search endpoint
    (default: the public openstreetmap.org instance)

Config.Driver maps the database type to the registered database/sql driver
("sqlite" from modernc.org/sqlite, "postgres" from lib/pq).
*/
package cliparse
