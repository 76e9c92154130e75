// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: wraps a handler and logs method, path, status, client IP
    and duration via slog
  - CORS: permissive cross-origin headers for the frontend, including the
    X-Session-Token request header, with OPTIONS preflight handling
  - JSONResponse / ErrorResponse: JSON envelope helpers
  - ParseJSONBody: decode a request body into a struct
  - GetClientIP: X-Forwarded-For / X-Real-IP / RemoteAddr resolution
*/
package middleware
