// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Each handler struct holds the database connection and parsed config and is
wired up by the router:

  - AuthHandler: signup, login, logout, me (session-token auth)
  - AccommodationHandler: list, create, delete lodging options
  - RankingHandler: the ranking core's HTTP surface — personal order
    (merged against the current accommodation set), atomic save, and the
    group Borda aggregate
  - CommentHandler: per-accommodation threads, author-only deletion
  - QuestionnaireHandler: forwards the trip form to the chat webhook
  - GeocodeHandler: proxies address lookups to the Nominatim client

Authentication is resolved per-request from the X-Session-Token header via
currentUser; a missing or expired session is reported once as 401 at the
handler boundary. Store failures surface as 500 with a retryable message and
never mutate in-flight state, so clients can simply re-trigger the action.
*/
package handlers
