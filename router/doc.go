// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes using Go 1.22+ method routing.

# Routes

Auth:

	POST /auth/signup
	POST /auth/login
	POST /auth/logout
	GET  /auth/me

Accommodations:

	GET    /accommodations
	POST   /accommodations
	DELETE /accommodations/{id}

Rankings:

	GET /rankings/me
	PUT /rankings/me
	GET /rankings/group

Comments:

	GET    /accommodations/{id}/comments
	POST   /accommodations/{id}/comments
	DELETE /comments/{id}

Misc:

	POST /questionnaire
	GET  /geocode?q=...
	GET  /health

Every route is wrapped in the request-logging middleware; CORS is applied by
main around the whole mux when the frontend is served from another origin.
*/
package router
