// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the repositories the ranking core depends on.

Accommodations exposes the authoritative item set (List is ordered by
creation time). Rankings exposes the per-user record sets; ReplaceForUser is
the single write path and is documented as an atomic replace: delete the
user's rows and insert the new positions 1..k inside one transaction. A
failed replace leaves the prior record set intact, which is what lets the
HTTP layer surface save failures as retryable without corrupting state.
*/
package store
