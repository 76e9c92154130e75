// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL avoids engine-specific constructs so the same schema runs on both
SQLite (the default) and PostgreSQL.

# Tables

The schema includes:

  - app_user: group members and their password hashes
  - session: opaque bearer tokens with expiry
  - accommodation: lodging options with map coordinates
  - ranking: one row per (user, accommodation) placement
  - comment: per-accommodation discussion threads

# Relationships

	app_user 1──* session
	accommodation 1──* comment
	app_user *──* accommodation (via ranking)

ranking deliberately has no foreign key to accommodation: a user's saved
records may refer to an accommodation deleted later, and the merge step in
the ranking core silently drops those dangling references.

# Invariants

	ranking: PRIMARY KEY (user_id, accommodation_id)
	ranking: UNIQUE (user_id, position), position >= 1
*/
package db
