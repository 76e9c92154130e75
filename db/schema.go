// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is kept portable across SQLite and PostgreSQL: timestamps are
// written explicitly from Go rather than via engine-specific defaults.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Group members
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Sessions
CREATE TABLE IF NOT EXISTS session (
    token TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL,
    expires_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_user_id ON session(user_id);

-- Accommodations
CREATE TABLE IF NOT EXISTS accommodation (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    url TEXT,
    image_url TEXT,
    price_per_night REAL,
    lat REAL NOT NULL,
    lng REAL NOT NULL,
    city TEXT,
    created_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_accommodation_created_at ON accommodation(created_at);

-- Ranking records
-- No FK to accommodation: records may outlive a deleted accommodation;
-- the merge step drops dangling references.
CREATE TABLE IF NOT EXISTS ranking (
    user_id TEXT NOT NULL,
    accommodation_id TEXT NOT NULL,
    position INTEGER NOT NULL CHECK (position >= 1),
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (user_id, accommodation_id),
    UNIQUE (user_id, position)
);

CREATE INDEX IF NOT EXISTS idx_ranking_accommodation ON ranking(accommodation_id);

-- Comments
CREATE TABLE IF NOT EXISTS comment (
    id TEXT PRIMARY KEY,
    accommodation_id TEXT NOT NULL REFERENCES accommodation(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comment_accommodation ON comment(accommodation_id);
`
