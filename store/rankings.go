// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"tripvote/models"
)

// Rankings is the repository for per-user ranking records.
type Rankings struct {
	db *sql.DB
}

func NewRankings(db *sql.DB) *Rankings {
	return &Rankings{db: db}
}

// ListAll returns every user's ranking records.
func (s *Rankings) ListAll() ([]models.Ranking, error) {
	rows, err := s.db.Query(`
		SELECT user_id, accommodation_id, position, created_at
		FROM ranking
	`)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}
	defer rows.Close()

	return scanRankings(rows)
}

// ListForUser returns one user's records ordered by position ascending.
func (s *Rankings) ListForUser(userID string) ([]models.Ranking, error) {
	rows, err := s.db.Query(`
		SELECT user_id, accommodation_id, position, created_at
		FROM ranking
		WHERE user_id = $1
		ORDER BY position
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list rankings for user: %w", err)
	}
	defer rows.Close()

	return scanRankings(rows)
}

// ReplaceForUser atomically replaces the user's record set: the delete and
// inserts run in a single transaction, so either the new set fully replaces
// the old one or, on failure, the prior records are untouched. The delete is
// scoped to the user; other users' records are never touched.
func (s *Rankings) ReplaceForUser(userID string, entries []models.RankingEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace rankings: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM ranking WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("replace rankings: clear: %w", err)
	}

	now := time.Now()
	for _, entry := range entries {
		_, err := tx.Exec(`
			INSERT INTO ranking (user_id, accommodation_id, position, created_at)
			VALUES ($1, $2, $3, $4)
		`, userID, entry.AccommodationID, entry.Position, now)
		if err != nil {
			return fmt.Errorf("replace rankings: insert position %d: %w", entry.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace rankings: commit: %w", err)
	}
	return nil
}

func scanRankings(rows *sql.Rows) ([]models.Ranking, error) {
	rankings := []models.Ranking{}
	for rows.Next() {
		var r models.Ranking
		if err := rows.Scan(&r.UserID, &r.AccommodationID, &r.Position, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		rankings = append(rankings, r)
	}
	return rankings, rows.Err()
}
