// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"tripvote/models"
)

// Accommodations is the repository for the authoritative accommodation set.
type Accommodations struct {
	db *sql.DB
}

func NewAccommodations(db *sql.DB) *Accommodations {
	return &Accommodations{db: db}
}

const accommodationColumns = `id, name, description, url, image_url, price_per_night, lat, lng, city, created_by, created_at`

// List returns all accommodations ordered by creation time.
func (s *Accommodations) List() ([]models.Accommodation, error) {
	rows, err := s.db.Query(`
		SELECT ` + accommodationColumns + `
		FROM accommodation
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	defer rows.Close()

	accommodations := []models.Accommodation{}
	for rows.Next() {
		var a models.Accommodation
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.URL, &a.ImageURL,
			&a.PricePerNight, &a.Lat, &a.Lng, &a.City, &a.CreatedBy, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan accommodation: %w", err)
		}
		accommodations = append(accommodations, a)
	}

	return accommodations, rows.Err()
}

// Get returns a single accommodation, or sql.ErrNoRows when absent.
func (s *Accommodations) Get(id string) (models.Accommodation, error) {
	var a models.Accommodation
	err := s.db.QueryRow(`
		SELECT `+accommodationColumns+`
		FROM accommodation
		WHERE id = $1
	`, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.URL, &a.ImageURL,
		&a.PricePerNight, &a.Lat, &a.Lng, &a.City, &a.CreatedBy, &a.CreatedAt,
	)
	return a, err
}

// Insert stores a new accommodation.
func (s *Accommodations) Insert(a models.Accommodation) error {
	_, err := s.db.Exec(`
		INSERT INTO accommodation (id, name, description, url, image_url, price_per_night, lat, lng, city, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, a.ID, a.Name, a.Description, a.URL, a.ImageURL,
		a.PricePerNight, a.Lat, a.Lng, a.City, a.CreatedBy, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert accommodation: %w", err)
	}
	return nil
}

// Delete removes an accommodation and its comment thread. Ranking records
// referring to it are left in place; the merge step filters them out.
// Comments are removed explicitly rather than via cascade since SQLite does
// not enforce foreign keys by default.
func (s *Accommodations) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete accommodation: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM comment WHERE accommodation_id = $1`, id); err != nil {
		return fmt.Errorf("delete accommodation comments: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM accommodation WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete accommodation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete accommodation: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete accommodation: %w", err)
	}
	return nil
}
