// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"tripvote/auth"
	"tripvote/cliparse"
	"tripvote/db"
)

// TestPassword is the plaintext password for every test user.
const TestPassword = "correct-horse-battery"

// SetupTestDB creates a fresh SQLite database in a temp dir with the full
// schema. The database is removed with the test's temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tripvote_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8090,
		DatabaseType: cliparse.DBTypeSQLite,
		DatabaseURL:  ":memory:",
		GeocoderURL:  cliparse.DefaultGeocoderURL,
	}
}

// CreateTestUser inserts a user and returns its ID. The password is
// TestPassword, hashed at MinCost to keep the suite fast.
func CreateTestUser(t *testing.T, conn *sql.DB, email, name string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	userID := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO app_user (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, email, name, string(hash), time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestSession inserts a valid session for the user and returns its token.
func CreateTestSession(t *testing.T, conn *sql.DB, userID string) string {
	t.Helper()

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}

	now := time.Now()
	_, err = conn.Exec(`
		INSERT INTO session (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, userID, now, now.Add(auth.SessionTTL))
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// CreateTestAccommodation inserts an accommodation with an explicit creation
// time (the listing order under test) and returns its ID.
func CreateTestAccommodation(t *testing.T, conn *sql.DB, name string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO accommodation (id, name, lat, lng, created_by, created_at)
		VALUES ($1, $2, 52.23, 21.01, 'test-user', $3)
	`, id, name, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test accommodation: %v", err)
	}

	return id
}

// SaveTestRanking inserts ranking records for the user with positions
// 1..len(accommodationIDs) in slice order.
func SaveTestRanking(t *testing.T, conn *sql.DB, userID string, accommodationIDs []string) {
	t.Helper()

	now := time.Now()
	for i, accommodationID := range accommodationIDs {
		_, err := conn.Exec(`
			INSERT INTO ranking (user_id, accommodation_id, position, created_at)
			VALUES ($1, $2, $3, $4)
		`, userID, accommodationID, i+1, now)
		if err != nil {
			t.Fatalf("Failed to create test ranking: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
