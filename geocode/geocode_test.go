// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchParsesFirstHit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Warsaw, Poland" {
			t.Errorf("Expected query 'Warsaw, Poland', got %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("Expected format=json, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "tripvote/1.0" {
			t.Errorf("Expected identifying User-Agent, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"lat": "52.2319", "lon": "21.0067", "display_name": "Warsaw, Poland"},
			{"lat": "0", "lon": "0", "display_name": "should be ignored"}
		]`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	result, err := c.Search(context.Background(), "Warsaw, Poland")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if result.Lat != 52.2319 || result.Lng != 21.0067 {
		t.Errorf("Expected (52.2319, 21.0067), got (%v, %v)", result.Lat, result.Lng)
	}
	if result.DisplayName != "Warsaw, Poland" {
		t.Errorf("Expected display name 'Warsaw, Poland', got %q", result.DisplayName)
	}
}

func TestSearchNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.Search(context.Background(), "nowhere at all")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.Search(context.Background(), "Warsaw")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Expected an upstream error, got %v", err)
	}
}

func TestSearchBadCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "not-a-number", "lon": "21.0", "display_name": "x"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.Search(context.Background(), "Warsaw"); err == nil {
		t.Error("Expected an error for unparseable coordinates")
	}
}
