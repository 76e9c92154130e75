// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound is returned when the geocoder has no match for the query.
var ErrNotFound = errors.New("no match for query")

// Nominatim usage policy requires an identifying User-Agent.
const userAgent = "tripvote/1.0"

// Client queries a Nominatim-compatible search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Result is a resolved location.
type Result struct {
	Lat         float64
	Lng         float64
	DisplayName string
}

// Search resolves a free-form query ("city, country" works best) to
// coordinates, taking the first hit. Returns ErrNotFound when the geocoder
// has no result.
func (c *Client) Search(ctx context.Context, query string) (Result, error) {
	endpoint := c.baseURL + "?format=json&limit=1&q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, fmt.Errorf("geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	// Nominatim returns lat/lon as strings
	var hits []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return Result{}, fmt.Errorf("geocode response: %w", err)
	}
	if len(hits) == 0 {
		return Result{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return Result{}, fmt.Errorf("geocode response: bad lat %q: %w", hits[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return Result{}, fmt.Errorf("geocode response: bad lon %q: %w", hits[0].Lon, err)
	}

	return Result{Lat: lat, Lng: lng, DisplayName: hits[0].DisplayName}, nil
}
