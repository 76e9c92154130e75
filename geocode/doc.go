// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package geocode is a thin client for a Nominatim-compatible search
// endpoint, used to resolve a city or address to map coordinates when an
// accommodation is added without explicit lat/lng.
package geocode
