// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"tripvote/cliparse"
	"tripvote/geocode"
	"tripvote/middleware"
	"tripvote/models"
)

type GeocodeHandler struct {
	cfg      cliparse.Config
	geocoder *geocode.Client
}

func NewGeocodeHandler(cfg cliparse.Config) *GeocodeHandler {
	return &GeocodeHandler{
		cfg:      cfg,
		geocoder: geocode.NewClient(cfg.GeocoderURL),
	}
}

// Lookup handles GET /geocode?q=...
// Server-side proxy so the browser never talks to the geocoder directly.
func (h *GeocodeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "q is required")
		return
	}

	result, err := h.geocoder.Search(r.Context(), query)
	if err == geocode.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Address not found")
		return
	}
	if err != nil {
		slog.Error("geocoding failed", "error", err, "query", query)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Geocoding failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GeocodeResponse{
		Lat:         result.Lat,
		Lng:         result.Lng,
		DisplayName: result.DisplayName,
	})
}
