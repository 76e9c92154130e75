// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripvote/auth"
	"tripvote/cliparse"
	"tripvote/middleware"
	"tripvote/models"
	"tripvote/store"
)

type AccommodationHandler struct {
	db             *sql.DB
	cfg            cliparse.Config
	accommodations *store.Accommodations
}

func NewAccommodationHandler(db *sql.DB, cfg cliparse.Config) *AccommodationHandler {
	return &AccommodationHandler{
		db:             db,
		cfg:            cfg,
		accommodations: store.NewAccommodations(db),
	}
}

// List handles GET /accommodations
func (h *AccommodationHandler) List(w http.ResponseWriter, r *http.Request) {
	accommodations, err := h.accommodations.List()
	if err != nil {
		slog.Error("failed to list accommodations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, accommodations)
}

// Create handles POST /accommodations
func (h *AccommodationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if err == auth.ErrInvalidToken {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in to add accommodations")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.CreateAccommodationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lat/lng out of range")
		return
	}
	if req.PricePerNight != nil && *req.PricePerNight < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "price_per_night cannot be negative")
		return
	}

	accommodation := models.Accommodation{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   optional(req.Description),
		URL:           optional(req.URL),
		ImageURL:      optional(req.ImageURL),
		PricePerNight: req.PricePerNight,
		Lat:           req.Lat,
		Lng:           req.Lng,
		City:          optional(req.City),
		CreatedBy:     user.ID,
		CreatedAt:     time.Now(),
	}

	if err := h.accommodations.Insert(accommodation); err != nil {
		slog.Error("failed to insert accommodation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add accommodation")
		return
	}

	slog.Info("accommodation added", "accommodation_id", accommodation.ID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateAccommodationResponse{
		AccommodationID: accommodation.ID,
	})
}

// Delete handles DELETE /accommodations/{id}
// Any signed-in member may remove an accommodation; the group is trusted.
func (h *AccommodationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, err := currentUser(h.db, r)
	if err == auth.ErrInvalidToken {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in to remove accommodations")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	err = h.accommodations.Delete(id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Accommodation not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete accommodation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove accommodation")
		return
	}

	slog.Info("accommodation removed", "accommodation_id", id)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Accommodation removed"})
}

// optional maps an empty string to a NULL column value.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
