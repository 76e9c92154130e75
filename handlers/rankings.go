// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"tripvote/auth"
	"tripvote/cliparse"
	"tripvote/middleware"
	"tripvote/models"
	"tripvote/ranking"
	"tripvote/store"
)

type RankingHandler struct {
	db             *sql.DB
	cfg            cliparse.Config
	accommodations *store.Accommodations
	rankings       *store.Rankings
}

func NewRankingHandler(db *sql.DB, cfg cliparse.Config) *RankingHandler {
	return &RankingHandler{
		db:             db,
		cfg:            cfg,
		accommodations: store.NewAccommodations(db),
		rankings:       store.NewRankings(db),
	}
}

// GetMine handles GET /rankings/me
// Returns the user's saved order merged with the current accommodation set:
// ranked items first in saved order, never-ranked items appended at the end.
func (h *RankingHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if err == auth.ErrInvalidToken {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in to rank accommodations")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	items, err := h.accommodations.List()
	if err != nil {
		slog.Error("failed to list accommodations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	records, err := h.rankings.ListForUser(user.ID)
	if err != nil {
		slog.Error("failed to list rankings", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	order := ranking.MergeOrder(items, records)

	// How many of the current items the user has actually placed
	ranked := make(map[string]bool, len(records))
	for _, rec := range records {
		ranked[rec.AccommodationID] = true
	}
	rankedCount := 0
	for _, item := range items {
		if ranked[item.ID] {
			rankedCount++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PersonalOrderResponse{
		Order:       order,
		RankedCount: rankedCount,
	})
}

// Save handles PUT /rankings/me
// The body is the full ordered accommodation-id list; it atomically replaces
// the user's previous record set with positions 1..len(order).
func (h *RankingHandler) Save(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if err == auth.ErrInvalidToken {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in to rank accommodations")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.SaveRankingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	items, err := h.accommodations.List()
	if err != nil {
		slog.Error("failed to list accommodations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	valid := make(map[string]bool, len(items))
	for _, item := range items {
		valid[item.ID] = true
	}

	entries := make([]models.RankingEntry, 0, len(req.AccommodationIDs))
	seen := make(map[string]bool, len(req.AccommodationIDs))
	for i, id := range req.AccommodationIDs {
		if !valid[id] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown accommodation_id: "+id)
			return
		}
		if seen[id] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Duplicate accommodation_id: "+id)
			return
		}
		seen[id] = true
		entries = append(entries, models.RankingEntry{
			AccommodationID: id,
			Position:        i + 1,
		})
	}

	if err := h.rankings.ReplaceForUser(user.ID, entries); err != nil {
		// Prior records are intact after rollback; the client may retry as-is
		slog.Error("failed to replace rankings", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save ranking, please retry")
		return
	}

	slog.Info("ranking saved", "user_id", user.ID, "count", len(entries))

	middleware.JSONResponse(w, http.StatusOK, models.SaveRankingResponse{
		Saved:   len(entries),
		Message: "Ranking saved",
	})
}

// GetGroup handles GET /rankings/group
// Recomputes the Borda aggregate from scratch over all users' records.
func (h *RankingHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	items, err := h.accommodations.List()
	if err != nil {
		slog.Error("failed to list accommodations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	records, err := h.rankings.ListAll()
	if err != nil {
		slog.Error("failed to list rankings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GroupRankingResponse{
		Results:    ranking.Aggregate(items, records),
		VoterCount: ranking.VoterCount(records),
	})
}
