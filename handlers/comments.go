// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"tripvote/auth"
	"tripvote/cliparse"
	"tripvote/middleware"
	"tripvote/models"
)

const maxCommentLength = 2000

type CommentHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCommentHandler(db *sql.DB, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{db: db, cfg: cfg}
}

// List handles GET /accommodations/{id}/comments
// Comments are returned oldest first with the author's display name.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	accommodationID := r.PathValue("id")
	if accommodationID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var exists bool
	err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM accommodation WHERE id = $1)`, accommodationID).Scan(&exists)
	if err != nil {
		slog.Error("failed to check accommodation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Accommodation not found")
		return
	}

	rows, err := h.db.Query(`
		SELECT c.id, c.accommodation_id, c.user_id, u.name, c.body, c.created_at
		FROM comment c
		JOIN app_user u ON u.id = c.user_id
		WHERE c.accommodation_id = $1
		ORDER BY c.created_at, c.id
	`, accommodationID)
	if err != nil {
		slog.Error("failed to query comments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.AccommodationID, &c.UserID, &c.UserName, &c.Body, &c.CreatedAt); err != nil {
			slog.Error("failed to scan comment", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		c.CreatedAgo = humanize.Time(c.CreatedAt)
		comments = append(comments, c)
	}

	middleware.JSONResponse(w, http.StatusOK, comments)
}

// Add handles POST /accommodations/{id}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if err == auth.ErrInvalidToken {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in to comment")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	accommodationID := r.PathValue("id")
	if accommodationID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "body is required")
		return
	}
	if len(body) > maxCommentLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "comment is too long")
		return
	}

	var exists bool
	err = h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM accommodation WHERE id = $1)`, accommodationID).Scan(&exists)
	if err != nil {
		slog.Error("failed to check accommodation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Accommodation not found")
		return
	}

	commentID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO comment (id, accommodation_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, commentID, accommodationID, user.ID, body, time.Now())
	if err != nil {
		slog.Error("failed to insert comment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	slog.Info("comment added", "comment_id", commentID, "accommodation_id", accommodationID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCommentResponse{
		CommentID: commentID,
	})
}

// Delete handles DELETE /comments/{id}
// Only the author may delete their comment.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.db, r)
	if err == auth.ErrInvalidToken {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in to delete comments")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	commentID := r.PathValue("id")
	if commentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var authorID string
	err = h.db.QueryRow(`SELECT user_id FROM comment WHERE id = $1`, commentID).Scan(&authorID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Comment not found")
		return
	}
	if err != nil {
		slog.Error("failed to query comment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if authorID != user.ID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the author can delete a comment")
		return
	}

	if _, err := h.db.Exec(`DELETE FROM comment WHERE id = $1`, commentID); err != nil {
		slog.Error("failed to delete comment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}
