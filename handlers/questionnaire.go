// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"tripvote/cliparse"
	"tripvote/middleware"
	"tripvote/models"
	"tripvote/webhook"
)

type QuestionnaireHandler struct {
	cfg    cliparse.Config
	sender *webhook.Client
}

func NewQuestionnaireHandler(cfg cliparse.Config) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		cfg:    cfg,
		sender: webhook.NewClient(cfg.WebhookURL),
	}
}

// Submit handles POST /questionnaire
// Forwards the trip-preferences form to the configured chat webhook.
func (h *QuestionnaireHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !h.sender.Configured() {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Questionnaire forwarding is not configured")
		return
	}

	var req models.QuestionnaireRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if allBlank(req.Name, req.TripType, req.Activities, req.UnusualActivities,
		req.Budget, req.GroupPreference, req.MatchInterest) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one answer is required")
		return
	}

	if err := h.sender.SendQuestionnaire(r.Context(), req); err != nil {
		slog.Error("failed to forward questionnaire", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to forward questionnaire")
		return
	}

	slog.Info("questionnaire forwarded", "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, models.QuestionnaireResponse{
		Message: "Questionnaire sent",
	})
}

func allBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
