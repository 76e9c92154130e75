// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"tripvote/cliparse"
	"tripvote/handlers"
	"tripvote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	accommodationHandler := handlers.NewAccommodationHandler(db, cfg)
	rankingHandler := handlers.NewRankingHandler(db, cfg)
	commentHandler := handlers.NewCommentHandler(db, cfg)
	questionnaireHandler := handlers.NewQuestionnaireHandler(cfg)
	geocodeHandler := handlers.NewGeocodeHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth
	mux.HandleFunc("POST /auth/signup", middleware.WithLogging(authHandler.Signup))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(authHandler.Me))

	// Accommodations
	mux.HandleFunc("GET /accommodations", middleware.WithLogging(accommodationHandler.List))
	mux.HandleFunc("POST /accommodations", middleware.WithLogging(accommodationHandler.Create))
	mux.HandleFunc("DELETE /accommodations/{id}", middleware.WithLogging(accommodationHandler.Delete))

	// Rankings
	mux.HandleFunc("GET /rankings/me", middleware.WithLogging(rankingHandler.GetMine))
	mux.HandleFunc("PUT /rankings/me", middleware.WithLogging(rankingHandler.Save))
	mux.HandleFunc("GET /rankings/group", middleware.WithLogging(rankingHandler.GetGroup))

	// Comments
	mux.HandleFunc("GET /accommodations/{id}/comments", middleware.WithLogging(commentHandler.List))
	mux.HandleFunc("POST /accommodations/{id}/comments", middleware.WithLogging(commentHandler.Add))
	mux.HandleFunc("DELETE /comments/{id}", middleware.WithLogging(commentHandler.Delete))

	// Trip questionnaire and geocoding
	mux.HandleFunc("POST /questionnaire", middleware.WithLogging(questionnaireHandler.Submit))
	mux.HandleFunc("GET /geocode", middleware.WithLogging(geocodeHandler.Lookup))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tripvote API v1"))
	})

	return mux
}
