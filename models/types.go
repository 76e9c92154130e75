// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAccommodationRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	ImageURL      string   `json:"image_url"`
	PricePerNight *float64 `json:"price_per_night"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	City          string   `json:"city"`
}

type AddCommentRequest struct {
	Body string `json:"body"`
}

// Ordered accommodation IDs, first = most preferred
type SaveRankingRequest struct {
	AccommodationIDs []string `json:"accommodation_ids"`
}

type QuestionnaireRequest struct {
	Name              string `json:"name"`
	TripType          string `json:"trip_type"`
	Activities        string `json:"activities"`
	UnusualActivities string `json:"unusual_activities"`
	Budget            string `json:"budget"`
	GroupPreference   string `json:"group_preference"`
	MatchInterest     string `json:"match_interest"`
}

// Response types

type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateAccommodationResponse struct {
	AccommodationID string `json:"accommodation_id"`
}

type PersonalOrderResponse struct {
	Order       []Accommodation `json:"order"`
	RankedCount int             `json:"ranked_count"`
}

type SaveRankingResponse struct {
	Saved   int    `json:"saved"`
	Message string `json:"message"`
}

type GroupRankingResponse struct {
	Results    []AggregatedResult `json:"results"`
	VoterCount int                `json:"voter_count"`
}

type AddCommentResponse struct {
	CommentID string `json:"comment_id"`
}

type GeocodeResponse struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"display_name,omitempty"`
}

type QuestionnaireResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Accommodation struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	URL           *string   `json:"url,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	PricePerNight *float64  `json:"price_per_night,omitempty"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	City          *string   `json:"city,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// Ranking is one user's placement of one accommodation in their personal
// order. For a fixed user, positions are a permutation of 1..k where k is the
// number of accommodations that user has ranked.
type Ranking struct {
	UserID          string    `json:"user_id"`
	AccommodationID string    `json:"accommodation_id"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}

// RankingEntry is the write-side pair for Rankings.ReplaceForUser.
type RankingEntry struct {
	AccommodationID string
	Position        int
}

type Comment struct {
	ID              string    `json:"id"`
	AccommodationID string    `json:"accommodation_id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedAgo      string    `json:"created_ago"`
}

type AggregatedResult struct {
	Accommodation Accommodation `json:"accommodation"`
	Score         int           `json:"score"`
	VoterCount    int           `json:"voter_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
