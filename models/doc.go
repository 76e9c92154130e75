// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignupRequest: email, password, name
  - LoginRequest: email, password
  - CreateAccommodationRequest: name, description, url, image_url,
    price_per_night, lat, lng, city
  - AddCommentRequest: body
  - SaveRankingRequest: accommodation_ids (ordered, first = most preferred)
  - QuestionnaireRequest: free-form trip preference fields

# Response Types

Types for JSON responses:

  - SessionResponse: token, user
  - CreateAccommodationResponse: accommodation_id
  - PersonalOrderResponse: order, ranked_count
  - SaveRankingResponse: saved, message
  - GroupRankingResponse: results, voter_count
  - AddCommentResponse: comment_id
  - GeocodeResponse: lat, lng, display_name
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: an authenticated group member
  - Accommodation: a rankable lodging option with map coordinates
  - Ranking: one user's placement of one accommodation
  - RankingEntry: (accommodation_id, position) pair for atomic replace
  - Comment: a message on an accommodation's thread
  - AggregatedResult: group-wide Borda score and voter count
*/
package models
