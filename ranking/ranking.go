// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"sort"

	"tripvote/models"
)

// MergeOrder rebuilds one user's working order from their saved ranking
// records and the current accommodation set.
//
// Records are applied in position order and mapped to accommodations; a
// record whose accommodation no longer exists is dropped silently.
// Accommodations the user has never ranked are appended at the end in the
// authoritative set's own order. Every current accommodation appears exactly
// once in the result.
func MergeOrder(items []models.Accommodation, records []models.Ranking) []models.Accommodation {
	byID := make(map[string]models.Accommodation, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	// The repository returns records sorted by position, but the merge does
	// not depend on it.
	sorted := make([]models.Ranking, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	order := make([]models.Accommodation, 0, len(items))
	seen := make(map[string]bool, len(sorted))
	for _, rec := range sorted {
		item, ok := byID[rec.AccommodationID]
		if !ok || seen[rec.AccommodationID] {
			continue
		}
		seen[rec.AccommodationID] = true
		order = append(order, item)
	}

	// New accommodations land at the bottom, unranked by default
	for _, item := range items {
		if !seen[item.ID] {
			order = append(order, item)
		}
	}

	return order
}

// Move returns a copy of order with the element at from reinserted at to.
// All other elements keep their relative order (a single-element move, not a
// swap). Both indices must be valid positions in order; that precondition is
// enforced by the caller.
func Move(order []models.Accommodation, from, to int) []models.Accommodation {
	moved := make([]models.Accommodation, 0, len(order))
	moved = append(moved, order[:from]...)
	moved = append(moved, order[from+1:]...)

	out := make([]models.Accommodation, 0, len(order))
	out = append(out, moved[:to]...)
	out = append(out, order[from])
	out = append(out, moved[to:]...)
	return out
}

type tally struct {
	score  int
	voters map[string]struct{}
}

// Aggregate computes the group ranking from every user's saved records using
// a Borda count. With N accommodations in the current set, a record at
// position p contributes N - p + 1 to its accommodation's score; the voter
// count is the number of distinct users with any record for it.
//
// N is the item count at computation time, not at each record's save time,
// so historical contributions shift as the pool grows. Results are sorted by
// descending score with a stable sort: equal scores keep the authoritative
// set's order.
func Aggregate(items []models.Accommodation, records []models.Ranking) []models.AggregatedResult {
	n := len(items)

	tallies := make(map[string]*tally)
	for _, rec := range records {
		t := tallies[rec.AccommodationID]
		if t == nil {
			t = &tally{voters: make(map[string]struct{})}
			tallies[rec.AccommodationID] = t
		}
		t.score += n - rec.Position + 1
		t.voters[rec.UserID] = struct{}{}
	}

	results := make([]models.AggregatedResult, 0, n)
	for _, item := range items {
		result := models.AggregatedResult{Accommodation: item}
		if t := tallies[item.ID]; t != nil {
			result.Score = t.score
			result.VoterCount = len(t.voters)
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// VoterCount returns the number of distinct users with at least one record.
func VoterCount(records []models.Ranking) int {
	voters := make(map[string]struct{})
	for _, rec := range records {
		voters[rec.UserID] = struct{}{}
	}
	return len(voters)
}
