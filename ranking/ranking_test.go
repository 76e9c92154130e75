// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"testing"

	"tripvote/models"
)

func acc(id string) models.Accommodation {
	return models.Accommodation{ID: id, Name: "Accommodation " + id}
}

func accs(ids ...string) []models.Accommodation {
	out := make([]models.Accommodation, len(ids))
	for i, id := range ids {
		out[i] = acc(id)
	}
	return out
}

func rec(userID, accommodationID string, position int) models.Ranking {
	return models.Ranking{UserID: userID, AccommodationID: accommodationID, Position: position}
}

func ids(order []models.Accommodation) []string {
	out := make([]string, len(order))
	for i, a := range order {
		out[i] = a.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Accommodation, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("Expected order %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, gotIDs)
		}
	}
}

func TestMergeOrderKeepsSavedOrder(t *testing.T) {
	items := accs("X", "Y", "Z")
	records := []models.Ranking{
		rec("alice", "Z", 1),
		rec("alice", "X", 2),
		rec("alice", "Y", 3),
	}

	order := MergeOrder(items, records)
	assertIDs(t, order, "Z", "X", "Y")
}

func TestMergeOrderAppendsNewItemsAtBottom(t *testing.T) {
	// Y and W appeared after alice's last save; they trail in set order
	items := accs("X", "Y", "Z", "W")
	records := []models.Ranking{
		rec("alice", "Z", 1),
		rec("alice", "X", 2),
	}

	order := MergeOrder(items, records)
	assertIDs(t, order, "Z", "X", "Y", "W")
}

func TestMergeOrderDropsDanglingRecords(t *testing.T) {
	// "GONE" was deleted after alice saved; its record is silently skipped
	items := accs("X", "Y")
	records := []models.Ranking{
		rec("alice", "Y", 1),
		rec("alice", "GONE", 2),
		rec("alice", "X", 3),
	}

	order := MergeOrder(items, records)
	assertIDs(t, order, "Y", "X")
}

func TestMergeOrderUnsortedRecords(t *testing.T) {
	items := accs("X", "Y", "Z")
	records := []models.Ranking{
		rec("alice", "X", 3),
		rec("alice", "Z", 1),
		rec("alice", "Y", 2),
	}

	order := MergeOrder(items, records)
	assertIDs(t, order, "Z", "Y", "X")
}

func TestMergeOrderCompleteness(t *testing.T) {
	items := accs("A", "B", "C", "D", "E")
	records := []models.Ranking{
		rec("alice", "C", 1),
		rec("alice", "E", 2),
	}

	order := MergeOrder(items, records)
	if len(order) != len(items) {
		t.Fatalf("Expected %d items, got %d", len(items), len(order))
	}
	seen := map[string]int{}
	for _, a := range order {
		seen[a.ID]++
	}
	for _, item := range items {
		if seen[item.ID] != 1 {
			t.Errorf("Expected %s exactly once, got %d occurrences", item.ID, seen[item.ID])
		}
	}
}

func TestMergeOrderNoRecords(t *testing.T) {
	items := accs("X", "Y", "Z")

	order := MergeOrder(items, nil)
	assertIDs(t, order, "X", "Y", "Z")
}

func TestMergeOrderEmpty(t *testing.T) {
	order := MergeOrder(nil, []models.Ranking{rec("alice", "X", 1)})
	if len(order) != 0 {
		t.Fatalf("Expected empty order, got %v", ids(order))
	}
}

func TestMoveSingleElement(t *testing.T) {
	order := accs("A", "B", "C", "D")

	moved := Move(order, 0, 2)
	assertIDs(t, moved, "B", "C", "A", "D")

	// Original untouched
	assertIDs(t, order, "A", "B", "C", "D")
}

func TestMoveBackward(t *testing.T) {
	order := accs("A", "B", "C", "D")

	moved := Move(order, 3, 0)
	assertIDs(t, moved, "D", "A", "B", "C")
}

func TestMoveSameIndexIsNoop(t *testing.T) {
	order := accs("A", "B", "C")

	moved := Move(order, 1, 1)
	assertIDs(t, moved, "A", "B", "C")
}

func TestAggregateBordaFormula(t *testing.T) {
	// N=3, one full ballot: first place scores N, last place 1
	items := accs("X", "Y", "Z")
	records := []models.Ranking{
		rec("alice", "X", 1),
		rec("alice", "Y", 2),
		rec("alice", "Z", 3),
	}

	results := Aggregate(items, records)

	wantScores := map[string]int{"X": 3, "Y": 2, "Z": 1}
	for _, res := range results {
		if res.Score != wantScores[res.Accommodation.ID] {
			t.Errorf("Expected %s score %d, got %d", res.Accommodation.ID, wantScores[res.Accommodation.ID], res.Score)
		}
		if res.VoterCount != 1 {
			t.Errorf("Expected %s voter count 1, got %d", res.Accommodation.ID, res.VoterCount)
		}
	}
	assertResultOrder(t, results, "X", "Y", "Z")
}

func TestAggregatePartialParticipation(t *testing.T) {
	// Alice ranks everything, Bob only Y. Y = 2 (alice) + 3 (bob) = 5.
	items := accs("X", "Y", "Z")
	records := []models.Ranking{
		rec("alice", "X", 1),
		rec("alice", "Y", 2),
		rec("alice", "Z", 3),
		rec("bob", "Y", 1),
	}

	results := Aggregate(items, records)
	assertResultOrder(t, results, "Y", "X", "Z")

	byID := map[string]models.AggregatedResult{}
	for _, res := range results {
		byID[res.Accommodation.ID] = res
	}

	if byID["Y"].Score != 5 {
		t.Errorf("Expected Y score 5, got %d", byID["Y"].Score)
	}
	if byID["X"].Score != 3 {
		t.Errorf("Expected X score 3, got %d", byID["X"].Score)
	}
	if byID["Z"].Score != 1 {
		t.Errorf("Expected Z score 1, got %d", byID["Z"].Score)
	}
	if byID["Y"].VoterCount != 2 {
		t.Errorf("Expected Y voter count 2, got %d", byID["Y"].VoterCount)
	}
	if byID["X"].VoterCount != 1 || byID["Z"].VoterCount != 1 {
		t.Errorf("Expected X and Z voter count 1, got %d and %d", byID["X"].VoterCount, byID["Z"].VoterCount)
	}
}

func TestAggregateTiesKeepSetOrder(t *testing.T) {
	// Two voters with opposite full ballots: every score ties at N+1
	items := accs("X", "Y", "Z")
	records := []models.Ranking{
		rec("alice", "X", 1), rec("alice", "Y", 2), rec("alice", "Z", 3),
		rec("bob", "Z", 1), rec("bob", "Y", 2), rec("bob", "X", 3),
	}

	results := Aggregate(items, records)
	for _, res := range results {
		if res.Score != 4 {
			t.Errorf("Expected score 4 for %s, got %d", res.Accommodation.ID, res.Score)
		}
	}
	assertResultOrder(t, results, "X", "Y", "Z")
}

func TestAggregateNoRecords(t *testing.T) {
	items := accs("X", "Y", "Z")

	results := Aggregate(items, nil)
	assertResultOrder(t, results, "X", "Y", "Z")
	for _, res := range results {
		if res.Score != 0 || res.VoterCount != 0 {
			t.Errorf("Expected zero score and voters for %s, got %d/%d", res.Accommodation.ID, res.Score, res.VoterCount)
		}
	}
}

func TestAggregateIgnoresDanglingRecords(t *testing.T) {
	items := accs("X")
	records := []models.Ranking{
		rec("alice", "X", 1),
		rec("alice", "GONE", 2),
	}

	results := Aggregate(items, records)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Accommodation.ID != "X" || results[0].Score != 1 {
		t.Errorf("Expected X with score 1, got %s with %d", results[0].Accommodation.ID, results[0].Score)
	}
}

func TestAggregateUsesCurrentItemCount(t *testing.T) {
	// Alice saved when only X and Y existed; Z joined later. Her first place
	// is now worth N=3, not the N=2 in effect when she saved.
	items := accs("X", "Y", "Z")
	records := []models.Ranking{
		rec("alice", "X", 1),
		rec("alice", "Y", 2),
	}

	results := Aggregate(items, records)
	byID := map[string]int{}
	for _, res := range results {
		byID[res.Accommodation.ID] = res.Score
	}
	if byID["X"] != 3 {
		t.Errorf("Expected X score 3 under the current pool, got %d", byID["X"])
	}
	if byID["Y"] != 2 {
		t.Errorf("Expected Y score 2 under the current pool, got %d", byID["Y"])
	}
}

func TestVoterCount(t *testing.T) {
	records := []models.Ranking{
		rec("alice", "X", 1),
		rec("alice", "Y", 2),
		rec("bob", "X", 1),
	}

	if got := VoterCount(records); got != 2 {
		t.Errorf("Expected 2 voters, got %d", got)
	}
	if got := VoterCount(nil); got != 0 {
		t.Errorf("Expected 0 voters, got %d", got)
	}
}

func assertResultOrder(t *testing.T, results []models.AggregatedResult, want ...string) {
	t.Helper()
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(results))
	}
	for i := range want {
		if results[i].Accommodation.ID != want[i] {
			got := make([]string, len(results))
			for j, res := range results {
				got[j] = res.Accommodation.ID
			}
			t.Fatalf("Expected result order %v, got %v", want, got)
		}
	}
}
