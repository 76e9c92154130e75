// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripvote/models"
	"tripvote/testutil"
)

func TestCreateAccommodation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAccommodationHandler(db, testutil.GetTestConfig())

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	token := testutil.CreateTestSession(t, db, alice)

	price := 35.0
	req := testutil.MakeRequest("POST", "/accommodations", models.CreateAccommodationRequest{
		Name:          "Hostel Centrum",
		City:          "Warszawa",
		PricePerNight: &price,
		Lat:           52.2297,
		Lng:           21.0122,
	}, map[string]string{"X-Session-Token": token})
	w := httptest.NewRecorder()
	h.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateAccommodationResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.AccommodationID == "" {
		t.Fatal("Expected an accommodation_id")
	}

	// It shows up in the public listing
	req = testutil.MakeRequest("GET", "/accommodations", nil, nil)
	w = httptest.NewRecorder()
	h.List(w, req)

	var list []models.Accommodation
	testutil.AssertJSON(t, w, &list)
	if len(list) != 1 {
		t.Fatalf("Expected 1 accommodation, got %d", len(list))
	}
	if list[0].Name != "Hostel Centrum" || list[0].CreatedBy != alice {
		t.Errorf("Unexpected accommodation: %+v", list[0])
	}
}

func TestCreateAccommodationRequiresAuth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAccommodationHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/accommodations", models.CreateAccommodationRequest{
		Name: "Hostel", Lat: 52, Lng: 21,
	}, nil)
	w := httptest.NewRecorder()
	h.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestCreateAccommodationValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAccommodationHandler(db, testutil.GetTestConfig())

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	token := testutil.CreateTestSession(t, db, alice)
	headers := map[string]string{"X-Session-Token": token}

	negPrice := -3.0
	tests := []struct {
		name string
		req  models.CreateAccommodationRequest
	}{
		{"missing name", models.CreateAccommodationRequest{Lat: 52, Lng: 21}},
		{"lat out of range", models.CreateAccommodationRequest{Name: "H", Lat: 91, Lng: 21}},
		{"lng out of range", models.CreateAccommodationRequest{Name: "H", Lat: 52, Lng: 181}},
		{"negative price", models.CreateAccommodationRequest{Name: "H", Lat: 52, Lng: 21, PricePerNight: &negPrice}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/accommodations", tt.req, headers)
			w := httptest.NewRecorder()
			h.Create(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestListAccommodationsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAccommodationHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/accommodations", nil, nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var list []models.Accommodation
	testutil.AssertJSON(t, w, &list)
	if len(list) != 0 {
		t.Errorf("Expected empty list, got %d", len(list))
	}
}

func TestDeleteAccommodation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAccommodationHandler(db, testutil.GetTestConfig())

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	token := testutil.CreateTestSession(t, db, alice)
	id := testutil.CreateTestAccommodation(t, db, "Hostel A", time.Now())

	req := testutil.MakeRequest("DELETE", "/accommodations/"+id, nil, map[string]string{"X-Session-Token": token})
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// Gone from the listing
	req = testutil.MakeRequest("GET", "/accommodations", nil, nil)
	w = httptest.NewRecorder()
	h.List(w, req)
	var list []models.Accommodation
	testutil.AssertJSON(t, w, &list)
	if len(list) != 0 {
		t.Errorf("Expected empty list after delete, got %d", len(list))
	}
}

func TestDeleteAccommodationNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAccommodationHandler(db, testutil.GetTestConfig())

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	token := testutil.CreateTestSession(t, db, alice)

	req := testutil.MakeRequest("DELETE", "/accommodations/nope", nil, map[string]string{"X-Session-Token": token})
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeletedAccommodationDropsFromPersonalOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	accHandler := NewAccommodationHandler(db, testutil.GetTestConfig())
	rankHandler := NewRankingHandler(db, testutil.GetTestConfig())

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	token := testutil.CreateTestSession(t, db, alice)
	headers := map[string]string{"X-Session-Token": token}

	base := time.Now()
	a := testutil.CreateTestAccommodation(t, db, "Hostel A", base)
	b := testutil.CreateTestAccommodation(t, db, "Hostel B", base.Add(time.Second))
	testutil.SaveTestRanking(t, db, alice, []string{a, b})

	// Delete A; the stale record must vanish from the merged order
	req := testutil.MakeRequest("DELETE", "/accommodations/"+a, nil, headers)
	req.SetPathValue("id", a)
	w := httptest.NewRecorder()
	accHandler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/rankings/me", nil, headers)
	w = httptest.NewRecorder()
	rankHandler.GetMine(w, req)

	var mine models.PersonalOrderResponse
	testutil.AssertJSON(t, w, &mine)
	if len(mine.Order) != 1 || mine.Order[0].ID != b {
		t.Errorf("Expected only %s in order, got %+v", b, mine.Order)
	}
}
