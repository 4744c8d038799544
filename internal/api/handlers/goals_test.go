package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/handlers"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/testutil"
)

// TestGoalHandler_Goals tests the goal listing endpoint.
//
// WHY: The goal list drives the main planning screen; it must render an empty
// plan as an empty array and keep the allocator's priority ordering.
func TestGoalHandler_Goals(t *testing.T) {
	t.Run("GET /api/goals returns empty array when no goals exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
		w := httptest.NewRecorder()

		handler.Goals(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		contentType := w.Header().Get("Content-Type")
		if contentType != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
		}

		var response []model.Goal
		testutil.DecodeJSON(t, w, &response)
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("GET /api/goals orders by priority weight then deadline", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		low := testutil.NewGoal().WithName("Vacation").WithPriority(3).Build(t, db)
		high := testutil.NewGoal().WithName("Emergency Fund").WithPriority(9).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
		w := httptest.NewRecorder()

		handler.Goals(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Goal
		testutil.DecodeJSON(t, w, &response)
		if len(response) != 2 {
			t.Fatalf("Expected 2 goals, got %d", len(response))
		}
		if response[0].ID != high.ID {
			t.Errorf("Expected highest priority goal first, got '%s'", response[0].Name)
		}
		if response[1].ID != low.ID {
			t.Errorf("Expected lowest priority goal last, got '%s'", response[1].Name)
		}
	})
}

// TestGoalHandler_GetGoal tests single-goal retrieval.
func TestGoalHandler_GetGoal(t *testing.T) {
	t.Run("GET /api/goals/{uuid} returns the goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))
		goal := testutil.NewGoal().WithName("House Deposit").WithTarget(60000).Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/goals/"+goal.ID,
			map[string]string{"uuid": goal.ID},
		)
		w := httptest.NewRecorder()

		handler.GetGoal(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response model.Goal
		testutil.DecodeJSON(t, w, &response)
		if response.ID != goal.ID {
			t.Errorf("ID mismatch: expected %s, got %s", goal.ID, response.ID)
		}
		if response.Name != "House Deposit" {
			t.Errorf("Name mismatch: expected 'House Deposit', got '%s'", response.Name)
		}
		if response.TargetAmount != 60000 {
			t.Errorf("TargetAmount mismatch: expected 60000, got %.2f", response.TargetAmount)
		}
	})

	t.Run("GET /api/goals/{uuid} returns 404 for unknown goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/goals/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.GetGoal(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestGoalHandler_CreateGoal tests goal creation.
//
// WHY: Creation is the only way goals enter the plan, so the handler must
// reject invalid shapes with field-level errors and return the stored record.
func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("POST /api/goals creates a goal and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		goalSvc := testutil.NewTestGoalService(t, db)
		handler := handlers.NewGoalHandler(goalSvc)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/goals", request.CreateGoalRequest{
			Name:                "New Car",
			TargetAmount:        25000,
			Deadline:            "2028-06-01",
			PriorityWeight:      6,
			MonthlyContribution: 800,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Goal
		testutil.DecodeJSON(t, w, &response)
		if response.ID == "" {
			t.Error("Expected an assigned goal ID")
		}
		if response.Name != "New Car" {
			t.Errorf("Name mismatch: expected 'New Car', got '%s'", response.Name)
		}

		stored, err := goalSvc.GetGoal(response.ID)
		if err != nil {
			t.Fatalf("Expected goal to be persisted: %v", err)
		}
		if stored.MonthlyContribution != 800 {
			t.Errorf("MonthlyContribution mismatch: expected 800, got %.2f", stored.MonthlyContribution)
		}
	})

	t.Run("POST /api/goals returns 400 for invalid body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/goals", request.CreateGoalRequest{
			Name:           "",
			TargetAmount:   -100,
			Deadline:       "not-a-date",
			PriorityWeight: 99,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST /api/goals returns 400 for unknown fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/goals",
			map[string]interface{}{"name": "X", "currentAmount": 5000}, nil)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestGoalHandler_UpdateGoal tests partial goal updates.
func TestGoalHandler_UpdateGoal(t *testing.T) {
	t.Run("PUT /api/goals/{uuid} updates only provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))
		goal := testutil.NewGoal().WithName("Old Name").WithTarget(10000).Build(t, db)

		newName := "Renamed"
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/goals/"+goal.ID,
			request.UpdateGoalRequest{Name: &newName},
			map[string]string{"uuid": goal.ID})
		w := httptest.NewRecorder()

		handler.UpdateGoal(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Goal
		testutil.DecodeJSON(t, w, &response)
		if response.Name != "Renamed" {
			t.Errorf("Name mismatch: expected 'Renamed', got '%s'", response.Name)
		}
		if response.TargetAmount != 10000 {
			t.Errorf("Expected unchanged target 10000, got %.2f", response.TargetAmount)
		}
	})

	t.Run("PUT /api/goals/{uuid} returns 404 for unknown goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		id := testutil.MakeID()
		newName := "Renamed"
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/goals/"+id,
			request.UpdateGoalRequest{Name: &newName},
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.UpdateGoal(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestGoalHandler_DeleteGoal tests goal deletion.
func TestGoalHandler_DeleteGoal(t *testing.T) {
	t.Run("DELETE /api/goals/{uuid} removes the goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		goalSvc := testutil.NewTestGoalService(t, db)
		handler := handlers.NewGoalHandler(goalSvc)
		goal := testutil.NewGoal().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/goals/"+goal.ID,
			map[string]string{"uuid": goal.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteGoal(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if _, err := goalSvc.GetGoal(goal.ID); err == nil {
			t.Error("Expected goal to be gone after delete")
		}
	})

	t.Run("DELETE /api/goals/{uuid} returns 404 for unknown goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/goals/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.DeleteGoal(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
