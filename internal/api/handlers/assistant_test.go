package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/handlers"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/testutil"
)

// TestAssistantHandler_ExecuteAction tests the assistant action endpoint.
//
// WHY: The assistant endpoint is a thin dispatcher over the regular services.
// Its error mapping is the contract: bad actions and payloads are client
// errors, missing entities are 404, and nothing falls through as 500.
func TestAssistantHandler_ExecuteAction(t *testing.T) {
	t.Run("POST /api/assistant/action executes create_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssistantHandler(testutil.NewTestAssistantService(t, db))

		payload, _ := json.Marshal(map[string]interface{}{
			"name":                "Holiday",
			"targetAmount":        3000.0,
			"deadline":            "2027-07-01",
			"priorityWeight":      4,
			"monthlyContribution": 250.0,
		})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assistant/action",
			request.AssistantActionRequest{Action: "create_goal", Payload: payload}, nil)
		w := httptest.NewRecorder()

		handler.ExecuteAction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var goal model.Goal
		testutil.DecodeJSON(t, w, &goal)
		if goal.ID == "" {
			t.Error("Expected an assigned goal ID")
		}
		if goal.Name != "Holiday" {
			t.Errorf("Name mismatch: expected 'Holiday', got '%s'", goal.Name)
		}
	})

	t.Run("POST /api/assistant/action returns 400 for an unknown action", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssistantHandler(testutil.NewTestAssistantService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assistant/action",
			request.AssistantActionRequest{Action: "drop_tables"}, nil)
		w := httptest.NewRecorder()

		handler.ExecuteAction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST /api/assistant/action returns 400 for a missing payload", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssistantHandler(testutil.NewTestAssistantService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assistant/action",
			request.AssistantActionRequest{Action: "create_goal"}, nil)
		w := httptest.NewRecorder()

		handler.ExecuteAction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST /api/assistant/action returns 400 for a payload that fails validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssistantHandler(testutil.NewTestAssistantService(t, db))

		payload, _ := json.Marshal(map[string]interface{}{
			"name":           "Broken",
			"targetAmount":   -1.0,
			"deadline":       "2027-07-01",
			"priorityWeight": 4,
		})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assistant/action",
			request.AssistantActionRequest{Action: "create_goal", Payload: payload}, nil)
		w := httptest.NewRecorder()

		handler.ExecuteAction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST /api/assistant/action returns 404 for a missing goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssistantHandler(testutil.NewTestAssistantService(t, db))

		payload, _ := json.Marshal(map[string]interface{}{
			"goalId": testutil.MakeID(),
			"year":   2026,
			"month":  3,
		})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assistant/action",
			request.AssistantActionRequest{Action: "acknowledge_deviation", Payload: payload}, nil)
		w := httptest.NewRecorder()

		handler.ExecuteAction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("POST /api/assistant/action executes run_autosplit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssistantHandler(testutil.NewTestAssistantService(t, db))
		testutil.NewGoal().WithContribution(900).Build(t, db)

		payload, _ := json.Marshal(map[string]interface{}{"grossIncome": 4000.0})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/assistant/action",
			request.AssistantActionRequest{Action: "run_autosplit", Payload: payload}, nil)
		w := httptest.NewRecorder()

		handler.ExecuteAction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.AutoSplitResult
		testutil.DecodeJSON(t, w, &result)
		if result.TotalAllocated != 900 {
			t.Errorf("Expected 900 allocated, got %.2f", result.TotalAllocated)
		}
	})
}
