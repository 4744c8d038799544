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

// TestTransactionHandler_Transactions tests the transaction listing endpoint.
func TestTransactionHandler_Transactions(t *testing.T) {
	t.Run("GET /api/transactions returns empty array when no transactions exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Transaction
		testutil.DecodeJSON(t, w, &response)
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("GET /api/transactions filters by goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		g1 := testutil.NewGoal().Build(t, db)
		g2 := testutil.NewGoal().Build(t, db)
		tx := testutil.NewTransaction().ForGoal(g1.ID).WithAmount(500).Build(t, db)
		testutil.NewTransaction().ForGoal(g2.ID).WithAmount(900).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transactions",
			map[string]string{"goalId": g1.ID})
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Transaction
		testutil.DecodeJSON(t, w, &response)
		if len(response) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(response))
		}
		if response[0].ID != tx.ID {
			t.Errorf("Expected transaction %s, got %s", tx.ID, response[0].ID)
		}
	})

	t.Run("GET /api/transactions returns 400 for an inverted date range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transactions",
			map[string]string{"startDate": "2026-06-01", "endDate": "2026-01-01"})
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("GET /api/transactions returns 400 for a malformed date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transactions",
			map[string]string{"startDate": "June 1st"})
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestTransactionHandler_CreateTransaction tests transaction recording.
//
// WHY: Recording an allocation moves the goal's balance in the same database
// transaction as the log insert. The handler must reflect the atomic result
// and translate a missing goal into 404, not 500.
func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("POST /api/transactions records an allocation and credits the goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		goalSvc := testutil.NewTestGoalService(t, db)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		goal := testutil.NewGoal().Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transactions",
			request.CreateTransactionRequest{
				GoalID: &goal.ID,
				Amount: 650,
				Type:   "allocation",
				Date:   "2026-08-15",
			}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Transaction
		testutil.DecodeJSON(t, w, &response)
		if response.ID == "" {
			t.Error("Expected an assigned transaction ID")
		}
		if response.Amount != 650 {
			t.Errorf("Expected amount 650, got %.2f", response.Amount)
		}

		stored, err := goalSvc.GetGoal(goal.ID)
		if err != nil {
			t.Fatalf("GetGoal() returned unexpected error: %v", err)
		}
		if stored.CurrentAmount != 650 {
			t.Errorf("Expected goal balance 650, got %.2f", stored.CurrentAmount)
		}
	})

	t.Run("POST /api/transactions returns 404 for unknown goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		id := testutil.MakeID()
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transactions",
			request.CreateTransactionRequest{
				GoalID: &id,
				Amount: 100,
				Type:   "allocation",
				Date:   "2026-08-15",
			}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("POST /api/transactions returns 400 for an unknown type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transactions",
			request.CreateTransactionRequest{
				Amount: 100,
				Type:   "refund",
				Date:   "2026-08-15",
			}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestTransactionHandler_GetTransaction tests single-transaction retrieval.
func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("GET /api/transactions/{uuid} returns the transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		goal := testutil.NewGoal().Build(t, db)
		tx := testutil.NewTransaction().ForGoal(goal.ID).WithAmount(275).Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/transactions/"+tx.ID,
			map[string]string{"uuid": tx.ID},
		)
		w := httptest.NewRecorder()

		handler.GetTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response model.Transaction
		testutil.DecodeJSON(t, w, &response)
		if response.ID != tx.ID {
			t.Errorf("ID mismatch: expected %s, got %s", tx.ID, response.ID)
		}
		if response.Amount != 275 {
			t.Errorf("Amount mismatch: expected 275, got %.2f", response.Amount)
		}
	})

	t.Run("GET /api/transactions/{uuid} returns 404 for unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/transactions/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.GetTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
