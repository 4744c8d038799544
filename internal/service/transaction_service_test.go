package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/testutil"
)

// TestTransactionService_RecordTransaction tests the append-only log write.
//
// WHY: The allocation append is the only write path that moves a goal's
// current amount. The log insert and the goal credit must land together or
// not at all, otherwise the cached aggregate drifts from the log.
func TestTransactionService_RecordTransaction(t *testing.T) {
	t.Run("allocation credits the goal atomically", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		goalSvc := testutil.NewTestGoalService(t, db)
		goal := testutil.NewGoal().WithTarget(10000).Build(t, db)

		tx, err := svc.RecordTransaction(model.Transaction{
			GoalID: &goal.ID,
			Amount: 1500,
			Type:   model.TransactionAllocation,
			Date:   time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("RecordTransaction() returned unexpected error: %v", err)
		}
		if tx.ID == "" {
			t.Error("Expected an assigned transaction ID")
		}

		updated, err := goalSvc.GetGoal(goal.ID)
		if err != nil {
			t.Fatalf("GetGoal() returned unexpected error: %v", err)
		}
		if updated.CurrentAmount != 1500 {
			t.Errorf("Expected current amount 1500, got %v", updated.CurrentAmount)
		}
	})

	t.Run("income does not touch any goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		goalSvc := testutil.NewTestGoalService(t, db)
		goal := testutil.NewGoal().Build(t, db)

		_, err := svc.RecordTransaction(model.Transaction{
			Amount: 70000,
			Type:   model.TransactionIncome,
			Date:   time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("RecordTransaction() returned unexpected error: %v", err)
		}

		unchanged, _ := goalSvc.GetGoal(goal.ID)
		if unchanged.CurrentAmount != 0 {
			t.Errorf("Expected current amount 0, got %v", unchanged.CurrentAmount)
		}
	})

	t.Run("rejects allocation to a missing goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		missing := testutil.MakeID()
		_, err := svc.RecordTransaction(model.Transaction{
			GoalID: &missing,
			Amount: 100,
			Type:   model.TransactionAllocation,
			Date:   time.Now().UTC(),
		})
		if !errors.Is(err, apperrors.ErrGoalNotFound) {
			t.Errorf("Expected ErrGoalNotFound, got %v", err)
		}
	})
}

// TestTransactionService_GetTransactions tests filtered retrieval.
func TestTransactionService_GetTransactions(t *testing.T) {
	t.Run("filters by goal and date range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		g1 := testutil.NewGoal().Build(t, db)
		g2 := testutil.NewGoal().Build(t, db)

		march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		april := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction().ForGoal(g1.ID).OnDate(march).Build(t, db)
		testutil.NewTransaction().ForGoal(g1.ID).OnDate(april).Build(t, db)
		testutil.NewTransaction().ForGoal(g2.ID).OnDate(march).Build(t, db)

		got, err := svc.GetTransactions(model.TransactionFilter{
			GoalID:    g1.ID,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(got))
		}
		if got[0].GoalID == nil || *got[0].GoalID != g1.ID {
			t.Errorf("Expected transaction for goal %s", g1.ID)
		}
	})

	t.Run("month helper bounds the calendar month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		goal := testutil.NewGoal().Build(t, db)

		testutil.NewTransaction().ForGoal(goal.ID).
			OnDate(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)).Build(t, db)
		testutil.NewTransaction().ForGoal(goal.ID).
			OnDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)).Build(t, db)
		testutil.NewTransaction().ForGoal(goal.ID).
			OnDate(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)).Build(t, db)

		got, err := svc.GetMonthTransactions(2026, 3)
		if err != nil {
			t.Fatalf("GetMonthTransactions() returned unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("Expected 2 transactions in March, got %d", len(got))
		}
	})
}
