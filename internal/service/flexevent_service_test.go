package service_test

import (
	"errors"
	"testing"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/testutil"
)

// TestFlexEventService_CreateFlexEvent tests flex event declaration.
//
// WHY: A flex event that pauses a goal it does not affect is structurally
// inconsistent and must never reach storage; everything downstream assumes
// the paused set is a subset of the affected set.
func TestFlexEventService_CreateFlexEvent(t *testing.T) {
	t.Run("persists a valid event", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFlexEventService(t, db)
		goal := testutil.NewGoal().Build(t, db)

		created, err := svc.CreateFlexEvent(model.FlexEvent{
			Reason:        "Car repair",
			Amount:        2000,
			AffectedGoals: []string{goal.ID},
			PausedGoals:   []string{goal.ID},
		})
		if err != nil {
			t.Fatalf("CreateFlexEvent() returned unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("Expected an assigned event ID")
		}

		stored, err := svc.GetFlexEvent(created.ID)
		if err != nil {
			t.Fatalf("GetFlexEvent() returned unexpected error: %v", err)
		}
		if stored.Reason != "Car repair" {
			t.Errorf("Expected reason 'Car repair', got '%s'", stored.Reason)
		}
	})

	t.Run("rejects paused goal outside affected set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFlexEventService(t, db)
		g1 := testutil.NewGoal().Build(t, db)
		g2 := testutil.NewGoal().Build(t, db)

		_, err := svc.CreateFlexEvent(model.FlexEvent{
			Reason:        "Inconsistent",
			AffectedGoals: []string{g1.ID},
			PausedGoals:   []string{g2.ID},
		})
		if !errors.Is(err, apperrors.ErrPausedGoalNotAffected) {
			t.Errorf("Expected ErrPausedGoalNotAffected, got %v", err)
		}
	})
}

// TestFlexEventService_Rebalance tests override computation for stored events.
func TestFlexEventService_Rebalance(t *testing.T) {
	t.Run("produces overrides for existing goals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFlexEventService(t, db)
		g1 := testutil.NewGoal().Build(t, db)
		g2 := testutil.NewGoal().Build(t, db)
		event := testutil.NewFlexEvent().
			Affecting(g1.ID, g2.ID).
			Pausing(g1.ID).
			Adjusting(g2.ID, 750).
			Build(t, db)

		overrides, err := svc.Rebalance(event.ID)
		if err != nil {
			t.Fatalf("Rebalance() returned unexpected error: %v", err)
		}

		if len(overrides.Paused) != 1 || overrides.Paused[0] != g1.ID {
			t.Errorf("Expected %s paused, got %v", g1.ID, overrides.Paused)
		}
		if overrides.Adjusted[g2.ID] != 750 {
			t.Errorf("Expected adjustment 750 for %s, got %v", g2.ID, overrides.Adjusted)
		}
		if len(overrides.Warnings) != 0 {
			t.Errorf("Expected no warnings, got %v", overrides.Warnings)
		}
	})

	t.Run("dangling goal references become warnings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFlexEventService(t, db)
		goal := testutil.NewGoal().Build(t, db)
		gone := testutil.MakeID()
		event := testutil.NewFlexEvent().
			Affecting(goal.ID, gone).
			Pausing(gone).
			Build(t, db)

		overrides, err := svc.Rebalance(event.ID)
		if err != nil {
			t.Fatalf("Rebalance() returned unexpected error: %v", err)
		}

		if len(overrides.Paused) != 0 {
			t.Errorf("Expected no surviving pauses, got %v", overrides.Paused)
		}
		if len(overrides.Warnings) == 0 {
			t.Error("Expected warnings about the deleted goal")
		}
	})

	t.Run("returns ErrFlexEventNotFound for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFlexEventService(t, db)

		_, err := svc.Rebalance(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrFlexEventNotFound) {
			t.Errorf("Expected ErrFlexEventNotFound, got %v", err)
		}
	})
}

// TestFlexEventService_AcknowledgeFlexEvent tests event resolution.
func TestFlexEventService_AcknowledgeFlexEvent(t *testing.T) {
	t.Run("acknowledged event stops being active", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFlexEventService(t, db)
		goal := testutil.NewGoal().Build(t, db)
		event := testutil.NewFlexEvent().Affecting(goal.ID).Pausing(goal.ID).Build(t, db)

		if err := svc.AcknowledgeFlexEvent(event.ID); err != nil {
			t.Fatalf("AcknowledgeFlexEvent() returned unexpected error: %v", err)
		}

		stored, err := svc.GetFlexEvent(event.ID)
		if err != nil {
			t.Fatalf("GetFlexEvent() returned unexpected error: %v", err)
		}
		if !stored.Acknowledged {
			t.Error("Expected event to be acknowledged")
		}
		if stored.ActiveOn(event.Date) {
			t.Error("Acknowledged event must not be active")
		}
	})
}
