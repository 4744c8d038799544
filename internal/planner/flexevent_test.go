package planner_test

import (
	"testing"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
)

// TestRebalanceForFlexEvent tests flex event validation and override
// extraction.
//
// WHY: flex events are the one user-driven exception mechanism; a paused goal
// outside the affected set would silently pause funding the user never
// declared, so the subset invariant must hold.
func TestRebalanceForFlexEvent(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	goals := []model.Goal{
		{ID: "g1", Name: "House", TargetAmount: 100000, PriorityWeight: 8, Deadline: today.AddDate(0, 0, 360)},
		{ID: "g2", Name: "Car", TargetAmount: 30000, PriorityWeight: 5, Deadline: today.AddDate(0, 0, 400)},
	}

	t.Run("valid event produces paused and adjusted overrides", func(t *testing.T) {
		event := model.FlexEvent{
			ID:            "e1",
			Date:          today,
			Reason:        "medical bill",
			Amount:        4000,
			AffectedGoals: []string{"g1", "g2"},
			PausedGoals:   []string{"g2"},
			AdjustedAllocations: []model.AdjustedAllocation{
				{GoalID: "g1", NewAmount: 1500},
			},
		}

		overrides, err := planner.RebalanceForFlexEvent(event, goals)
		if err != nil {
			t.Fatalf("RebalanceForFlexEvent() returned unexpected error: %v", err)
		}

		if len(overrides.Paused) != 1 || overrides.Paused[0] != "g2" {
			t.Errorf("Expected g2 paused, got %v", overrides.Paused)
		}
		if !almostEqual(overrides.Adjusted["g1"], 1500) {
			t.Errorf("Expected g1 adjusted to 1500, got %v", overrides.Adjusted["g1"])
		}
		if len(overrides.Warnings) != 0 {
			t.Errorf("Expected no warnings, got %v", overrides.Warnings)
		}
	})

	t.Run("paused goal outside affected set is rejected", func(t *testing.T) {
		event := model.FlexEvent{
			ID:            "e1",
			Date:          today,
			AffectedGoals: []string{"g1"},
			PausedGoals:   []string{"g2"},
		}

		if _, err := planner.RebalanceForFlexEvent(event, goals); err == nil {
			t.Error("Expected error for paused goal outside affected set")
		}
	})

	t.Run("dangling goal references are skipped with warnings", func(t *testing.T) {
		event := model.FlexEvent{
			ID:            "e1",
			Date:          today,
			AffectedGoals: []string{"g1", "ghost"},
			AdjustedAllocations: []model.AdjustedAllocation{
				{GoalID: "phantom", NewAmount: 1000},
			},
		}

		overrides, err := planner.RebalanceForFlexEvent(event, goals)
		if err != nil {
			t.Fatalf("Expected partial result, got error: %v", err)
		}

		if len(overrides.Warnings) != 2 {
			t.Errorf("Expected 2 warnings, got %v", overrides.Warnings)
		}
		if _, ok := overrides.Adjusted["phantom"]; ok {
			t.Error("Expected dangling adjusted allocation to be dropped")
		}
	})
}

// TestAllocationOverrides_Apply tests layering overrides on an auto-split
// result: paused goals zeroed but kept visible, adjusted amounts replacing
// computed ones, totals recomputed.
func TestAllocationOverrides_Apply(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	goals := []model.Goal{
		{ID: "g1", Name: "House", TargetAmount: 100000, PriorityWeight: 8,
			MonthlyContribution: 3000, Deadline: today.AddDate(0, 0, 360)},
		{ID: "g2", Name: "Car", TargetAmount: 30000, PriorityWeight: 5,
			MonthlyContribution: 2000, Deadline: today.AddDate(0, 0, 400)},
	}

	split := planner.CalculateAutoSplit(10000, nil, goals, today)
	if !almostEqual(split.TotalAllocated, 5000) {
		t.Fatalf("precondition: expected 5000 allocated, got %v", split.TotalAllocated)
	}

	event := model.FlexEvent{
		ID:            "e1",
		Date:          today,
		AffectedGoals: []string{"g1", "g2"},
		PausedGoals:   []string{"g2"},
		AdjustedAllocations: []model.AdjustedAllocation{
			{GoalID: "g1", NewAmount: 1000},
		},
	}
	overrides, err := planner.RebalanceForFlexEvent(event, goals)
	if err != nil {
		t.Fatalf("RebalanceForFlexEvent() returned unexpected error: %v", err)
	}

	adjusted := overrides.Apply(split)

	if len(adjusted.Allocations) != 2 {
		t.Fatalf("Expected 2 allocations after apply, got %d", len(adjusted.Allocations))
	}
	for _, alloc := range adjusted.Allocations {
		switch alloc.GoalID {
		case "g1":
			if !almostEqual(alloc.Amount, 1000) {
				t.Errorf("Expected g1 adjusted to 1000, got %v", alloc.Amount)
			}
		case "g2":
			if alloc.Amount != 0 {
				t.Errorf("Expected paused g2 at 0, got %v", alloc.Amount)
			}
		}
	}
	if !almostEqual(adjusted.TotalAllocated, 1000) {
		t.Errorf("Expected total allocated 1000, got %v", adjusted.TotalAllocated)
	}
	if !almostEqual(adjusted.FreeSpend, 9000) {
		t.Errorf("Expected free spend 9000, got %v", adjusted.FreeSpend)
	}

	// The event never rewrites the original computation.
	if !almostEqual(split.TotalAllocated, 5000) {
		t.Error("Apply mutated the original split result")
	}
}
