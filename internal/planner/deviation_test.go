package planner_test

import (
	"testing"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
)

func strPtr(s string) *string { return &s }

// TestDetectDeviations tests planned-vs-actual classification for one month.
//
// WHY: the reference case (required 10000, contributed 4000) must classify as
// under_contribution with a 6000 shortfall; it anchors the whole deviation
// workflow.
func TestDetectDeviations(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	goal := model.Goal{
		ID:           "g1",
		Name:         "House",
		TargetAmount: 120000,
		StartDate:    &start,
		Deadline:     start.AddDate(0, 0, 360),
	}

	t.Run("partial contribution is under_contribution", func(t *testing.T) {
		txs := []model.Transaction{
			{GoalID: strPtr("g1"), Amount: 4000, Type: model.TransactionAllocation,
				Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		}

		deviations := planner.DetectDeviations(2026, 3, []model.Goal{goal}, txs, model.AckSet{})

		if len(deviations) != 1 {
			t.Fatalf("Expected 1 deviation, got %d", len(deviations))
		}
		d := deviations[0]
		if d.Type != model.DeviationUnderContribution {
			t.Errorf("Expected under_contribution, got %s", d.Type)
		}
		if !almostEqual(d.PlannedAmount, 10000) {
			t.Errorf("Expected planned 10000, got %v", d.PlannedAmount)
		}
		if !almostEqual(d.Shortfall, 6000) {
			t.Errorf("Expected shortfall 6000, got %v", d.Shortfall)
		}
	})

	t.Run("no contribution is missed_contribution", func(t *testing.T) {
		deviations := planner.DetectDeviations(2026, 3, []model.Goal{goal}, nil, model.AckSet{})

		if len(deviations) != 1 {
			t.Fatalf("Expected 1 deviation, got %d", len(deviations))
		}
		if deviations[0].Type != model.DeviationMissedContribution {
			t.Errorf("Expected missed_contribution, got %s", deviations[0].Type)
		}
		if !almostEqual(deviations[0].Shortfall, 10000) {
			t.Errorf("Expected shortfall 10000, got %v", deviations[0].Shortfall)
		}
	})

	t.Run("meeting the plan produces no deviation", func(t *testing.T) {
		txs := []model.Transaction{
			{GoalID: strPtr("g1"), Amount: 10000, Type: model.TransactionAllocation,
				Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		}

		deviations := planner.DetectDeviations(2026, 3, []model.Goal{goal}, txs, model.AckSet{})

		if len(deviations) != 0 {
			t.Errorf("Expected no deviations, got %d", len(deviations))
		}
	})

	t.Run("transactions outside the month are ignored", func(t *testing.T) {
		txs := []model.Transaction{
			{GoalID: strPtr("g1"), Amount: 10000, Type: model.TransactionAllocation,
				Date: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
			{GoalID: strPtr("g1"), Amount: 10000, Type: model.TransactionAllocation,
				Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		}

		deviations := planner.DetectDeviations(2026, 3, []model.Goal{goal}, txs, model.AckSet{})

		if len(deviations) != 1 || deviations[0].Type != model.DeviationMissedContribution {
			t.Fatalf("Expected one missed_contribution deviation, got %+v", deviations)
		}
	})

	t.Run("non-allocation transactions do not count", func(t *testing.T) {
		txs := []model.Transaction{
			{GoalID: strPtr("g1"), Amount: 10000, Type: model.TransactionIncome,
				Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		}

		deviations := planner.DetectDeviations(2026, 3, []model.Goal{goal}, txs, model.AckSet{})

		if len(deviations) != 1 || deviations[0].Type != model.DeviationMissedContribution {
			t.Fatalf("Expected one missed_contribution deviation, got %+v", deviations)
		}
	})

	t.Run("goal not started that month is skipped", func(t *testing.T) {
		futureStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		future := model.Goal{
			ID:           "g2",
			Name:         "Later",
			TargetAmount: 5000,
			StartDate:    &futureStart,
			Deadline:     futureStart.AddDate(0, 0, 300),
		}

		deviations := planner.DetectDeviations(2026, 3, []model.Goal{future}, nil, model.AckSet{})

		if len(deviations) != 0 {
			t.Errorf("Expected no deviations for unstarted goal, got %d", len(deviations))
		}
	})

	t.Run("goal with nothing left to plan never deviates", func(t *testing.T) {
		funded := goal
		funded.CurrentAmount = funded.TargetAmount

		deviations := planner.DetectDeviations(2026, 3, []model.Goal{funded}, nil, model.AckSet{})

		if len(deviations) != 0 {
			t.Errorf("Expected no deviations for fully funded goal, got %d", len(deviations))
		}
	})
}

// TestDetectDeviations_Acknowledgement verifies acknowledging flips only the
// flag: type and shortfall stay byte-identical across re-runs.
func TestDetectDeviations_Acknowledgement(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	goal := model.Goal{
		ID:           "g1",
		Name:         "House",
		TargetAmount: 120000,
		StartDate:    &start,
		Deadline:     start.AddDate(0, 0, 360),
	}
	txs := []model.Transaction{
		{GoalID: strPtr("g1"), Amount: 4000, Type: model.TransactionAllocation,
			Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	before := planner.DetectDeviations(2026, 3, []model.Goal{goal}, txs, model.AckSet{})
	if len(before) != 1 || before[0].Acknowledged {
		t.Fatalf("Expected one unacknowledged deviation, got %+v", before)
	}

	acks := model.AckSet{}.Acknowledge("g1", 2026, 3)
	after := planner.DetectDeviations(2026, 3, []model.Goal{goal}, txs, acks)

	if len(after) != 1 {
		t.Fatalf("Expected 1 deviation after acknowledging, got %d", len(after))
	}
	if !after[0].Acknowledged {
		t.Error("Expected deviation to be acknowledged")
	}
	if after[0].Type != before[0].Type || after[0].Shortfall != before[0].Shortfall {
		t.Error("Acknowledging must not change type or shortfall")
	}

	// Scoped to one goal-month: a different month stays unacknowledged.
	if acks.Contains("g1", 2026, 4) {
		t.Error("Acknowledgement leaked into a different month")
	}

	// Idempotent: acknowledging again changes nothing.
	again := acks.Acknowledge("g1", 2026, 3)
	if len(again) != len(acks) {
		t.Errorf("Expected idempotent acknowledge, set grew from %d to %d", len(acks), len(again))
	}
}
