package planner_test

import (
	"testing"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
)

// TestValidateGoal tests the structural invariants rejected before any
// calculation runs.
func TestValidateGoal(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	valid := model.Goal{
		Name:           "House",
		TargetAmount:   120000,
		PriorityWeight: 5,
		Deadline:       today.AddDate(0, 0, 360),
	}

	t.Run("valid goal passes", func(t *testing.T) {
		if err := planner.ValidateGoal(valid, today); err != nil {
			t.Errorf("ValidateGoal() returned unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*model.Goal)
		field  string
	}{
		{"zero target", func(g *model.Goal) { g.TargetAmount = 0 }, "targetAmount"},
		{"negative target", func(g *model.Goal) { g.TargetAmount = -10 }, "targetAmount"},
		{"priority below range", func(g *model.Goal) { g.PriorityWeight = 0 }, "priorityWeight"},
		{"priority above range", func(g *model.Goal) { g.PriorityWeight = 11 }, "priorityWeight"},
		{"negative contribution", func(g *model.Goal) { g.MonthlyContribution = -1 }, "monthlyContribution"},
		{"negative current amount", func(g *model.Goal) { g.CurrentAmount = -1 }, "currentAmount"},
		{"deadline before start", func(g *model.Goal) { g.Deadline = today.AddDate(0, 0, -1) }, "deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)

			err := planner.ValidateGoal(g, today)
			if err == nil {
				t.Fatal("Expected validation error")
			}

			vErr, ok := err.(*planner.ValidationError)
			if !ok {
				t.Fatalf("Expected *planner.ValidationError, got %T", err)
			}
			if _, ok := vErr.Fields[tt.field]; !ok {
				t.Errorf("Expected field %q in error, got %v", tt.field, vErr.Fields)
			}
		})
	}

	t.Run("deadline before explicit start date", func(t *testing.T) {
		g := valid
		start := today.AddDate(0, 6, 0)
		g.StartDate = &start
		g.Deadline = today.AddDate(0, 3, 0)

		if err := planner.ValidateGoal(g, today); err == nil {
			t.Error("Expected validation error for deadline before start date")
		}
	})
}

// TestValidateScenario tests income scenario invariants.
func TestValidateScenario(t *testing.T) {
	valid := model.IncomeScenario{
		Name:          "Expected",
		MonthlyIncome: 100000,
		TaxRate:       10,
		FixedExpenses: 20000,
		ScenarioType:  model.ScenarioExpected,
	}

	t.Run("valid scenario passes", func(t *testing.T) {
		if err := planner.ValidateScenario(valid); err != nil {
			t.Errorf("ValidateScenario() returned unexpected error: %v", err)
		}
	})

	t.Run("tax rate above 100 is rejected", func(t *testing.T) {
		s := valid
		s.TaxRate = 120
		if err := planner.ValidateScenario(s); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("unknown scenario type is rejected", func(t *testing.T) {
		s := valid
		s.ScenarioType = "hopeful"
		if err := planner.ValidateScenario(s); err == nil {
			t.Error("Expected validation error")
		}
	})
}
