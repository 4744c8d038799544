package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// ConsequenceInput bundles the snapshot for a consequence projection.
type ConsequenceInput struct {
	GoalID    string
	Shortfall float64
	Year      int
	Month     int

	Goals      []model.Goal
	FlexEvents []model.FlexEvent

	// CatchUpTolerance widens the catch-up test: a goal can catch up when its
	// recomputed required monthly stays within contribution * tolerance.
	// Zero means the default of 1.0.
	CatchUpTolerance float64

	Today time.Time
}

// CalculateConsequence projects the downstream effect of a contribution
// shortfall on one goal: the new required monthly from today, whether the
// declared contribution can still absorb it, the smallest deadline shift when
// it cannot, and the qualitative impact on coupled goals.
//
// The projection is read-only. It never mutates the goal; in particular
// CurrentAmount is taken as-is since no catch-up has happened yet.
func CalculateConsequence(in ConsequenceInput) (model.ConsequenceProjection, error) {
	goal, ok := findGoal(in.Goals, in.GoalID)
	if !ok {
		return model.ConsequenceProjection{}, fmt.Errorf("%w: %s", apperrors.ErrGoalNotFound, in.GoalID)
	}

	tolerance := in.CatchUpTolerance
	if tolerance <= 0 {
		tolerance = 1.0
	}

	newRemaining := goal.TargetAmount - goal.CurrentAmount
	if newRemaining < 0 {
		newRemaining = 0
	}

	monthsFromNow := MonthsBetween(in.Today, goal.Deadline)
	newRequired := newRemaining
	if monthsFromNow > 0 {
		newRequired = newRemaining / float64(monthsFromNow)
	}
	newRequired = round2(newRequired)

	projection := model.ConsequenceProjection{
		GoalID:             goal.ID,
		GoalName:           goal.Name,
		Shortfall:          round2(in.Shortfall),
		Year:               in.Year,
		Month:              in.Month,
		NewRemaining:       round2(newRemaining),
		MonthsRemaining:    monthsFromNow,
		NewRequiredMonthly: newRequired,
		AffectedGoals:      []model.AffectedGoal{},
	}

	switch {
	case newRemaining == 0:
		projection.CanCatchUp = true
	case goal.MonthlyContribution <= 0:
		// No declared contribution to catch up with, and nothing to solve
		// the deadline shift against.
		projection.Warnings = append(projection.Warnings,
			fmt.Sprintf("goal %q has no declared monthly contribution; deadline shift cannot be projected", goal.Name))
	case newRequired <= goal.MonthlyContribution*tolerance:
		projection.CanCatchUp = true
	default:
		// Smallest k >= 0 with newRemaining / (monthsFromNow + k) <= contribution.
		needed := int(math.Ceil(newRemaining / goal.MonthlyContribution))
		shift := needed - monthsFromNow
		if shift < 0 {
			shift = 0
		}
		projection.DeadlineShiftMonths = shift
		projected := goal.Deadline.AddDate(0, shift, 0)
		projection.ProjectedDeadline = &projected
	}

	projection.AffectedGoals, projection.Warnings = affectedGoals(goal, in, projection.Warnings)
	return projection, nil
}

// affectedGoals lists the other goals a shortfall spills over to: goals in
// the same priority band, plus goals coupled through an active flex event
// that also covers the shortfall goal.
func affectedGoals(goal model.Goal, in ConsequenceInput, warnings []string) ([]model.AffectedGoal, []string) {
	known := make(map[string]model.Goal, len(in.Goals))
	for _, g := range in.Goals {
		known[g.ID] = g
	}

	coupled := map[string]bool{}
	paused := map[string]bool{}
	for _, event := range in.FlexEvents {
		if !event.ActiveOn(DateOnly(in.Today)) {
			continue
		}
		for _, id := range event.AffectedGoals {
			if _, ok := known[id]; !ok {
				warnings = append(warnings,
					fmt.Sprintf("flex event %s references unknown goal %s; ignored", event.ID, id))
				continue
			}
			if event.Affects(goal.ID) {
				coupled[id] = true
			}
			if event.Pauses(id) {
				paused[id] = true
			}
		}
	}

	affected := []model.AffectedGoal{}
	for _, other := range in.Goals {
		if other.ID == goal.ID {
			continue
		}
		if other.PriorityWeight != goal.PriorityWeight && !coupled[other.ID] {
			continue
		}

		impact := model.ImpactReduced
		switch {
		case paused[other.ID]:
			impact = model.ImpactPaused
		case other.MonthlyContribution <= 0:
			// Funded from the proportional flexible share, so reduced income
			// availability pushes its own required monthly up.
			impact = model.ImpactDelayed
		}

		affected = append(affected, model.AffectedGoal{
			GoalID:   other.ID,
			GoalName: other.Name,
			Impact:   impact,
		})
	}
	return affected, warnings
}

func findGoal(goals []model.Goal, id string) (model.Goal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}
