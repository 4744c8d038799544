package planner

import (
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// RequiredMonthly returns the contribution per month needed to reach the
// goal's target by its deadline, amortizing the remaining amount over the
// months between the goal's effective start and the deadline.
//
// A goal whose deadline has passed (zero months remaining) requires the full
// remaining amount immediately. An overfunded goal requires nothing.
//
// The value is reported for every goal, started or not; portfolio-level
// totals must filter on HasStarted, per-goal display must not.
func RequiredMonthly(g model.Goal, today time.Time) float64 {
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 {
		return 0
	}

	months := MonthsRemaining(g, today)
	if months == 0 {
		// Past due: pay everything now.
		return round2(remaining)
	}
	return round2(remaining / float64(months))
}

// Progress computes the derived funding state of a single goal.
func Progress(g model.Goal, today time.Time) model.GoalProgress {
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	percent := 0.0
	if g.TargetAmount > 0 {
		percent = round2(g.CurrentAmount / g.TargetAmount * 100)
		if percent > 100 {
			percent = 100
		}
	}

	return model.GoalProgress{
		GoalID:          g.ID,
		Name:            g.Name,
		HasStarted:      HasStarted(g, today),
		MonthsRemaining: MonthsRemaining(g, today),
		RequiredMonthly: RequiredMonthly(g, today),
		Remaining:       round2(remaining),
		PercentComplete: percent,
	}
}

// TotalRequiredMonthly sums the required monthly contributions of started
// goals. Goals that have not started are excluded from the total even though
// their own RequiredMonthly is still reported individually.
func TotalRequiredMonthly(goals []model.Goal, today time.Time) float64 {
	var total float64
	for _, g := range goals {
		if !HasStarted(g, today) {
			continue
		}
		total += RequiredMonthly(g, today)
	}
	return round2(total)
}
