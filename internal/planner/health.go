package planner

import (
	"math"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// Plan health policy constants. These are fixed values, not derived: the
// health endpoint's behavior is pinned by tests against exactly these
// numbers.
const (
	// Fragility is a 0-100 weighted sum, monotonic in each input: more
	// zero-slack goals, more reliance on the flexible share, or more
	// deviations can only raise it.
	fragilityZeroSlackWeight = 40.0
	fragilityFlexibleWeight  = 30.0
	fragilityDeviationWeight = 30.0

	// fragilityDeviationCap saturates the deviation term: five or more
	// unacknowledged deviations in the trailing window count as maximal.
	fragilityDeviationCap = 5

	// Status thresholds.
	fragilityCriticalThreshold = 60.0
	fragilityWarningThreshold  = 30.0
)

// HealthInput bundles the snapshot for a plan-health computation.
type HealthInput struct {
	Goals        []model.Goal
	Transactions []model.Transaction

	// Deviations covers the trailing three months; only unacknowledged
	// entries count toward DeviationCount and fragility.
	Deviations []model.Deviation

	// LastSplit is the most recent auto-split result, used for allocation
	// efficiency. Nil means no income data (efficiency 0).
	LastSplit *model.AutoSplitResult

	Today time.Time
}

// CalculatePlanHealth aggregates efficiency, fragility, slack and deviation
// signals into a single plan status snapshot. Like the rest of the engine it
// is pure: recomputing over the same snapshot yields the same result.
func CalculatePlanHealth(in HealthInput) model.PlanHealth {
	health := model.PlanHealth{HealthStatus: model.HealthHealthy}

	if in.LastSplit != nil && in.LastSplit.NetIncome > 0 {
		health.AllocationEfficiency = round2(in.LastSplit.TotalAllocated / in.LastSplit.NetIncome * 100)
	}

	for _, d := range in.Deviations {
		if !d.Acknowledged {
			health.DeviationCount++
		}
	}

	started := make([]model.Goal, 0, len(in.Goals))
	for _, g := range in.Goals {
		if HasStarted(g, in.Today) {
			started = append(started, g)
		}
	}

	year, month := in.Today.UTC().Year(), int(in.Today.UTC().Month())
	minSlack := 0
	zeroSlack := 0
	flexible := 0
	for i, g := range started {
		slack := goalSlack(g, in.Today)
		if i == 0 || slack < minSlack {
			minSlack = slack
		}
		if slack == 0 {
			zeroSlack++
		}
		if g.MonthlyContribution <= 0 {
			flexible++
		}

		if monthlyAllocated(g.ID, year, month, in.Transactions) >= RequiredMonthly(g, in.Today) {
			health.OnTrackGoals++
		} else {
			health.BehindGoals++
		}
	}
	health.SlackMonths = minSlack

	if n := float64(len(started)); n > 0 {
		devTerm := math.Min(float64(health.DeviationCount), fragilityDeviationCap) / fragilityDeviationCap
		health.FragilityScore = round2(
			fragilityZeroSlackWeight*float64(zeroSlack)/n +
				fragilityFlexibleWeight*float64(flexible)/n +
				fragilityDeviationWeight*devTerm)
	}

	switch {
	case health.FragilityScore >= fragilityCriticalThreshold || health.BehindGoals > health.OnTrackGoals:
		health.HealthStatus = model.HealthCritical
	case health.FragilityScore >= fragilityWarningThreshold || health.DeviationCount > 0:
		health.HealthStatus = model.HealthWarning
	}
	return health
}

// goalSlack returns how many spare months the goal has before its deadline is
// at risk: months remaining minus the months its declared contribution needs
// to cover the rest. Zero when there is no declared contribution, clamped at
// zero when the goal is already behind schedule.
func goalSlack(g model.Goal, today time.Time) int {
	if g.MonthlyContribution <= 0 {
		return 0
	}
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 {
		return MonthsBetween(today, g.Deadline)
	}
	needed := int(math.Ceil(remaining / g.MonthlyContribution))
	slack := MonthsBetween(today, g.Deadline) - needed
	if slack < 0 {
		return 0
	}
	return slack
}
