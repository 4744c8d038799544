package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// Allocator policy constants.
const (
	// emergencyShare caps the emergency fund's first-pass allocation at 10%
	// of the income remaining when it is considered.
	emergencyShare = 0.10

	// emergencyMinPriority is the priority weight an emergency fund must
	// carry to receive the first-pass treatment.
	emergencyMinPriority = 8

	// flexibleShare reserves half of each proportional share for
	// free-spend. Goals without a fixed contribution only ever draw half of
	// their weighted slice.
	flexibleShare = 0.5
)

// CalculateAutoSplit distributes one period's income across the goal set.
//
// When a scenario is supplied the gross figure is reduced by its tax rate and
// fixed expenses; otherwise grossIncome is treated as already net. The
// qualifying emergency fund, if any, is funded first with at most 10% of the
// remaining income. Remaining goals are processed by priority (descending,
// earlier deadline breaking ties): fixed-contribution goals take
// min(contribution, remaining); the rest take a weighted share of the
// remaining pool, with the weight denominator recomputed over the goals not
// yet processed, scaled by the 0.5 flexibility factor.
//
// Conservation holds exactly: TotalAllocated + FreeSpend == max(NetIncome, 0).
// Goals that have not started are still planned for (Future=true) so the UI
// can show the forward schedule; callers exclude them from spendable totals.
func CalculateAutoSplit(grossIncome float64, scenario *model.IncomeScenario, goals []model.Goal, today time.Time) model.AutoSplitResult {
	netIncome := grossIncome
	if scenario != nil {
		netIncome = scenario.NetIncome(grossIncome)
	}
	netIncome = round2(netIncome)

	result := model.AutoSplitResult{
		GrossIncome: grossIncome,
		NetIncome:   netIncome,
		Allocations: []model.Allocation{},
	}
	if netIncome <= 0 || len(goals) == 0 {
		// Nothing to distribute, or nothing to distribute to.
		if netIncome > 0 {
			result.FreeSpend = netIncome
		}
		return result
	}

	ordered := sortByPriority(goals)
	remaining := netIncome

	// Emergency-first rule: the highest-ranked qualifying emergency fund is
	// funded before any other goal is considered.
	emergencyID := ""
	for _, g := range ordered {
		if !isEmergencyFund(g) {
			continue
		}
		amount := round2(minFloat(g.MonthlyContribution, remaining*emergencyShare))
		if amount > 0 {
			result.Allocations = append(result.Allocations, model.Allocation{
				GoalID:   g.ID,
				GoalName: g.Name,
				Amount:   amount,
				Type:     model.AllocationEmergency,
				Future:   !HasStarted(g, today),
			})
			remaining -= amount
		}
		emergencyID = g.ID
		break
	}

	// Weight pool over the goals still to be processed. Shrinks as goals are
	// consumed so each proportional share is taken against the remaining
	// pool, not frozen at admission.
	weightPool := 0
	for _, g := range ordered {
		if g.ID == emergencyID {
			continue
		}
		weightPool += g.PriorityWeight
	}

	for _, g := range ordered {
		if g.ID == emergencyID {
			continue
		}
		if remaining <= 0 {
			break
		}

		var amount float64
		switch {
		case g.MonthlyContribution > 0:
			amount = minFloat(g.MonthlyContribution, remaining)
		case weightPool > 0:
			amount = remaining * (float64(g.PriorityWeight) / float64(weightPool)) * flexibleShare
		}
		weightPool -= g.PriorityWeight

		amount = round2(amount)
		if amount <= 0 {
			continue
		}

		result.Allocations = append(result.Allocations, model.Allocation{
			GoalID:   g.ID,
			GoalName: g.Name,
			Amount:   amount,
			Type:     model.AllocationGoal,
			Future:   !HasStarted(g, today),
		})
		remaining -= amount
	}

	if remaining > 0 {
		result.FreeSpend = round2(remaining)
	}
	result.TotalAllocated = round2(netIncome - remaining)
	return result
}

// isEmergencyFund reports whether the goal qualifies for the emergency-first
// rule. The name-substring check is a compatibility shim for data recorded
// before the explicit flag existed; the flag wins when set.
func isEmergencyFund(g model.Goal) bool {
	if g.PriorityWeight < emergencyMinPriority {
		return false
	}
	return g.IsEmergencyFund || strings.Contains(strings.ToLower(g.Name), "emergency")
}

// sortByPriority returns a copy of the goals ordered by priority weight
// descending, earlier deadline winning ties, goal ID as the final tiebreak
// so the ordering is deterministic.
func sortByPriority(goals []model.Goal) []model.Goal {
	ordered := make([]model.Goal, len(goals))
	copy(ordered, goals)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PriorityWeight != ordered[j].PriorityWeight {
			return ordered[i].PriorityWeight > ordered[j].PriorityWeight
		}
		if !ordered[i].Deadline.Equal(ordered[j].Deadline) {
			return ordered[i].Deadline.Before(ordered[j].Deadline)
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
