package planner

import (
	"fmt"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// AllocationOverrides is the forward-looking adjustment a flex event applies
// on top of the allocator's output: paused goals contribute nothing, adjusted
// goals contribute the override amount. Past transactions are never touched.
type AllocationOverrides struct {
	EventID  string             `json:"eventId"`
	Paused   []string           `json:"paused"`
	Adjusted map[string]float64 `json:"adjusted"`
	Warnings []string           `json:"warnings,omitempty"`
}

// RebalanceForFlexEvent validates a flex event against the goal set and
// produces the allocation overrides it implies. Goal references that do not
// resolve are skipped and reported as warnings rather than failing the event,
// since the remaining overrides are still useful.
func RebalanceForFlexEvent(event model.FlexEvent, goals []model.Goal) (AllocationOverrides, error) {
	for _, id := range event.PausedGoals {
		if !event.Affects(id) {
			return AllocationOverrides{}, fmt.Errorf("paused goal %s is not in the event's affected goals", id)
		}
	}

	known := make(map[string]bool, len(goals))
	for _, g := range goals {
		known[g.ID] = true
	}

	overrides := AllocationOverrides{
		EventID:  event.ID,
		Paused:   []string{},
		Adjusted: map[string]float64{},
	}

	for _, id := range event.AffectedGoals {
		if !known[id] {
			overrides.Warnings = append(overrides.Warnings,
				fmt.Sprintf("flex event references unknown goal %s; ignored", id))
		}
	}
	for _, id := range event.PausedGoals {
		if known[id] {
			overrides.Paused = append(overrides.Paused, id)
		}
	}
	for _, adj := range event.AdjustedAllocations {
		if !known[adj.GoalID] {
			overrides.Warnings = append(overrides.Warnings,
				fmt.Sprintf("adjusted allocation references unknown goal %s; ignored", adj.GoalID))
			continue
		}
		overrides.Adjusted[adj.GoalID] = round2(adj.NewAmount)
	}

	return overrides, nil
}

// Apply layers the overrides onto an auto-split result. Paused goals keep
// their allocation entry with a zero amount so callers can show them as
// paused rather than absent; adjusted goals take the override amount.
// FreeSpend and TotalAllocated are recomputed from the adjusted amounts.
func (o AllocationOverrides) Apply(split model.AutoSplitResult) model.AutoSplitResult {
	pausedSet := make(map[string]bool, len(o.Paused))
	for _, id := range o.Paused {
		pausedSet[id] = true
	}

	out := split
	out.Allocations = make([]model.Allocation, len(split.Allocations))
	copy(out.Allocations, split.Allocations)
	out.Warnings = append(append([]string{}, split.Warnings...), o.Warnings...)

	var total float64
	for i, alloc := range out.Allocations {
		switch {
		case pausedSet[alloc.GoalID]:
			out.Allocations[i].Amount = 0
		default:
			if amount, ok := o.Adjusted[alloc.GoalID]; ok {
				out.Allocations[i].Amount = amount
			}
		}
		total += out.Allocations[i].Amount
	}

	out.TotalAllocated = round2(total)
	out.FreeSpend = round2(maxFloat(0, split.NetIncome-total))
	return out
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
