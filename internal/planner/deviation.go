package planner

import (
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// DetectDeviations compares each started goal's planned contribution for the
// given calendar month against the allocation transactions actually recorded
// in that month, and classifies the gap.
//
// The result is a pure function of (goals, transactions, month): the
// acknowledged set only flips the Acknowledged flag, never the classification
// or the shortfall. Goals whose planned contribution is zero or negative
// never produce a deviation.
func DetectDeviations(year, month int, goals []model.Goal, transactions []model.Transaction, acks model.AckSet) []model.Deviation {
	monthStart, monthEnd := MonthBounds(year, month)

	deviations := []model.Deviation{}
	for _, g := range goals {
		// Started for that month: the schedule begins no later than the
		// month's last day.
		if EffectiveStart(g, monthStart).After(monthEnd) {
			continue
		}

		planned := RequiredMonthly(g, monthStart)
		if planned <= 0 {
			continue
		}

		actual := monthlyAllocated(g.ID, year, month, transactions)
		if actual >= planned {
			continue
		}

		devType := model.DeviationUnderContribution
		if actual == 0 {
			devType = model.DeviationMissedContribution
		}

		deviations = append(deviations, model.Deviation{
			GoalID:        g.ID,
			GoalName:      g.Name,
			Year:          year,
			Month:         month,
			Type:          devType,
			PlannedAmount: planned,
			ActualAmount:  actual,
			Shortfall:     round2(planned - actual),
			Acknowledged:  acks.Contains(g.ID, year, month),
		})
	}
	return deviations
}

// monthlyAllocated sums the allocation transactions credited to a goal within
// one calendar month. Aggregating from the log keeps the figure idempotent no
// matter how often the engine recomputes.
func monthlyAllocated(goalID string, year, month int, transactions []model.Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		if tx.Type != model.TransactionAllocation || tx.GoalID == nil || *tx.GoalID != goalID {
			continue
		}
		if !InMonth(tx.Date, year, month) {
			continue
		}
		total += tx.Amount
	}
	return round2(total)
}
