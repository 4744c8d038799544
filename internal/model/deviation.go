package model

// Deviation types classify the gap between plan and behavior.
const (
	DeviationMissedContribution = "missed_contribution"
	DeviationUnderContribution  = "under_contribution"
	DeviationOverspend          = "overspend"
	DeviationIncomeDrop         = "income_drop"
)

// Deviation represents a detected gap between the planned and actual monthly
// contribution for one goal in one calendar month. Deviations are derived
// from the transaction log on demand; only acknowledgements are persisted.
type Deviation struct {
	GoalID        string  `json:"goalId"`
	GoalName      string  `json:"goalName"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Type          string  `json:"type"`
	PlannedAmount float64 `json:"plannedAmount"`
	ActualAmount  float64 `json:"actualAmount"`
	Shortfall     float64 `json:"shortfall"`
	Acknowledged  bool    `json:"acknowledged"`
}

// AckKey identifies one acknowledged goal-month.
type AckKey struct {
	GoalID string
	Year   int
	Month  int
}

// AckSet is the set of acknowledged deviations. The engine treats it as
// immutable; Acknowledge returns a new set so repeated engine calls over the
// same snapshot stay pure.
type AckSet map[AckKey]struct{}

// Contains reports whether the goal-month has been acknowledged.
func (s AckSet) Contains(goalID string, year, month int) bool {
	_, ok := s[AckKey{GoalID: goalID, Year: year, Month: month}]
	return ok
}

// Acknowledge returns a copy of the set with the goal-month added.
// Acknowledging the same goal-month twice is a no-op.
func (s AckSet) Acknowledge(goalID string, year, month int) AckSet {
	out := make(AckSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[AckKey{GoalID: goalID, Year: year, Month: month}] = struct{}{}
	return out
}
