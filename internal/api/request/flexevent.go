package request

// AdjustedAllocationRequest is one (goal, newAmount) override within a flex event.
type AdjustedAllocationRequest struct {
	GoalID    string  `json:"goalId"`
	NewAmount float64 `json:"newAmount"`
}

// CreateFlexEventRequest represents the request body for declaring a flex
// event. PausedGoals must be a subset of AffectedGoals.
type CreateFlexEventRequest struct {
	Date                string                      `json:"date"`
	Reason              string                      `json:"reason"`
	Amount              float64                     `json:"amount"`
	AffectedGoals       []string                    `json:"affectedGoals"`
	PausedGoals         []string                    `json:"pausedGoals"`
	AdjustedAllocations []AdjustedAllocationRequest `json:"adjustedAllocations"`
	ResumeDate          *string                     `json:"resumeDate,omitempty"`
}
