package request

// AutoSplitRequest represents the request body for an auto-split computation.
// ScenarioID is optional; without it the gross income is treated as net.
type AutoSplitRequest struct {
	GrossIncome float64 `json:"grossIncome"`
	ScenarioID  *string `json:"scenarioId,omitempty"`
}

// AcknowledgeDeviationRequest marks one goal-month deviation as acknowledged.
type AcknowledgeDeviationRequest struct {
	GoalID string `json:"goalId"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

// ConsequenceRequest represents the request body for a consequence projection.
// CatchUpTolerance of 0 means the default of 1.0.
type ConsequenceRequest struct {
	GoalID           string  `json:"goalId"`
	Shortfall        float64 `json:"shortfall"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	CatchUpTolerance float64 `json:"catchUpTolerance,omitempty"`
}
