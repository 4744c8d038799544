package request

// CreateGoalRequest represents the request body for creating a goal.
// Dates are YYYY-MM-DD strings; StartDate omitted means "starts today".
type CreateGoalRequest struct {
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"targetAmount"`
	StartDate           *string `json:"startDate,omitempty"`
	Deadline            string  `json:"deadline"`
	PriorityWeight      int     `json:"priorityWeight"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	IsEmergencyFund     bool    `json:"isEmergencyFund"`
}

// UpdateGoalRequest represents the request body for updating a goal.
// Only provided fields are updated. CurrentAmount is not accepted here: it is
// an aggregate over allocation transactions and cannot be set directly.
type UpdateGoalRequest struct {
	Name                *string  `json:"name,omitempty"`
	TargetAmount        *float64 `json:"targetAmount,omitempty"`
	StartDate           *string  `json:"startDate,omitempty"`
	Deadline            *string  `json:"deadline,omitempty"`
	PriorityWeight      *int     `json:"priorityWeight,omitempty"`
	MonthlyContribution *float64 `json:"monthlyContribution,omitempty"`
	IsEmergencyFund     *bool    `json:"isEmergencyFund,omitempty"`
}
