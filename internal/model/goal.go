package model

import "time"

// Goal represents a savings goal from the database.
// CurrentAmount is an aggregate over allocation transactions and must only be
// mutated together with the transaction log in a single database transaction.
type Goal struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	TargetAmount        float64    `json:"targetAmount"`
	StartDate           *time.Time `json:"startDate,omitempty"` // nil means "starts today"
	Deadline            time.Time  `json:"deadline"`
	PriorityWeight      int        `json:"priorityWeight"` // 1-10, higher funds first
	MonthlyContribution float64    `json:"monthlyContribution"`
	CurrentAmount       float64    `json:"currentAmount"`
	IsEmergencyFund     bool       `json:"isEmergencyFund"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// GoalFilter for querying goals
type GoalFilter struct {
	EmergencyOnly bool
}

// GoalProgress represents the computed funding state of a single goal at a
// point in time. It is derived, never persisted as goal state.
type GoalProgress struct {
	GoalID          string  `json:"goalId"`
	Name            string  `json:"name"`
	HasStarted      bool    `json:"hasStarted"`
	MonthsRemaining int     `json:"monthsRemaining"`
	RequiredMonthly float64 `json:"requiredMonthly"`
	Remaining       float64 `json:"remaining"`
	PercentComplete float64 `json:"percentComplete"`
}
