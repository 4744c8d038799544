package model

import "time"

// Transaction types.
const (
	TransactionIncome     = "income"
	TransactionExpense    = "expense"
	TransactionAllocation = "allocation"
)

// Transaction represents a single money movement. An "allocation" credits a
// goal's saved amount; GoalID is nil for pure income/expense rows and
// CategoryID is only used for expenses. The deviation-tracking fields are set
// when a transaction was recorded to resolve a detected deviation.
type Transaction struct {
	ID              string     `json:"id"`
	GoalID          *string    `json:"goalId,omitempty"`
	CategoryID      *string    `json:"categoryId,omitempty"`
	Amount          float64    `json:"amount"`
	Type            string     `json:"type"`
	Date            time.Time  `json:"date"`
	Description     string     `json:"description"`
	DeviationType   *string    `json:"deviationType,omitempty"`
	PlannedAmount   *float64   `json:"plannedAmount,omitempty"`
	ActualAmount    *float64   `json:"actualAmount,omitempty"`
	Acknowledged    bool       `json:"acknowledged"`
	AcknowledgedAt  *time.Time `json:"acknowledgedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// TransactionFilter for querying transactions
type TransactionFilter struct {
	GoalID    string
	Type      string
	StartDate time.Time
	EndDate   time.Time
}
