package request

// CreateTransactionRequest represents the request body for recording a
// transaction. GoalID is required for allocation-type transactions and must
// be absent for income; CategoryID only applies to expenses.
type CreateTransactionRequest struct {
	GoalID      *string `json:"goalId,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}
