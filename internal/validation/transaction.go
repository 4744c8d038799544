package validation

import (
	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// ValidateCreateTransaction checks a transaction creation request: type must
// be one of income/expense/allocation, allocations must reference a goal,
// income must not, and category only applies to expenses.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	switch req.Type {
	case model.TransactionIncome:
		if req.GoalID != nil {
			errors["goalId"] = "income transactions cannot reference a goal"
		}
	case model.TransactionAllocation:
		if req.GoalID == nil {
			errors["goalId"] = "allocation transactions require a goal"
		}
	case model.TransactionExpense:
	default:
		errors["type"] = "type must be income, expense or allocation"
	}

	if req.CategoryID != nil && req.Type != model.TransactionExpense {
		errors["categoryId"] = "category only applies to expense transactions"
	}

	if req.GoalID != nil {
		if err := ValidateUUID(*req.GoalID); err != nil {
			errors["goalId"] = "goal ID must be a valid UUID"
		}
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if req.Date == "" {
		errors["date"] = "date is required"
	} else if _, err := ParseDate(req.Date); err != nil {
		errors["date"] = "date must be a YYYY-MM-DD date"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
