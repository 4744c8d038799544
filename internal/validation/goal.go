package validation

import (
	"strings"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
)

// ValidateCreateGoal checks the request-level shape of a goal creation:
// required fields present, dates parseable, numbers in range. The planner
// package revalidates the assembled goal's structural invariants.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.TargetAmount <= 0 {
		errors["targetAmount"] = "target amount must be positive"
	}
	if req.PriorityWeight < 1 || req.PriorityWeight > 10 {
		errors["priorityWeight"] = "priority weight must be between 1 and 10"
	}
	if req.MonthlyContribution < 0 {
		errors["monthlyContribution"] = "monthly contribution cannot be negative"
	}

	if req.Deadline == "" {
		errors["deadline"] = "deadline is required"
	} else if _, err := ParseDate(req.Deadline); err != nil {
		errors["deadline"] = "deadline must be a YYYY-MM-DD date"
	}
	if req.StartDate != nil {
		if _, err := ParseDate(*req.StartDate); err != nil {
			errors["startDate"] = "start date must be a YYYY-MM-DD date"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateGoal checks only the fields provided in a goal update.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}
	if req.TargetAmount != nil && *req.TargetAmount <= 0 {
		errors["targetAmount"] = "target amount must be positive"
	}
	if req.PriorityWeight != nil && (*req.PriorityWeight < 1 || *req.PriorityWeight > 10) {
		errors["priorityWeight"] = "priority weight must be between 1 and 10"
	}
	if req.MonthlyContribution != nil && *req.MonthlyContribution < 0 {
		errors["monthlyContribution"] = "monthly contribution cannot be negative"
	}
	if req.Deadline != nil {
		if _, err := ParseDate(*req.Deadline); err != nil {
			errors["deadline"] = "deadline must be a YYYY-MM-DD date"
		}
	}
	if req.StartDate != nil {
		if _, err := ParseDate(*req.StartDate); err != nil {
			errors["startDate"] = "start date must be a YYYY-MM-DD date"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
