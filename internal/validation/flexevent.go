package validation

import (
	"strings"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
)

// ValidateCreateFlexEvent checks a flex event declaration, including the
// pausedGoals ⊆ affectedGoals invariant.
func ValidateCreateFlexEvent(req request.CreateFlexEventRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Reason) == "" {
		errors["reason"] = "reason is required"
	}
	if req.Date == "" {
		errors["date"] = "date is required"
	} else if _, err := ParseDate(req.Date); err != nil {
		errors["date"] = "date must be a YYYY-MM-DD date"
	}
	if req.ResumeDate != nil {
		if _, err := ParseDate(*req.ResumeDate); err != nil {
			errors["resumeDate"] = "resume date must be a YYYY-MM-DD date"
		}
	}

	if len(req.AffectedGoals) == 0 {
		errors["affectedGoals"] = "at least one affected goal is required"
	} else if err := ValidateUUIDs(req.AffectedGoals); err != nil {
		errors["affectedGoals"] = "affected goal IDs must be valid UUIDs"
	}

	affected := make(map[string]bool, len(req.AffectedGoals))
	for _, id := range req.AffectedGoals {
		affected[id] = true
	}
	for _, id := range req.PausedGoals {
		if !affected[id] {
			errors["pausedGoals"] = "paused goals must be a subset of affected goals"
			break
		}
	}
	for _, adj := range req.AdjustedAllocations {
		if err := ValidateUUID(adj.GoalID); err != nil {
			errors["adjustedAllocations"] = "adjusted allocation goal IDs must be valid UUIDs"
			break
		}
		if adj.NewAmount < 0 {
			errors["adjustedAllocations"] = "adjusted allocation amounts cannot be negative"
			break
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
