package validation

import (
	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
)

// ValidateYearMonth checks a (year, month) pair used for deviation queries
// and acknowledgements.
func ValidateYearMonth(year, month int) error {
	errors := make(map[string]string)

	if year < 1970 || year > 9999 {
		errors["year"] = "year is out of range"
	}
	if month < 1 || month > 12 {
		errors["month"] = "month must be between 1 and 12"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateAutoSplit checks an auto-split request.
func ValidateAutoSplit(req request.AutoSplitRequest) error {
	errors := make(map[string]string)

	if req.GrossIncome < 0 {
		errors["grossIncome"] = "gross income cannot be negative"
	}
	if req.ScenarioID != nil {
		if err := ValidateUUID(*req.ScenarioID); err != nil {
			errors["scenarioId"] = "scenario ID must be a valid UUID"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateAcknowledgeDeviation checks a deviation acknowledgement request.
func ValidateAcknowledgeDeviation(req request.AcknowledgeDeviationRequest) error {
	if err := ValidateUUID(req.GoalID); err != nil {
		return &Error{Fields: map[string]string{"goalId": "goal ID must be a valid UUID"}}
	}
	return ValidateYearMonth(req.Year, req.Month)
}

// ValidateConsequence checks a consequence projection request.
func ValidateConsequence(req request.ConsequenceRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.GoalID); err != nil {
		errors["goalId"] = "goal ID must be a valid UUID"
	}
	if req.Shortfall < 0 {
		errors["shortfall"] = "shortfall cannot be negative"
	}
	if req.CatchUpTolerance < 0 {
		errors["catchUpTolerance"] = "catch-up tolerance cannot be negative"
	}
	if err := ValidateYearMonth(req.Year, req.Month); err != nil {
		if vErr, ok := err.(*Error); ok {
			for k, v := range vErr.Fields {
				errors[k] = v
			}
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
