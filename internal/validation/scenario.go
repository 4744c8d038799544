package validation

import (
	"strings"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

func validScenarioType(t string) bool {
	switch t {
	case model.ScenarioConservative, model.ScenarioExpected, model.ScenarioOptimistic:
		return true
	}
	return false
}

// ValidateCreateScenario checks an income scenario creation request.
func ValidateCreateScenario(req request.CreateScenarioRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.MonthlyIncome < 0 {
		errors["monthlyIncome"] = "monthly income cannot be negative"
	}
	if req.TaxRate < 0 || req.TaxRate > 100 {
		errors["taxRate"] = "tax rate must be between 0 and 100"
	}
	if req.FixedExpenses < 0 {
		errors["fixedExpenses"] = "fixed expenses cannot be negative"
	}
	if !validScenarioType(req.ScenarioType) {
		errors["scenarioType"] = "scenario type must be conservative, expected or optimistic"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateScenario checks only the fields provided in a scenario update.
func ValidateUpdateScenario(req request.UpdateScenarioRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.MonthlyIncome != nil && *req.MonthlyIncome < 0 {
		errors["monthlyIncome"] = "monthly income cannot be negative"
	}
	if req.TaxRate != nil && (*req.TaxRate < 0 || *req.TaxRate > 100) {
		errors["taxRate"] = "tax rate must be between 0 and 100"
	}
	if req.FixedExpenses != nil && *req.FixedExpenses < 0 {
		errors["fixedExpenses"] = "fixed expenses cannot be negative"
	}
	if req.ScenarioType != nil && !validScenarioType(*req.ScenarioType) {
		errors["scenarioType"] = "scenario type must be conservative, expected or optimistic"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
