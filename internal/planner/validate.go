package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// ValidationError reports malformed input rejected before any calculation
// runs. Fields maps field name to the problem with it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateGoal checks the structural invariants every goal handed to the
// engine must satisfy: a positive target, a deadline after the effective
// start, a priority weight in 1-10 and non-negative amounts.
func ValidateGoal(g model.Goal, today time.Time) error {
	fields := make(map[string]string)

	if g.TargetAmount <= 0 {
		fields["targetAmount"] = "target amount must be positive"
	}
	if g.PriorityWeight < 1 || g.PriorityWeight > 10 {
		fields["priorityWeight"] = "priority weight must be between 1 and 10"
	}
	if g.MonthlyContribution < 0 {
		fields["monthlyContribution"] = "monthly contribution cannot be negative"
	}
	if g.CurrentAmount < 0 {
		fields["currentAmount"] = "current amount cannot be negative"
	}
	if !g.Deadline.After(EffectiveStart(g, today)) {
		fields["deadline"] = "deadline must be after the start date"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateScenario checks an income scenario's invariants.
func ValidateScenario(s model.IncomeScenario) error {
	fields := make(map[string]string)

	if s.TaxRate < 0 || s.TaxRate > 100 {
		fields["taxRate"] = "tax rate must be between 0 and 100"
	}
	if s.FixedExpenses < 0 {
		fields["fixedExpenses"] = "fixed expenses cannot be negative"
	}
	switch s.ScenarioType {
	case model.ScenarioConservative, model.ScenarioExpected, model.ScenarioOptimistic:
	default:
		fields["scenarioType"] = "scenario type must be conservative, expected or optimistic"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
