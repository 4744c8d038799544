package model

// Scenario types classify how optimistic an income scenario is.
const (
	ScenarioConservative = "conservative"
	ScenarioExpected     = "expected"
	ScenarioOptimistic   = "optimistic"
)

// IncomeScenario represents an income assumption used by the auto-split
// allocator. Scenarios are pure input data: a calculation performed against a
// scenario is not retroactively affected when the scenario is later edited.
type IncomeScenario struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	TaxRate       float64 `json:"taxRate"` // percentage, 0-100
	FixedExpenses float64 `json:"fixedExpenses"`
	ScenarioType  string  `json:"scenarioType"`
}

// NetIncome applies the scenario's tax rate and fixed expenses to a gross
// income figure. The result may be negative; clamping is the allocator's
// job, not done here.
func (s IncomeScenario) NetIncome(grossIncome float64) float64 {
	return grossIncome*(1-s.TaxRate/100) - s.FixedExpenses
}
