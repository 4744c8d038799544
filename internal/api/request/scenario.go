package request

// CreateScenarioRequest represents the request body for creating an income scenario.
type CreateScenarioRequest struct {
	Name          string  `json:"name"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	TaxRate       float64 `json:"taxRate"`
	FixedExpenses float64 `json:"fixedExpenses"`
	ScenarioType  string  `json:"scenarioType"`
}

// UpdateScenarioRequest represents the request body for updating an income scenario.
// Only provided fields are updated.
type UpdateScenarioRequest struct {
	Name          *string  `json:"name,omitempty"`
	MonthlyIncome *float64 `json:"monthlyIncome,omitempty"`
	TaxRate       *float64 `json:"taxRate,omitempty"`
	FixedExpenses *float64 `json:"fixedExpenses,omitempty"`
	ScenarioType  *string  `json:"scenarioType,omitempty"`
}
