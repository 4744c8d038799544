package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// GoalBuilder provides a fluent interface for creating test goals.
//
// Example usage:
//
//	// Simple creation with defaults
//	goal := testutil.NewGoal().Build(t, db)
//
//	// Customized goal
//	goal := testutil.NewGoal().
//	    WithName("House Deposit").
//	    WithTarget(60000).
//	    WithPriority(9).
//	    WithDeadlineIn(24).
//	    Build(t, db)
type GoalBuilder struct {
	ID                  string
	Name                string
	TargetAmount        float64
	StartDate           *time.Time
	Deadline            time.Time
	PriorityWeight      int
	MonthlyContribution float64
	CurrentAmount       float64
	IsEmergencyFund     bool
}

// NewGoal creates a GoalBuilder with sensible defaults: a 12000 target, a
// deadline a year out and a 1000 monthly contribution.
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		ID:                  MakeID(),
		Name:                "Test Goal",
		TargetAmount:        12000,
		Deadline:            time.Now().UTC().AddDate(1, 0, 0),
		PriorityWeight:      5,
		MonthlyContribution: 1000,
	}
}

// WithID sets a custom ID.
func (b *GoalBuilder) WithID(id string) *GoalBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *GoalBuilder) WithName(name string) *GoalBuilder {
	b.Name = name
	return b
}

// WithTarget sets the target amount.
func (b *GoalBuilder) WithTarget(amount float64) *GoalBuilder {
	b.TargetAmount = amount
	return b
}

// WithStartDate sets an explicit start date.
func (b *GoalBuilder) WithStartDate(start time.Time) *GoalBuilder {
	b.StartDate = &start
	return b
}

// WithDeadline sets an explicit deadline.
func (b *GoalBuilder) WithDeadline(deadline time.Time) *GoalBuilder {
	b.Deadline = deadline
	return b
}

// WithDeadlineIn sets the deadline a number of months from now.
func (b *GoalBuilder) WithDeadlineIn(months int) *GoalBuilder {
	b.Deadline = time.Now().UTC().AddDate(0, months, 0)
	return b
}

// WithPriority sets the priority weight.
func (b *GoalBuilder) WithPriority(weight int) *GoalBuilder {
	b.PriorityWeight = weight
	return b
}

// WithContribution sets the monthly contribution.
func (b *GoalBuilder) WithContribution(amount float64) *GoalBuilder {
	b.MonthlyContribution = amount
	return b
}

// WithCurrentAmount sets the saved amount.
func (b *GoalBuilder) WithCurrentAmount(amount float64) *GoalBuilder {
	b.CurrentAmount = amount
	return b
}

// AsEmergencyFund marks the goal as the emergency fund.
func (b *GoalBuilder) AsEmergencyFund() *GoalBuilder {
	b.IsEmergencyFund = true
	return b
}

// Build creates the goal in the database and returns it.
func (b *GoalBuilder) Build(t *testing.T, db *sql.DB) model.Goal {
	t.Helper()

	var startDate interface{}
	if b.StartDate != nil {
		startDate = b.StartDate.UTC().Format("2006-01-02")
	}

	query := `
		INSERT INTO goal (id, name, target_amount, start_date, deadline, priority_weight,
			monthly_contribution, current_amount, is_emergency_fund, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.Name, b.TargetAmount, startDate, b.Deadline.UTC().Format("2006-01-02"),
		b.PriorityWeight, b.MonthlyContribution, b.CurrentAmount, b.IsEmergencyFund,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return model.Goal{
		ID:                  b.ID,
		Name:                b.Name,
		TargetAmount:        b.TargetAmount,
		StartDate:           b.StartDate,
		Deadline:            b.Deadline,
		PriorityWeight:      b.PriorityWeight,
		MonthlyContribution: b.MonthlyContribution,
		CurrentAmount:       b.CurrentAmount,
		IsEmergencyFund:     b.IsEmergencyFund,
		CreatedAt:           createdAt,
	}
}

// ScenarioBuilder provides a fluent interface for creating test income scenarios.
type ScenarioBuilder struct {
	ID            string
	Name          string
	MonthlyIncome float64
	TaxRate       float64
	FixedExpenses float64
	ScenarioType  string
}

// NewScenario creates a ScenarioBuilder with a 30% tax rate and 30000 of
// fixed expenses, matching a typical expected-case scenario.
func NewScenario() *ScenarioBuilder {
	return &ScenarioBuilder{
		ID:            MakeID(),
		Name:          "Test Scenario",
		MonthlyIncome: 100000,
		TaxRate:       30,
		FixedExpenses: 30000,
		ScenarioType:  model.ScenarioExpected,
	}
}

// WithTaxRate sets the tax rate percentage.
func (b *ScenarioBuilder) WithTaxRate(rate float64) *ScenarioBuilder {
	b.TaxRate = rate
	return b
}

// WithFixedExpenses sets the fixed expenses.
func (b *ScenarioBuilder) WithFixedExpenses(expenses float64) *ScenarioBuilder {
	b.FixedExpenses = expenses
	return b
}

// WithType sets the scenario type.
func (b *ScenarioBuilder) WithType(scenarioType string) *ScenarioBuilder {
	b.ScenarioType = scenarioType
	return b
}

// Build creates the scenario in the database and returns it.
func (b *ScenarioBuilder) Build(t *testing.T, db *sql.DB) model.IncomeScenario {
	t.Helper()

	query := `
		INSERT INTO income_scenario (id, name, monthly_income, tax_rate, fixed_expenses, scenario_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.MonthlyIncome, b.TaxRate, b.FixedExpenses, b.ScenarioType)
	if err != nil {
		t.Fatalf("Failed to create test scenario: %v", err)
	}

	return model.IncomeScenario{
		ID:            b.ID,
		Name:          b.Name,
		MonthlyIncome: b.MonthlyIncome,
		TaxRate:       b.TaxRate,
		FixedExpenses: b.FixedExpenses,
		ScenarioType:  b.ScenarioType,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
// The goal's current amount is NOT updated; use the service layer when the
// test needs the atomic append behavior.
type TransactionBuilder struct {
	ID          string
	GoalID      *string
	Amount      float64
	Type        string
	Date        time.Time
	Description string
}

// NewTransaction creates a TransactionBuilder for an allocation dated today.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:     MakeID(),
		Amount: 1000,
		Type:   model.TransactionAllocation,
		Date:   time.Now().UTC(),
	}
}

// ForGoal links the transaction to a goal.
func (b *TransactionBuilder) ForGoal(goalID string) *TransactionBuilder {
	b.GoalID = &goalID
	return b
}

// WithAmount sets the amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(txType string) *TransactionBuilder {
	b.Type = txType
	return b
}

// OnDate sets the transaction date.
func (b *TransactionBuilder) OnDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	var goalID interface{}
	if b.GoalID != nil {
		goalID = *b.GoalID
	}

	query := `
		INSERT INTO "transaction" (id, goal_id, amount, type, date, description, acknowledged, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, goalID, b.Amount, b.Type, b.Date.UTC().Format("2006-01-02"),
		b.Description, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		GoalID:      b.GoalID,
		Amount:      b.Amount,
		Type:        b.Type,
		Date:        b.Date,
		Description: b.Description,
		CreatedAt:   createdAt,
	}
}

// FlexEventBuilder provides a fluent interface for creating test flex events.
type FlexEventBuilder struct {
	ID                  string
	Date                time.Time
	Reason              string
	Amount              float64
	AffectedGoals       []string
	PausedGoals         []string
	AdjustedAllocations []model.AdjustedAllocation
	ResumeDate          *time.Time
	Acknowledged        bool
}

// NewFlexEvent creates a FlexEventBuilder dated today.
func NewFlexEvent() *FlexEventBuilder {
	return &FlexEventBuilder{
		ID:     MakeID(),
		Date:   time.Now().UTC(),
		Reason: "Test flex event",
		Amount: 2000,
	}
}

// OnDate sets the event date.
func (b *FlexEventBuilder) OnDate(date time.Time) *FlexEventBuilder {
	b.Date = date
	return b
}

// Affecting sets the affected goal set.
func (b *FlexEventBuilder) Affecting(goalIDs ...string) *FlexEventBuilder {
	b.AffectedGoals = goalIDs
	return b
}

// Pausing sets the paused goal set.
func (b *FlexEventBuilder) Pausing(goalIDs ...string) *FlexEventBuilder {
	b.PausedGoals = goalIDs
	return b
}

// Adjusting adds an allocation override for a goal.
func (b *FlexEventBuilder) Adjusting(goalID string, newAmount float64) *FlexEventBuilder {
	b.AdjustedAllocations = append(b.AdjustedAllocations, model.AdjustedAllocation{
		GoalID:    goalID,
		NewAmount: newAmount,
	})
	return b
}

// ResumingOn sets the resume date.
func (b *FlexEventBuilder) ResumingOn(date time.Time) *FlexEventBuilder {
	b.ResumeDate = &date
	return b
}

// Resolved marks the event as acknowledged.
func (b *FlexEventBuilder) Resolved() *FlexEventBuilder {
	b.Acknowledged = true
	return b
}

// Build creates the flex event in the database and returns it.
func (b *FlexEventBuilder) Build(t *testing.T, db *sql.DB) model.FlexEvent {
	t.Helper()

	if b.AffectedGoals == nil {
		b.AffectedGoals = []string{}
	}
	if b.PausedGoals == nil {
		b.PausedGoals = []string{}
	}
	if b.AdjustedAllocations == nil {
		b.AdjustedAllocations = []model.AdjustedAllocation{}
	}

	affected := mustJSON(t, b.AffectedGoals)
	paused := mustJSON(t, b.PausedGoals)
	adjusted := mustJSON(t, b.AdjustedAllocations)

	var resumeDate interface{}
	if b.ResumeDate != nil {
		resumeDate = b.ResumeDate.UTC().Format("2006-01-02")
	}

	query := `
		INSERT INTO flex_event (id, date, reason, amount, affected_goals, paused_goals,
			adjusted_allocations, resume_date, acknowledged, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.Date.UTC().Format("2006-01-02"), b.Reason, b.Amount,
		affected, paused, adjusted, resumeDate, b.Acknowledged,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test flex event: %v", err)
	}

	return model.FlexEvent{
		ID:                  b.ID,
		Date:                b.Date,
		Reason:              b.Reason,
		Amount:              b.Amount,
		AffectedGoals:       b.AffectedGoals,
		PausedGoals:         b.PausedGoals,
		AdjustedAllocations: b.AdjustedAllocations,
		ResumeDate:          b.ResumeDate,
		Acknowledged:        b.Acknowledged,
		CreatedAt:           createdAt,
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal JSON: %v", err)
	}
	return string(data)
}
