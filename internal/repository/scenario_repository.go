package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// ScenarioRepository provides data access methods for the income_scenario table.
type ScenarioRepository struct {
	db *sql.DB
}

// NewScenarioRepository creates a new ScenarioRepository with the provided database connection.
func NewScenarioRepository(db *sql.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

// GetScenarios retrieves all income scenarios ordered by name.
func (r *ScenarioRepository) GetScenarios() ([]model.IncomeScenario, error) {
	rows, err := r.db.Query(`
		SELECT id, name, monthly_income, tax_rate, fixed_expenses, scenario_type
		FROM income_scenario
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query income_scenario table: %w", err)
	}
	defer rows.Close()

	scenarios := []model.IncomeScenario{}
	for rows.Next() {
		var s model.IncomeScenario
		if err := rows.Scan(&s.ID, &s.Name, &s.MonthlyIncome, &s.TaxRate, &s.FixedExpenses, &s.ScenarioType); err != nil {
			return nil, fmt.Errorf("failed to scan income_scenario table results: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

// GetScenario retrieves a single income scenario by ID.
func (r *ScenarioRepository) GetScenario(id string) (model.IncomeScenario, error) {
	var s model.IncomeScenario
	err := r.db.QueryRow(`
		SELECT id, name, monthly_income, tax_rate, fixed_expenses, scenario_type
		FROM income_scenario WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.MonthlyIncome, &s.TaxRate, &s.FixedExpenses, &s.ScenarioType)
	if errors.Is(err, sql.ErrNoRows) {
		return model.IncomeScenario{}, fmt.Errorf("%w: %s", apperrors.ErrScenarioNotFound, id)
	}
	if err != nil {
		return model.IncomeScenario{}, fmt.Errorf("failed to scan income_scenario table results: %w", err)
	}
	return s, nil
}

// CreateScenario inserts a new income scenario.
func (r *ScenarioRepository) CreateScenario(s model.IncomeScenario) error {
	_, err := r.db.Exec(`
		INSERT INTO income_scenario (id, name, monthly_income, tax_rate, fixed_expenses, scenario_type)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.MonthlyIncome, s.TaxRate, s.FixedExpenses, s.ScenarioType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert income scenario: %w", err)
	}
	return nil
}

// UpdateScenario rewrites an income scenario.
func (r *ScenarioRepository) UpdateScenario(s model.IncomeScenario) error {
	result, err := r.db.Exec(`
		UPDATE income_scenario
		SET name = ?, monthly_income = ?, tax_rate = ?, fixed_expenses = ?, scenario_type = ?
		WHERE id = ?`,
		s.Name, s.MonthlyIncome, s.TaxRate, s.FixedExpenses, s.ScenarioType, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update income scenario: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrScenarioNotFound, s.ID)
	}
	return nil
}

// DeleteScenario removes an income scenario.
func (r *ScenarioRepository) DeleteScenario(id string) error {
	result, err := r.db.Exec(`DELETE FROM income_scenario WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete income scenario: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrScenarioNotFound, id)
	}
	return nil
}
