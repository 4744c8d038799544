package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

const goalColumns = `id, name, target_amount, start_date, deadline, priority_weight,
	monthly_contribution, current_amount, is_emergency_fund, created_at`

// GetGoals retrieves all goals, ordered by priority weight descending and
// deadline ascending so callers receive them in allocation order.
func (r *GoalRepository) GetGoals(filter model.GoalFilter) ([]model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goal`
	if filter.EmergencyOnly {
		query += ` WHERE is_emergency_fund = 1`
	}
	query += ` ORDER BY priority_weight DESC, deadline ASC, id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

// GetGoal retrieves a single goal by ID.
func (r *GoalRepository) GetGoal(id string) (model.Goal, error) {
	row := r.db.QueryRow(`SELECT `+goalColumns+` FROM goal WHERE id = ?`, id)

	goal, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, fmt.Errorf("%w: %s", apperrors.ErrGoalNotFound, id)
	}
	return goal, err
}

// CreateGoal inserts a new goal.
func (r *GoalRepository) CreateGoal(g model.Goal) error {
	_, err := r.db.Exec(`
		INSERT INTO goal (id, name, target_amount, start_date, deadline, priority_weight,
			monthly_contribution, current_amount, is_emergency_fund, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.TargetAmount, formatNullableDate(g.StartDate), formatDate(g.Deadline),
		g.PriorityWeight, g.MonthlyContribution, g.CurrentAmount, g.IsEmergencyFund,
		g.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// UpdateGoal rewrites a goal's user-editable fields. CurrentAmount is not
// touched here: it only moves together with the transaction log.
func (r *GoalRepository) UpdateGoal(g model.Goal) error {
	result, err := r.db.Exec(`
		UPDATE goal
		SET name = ?, target_amount = ?, start_date = ?, deadline = ?,
			priority_weight = ?, monthly_contribution = ?, is_emergency_fund = ?
		WHERE id = ?`,
		g.Name, g.TargetAmount, formatNullableDate(g.StartDate), formatDate(g.Deadline),
		g.PriorityWeight, g.MonthlyContribution, g.IsEmergencyFund, g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrGoalNotFound, g.ID)
	}
	return nil
}

// DeleteGoal removes a goal. Deletion is always explicit, never implicit.
func (r *GoalRepository) DeleteGoal(id string) error {
	result, err := r.db.Exec(`DELETE FROM goal WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrGoalNotFound, id)
	}
	return nil
}

// RecomputeCurrentAmounts reconciles every goal's current_amount against the
// sum of its allocation transactions. The aggregation is idempotent: running
// it any number of times yields the same result as running it once.
func (r *GoalRepository) RecomputeCurrentAmounts() error {
	_, err := r.db.Exec(`
		UPDATE goal
		SET current_amount = COALESCE((
			SELECT SUM(t.amount) FROM "transaction" t
			WHERE t.goal_id = goal.id AND t.type = 'allocation'
		), 0)`)
	if err != nil {
		return fmt.Errorf("failed to recompute current amounts: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (model.Goal, error) {
	var g model.Goal
	var startDate sql.NullString
	var deadlineStr, createdAtStr string

	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.TargetAmount,
		&startDate,
		&deadlineStr,
		&g.PriorityWeight,
		&g.MonthlyContribution,
		&g.CurrentAmount,
		&g.IsEmergencyFund,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Goal{}, err
		}
		return model.Goal{}, fmt.Errorf("failed to scan goal table results: %w", err)
	}

	if g.StartDate, err = parseNullableTime(startDate); err != nil {
		return model.Goal{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	if g.Deadline, err = ParseTime(deadlineStr); err != nil {
		return model.Goal{}, fmt.Errorf("failed to parse deadline: %w", err)
	}
	if g.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Goal{}, fmt.Errorf("failed to parse created at: %w", err)
	}
	return g, nil
}
