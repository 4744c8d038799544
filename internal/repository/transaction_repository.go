package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, goal_id, category_id, amount, type, date, description,
	deviation_type, planned_amount, actual_amount, acknowledged, acknowledged_at, created_at`

// GetTransactions retrieves transactions matching the filter, sorted by date
// ascending. Zero-value filter fields are ignored.
func (r *TransactionRepository) GetTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM "transaction" WHERE 1=1`
	args := []any{}

	if filter.GoalID != "" {
		query += ` AND goal_id = ?`
		args = append(args, filter.GoalID)
	}
	if filter.Type != "" {
		query += ` AND type = ?`
		args = append(args, filter.Type)
	}
	if !filter.StartDate.IsZero() {
		query += ` AND date >= ?`
		args = append(args, formatDate(filter.StartDate))
	}
	if !filter.EndDate.IsZero() {
		query += ` AND date <= ?`
		args = append(args, formatDate(filter.EndDate))
	}
	query += ` ORDER BY date ASC, created_at ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// GetTransaction retrieves a single transaction by ID.
func (r *TransactionRepository) GetTransaction(id string) (model.Transaction, error) {
	row := r.db.QueryRow(`SELECT `+transactionColumns+` FROM "transaction" WHERE id = ?`, id)

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, id)
	}
	return tx, err
}

// AppendTransaction inserts a transaction and, for allocation types, credits
// the referenced goal's current_amount in the same database transaction.
// Keeping both writes in one atomic unit is what stops the cached aggregate
// from diverging from the log.
func (r *TransactionRepository) AppendTransaction(t model.Transaction) error {
	dbTx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var acknowledgedAt sql.NullString
	if t.AcknowledgedAt != nil {
		acknowledgedAt = sql.NullString{String: t.AcknowledgedAt.UTC().Format(time.RFC3339), Valid: true}
	}
	var plannedAmount, actualAmount sql.NullFloat64
	if t.PlannedAmount != nil {
		plannedAmount = sql.NullFloat64{Float64: *t.PlannedAmount, Valid: true}
	}
	if t.ActualAmount != nil {
		actualAmount = sql.NullFloat64{Float64: *t.ActualAmount, Valid: true}
	}

	_, err = dbTx.Exec(`
		INSERT INTO "transaction" (id, goal_id, category_id, amount, type, date, description,
			deviation_type, planned_amount, actual_amount, acknowledged, acknowledged_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, nullableString(t.GoalID), nullableString(t.CategoryID), t.Amount, t.Type,
		formatDate(t.Date), t.Description, nullableString(t.DeviationType),
		plannedAmount, actualAmount, t.Acknowledged, acknowledgedAt,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if t.Type == model.TransactionAllocation && t.GoalID != nil {
		result, err := dbTx.Exec(`
			UPDATE goal SET current_amount = current_amount + ? WHERE id = ?`,
			t.Amount, *t.GoalID,
		)
		if err != nil {
			return fmt.Errorf("failed to credit goal: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check goal credit result: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrGoalNotFound, *t.GoalID)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var goalID, categoryID, description, deviationType, acknowledgedAt sql.NullString
	var plannedAmount, actualAmount sql.NullFloat64
	var dateStr, createdAtStr string

	err := row.Scan(
		&t.ID,
		&goalID,
		&categoryID,
		&t.Amount,
		&t.Type,
		&dateStr,
		&description,
		&deviationType,
		&plannedAmount,
		&actualAmount,
		&t.Acknowledged,
		&acknowledgedAt,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.GoalID = stringPtr(goalID)
	t.CategoryID = stringPtr(categoryID)
	t.Description = description.String
	t.DeviationType = stringPtr(deviationType)
	t.PlannedAmount = floatPtr(plannedAmount)
	t.ActualAmount = floatPtr(actualAmount)

	if t.Date, err = ParseTime(dateStr); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if t.AcknowledgedAt, err = parseNullableTime(acknowledgedAt); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse acknowledged at: %w", err)
	}
	if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse created at: %w", err)
	}
	return t, nil
}
