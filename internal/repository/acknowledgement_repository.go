package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// AcknowledgementRepository provides data access methods for the
// acknowledged_deviation table, keyed by (goal, year, month).
type AcknowledgementRepository struct {
	db *sql.DB
}

// NewAcknowledgementRepository creates a new AcknowledgementRepository with the provided database connection.
func NewAcknowledgementRepository(db *sql.DB) *AcknowledgementRepository {
	return &AcknowledgementRepository{db: db}
}

// GetAll loads the full acknowledged set for the engine.
func (r *AcknowledgementRepository) GetAll() (model.AckSet, error) {
	rows, err := r.db.Query(`SELECT goal_id, year, month FROM acknowledged_deviation`)
	if err != nil {
		return nil, fmt.Errorf("failed to query acknowledged_deviation table: %w", err)
	}
	defer rows.Close()

	acks := model.AckSet{}
	for rows.Next() {
		var key model.AckKey
		if err := rows.Scan(&key.GoalID, &key.Year, &key.Month); err != nil {
			return nil, fmt.Errorf("failed to scan acknowledged_deviation table results: %w", err)
		}
		acks[key] = struct{}{}
	}
	return acks, rows.Err()
}

// Acknowledge persists one goal-month acknowledgement. Acknowledging the same
// goal-month twice is a no-op, matching the engine's idempotent set semantics.
func (r *AcknowledgementRepository) Acknowledge(goalID string, year, month int, at time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO acknowledged_deviation (goal_id, year, month, acknowledged_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(goal_id, year, month) DO NOTHING`,
		goalID, year, month, at.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert acknowledgement: %w", err)
	}
	return nil
}
