package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// FlexEventRepository provides data access methods for the flex_event table.
// The goal ID sets and adjusted allocations are stored as JSON columns.
type FlexEventRepository struct {
	db *sql.DB
}

// NewFlexEventRepository creates a new FlexEventRepository with the provided database connection.
func NewFlexEventRepository(db *sql.DB) *FlexEventRepository {
	return &FlexEventRepository{db: db}
}

const flexEventColumns = `id, date, reason, amount, affected_goals, paused_goals,
	adjusted_allocations, resume_date, acknowledged, created_at`

// GetFlexEvents retrieves all flex events, newest first.
func (r *FlexEventRepository) GetFlexEvents() ([]model.FlexEvent, error) {
	rows, err := r.db.Query(`SELECT ` + flexEventColumns + ` FROM flex_event ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query flex_event table: %w", err)
	}
	defer rows.Close()

	events := []model.FlexEvent{}
	for rows.Next() {
		event, err := scanFlexEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// GetFlexEvent retrieves a single flex event by ID.
func (r *FlexEventRepository) GetFlexEvent(id string) (model.FlexEvent, error) {
	row := r.db.QueryRow(`SELECT `+flexEventColumns+` FROM flex_event WHERE id = ?`, id)

	event, err := scanFlexEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FlexEvent{}, fmt.Errorf("%w: %s", apperrors.ErrFlexEventNotFound, id)
	}
	return event, err
}

// CreateFlexEvent inserts a new flex event.
func (r *FlexEventRepository) CreateFlexEvent(e model.FlexEvent) error {
	affected, err := json.Marshal(e.AffectedGoals)
	if err != nil {
		return fmt.Errorf("failed to encode affected goals: %w", err)
	}
	paused, err := json.Marshal(e.PausedGoals)
	if err != nil {
		return fmt.Errorf("failed to encode paused goals: %w", err)
	}
	adjusted, err := json.Marshal(e.AdjustedAllocations)
	if err != nil {
		return fmt.Errorf("failed to encode adjusted allocations: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO flex_event (id, date, reason, amount, affected_goals, paused_goals,
			adjusted_allocations, resume_date, acknowledged, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, formatDate(e.Date), e.Reason, e.Amount, string(affected), string(paused),
		string(adjusted), formatNullableDate(e.ResumeDate), e.Acknowledged,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert flex event: %w", err)
	}
	return nil
}

// AcknowledgeFlexEvent marks a flex event as resolved; it stops affecting
// forward allocation from that point on.
func (r *FlexEventRepository) AcknowledgeFlexEvent(id string) error {
	result, err := r.db.Exec(`UPDATE flex_event SET acknowledged = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to acknowledge flex event: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check acknowledge result: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrFlexEventNotFound, id)
	}
	return nil
}

func scanFlexEvent(row rowScanner) (model.FlexEvent, error) {
	var e model.FlexEvent
	var dateStr, affectedJSON, pausedJSON, adjustedJSON, createdAtStr string
	var resumeDate sql.NullString

	err := row.Scan(
		&e.ID,
		&dateStr,
		&e.Reason,
		&e.Amount,
		&affectedJSON,
		&pausedJSON,
		&adjustedJSON,
		&resumeDate,
		&e.Acknowledged,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FlexEvent{}, err
		}
		return model.FlexEvent{}, fmt.Errorf("failed to scan flex_event table results: %w", err)
	}

	if err := json.Unmarshal([]byte(affectedJSON), &e.AffectedGoals); err != nil {
		return model.FlexEvent{}, fmt.Errorf("failed to decode affected goals: %w", err)
	}
	if err := json.Unmarshal([]byte(pausedJSON), &e.PausedGoals); err != nil {
		return model.FlexEvent{}, fmt.Errorf("failed to decode paused goals: %w", err)
	}
	if err := json.Unmarshal([]byte(adjustedJSON), &e.AdjustedAllocations); err != nil {
		return model.FlexEvent{}, fmt.Errorf("failed to decode adjusted allocations: %w", err)
	}

	if e.Date, err = ParseTime(dateStr); err != nil {
		return model.FlexEvent{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if e.ResumeDate, err = parseNullableTime(resumeDate); err != nil {
		return model.FlexEvent{}, fmt.Errorf("failed to parse resume date: %w", err)
	}
	if e.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.FlexEvent{}, fmt.Errorf("failed to parse created at: %w", err)
	}
	return e, nil
}
