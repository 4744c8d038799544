package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the
// plan_health_snapshot table: pre-calculated plan health rows for fast reads
// without recomputing from the full transaction log.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// SaveSnapshot inserts a freshly calculated plan health snapshot.
func (r *SnapshotRepository) SaveSnapshot(s model.PlanHealthSnapshot) error {
	_, err := r.db.Exec(`
		INSERT INTO plan_health_snapshot (id, health_status, allocation_efficiency,
			fragility_score, slack_months, deviation_count, on_track_goals, behind_goals,
			goal_count, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Health.HealthStatus, s.Health.AllocationEfficiency, s.Health.FragilityScore,
		s.Health.SlackMonths, s.Health.DeviationCount, s.Health.OnTrackGoals,
		s.Health.BehindGoals, s.GoalCount, s.CalculatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert plan health snapshot: %w", err)
	}
	return nil
}

// GetLatestSnapshot retrieves the most recently calculated snapshot.
func (r *SnapshotRepository) GetLatestSnapshot() (model.PlanHealthSnapshot, error) {
	var s model.PlanHealthSnapshot
	var calculatedAtStr string

	err := r.db.QueryRow(`
		SELECT id, health_status, allocation_efficiency, fragility_score, slack_months,
			deviation_count, on_track_goals, behind_goals, goal_count, calculated_at
		FROM plan_health_snapshot
		ORDER BY calculated_at DESC
		LIMIT 1`).
		Scan(&s.ID, &s.Health.HealthStatus, &s.Health.AllocationEfficiency,
			&s.Health.FragilityScore, &s.Health.SlackMonths, &s.Health.DeviationCount,
			&s.Health.OnTrackGoals, &s.Health.BehindGoals, &s.GoalCount, &calculatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PlanHealthSnapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.PlanHealthSnapshot{}, fmt.Errorf("failed to scan plan_health_snapshot table results: %w", err)
	}

	if s.CalculatedAt, err = ParseTime(calculatedAtStr); err != nil {
		return model.PlanHealthSnapshot{}, fmt.Errorf("failed to parse calculated at: %w", err)
	}
	return s, nil
}

// PruneSnapshots keeps only the newest n snapshots.
func (r *SnapshotRepository) PruneSnapshots(keep int) error {
	_, err := r.db.Exec(`
		DELETE FROM plan_health_snapshot
		WHERE id NOT IN (
			SELECT id FROM plan_health_snapshot ORDER BY calculated_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune plan health snapshots: %w", err)
	}
	return nil
}
