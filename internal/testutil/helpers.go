package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
)

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()

	return service.NewGoalService(repository.NewGoalRepository(db))
}

func NewTestScenarioService(t *testing.T, db *sql.DB) *service.ScenarioService {
	t.Helper()

	return service.NewScenarioService(repository.NewScenarioRepository(db))
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
		repository.NewGoalRepository(db),
	)
}

func NewTestFlexEventService(t *testing.T, db *sql.DB) *service.FlexEventService {
	t.Helper()

	return service.NewFlexEventService(
		repository.NewFlexEventRepository(db),
		repository.NewGoalRepository(db),
	)
}

func NewTestPlannerService(t *testing.T, db *sql.DB) *service.PlannerService {
	t.Helper()

	return service.NewPlannerService(
		repository.NewGoalRepository(db),
		repository.NewScenarioRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewAcknowledgementRepository(db),
		repository.NewFlexEventRepository(db),
		repository.NewSettingsRepository(db),
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		NewTestPlannerService(t, db),
		repository.NewSnapshotRepository(db),
	)
}

func NewTestAssistantService(t *testing.T, db *sql.DB) *service.AssistantService {
	t.Helper()

	return service.NewAssistantService(
		NewTestGoalService(t, db),
		NewTestTransactionService(t, db),
		NewTestPlannerService(t, db),
	)
}
