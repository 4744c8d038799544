package service

import (
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
)

// GoalService handles goal-related business logic: structural validation via
// the planner engine, persistence through the goal repository, and derived
// per-goal progress.
type GoalService struct {
	goalRepo *repository.GoalRepository
}

// NewGoalService creates a new GoalService with the provided repository.
func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// GetAllGoals retrieves all goals in allocation order.
func (s *GoalService) GetAllGoals() ([]model.Goal, error) {
	return s.goalRepo.GetGoals(model.GoalFilter{})
}

// GetGoal retrieves a single goal by ID.
func (s *GoalService) GetGoal(id string) (model.Goal, error) {
	return s.goalRepo.GetGoal(id)
}

// CreateGoal validates and persists a new goal. The engine's structural
// invariants (positive target, deadline after start, priority 1-10) are
// enforced here so every snapshot later handed to the engine is well-formed.
func (s *GoalService) CreateGoal(g model.Goal) (model.Goal, error) {
	now := time.Now().UTC()
	if err := planner.ValidateGoal(g, now); err != nil {
		return model.Goal{}, err
	}

	g.CreatedAt = now
	if err := s.goalRepo.CreateGoal(g); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

// UpdateGoal validates and persists changes to a goal's user-editable
// fields. CurrentAmount is never updated here; it moves only with the
// transaction log.
func (s *GoalService) UpdateGoal(g model.Goal) (model.Goal, error) {
	if err := planner.ValidateGoal(g, time.Now().UTC()); err != nil {
		return model.Goal{}, err
	}
	if err := s.goalRepo.UpdateGoal(g); err != nil {
		return model.Goal{}, err
	}
	return s.goalRepo.GetGoal(g.ID)
}

// DeleteGoal removes a goal explicitly.
func (s *GoalService) DeleteGoal(id string) error {
	return s.goalRepo.DeleteGoal(id)
}

// GetGoalProgress computes the derived funding state for one goal.
func (s *GoalService) GetGoalProgress(id string) (model.GoalProgress, error) {
	goal, err := s.goalRepo.GetGoal(id)
	if err != nil {
		return model.GoalProgress{}, err
	}
	return planner.Progress(goal, time.Now().UTC()), nil
}

// ReconcileCurrentAmounts recomputes every goal's current amount from its
// allocation transactions. Safe to run repeatedly.
func (s *GoalService) ReconcileCurrentAmounts() error {
	return s.goalRepo.RecomputeCurrentAmounts()
}
