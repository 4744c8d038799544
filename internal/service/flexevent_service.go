package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
)

// FlexEventService handles flex event declaration and rebalancing. A flex
// event only shapes forward allocation; it never rewrites past transactions.
type FlexEventService struct {
	flexEventRepo *repository.FlexEventRepository
	goalRepo      *repository.GoalRepository
}

// NewFlexEventService creates a new FlexEventService with the provided repositories.
func NewFlexEventService(
	flexEventRepo *repository.FlexEventRepository,
	goalRepo *repository.GoalRepository,
) *FlexEventService {
	return &FlexEventService{
		flexEventRepo: flexEventRepo,
		goalRepo:      goalRepo,
	}
}

// GetAllFlexEvents retrieves all flex events, newest first.
func (s *FlexEventService) GetAllFlexEvents() ([]model.FlexEvent, error) {
	return s.flexEventRepo.GetFlexEvents()
}

// GetFlexEvent retrieves a single flex event by ID.
func (s *FlexEventService) GetFlexEvent(id string) (model.FlexEvent, error) {
	return s.flexEventRepo.GetFlexEvent(id)
}

// CreateFlexEvent validates and persists a flex event. The engine's
// rebalancer is run once up front so structurally invalid events (paused
// goals outside the affected set) are rejected before they are stored.
func (s *FlexEventService) CreateFlexEvent(e model.FlexEvent) (model.FlexEvent, error) {
	goals, err := s.goalRepo.GetGoals(model.GoalFilter{})
	if err != nil {
		return model.FlexEvent{}, err
	}
	if _, err := planner.RebalanceForFlexEvent(e, goals); err != nil {
		return model.FlexEvent{}, fmt.Errorf("%w: %v", apperrors.ErrPausedGoalNotAffected, err)
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()

	if err := s.flexEventRepo.CreateFlexEvent(e); err != nil {
		return model.FlexEvent{}, err
	}
	return e, nil
}

// AcknowledgeFlexEvent resolves a flex event so it stops affecting forward
// allocation.
func (s *FlexEventService) AcknowledgeFlexEvent(id string) error {
	return s.flexEventRepo.AcknowledgeFlexEvent(id)
}

// Rebalance computes the allocation overrides a stored flex event implies
// against the current goal set. Dangling goal references come back as
// warnings in the overrides, not errors.
func (s *FlexEventService) Rebalance(id string) (planner.AllocationOverrides, error) {
	event, err := s.flexEventRepo.GetFlexEvent(id)
	if err != nil {
		return planner.AllocationOverrides{}, err
	}
	goals, err := s.goalRepo.GetGoals(model.GoalFilter{})
	if err != nil {
		return planner.AllocationOverrides{}, err
	}
	return planner.RebalanceForFlexEvent(event, goals)
}
