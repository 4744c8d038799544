package service

import (
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
)

// ScenarioService handles income scenario business logic.
type ScenarioService struct {
	scenarioRepo *repository.ScenarioRepository
}

// NewScenarioService creates a new ScenarioService with the provided repository.
func NewScenarioService(scenarioRepo *repository.ScenarioRepository) *ScenarioService {
	return &ScenarioService{scenarioRepo: scenarioRepo}
}

// GetAllScenarios retrieves all income scenarios.
func (s *ScenarioService) GetAllScenarios() ([]model.IncomeScenario, error) {
	return s.scenarioRepo.GetScenarios()
}

// GetScenario retrieves a single income scenario by ID.
func (s *ScenarioService) GetScenario(id string) (model.IncomeScenario, error) {
	return s.scenarioRepo.GetScenario(id)
}

// CreateScenario validates and persists a new income scenario.
func (s *ScenarioService) CreateScenario(scenario model.IncomeScenario) (model.IncomeScenario, error) {
	if err := planner.ValidateScenario(scenario); err != nil {
		return model.IncomeScenario{}, err
	}
	if err := s.scenarioRepo.CreateScenario(scenario); err != nil {
		return model.IncomeScenario{}, err
	}
	return scenario, nil
}

// UpdateScenario validates and persists changes to an income scenario.
// Historical calculations that referenced the old values are not affected:
// scenario data only feeds future computations.
func (s *ScenarioService) UpdateScenario(scenario model.IncomeScenario) (model.IncomeScenario, error) {
	if err := planner.ValidateScenario(scenario); err != nil {
		return model.IncomeScenario{}, err
	}
	if err := s.scenarioRepo.UpdateScenario(scenario); err != nil {
		return model.IncomeScenario{}, err
	}
	return scenario, nil
}

// DeleteScenario removes an income scenario.
func (s *ScenarioService) DeleteScenario(id string) error {
	return s.scenarioRepo.DeleteScenario(id)
}
