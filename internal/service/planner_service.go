package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// lastSplitKey is the app_setting key holding the most recent auto-split
// result, which feeds the allocation efficiency part of plan health.
const lastSplitKey = "last_auto_split"

// healthWindowMonths is the trailing deviation window plan health looks at.
const healthWindowMonths = 3

// PlannerService orchestrates the pure planning engine over persisted
// snapshots: it loads goals, scenarios, transactions and acknowledgements,
// hands them to the engine, and persists only what the caller asked to
// persist (acknowledgements, the last split). The engine itself never
// touches storage.
type PlannerService struct {
	goalRepo        *repository.GoalRepository
	scenarioRepo    *repository.ScenarioRepository
	transactionRepo *repository.TransactionRepository
	ackRepo         *repository.AcknowledgementRepository
	flexEventRepo   *repository.FlexEventRepository
	settingsRepo    *repository.SettingsRepository
}

// NewPlannerService creates a new PlannerService with the provided repositories.
func NewPlannerService(
	goalRepo *repository.GoalRepository,
	scenarioRepo *repository.ScenarioRepository,
	transactionRepo *repository.TransactionRepository,
	ackRepo *repository.AcknowledgementRepository,
	flexEventRepo *repository.FlexEventRepository,
	settingsRepo *repository.SettingsRepository,
) *PlannerService {
	return &PlannerService{
		goalRepo:        goalRepo,
		scenarioRepo:    scenarioRepo,
		transactionRepo: transactionRepo,
		ackRepo:         ackRepo,
		flexEventRepo:   flexEventRepo,
		settingsRepo:    settingsRepo,
	}
}

// AutoSplit distributes a gross income figure across the current goal set,
// resolving the optional scenario, layering any active flex events on top of
// the allocator's output, and remembering the result for plan health.
func (s *PlannerService) AutoSplit(grossIncome float64, scenarioID *string) (model.AutoSplitResult, error) {
	var scenario *model.IncomeScenario
	if scenarioID != nil {
		loaded, err := s.scenarioRepo.GetScenario(*scenarioID)
		if err != nil {
			return model.AutoSplitResult{}, err
		}
		scenario = &loaded
	}

	goals, err := s.goalRepo.GetGoals(model.GoalFilter{})
	if err != nil {
		return model.AutoSplitResult{}, err
	}

	now := time.Now().UTC()
	result := planner.CalculateAutoSplit(grossIncome, scenario, goals, now)

	// Active flex events adjust the forward plan.
	events, err := s.flexEventRepo.GetFlexEvents()
	if err != nil {
		return model.AutoSplitResult{}, err
	}
	for _, event := range events {
		if !event.ActiveOn(now) {
			continue
		}
		overrides, err := planner.RebalanceForFlexEvent(event, goals)
		if err != nil {
			// A stored event that no longer validates is reported, not fatal.
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("flex event %s skipped: %v", event.ID, err))
			continue
		}
		result = overrides.Apply(result)
	}

	if err := s.rememberSplit(result); err != nil {
		return model.AutoSplitResult{}, err
	}
	return result, nil
}

// Deviations detects planned-vs-actual gaps for one calendar month.
func (s *PlannerService) Deviations(year, month int) ([]model.Deviation, error) {
	goals, err := s.goalRepo.GetGoals(model.GoalFilter{})
	if err != nil {
		return nil, err
	}
	transactions, err := s.monthTransactions(year, month)
	if err != nil {
		return nil, err
	}
	acks, err := s.ackRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return planner.DetectDeviations(year, month, goals, transactions, acks), nil
}

// AcknowledgeDeviation marks one goal-month deviation as acknowledged and
// returns that month's deviations recomputed against the updated set. The
// persisted write is idempotent, mirroring the engine's set semantics.
func (s *PlannerService) AcknowledgeDeviation(goalID string, year, month int) ([]model.Deviation, error) {
	if _, err := s.goalRepo.GetGoal(goalID); err != nil {
		return nil, err
	}
	if err := s.ackRepo.Acknowledge(goalID, year, month, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.Deviations(year, month)
}

// Consequence projects the downstream effect of a shortfall on one goal.
func (s *PlannerService) Consequence(goalID string, shortfall float64, year, month int, tolerance float64) (model.ConsequenceProjection, error) {
	goals, err := s.goalRepo.GetGoals(model.GoalFilter{})
	if err != nil {
		return model.ConsequenceProjection{}, err
	}
	events, err := s.flexEventRepo.GetFlexEvents()
	if err != nil {
		return model.ConsequenceProjection{}, err
	}

	return planner.CalculateConsequence(planner.ConsequenceInput{
		GoalID:           goalID,
		Shortfall:        shortfall,
		Year:             year,
		Month:            month,
		Goals:            goals,
		FlexEvents:       events,
		CatchUpTolerance: tolerance,
		Today:            time.Now().UTC(),
	})
}

// Health recomputes the live plan health summary from the current snapshot:
// all goals, the current month's transactions, deviations over the trailing
// three months, and the last remembered auto-split.
func (s *PlannerService) Health() (model.PlanHealth, error) {
	input, err := s.healthInput()
	if err != nil {
		return model.PlanHealth{}, err
	}
	return planner.CalculatePlanHealth(input), nil
}

// healthInput assembles the engine input for a plan health computation. It is
// shared with the snapshot service so the materialized and live paths cannot
// drift apart.
func (s *PlannerService) healthInput() (planner.HealthInput, error) {
	now := time.Now().UTC()

	goals, err := s.goalRepo.GetGoals(model.GoalFilter{})
	if err != nil {
		return planner.HealthInput{}, err
	}
	acks, err := s.ackRepo.GetAll()
	if err != nil {
		return planner.HealthInput{}, err
	}

	// Each trailing month is loaded and scanned independently, so the
	// window is computed concurrently. Results stay ordered by offset.
	monthTxs := make([][]model.Transaction, healthWindowMonths)
	monthDeviations := make([][]model.Deviation, healthWindowMonths)
	var g errgroup.Group
	for offset := 0; offset < healthWindowMonths; offset++ {
		offset := offset
		g.Go(func() error {
			ref := now.AddDate(0, -offset, 0)
			year, month := ref.Year(), int(ref.Month())

			txs, err := s.monthTransactions(year, month)
			if err != nil {
				return err
			}
			monthTxs[offset] = txs
			monthDeviations[offset] = planner.DetectDeviations(year, month, goals, txs, acks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return planner.HealthInput{}, err
	}

	transactions := monthTxs[0]
	deviations := []model.Deviation{}
	for _, ds := range monthDeviations {
		deviations = append(deviations, ds...)
	}

	input := planner.HealthInput{
		Goals:        goals,
		Transactions: transactions,
		Deviations:   deviations,
		Today:        now,
	}

	lastSplit, err := s.lastSplit()
	if err != nil {
		return planner.HealthInput{}, err
	}
	input.LastSplit = lastSplit
	return input, nil
}

func (s *PlannerService) monthTransactions(year, month int) ([]model.Transaction, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return s.transactionRepo.GetTransactions(model.TransactionFilter{
		StartDate: start,
		EndDate:   end,
	})
}

func (s *PlannerService) rememberSplit(result model.AutoSplitResult) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode auto-split result: %w", err)
	}
	return s.settingsRepo.SetSetting(lastSplitKey, string(encoded))
}

func (s *PlannerService) lastSplit() (*model.AutoSplitResult, error) {
	stored, err := s.settingsRepo.GetSetting(lastSplitKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result model.AutoSplitResult
	if err := json.Unmarshal([]byte(stored), &result); err != nil {
		return nil, fmt.Errorf("failed to decode last auto-split result: %w", err)
	}
	return &result, nil
}
