package service

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/validation"
)

// Assistant action names accepted by ExecuteAction.
const (
	ActionCreateGoal           = "create_goal"
	ActionRecordTransaction    = "record_transaction"
	ActionAcknowledgeDeviation = "acknowledge_deviation"
	ActionRunAutoSplit         = "run_autosplit"
)

// AssistantService executes chat-assistant actions. Every action funnels
// through the same validation and service entry points as the regular API,
// so the assistant cannot do anything a user could not do themselves.
type AssistantService struct {
	goalService        *GoalService
	transactionService *TransactionService
	plannerService     *PlannerService
}

// NewAssistantService creates a new AssistantService with the provided dependencies.
func NewAssistantService(
	goalService *GoalService,
	transactionService *TransactionService,
	plannerService *PlannerService,
) *AssistantService {
	return &AssistantService{
		goalService:        goalService,
		transactionService: transactionService,
		plannerService:     plannerService,
	}
}

// ExecuteAction dispatches one confirmed assistant action and returns the
// action's result, ready for JSON encoding. Unknown action names are rejected
// with apperrors.ErrUnknownAssistantAction.
func (s *AssistantService) ExecuteAction(req request.AssistantActionRequest) (interface{}, error) {
	switch req.Action {
	case ActionCreateGoal:
		return s.createGoal(req.Payload)
	case ActionRecordTransaction:
		return s.recordTransaction(req.Payload)
	case ActionAcknowledgeDeviation:
		return s.acknowledgeDeviation(req.Payload)
	case ActionRunAutoSplit:
		return s.runAutoSplit(req.Payload)
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAssistantAction, req.Action)
	}
}

func (s *AssistantService) createGoal(payload json.RawMessage) (interface{}, error) {
	var req request.CreateGoalRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}
	if err := validation.ValidateCreateGoal(req); err != nil {
		return nil, err
	}

	deadline, err := validation.ParseDate(req.Deadline)
	if err != nil {
		return nil, err
	}
	goal := model.Goal{
		ID:                  uuid.NewString(),
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		Deadline:            deadline,
		PriorityWeight:      req.PriorityWeight,
		MonthlyContribution: req.MonthlyContribution,
		IsEmergencyFund:     req.IsEmergencyFund,
	}
	if req.StartDate != nil {
		start, err := validation.ParseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		goal.StartDate = &start
	}
	return s.goalService.CreateGoal(goal)
}

func (s *AssistantService) recordTransaction(payload json.RawMessage) (interface{}, error) {
	var req request.CreateTransactionRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}
	if err := validation.ValidateCreateTransaction(req); err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.transactionService.RecordTransaction(model.Transaction{
		GoalID:      req.GoalID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        date,
		Description: req.Description,
	})
}

func (s *AssistantService) acknowledgeDeviation(payload json.RawMessage) (interface{}, error) {
	var req request.AcknowledgeDeviationRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}
	if err := validation.ValidateAcknowledgeDeviation(req); err != nil {
		return nil, err
	}
	return s.plannerService.AcknowledgeDeviation(req.GoalID, req.Year, req.Month)
}

func (s *AssistantService) runAutoSplit(payload json.RawMessage) (interface{}, error) {
	var req request.AutoSplitRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}
	if err := validation.ValidateAutoSplit(req); err != nil {
		return nil, err
	}
	return s.plannerService.AutoSplit(req.GrossIncome, req.ScenarioID)
}

func decodePayload(payload json.RawMessage, dst interface{}) error {
	if len(payload) == 0 {
		return apperrors.ErrInvalidActionPayload
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidActionPayload, err)
	}
	return nil
}
