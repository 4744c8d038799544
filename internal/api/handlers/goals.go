package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/response"
	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
	"github.com/mdekker/Goal-Planner-Backend/internal/validation"
)

// GoalHandler handles HTTP requests for goal endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the goalService.
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler with the provided service dependency.
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Goals handles GET requests to retrieve all goals, ordered by priority
// weight then deadline.
//
// Endpoint: GET /api/goals
// Response: 200 OK with array of Goal
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) Goals(w http.ResponseWriter, _ *http.Request) {
	goals, err := h.goalService.GetAllGoals()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve goals", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goals)
}

// GetGoal handles GET requests to retrieve a single goal by ID.
//
// Endpoint: GET /api/goals/{uuid}
// Response: 200 OK with Goal
// Error: 400 Bad Request if goal ID is invalid (validated by middleware)
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goal)
}

// GoalProgress handles GET requests for a goal's derived funding state.
//
// Endpoint: GET /api/goals/{uuid}/progress
// Response: 200 OK with GoalProgress
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if computation fails
func (h *GoalHandler) GoalProgress(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	progress, err := h.goalService.GetGoalProgress(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute goal progress", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, progress)
}

// CreateGoal handles POST requests to create a new goal.
// Validates the request body and persists the goal.
//
// Endpoint: POST /api/goals
// Request Body: CreateGoalRequest (name, targetAmount, deadline, priorityWeight, ...)
// Response: 201 Created with Goal
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := goalFromCreateRequest(req)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	created, err := h.goalService.CreateGoal(goal)
	if err != nil {
		var vErr *planner.ValidationError
		if errors.As(err, &vErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// UpdateGoal handles PUT requests to update an existing goal.
// Only the fields present in the body are changed; the current amount is an
// aggregate over the transaction log and cannot be set here.
//
// Endpoint: PUT /api/goals/{uuid}
// Request Body: UpdateGoalRequest (all fields optional)
// Response: 200 OK with updated Goal
// Error: 400 Bad Request if goal ID is invalid or validation fails
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if update fails
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve goal", err.Error())
		return
	}

	if err := applyGoalUpdate(&goal, req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	updated, err := h.goalService.UpdateGoal(goal)
	if err != nil {
		var vErr *planner.ValidationError
		if errors.As(err, &vErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// DeleteGoal handles DELETE requests to remove a goal.
//
// Endpoint: DELETE /api/goals/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if deletion fails
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	if err := h.goalService.DeleteGoal(goalID); err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

func goalFromCreateRequest(req request.CreateGoalRequest) (model.Goal, error) {
	deadline, err := validation.ParseDate(req.Deadline)
	if err != nil {
		return model.Goal{}, err
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
			return model.Goal{}, err
		}
		goal.StartDate = &start
	}
	return goal, nil
}

func applyGoalUpdate(goal *model.Goal, req request.UpdateGoalRequest) error {
	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.StartDate != nil {
		start, err := validation.ParseDate(*req.StartDate)
		if err != nil {
			return err
		}
		goal.StartDate = &start
	}
	if req.Deadline != nil {
		deadline, err := validation.ParseDate(*req.Deadline)
		if err != nil {
			return err
		}
		goal.Deadline = deadline
	}
	if req.PriorityWeight != nil {
		goal.PriorityWeight = *req.PriorityWeight
	}
	if req.MonthlyContribution != nil {
		goal.MonthlyContribution = *req.MonthlyContribution
	}
	if req.IsEmergencyFund != nil {
		goal.IsEmergencyFund = *req.IsEmergencyFund
	}
	return nil
}
