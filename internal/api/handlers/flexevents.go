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
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
	"github.com/mdekker/Goal-Planner-Backend/internal/validation"
)

// FlexEventHandler handles HTTP requests for flex event endpoints.
type FlexEventHandler struct {
	flexEventService *service.FlexEventService
}

// NewFlexEventHandler creates a new FlexEventHandler with the provided service dependency.
func NewFlexEventHandler(flexEventService *service.FlexEventService) *FlexEventHandler {
	return &FlexEventHandler{
		flexEventService: flexEventService,
	}
}

// FlexEvents handles GET requests to retrieve all flex events.
//
// Endpoint: GET /api/flex-events
// Response: 200 OK with array of FlexEvent
// Error: 500 Internal Server Error if retrieval fails
func (h *FlexEventHandler) FlexEvents(w http.ResponseWriter, _ *http.Request) {
	events, err := h.flexEventService.GetAllFlexEvents()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve flex events", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, events)
}

// GetFlexEvent handles GET requests to retrieve a single flex event by ID.
//
// Endpoint: GET /api/flex-events/{uuid}
// Response: 200 OK with FlexEvent
// Error: 404 Not Found if flex event not found
// Error: 500 Internal Server Error if retrieval fails
func (h *FlexEventHandler) GetFlexEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	event, err := h.flexEventService.GetFlexEvent(eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFlexEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFlexEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve flex event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, event)
}

// CreateFlexEvent handles POST requests to declare a new flex event.
// The paused set must be a subset of the affected set; references to goals
// that no longer exist are accepted and surface later as rebalance warnings.
//
// Endpoint: POST /api/flex-events
// Request Body: CreateFlexEventRequest (date, reason, amount, affectedGoals, pausedGoals, ...)
// Response: 201 Created with FlexEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *FlexEventHandler) CreateFlexEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFlexEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFlexEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := flexEventFromRequest(req)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	created, err := h.flexEventService.CreateFlexEvent(event)
	if err != nil {
		if errors.Is(err, apperrors.ErrPausedGoalNotAffected) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create flex event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// Rebalance handles POST requests to compute the allocation overrides for a
// flex event against the current goal set.
//
// Endpoint: POST /api/flex-events/{uuid}/rebalance
// Response: 200 OK with AllocationOverrides
// Error: 404 Not Found if flex event not found
// Error: 500 Internal Server Error if the computation fails
func (h *FlexEventHandler) Rebalance(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	overrides, err := h.flexEventService.Rebalance(eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFlexEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFlexEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to rebalance flex event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, overrides)
}

// AcknowledgeFlexEvent handles POST requests to mark a flex event resolved,
// returning future allocations to normal.
//
// Endpoint: POST /api/flex-events/{uuid}/acknowledge
// Response: 204 No Content
// Error: 404 Not Found if flex event not found
// Error: 500 Internal Server Error if the update fails
func (h *FlexEventHandler) AcknowledgeFlexEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	if err := h.flexEventService.AcknowledgeFlexEvent(eventID); err != nil {
		if errors.Is(err, apperrors.ErrFlexEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFlexEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to acknowledge flex event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

func flexEventFromRequest(req request.CreateFlexEventRequest) (model.FlexEvent, error) {
	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return model.FlexEvent{}, err
	}

	event := model.FlexEvent{
		ID:            uuid.NewString(),
		Date:          date,
		Reason:        req.Reason,
		Amount:        req.Amount,
		AffectedGoals: req.AffectedGoals,
		PausedGoals:   req.PausedGoals,
	}
	for _, adj := range req.AdjustedAllocations {
		event.AdjustedAllocations = append(event.AdjustedAllocations, model.AdjustedAllocation{
			GoalID:    adj.GoalID,
			NewAmount: adj.NewAmount,
		})
	}
	if req.ResumeDate != nil {
		resume, err := validation.ParseDate(*req.ResumeDate)
		if err != nil {
			return model.FlexEvent{}, err
		}
		event.ResumeDate = &resume
	}
	return event, nil
}
