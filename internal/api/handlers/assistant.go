package handlers

import (
	"errors"
	"net/http"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/response"
	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
	"github.com/mdekker/Goal-Planner-Backend/internal/validation"
)

// AssistantHandler handles HTTP requests from the chat assistant integration.
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler with the provided service dependency.
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// ExecuteAction handles POST requests to run a confirmed assistant action.
// The action's payload goes through the same validation as the regular API.
//
// Endpoint: POST /api/assistant/action
// Request Body: AssistantActionRequest (action, payload)
// Response: 200 OK with the action's result
// Error: 400 Bad Request for unknown actions or invalid payloads
// Error: 404 Not Found if the payload references a missing entity
// Error: 500 Internal Server Error if execution fails
func (h *AssistantHandler) ExecuteAction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AssistantActionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.assistantService.ExecuteAction(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownAssistantAction),
			errors.Is(err, apperrors.ErrInvalidActionPayload):
			response.RespondError(w, http.StatusBadRequest, "invalid assistant action", err.Error())
		case isValidationError(err):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		case errors.Is(err, apperrors.ErrGoalNotFound), errors.Is(err, apperrors.ErrScenarioNotFound):
			response.RespondError(w, http.StatusNotFound, err.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to execute assistant action", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

func isValidationError(err error) bool {
	var reqErr *validation.Error
	var engineErr *planner.ValidationError
	return errors.As(err, &reqErr) || errors.As(err, &engineErr)
}
