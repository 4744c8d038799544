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

// ScenarioHandler handles HTTP requests for income scenario endpoints.
type ScenarioHandler struct {
	scenarioService *service.ScenarioService
}

// NewScenarioHandler creates a new ScenarioHandler with the provided service dependency.
func NewScenarioHandler(scenarioService *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioService: scenarioService,
	}
}

// Scenarios handles GET requests to retrieve all income scenarios.
//
// Endpoint: GET /api/scenarios
// Response: 200 OK with array of IncomeScenario
// Error: 500 Internal Server Error if retrieval fails
func (h *ScenarioHandler) Scenarios(w http.ResponseWriter, _ *http.Request) {
	scenarios, err := h.scenarioService.GetAllScenarios()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve scenarios", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, scenarios)
}

// GetScenario handles GET requests to retrieve a single scenario by ID.
//
// Endpoint: GET /api/scenarios/{uuid}
// Response: 200 OK with IncomeScenario
// Error: 404 Not Found if scenario not found
// Error: 500 Internal Server Error if retrieval fails
func (h *ScenarioHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "uuid")

	scenario, err := h.scenarioService.GetScenario(scenarioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrScenarioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrScenarioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve scenario", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, scenario)
}

// CreateScenario handles POST requests to create a new income scenario.
//
// Endpoint: POST /api/scenarios
// Request Body: CreateScenarioRequest (name, monthlyIncome, taxRate, fixedExpenses, scenarioType)
// Response: 201 Created with IncomeScenario
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ScenarioHandler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateScenarioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateScenario(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	created, err := h.scenarioService.CreateScenario(model.IncomeScenario{
		ID:            uuid.NewString(),
		Name:          req.Name,
		MonthlyIncome: req.MonthlyIncome,
		TaxRate:       req.TaxRate,
		FixedExpenses: req.FixedExpenses,
		ScenarioType:  req.ScenarioType,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create scenario", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// UpdateScenario handles PUT requests to update an existing scenario.
// Editing a scenario never rewrites calculations already performed with it.
//
// Endpoint: PUT /api/scenarios/{uuid}
// Request Body: UpdateScenarioRequest (all fields optional)
// Response: 200 OK with updated IncomeScenario
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if scenario not found
// Error: 500 Internal Server Error if update fails
func (h *ScenarioHandler) UpdateScenario(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateScenarioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateScenario(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	scenario, err := h.scenarioService.GetScenario(scenarioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrScenarioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrScenarioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve scenario", err.Error())
		return
	}

	if req.Name != nil {
		scenario.Name = *req.Name
	}
	if req.MonthlyIncome != nil {
		scenario.MonthlyIncome = *req.MonthlyIncome
	}
	if req.TaxRate != nil {
		scenario.TaxRate = *req.TaxRate
	}
	if req.FixedExpenses != nil {
		scenario.FixedExpenses = *req.FixedExpenses
	}
	if req.ScenarioType != nil {
		scenario.ScenarioType = *req.ScenarioType
	}

	updated, err := h.scenarioService.UpdateScenario(scenario)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update scenario", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// DeleteScenario handles DELETE requests to remove a scenario.
//
// Endpoint: DELETE /api/scenarios/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if scenario not found
// Error: 500 Internal Server Error if deletion fails
func (h *ScenarioHandler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	scenarioID := chi.URLParam(r, "uuid")

	if err := h.scenarioService.DeleteScenario(scenarioID); err != nil {
		if errors.Is(err, apperrors.ErrScenarioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrScenarioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete scenario", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
