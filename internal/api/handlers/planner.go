package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/response"
	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
	"github.com/mdekker/Goal-Planner-Backend/internal/validation"
)

// PlannerHandler handles HTTP requests for the planning endpoints: income
// auto-split, deviation detection, consequence projection and plan health.
type PlannerHandler struct {
	plannerService  *service.PlannerService
	goalService     *service.GoalService
	snapshotService *service.SnapshotService
}

// NewPlannerHandler creates a new PlannerHandler with the provided service dependencies.
func NewPlannerHandler(
	plannerService *service.PlannerService,
	goalService *service.GoalService,
	snapshotService *service.SnapshotService,
) *PlannerHandler {
	return &PlannerHandler{
		plannerService:  plannerService,
		goalService:     goalService,
		snapshotService: snapshotService,
	}
}

// AutoSplit handles POST requests to distribute an income amount across the
// goal set. With a scenario ID the gross amount runs through that scenario's
// tax rate and fixed expenses first; active flex events adjust the result.
//
// Endpoint: POST /api/planner/autosplit
// Request Body: AutoSplitRequest (grossIncome, scenarioId?)
// Response: 200 OK with AutoSplitResult
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the referenced scenario does not exist
// Error: 500 Internal Server Error if the computation fails
func (h *PlannerHandler) AutoSplit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AutoSplitRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAutoSplit(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.plannerService.AutoSplit(req.GrossIncome, req.ScenarioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrScenarioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrScenarioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute auto-split", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// RequiredMonthly handles GET requests for the catch-up amount one goal
// needs per month to stay on schedule.
//
// Endpoint: GET /api/planner/required/{uuid}
// Response: 200 OK with GoalProgress
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if the computation fails
func (h *PlannerHandler) RequiredMonthly(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	progress, err := h.goalService.GetGoalProgress(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute required monthly", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, progress)
}

// Deviations handles GET requests to detect planned-vs-actual gaps for a
// month. Defaults to the current month when year/month are absent.
//
// Endpoint: GET /api/planner/deviations?year=2026&month=3
// Response: 200 OK with array of Deviation
// Error: 400 Bad Request if year/month are malformed
// Error: 500 Internal Server Error if detection fails
func (h *PlannerHandler) Deviations(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
		return
	}
	if err := validation.ValidateYearMonth(year, month); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
		return
	}

	deviations, err := h.plannerService.Deviations(year, month)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to detect deviations", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, deviations)
}

// AcknowledgeDeviation handles POST requests to mark one goal-month
// deviation as seen. Acknowledging is idempotent and scoped to exactly that
// goal and month; the response is the month's recomputed deviation list.
//
// Endpoint: POST /api/planner/deviations/acknowledge
// Request Body: AcknowledgeDeviationRequest (goalId, year, month)
// Response: 200 OK with array of Deviation
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if the update fails
func (h *PlannerHandler) AcknowledgeDeviation(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AcknowledgeDeviationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAcknowledgeDeviation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	deviations, err := h.plannerService.AcknowledgeDeviation(req.GoalID, req.Year, req.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to acknowledge deviation", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, deviations)
}

// Consequence handles POST requests to project the downstream effect of a
// contribution shortfall. The projection is read-only: no goal state changes.
//
// Endpoint: POST /api/planner/consequence
// Request Body: ConsequenceRequest (goalId, shortfall, year, month, catchUpTolerance?)
// Response: 200 OK with ConsequenceProjection
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if the computation fails
func (h *PlannerHandler) Consequence(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ConsequenceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateConsequence(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	projection, err := h.plannerService.Consequence(req.GoalID, req.Shortfall, req.Year, req.Month, req.CatchUpTolerance)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to project consequence", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, projection)
}

// Health handles GET requests for the live plan health summary.
//
// Endpoint: GET /api/planner/health
// Response: 200 OK with PlanHealth
// Error: 500 Internal Server Error if the computation fails
func (h *PlannerHandler) Health(w http.ResponseWriter, _ *http.Request) {
	health, err := h.plannerService.Health()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute plan health", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, health)
}

// HealthSnapshotResponse is a stored plan health row with its metadata.
type HealthSnapshotResponse struct {
	Health       model.PlanHealth `json:"health"`
	GoalCount    int              `json:"goalCount"`
	CalculatedAt time.Time        `json:"calculatedAt"`
}

// HealthSnapshot handles GET requests for the most recent materialized plan
// health row. Significantly cheaper than the live endpoint since it skips the
// trailing deviation window; a snapshot is computed on the spot when none
// has been stored yet.
//
// Endpoint: GET /api/planner/health/snapshot
// Response: 200 OK with HealthSnapshotResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *PlannerHandler) HealthSnapshot(w http.ResponseWriter, _ *http.Request) {
	snapshot, err := h.snapshotService.GetLatest()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve plan health snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, HealthSnapshotResponse{
		Health:       snapshot.Health,
		GoalCount:    snapshot.GoalCount,
		CalculatedAt: snapshot.CalculatedAt,
	})
}

func yearMonthParams(r *http.Request) (int, int, error) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		month = parsed
	}
	return year, month, nil
}
