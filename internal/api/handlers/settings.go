package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/request"
	"github.com/mdekker/Goal-Planner-Backend/internal/api/response"
	"github.com/mdekker/Goal-Planner-Backend/internal/apperrors"
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
)

// SettingsHandler handles HTTP requests for application settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// AssistantTokenResponse carries the masked assistant token for display.
type AssistantTokenResponse struct {
	Token string `json:"token"`
}

// GetAssistantToken handles GET requests for the stored assistant API token.
// The token is returned masked; the plaintext never leaves the server.
//
// Endpoint: GET /api/settings/assistant-token
// Response: 200 OK with AssistantTokenResponse
// Error: 404 Not Found if no token has been stored
// Error: 503 Service Unavailable if no encryption key is configured
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) GetAssistantToken(w http.ResponseWriter, _ *http.Request) {
	masked, err := h.settingsService.GetMaskedAssistantToken()
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSettingNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSettingNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrEncryptionKeyNotSet):
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrEncryptionKeyNotSet.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to retrieve assistant token", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, AssistantTokenResponse{Token: masked})
}

// UpdateAssistantToken handles PUT requests to store the assistant API token.
//
// Endpoint: PUT /api/settings/assistant-token
// Request Body: UpdateAssistantTokenRequest (token)
// Response: 204 No Content
// Error: 400 Bad Request if the token is empty or the body is invalid
// Error: 503 Service Unavailable if no encryption key is configured
// Error: 500 Internal Server Error if storage fails
func (h *SettingsHandler) UpdateAssistantToken(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateAssistantTokenRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "token cannot be empty")
		return
	}

	if err := h.settingsService.SetAssistantToken(req.Token); err != nil {
		if errors.Is(err, apperrors.ErrEncryptionKeyNotSet) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrEncryptionKeyNotSet.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store assistant token", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
