package request

import "encoding/json"

// AssistantActionRequest represents a chat-assistant action to execute on the
// user's behalf after explicit confirmation. Payload carries the action's own
// request body and is decoded by the matching validated entry point; unknown
// actions are rejected.
type AssistantActionRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// UpdateAssistantTokenRequest stores the chat assistant's API token.
type UpdateAssistantTokenRequest struct {
	Token string `json:"token"`
}
