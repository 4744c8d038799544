package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// parseJSON decodes a JSON request body into the given request type.
// Unknown fields are rejected so client typos surface as 400s instead of
// silently dropped fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}
	return req, nil
}
