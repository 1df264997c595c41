// Package apierror provides the JSON envelope shared by every API response.
// Errors returned to clients go through this package so internal details
// (stack traces, DB errors) never leak.
package apierror

// APIError is the canonical failure envelope: {"success": false, "message": "..."}.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Success: false, Message: msg}
}

// ValidationError adds per-field details to a failure.
type ValidationError struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Error de validacion", Fields: fields}
}

// OK builds a success envelope merged with payload keys.
func OK(msg string, payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		out[k] = v
	}
	out["success"] = true
	if msg != "" {
		out["message"] = msg
	}
	return out
}
