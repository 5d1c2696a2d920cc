// internal/serializer/response.go
package serializer

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error kinds of the response taxonomy.
const (
	KindBadRequest   = "bad_request"
	KindNotFound     = "not_found"
	KindForbidden    = "forbidden"
	KindUnauthorized = "unauthorized"
	KindServerError  = "server_error"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Success writes {success:true, ...payload} at the given status.
func Success(w http.ResponseWriter, status int, message string, data any) {
	body := map[string]any{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	JSON(w, status, body)
}

// Failure writes a logical failure with HTTP 200. Deletion endpoints report
// errors this way; clients key off the success flag, not the status code.
func Failure(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, map[string]any{"success": false, "message": message})
}

// Error writes a taxonomy error with optional per-field details.
func Error(w http.ResponseWriter, status int, kind, message string, details any) {
	JSON(w, status, errorBody{Error: kind, Message: message, Details: details})
}
