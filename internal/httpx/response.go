// Package httpx holds the JSON response helpers shared by all handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the wire shape of delete confirmations and the
// API not-found fallback.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes payload with the given status. A nil payload writes
// JSON null.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(payload)
	if err != nil {
		// best-effort error response; avoid writing partial JSON
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error writes an {error: string} body with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

// Message writes a {message: string} body with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageResponse{Message: msg})
}
