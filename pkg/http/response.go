package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// WriteJSON writes an arbitrary JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	// Log encoding errors but don't expose them to the client
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError writes a {success:false, message} body.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Success: false, Message: message})
}

// WriteValidationErrors writes a 422 with field-level messages.
func WriteValidationErrors(w http.ResponseWriter, errors []string) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Success: false, Errors: errors})
}

// Common error writers for consistency
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, message)
}

func WriteUnprocessable(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnprocessableEntity, message)
}

func WriteGone(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusGone, message)
}

func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}
