package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a standardized error response. Error carries the
// HTTP status code.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// RespondError writes a standardized error response to the HTTP response writer
func RespondError(w http.ResponseWriter, status int, message string) {
	write(w, status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondValidationError writes a 400 response naming the rejected field
func RespondValidationError(w http.ResponseWriter, message, field string) {
	write(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   http.StatusBadRequest,
		Message: message,
		Field:   field,
	})
}

// RespondBadRequest writes a bad request error response
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, orDefault(message, MsgBadRequest))
}

// RespondNotFound writes a not found error response
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, orDefault(message, MsgNotFound))
}

// RespondMethodNotAllowed writes a method not allowed error response
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// RespondUnprocessable writes an unprocessable entity error response
func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, orDefault(message, MsgUnprocessable))
}

// RespondInternalError writes an internal server error response
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternalError)
}

// RespondBadGateway writes a bad gateway error response
func RespondBadGateway(w http.ResponseWriter) {
	RespondError(w, http.StatusBadGateway, MsgUpstreamError)
}

func write(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
