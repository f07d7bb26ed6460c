package response

import (
	"encoding/json"
	"net/http"
)

type Status string

const (
	StatusSuccess         Status = "success"
	StatusError           Status = "error"
	StatusValidationError Status = "validation_error"
	StatusNotFound        Status = "not_found"
	StatusForbidden       Status = "forbidden"
	StatusConflict        Status = "conflict"
	StatusInternalError   Status = "internal_error"
	StatusRemoteError     Status = "remote_error"
)

type ErrorResponse struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ValidationErrorResponse struct {
	Status  Status            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Error(status Status, message string, errorDetail string) *ErrorResponse {
	return &ErrorResponse{
		Status:  status,
		Message: message,
		Error:   errorDetail,
	}
}

func WriteJSON(w http.ResponseWriter, statusCode int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteCreated(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusCreated, data)
}

func WriteError(w http.ResponseWriter, statusCode int, status Status, message string, errorDetail string) {
	WriteJSON(w, statusCode, Error(status, message, errorDetail))
}

func WriteValidationError(w http.ResponseWriter, message string, errors map[string]string) {
	WriteJSON(w, http.StatusBadRequest, &ValidationErrorResponse{
		Status:  StatusValidationError,
		Message: message,
		Errors:  errors,
	})
}
