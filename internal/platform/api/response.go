package api

import (
	"encoding/json"
	"net/http"

	"go.supervision.dev/internal/platform/common"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// WriteBadRequest writes a 400 error
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message)
}

// WriteNotFound writes a 404 error
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message)
}

// WriteUnprocessable writes a 422 error
func WriteUnprocessable(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnprocessableEntity, "unprocessable", message)
}

// WriteInternalError writes a 500 error
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message)
}

// WriteUseCaseError writes an error response based on the error kind.
// Internal failures keep their code but hide backend detail.
func WriteUseCaseError(w http.ResponseWriter, err *common.UseCaseError) {
	if err.Kind == common.ErrorKindInternal {
		WriteError(w, err.HTTPStatus(), err.Code, err.Message)
		return
	}
	WriteJSON(w, err.HTTPStatus(), ErrorResponse{
		Error:   err.Code,
		Message: err.Message,
		Details: err.Details,
	})
}

// WriteUseCaseResult writes a successful use case result or its error
func WriteUseCaseResult[T any](w http.ResponseWriter, result common.Result[T], successStatus int) {
	if result.IsFailure() {
		WriteUseCaseError(w, result.Error())
		return
	}
	WriteJSON(w, successStatus, result.Value())
}

// DecodeJSON decodes JSON from a request body
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
