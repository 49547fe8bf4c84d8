package common

import (
	"fmt"
	"net/http"
)

// ErrorKind represents the category of use case error.
// Each kind maps to a specific HTTP status code.
type ErrorKind int

const (
	// ErrorKindValidation represents input validation failures.
	// Maps to HTTP 400 Bad Request.
	ErrorKindValidation ErrorKind = iota

	// ErrorKindBusinessRule represents business rule violations.
	// Maps to HTTP 422 Unprocessable Entity.
	ErrorKindBusinessRule

	// ErrorKindNotFound represents entity not found errors.
	// Maps to HTTP 404 Not Found.
	ErrorKindNotFound

	// ErrorKindInternal represents unexpected internal errors,
	// including persistence failures surfaced by the repository.
	// Maps to HTTP 500 Internal Server Error.
	ErrorKindInternal
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindValidation:
		return "VALIDATION"
	case ErrorKindBusinessRule:
		return "BUSINESS_RULE"
	case ErrorKindNotFound:
		return "NOT_FOUND"
	case ErrorKindInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// HTTPStatus returns the HTTP status code for this error kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorKindValidation:
		return http.StatusBadRequest
	case ErrorKindBusinessRule:
		return http.StatusUnprocessableEntity
	case ErrorKindNotFound:
		return http.StatusNotFound
	case ErrorKindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// UseCaseError represents an error from a use case execution.
// It contains structured information about what went wrong,
// suitable for both logging and API responses.
type UseCaseError struct {
	Kind    ErrorKind      `json:"kind"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *UseCaseError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Kind.String(), e.Code, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for this error.
func (e *UseCaseError) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// WithDetail adds a detail to the error and returns it for chaining.
func (e *UseCaseError) WithDetail(key string, value any) *UseCaseError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// ValidationError creates a new validation error.
// Use for input validation failures (missing required fields, length
// constraints, invalid format). Maps to HTTP 400 Bad Request.
func ValidationError(code, message string, details map[string]any) *UseCaseError {
	return &UseCaseError{
		Kind:    ErrorKindValidation,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// BusinessRuleError creates a new business rule violation error.
// Use for well-formed input that violates a domain rule (e.g. a blank
// search query). Maps to HTTP 422 Unprocessable Entity.
func BusinessRuleError(code, message string, details map[string]any) *UseCaseError {
	return &UseCaseError{
		Kind:    ErrorKindBusinessRule,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NotFoundError creates a new not found error.
// Use when an entity cannot be found by ID.
// Maps to HTTP 404 Not Found.
func NotFoundError(code, message string, details map[string]any) *UseCaseError {
	return &UseCaseError{
		Kind:    ErrorKindNotFound,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// InternalError creates a new internal error.
// Use for unexpected errors, including repository failures.
// Maps to HTTP 500 Internal Server Error.
func InternalError(code, message string, details map[string]any) *UseCaseError {
	return &UseCaseError{
		Kind:    ErrorKindInternal,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Common error codes for reuse across use cases
const (
	// Validation error codes
	ErrCodeRequired     = "REQUIRED"
	ErrCodeTooLong      = "TOO_LONG"
	ErrCodeInvalidValue = "INVALID_VALUE"

	// Business rule error codes
	ErrCodeBlankQuery = "BLANK_QUERY"

	// Not found error codes
	ErrCodeEventTypeNotFound = "EVENT_TYPE_NOT_FOUND"

	// Internal error codes
	ErrCodeRepositoryFailure = "REPOSITORY_FAILURE"
)
