package common

import (
	"net/http"
	"testing"
)

func TestErrorKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{ErrorKindValidation, http.StatusBadRequest},
		{ErrorKindBusinessRule, http.StatusUnprocessableEntity},
		{ErrorKindNotFound, http.StatusNotFound},
		{ErrorKindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tt.kind.HTTPStatus(); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.kind, tt.want, got)
		}
	}
}

func TestUseCaseErrorWithDetail(t *testing.T) {
	err := ValidationError(ErrCodeRequired, "Name is required", nil).
		WithDetail("field", "name")

	if err.Details["field"] != "name" {
		t.Errorf("Expected detail to be set, got %+v", err.Details)
	}
	if err.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", err.HTTPStatus())
	}
}

func TestResultSuccess(t *testing.T) {
	r := Success(42)

	if !r.IsSuccess() || r.IsFailure() {
		t.Error("Expected success state")
	}
	if r.Value() != 42 {
		t.Errorf("Expected 42, got %d", r.Value())
	}
	if r.Error() != nil {
		t.Errorf("Expected nil error, got %v", r.Error())
	}
}

func TestResultFailure(t *testing.T) {
	r := Failure[int](NotFoundError(ErrCodeEventTypeNotFound, "Not found", nil))

	if r.IsSuccess() || !r.IsFailure() {
		t.Error("Expected failure state")
	}
	if r.Error() == nil || r.Error().Kind != ErrorKindNotFound {
		t.Errorf("Expected not-found error, got %v", r.Error())
	}
	if r.OrElse(7) != 7 {
		t.Errorf("Expected fallback value, got %d", r.OrElse(7))
	}
}

func TestResultMap(t *testing.T) {
	doubled := Map(Success(21), func(v int) int { return v * 2 })
	if doubled.Value() != 42 {
		t.Errorf("Expected 42, got %d", doubled.Value())
	}

	failed := Map(Failure[int](InternalError(ErrCodeRepositoryFailure, "boom", nil)),
		func(v int) int { return v * 2 })
	if failed.IsSuccess() {
		t.Error("Expected mapped failure to stay a failure")
	}
}
