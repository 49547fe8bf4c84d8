// Package common provides the Result/UseCaseError infrastructure shared by
// all use cases. Use cases return Result values instead of raw errors so
// the inbound adapter can translate outcomes into transport responses
// without inspecting error chains.
package common

// Result represents the outcome of a use case execution.
// A Result is either a success carrying a value, or a failure carrying a
// structured UseCaseError.
type Result[T any] struct {
	value   T
	err     *UseCaseError
	success bool
}

// Success creates a successful result.
func Success[T any](value T) Result[T] {
	return Result[T]{
		value:   value,
		success: true,
	}
}

// Failure creates a failed result.
func Failure[T any](err *UseCaseError) Result[T] {
	return Result[T]{
		err:     err,
		success: false,
	}
}

// IsSuccess returns true if the result is successful.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// IsFailure returns true if the result is a failure.
func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Value returns the success value.
// Should only be called after checking IsSuccess().
func (r Result[T]) Value() T {
	return r.value
}

// Error returns the error if the result is a failure, nil otherwise.
func (r Result[T]) Error() *UseCaseError {
	return r.err
}

// Map transforms a successful result's value using the provided function.
// If the result is a failure, it returns the failure unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return Success(fn(r.value))
}

// OrElse returns the success value or the provided default if failure.
func (r Result[T]) OrElse(defaultValue T) T {
	if r.IsSuccess() {
		return r.value
	}
	return defaultValue
}
