// Package fault defines the error taxonomy shared by the adapters, the
// pipeline, and the API layer. Errors raised inside an adapter are classified
// at the boundary into exactly one Category and re-raised as a *Failure.
package fault

import (
	"context"
	"errors"
	"fmt"
)

// Category identifies the class of a failure. The set is closed.
type Category string

const (
	// CategoryInvalidInput - caller-supplied data failed validation.
	CategoryInvalidInput Category = "invalid_input"
	// CategoryNotFound - referenced task or (temple, number) pair does not exist.
	CategoryNotFound Category = "not_found"
	// CategoryDependencyUnavailable - a circuit breaker is open.
	CategoryDependencyUnavailable Category = "dependency_unavailable"
	// CategoryTimeout - a per-stage or whole-task deadline expired.
	CategoryTimeout Category = "timeout"
	// CategoryMalformedOutput - model response failed schema validation after retry.
	CategoryMalformedOutput Category = "malformed_model_output"
	// CategoryCancelled - the owner's cancel flag was observed.
	CategoryCancelled Category = "cancelled"
	// CategoryInternal - any unclassified error.
	CategoryInternal Category = "internal"
)

// RetryAllowed reports whether a fresh submission may reasonably succeed.
// Cancellation is the only category where retrying the same task is pointless
// by definition; invalid input requires a corrected submission, not a retry.
func (c Category) RetryAllowed() bool {
	switch c {
	case CategoryCancelled, CategoryInvalidInput, CategoryNotFound:
		return false
	default:
		return true
	}
}

// Failure is a classified error carried from an adapter or the pipeline to
// the task store and the event stream.
type Failure struct {
	Category Category
	Err      error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Category)
	}
	return fmt.Sprintf("%s: %v", f.Category, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// New creates a classified failure wrapping err.
func New(category Category, err error) *Failure {
	return &Failure{Category: category, Err: err}
}

// Newf creates a classified failure from a format string.
func Newf(category Category, format string, args ...any) *Failure {
	return &Failure{Category: category, Err: fmt.Errorf(format, args...)}
}

// CategoryOf extracts the category from err. Context errors map to Timeout
// and Cancelled; anything unclassified is Internal.
func CategoryOf(err error) Category {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Category
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}
	if errors.Is(err, context.Canceled) {
		return CategoryCancelled
	}
	return CategoryInternal
}

// Is reports whether err carries the given category.
func Is(err error, category Category) bool {
	return CategoryOf(err) == category
}
