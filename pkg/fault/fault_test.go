package fault

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil error", nil, ""},
		{"plain error", errors.New("boom"), CategoryInternal},
		{"tagged failure", Newf(CategoryNotFound, "missing"), CategoryNotFound},
		{"wrapped failure", fmt.Errorf("outer: %w", Newf(CategoryTimeout, "slow")), CategoryTimeout},
		{"deadline exceeded", context.DeadlineExceeded, CategoryTimeout},
		{"context cancelled", context.Canceled, CategoryCancelled},
		{"wrapped cancel", fmt.Errorf("op: %w", context.Canceled), CategoryCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(tt.err))
		})
	}
}

func TestRetryAllowed(t *testing.T) {
	assert.False(t, CategoryCancelled.RetryAllowed())
	assert.False(t, CategoryInvalidInput.RetryAllowed())
	assert.False(t, CategoryNotFound.RetryAllowed())

	assert.True(t, CategoryInternal.RetryAllowed())
	assert.True(t, CategoryTimeout.RetryAllowed())
	assert.True(t, CategoryDependencyUnavailable.RetryAllowed())
	assert.True(t, CategoryMalformedOutput.RetryAllowed())
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Newf(CategoryDependencyUnavailable, "down"))
	assert.True(t, Is(err, CategoryDependencyUnavailable))
	assert.False(t, Is(err, CategoryTimeout))
	assert.False(t, Is(nil, CategoryInternal))
}

func TestFailure_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(CategoryInternal, cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "root cause")
}
