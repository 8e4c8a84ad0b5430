package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/pkg/fault"
)

var errBoom = errors.New("boom")

func failing(context.Context) error { return errBoom }
func succeeding(context.Context) error { return nil }

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := New("dep", 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.Equal(t, StateClosed, b.Snapshot().State)
		require.Error(t, b.Call(ctx, failing))
	}
	assert.Equal(t, StateOpen, b.Snapshot().State)

	// Calls are rejected without invoking fn while open.
	invoked := false
	err := b.Call(ctx, func(context.Context) error {
		invoked = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, invoked)
	assert.True(t, errors.Is(err, ErrOpen))
	assert.True(t, fault.Is(err, fault.CategoryDependencyUnavailable))
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := New("dep", 3, time.Minute)
	ctx := context.Background()

	require.Error(t, b.Call(ctx, failing))
	require.Error(t, b.Call(ctx, failing))
	require.NoError(t, b.Call(ctx, succeeding))
	require.Error(t, b.Call(ctx, failing))
	require.Error(t, b.Call(ctx, failing))

	// Two failures since the success; still below the threshold of three.
	assert.Equal(t, StateClosed, b.Snapshot().State)
}

func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b := New("dep", 1, 50*time.Millisecond)
	b.now = func() time.Time { return time.Now() }
	ctx := context.Background()

	require.Error(t, b.Call(ctx, failing))
	assert.Equal(t, StateOpen, b.Snapshot().State)

	// Pin the clock past the recovery timeout.
	future := time.Now().Add(100 * time.Millisecond)
	b.now = func() time.Time { return future }
	assert.Equal(t, StateHalfOpen, b.Snapshot().State)

	// A successful probe closes the breaker.
	require.NoError(t, b.Call(ctx, succeeding))
	assert.Equal(t, StateClosed, b.Snapshot().State)
	assert.Equal(t, 0, b.Snapshot().Failures)
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := New("dep", 1, 50*time.Millisecond)
	ctx := context.Background()

	require.Error(t, b.Call(ctx, failing))

	future := time.Now().Add(100 * time.Millisecond)
	b.now = func() time.Time { return future }
	assert.Equal(t, StateHalfOpen, b.Snapshot().State)

	require.Error(t, b.Call(ctx, failing))
	assert.Equal(t, StateOpen, b.Snapshot().State)
}

func TestBreaker_ContextCancelNotCounted(t *testing.T) {
	b := New("dep", 1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Call(ctx, func(ctx context.Context) error { return ctx.Err() })
	require.Error(t, err)

	// Caller walking away is not a dependency failure.
	assert.Equal(t, StateClosed, b.Snapshot().State)
	assert.Equal(t, 0, b.Snapshot().Failures)
}

func TestBreaker_Reset(t *testing.T) {
	b := New("dep", 1, time.Hour)
	require.Error(t, b.Call(context.Background(), failing))
	assert.Equal(t, StateOpen, b.Snapshot().State)

	b.Reset()
	assert.Equal(t, StateClosed, b.Snapshot().State)
	require.NoError(t, b.Call(context.Background(), succeeding))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(New("rag", 3, time.Minute))
	r.Register(New("llm", 5, time.Minute))

	b, ok := r.Get("rag")
	require.True(t, ok)
	assert.Equal(t, "rag", b.Name())

	_, ok = r.Get("nope")
	assert.False(t, ok)

	snaps := r.Snapshots()
	assert.Len(t, snaps, 2)
	assert.Contains(t, snaps, "rag")
	assert.Contains(t, snaps, "llm")
}
