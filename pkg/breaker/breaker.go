// Package breaker implements a per-dependency circuit breaker with half-open
// probing. One instance guards each slow external dependency (vector store,
// LLM backend). All methods are safe for concurrent use.
package breaker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/templeworks/lingqian/pkg/fault"
)

// State of a breaker.
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// ErrOpen is returned by Call without invoking the dependency while the
// breaker is open.
var ErrOpen = errors.New("circuit breaker open")

// Breaker isolates failures of a single dependency. Closed flips to Open
// after FailureThreshold consecutive failures; Open flips to HalfOpen once
// RecoveryTimeout has elapsed since the last failure; a HalfOpen success
// closes the breaker, a HalfOpen failure reopens it.
type Breaker struct {
	name             string
	failureThreshold int
	recoveryTimeout  time.Duration

	mu          sync.Mutex
	state       State
	failures    int
	lastFailure time.Time

	now func() time.Time
}

// Snapshot is the observable breaker state for health and admin endpoints.
type Snapshot struct {
	Name             string     `json:"name"`
	State            State      `json:"state"`
	Failures         int        `json:"consecutive_failures"`
	FailureThreshold int        `json:"failure_threshold"`
	RecoveryTimeout  string     `json:"recovery_timeout"`
	LastFailure      *time.Time `json:"last_failure,omitempty"`
}

// New creates a closed breaker.
func New(name string, failureThreshold int, recoveryTimeout time.Duration) *Breaker {
	return &Breaker{
		name:             name,
		failureThreshold: failureThreshold,
		recoveryTimeout:  recoveryTimeout,
		state:            StateClosed,
		now:              time.Now,
	}
}

// Call invokes fn under the breaker. While open it fails immediately with a
// DependencyUnavailable failure wrapping ErrOpen, without invoking fn.
// Context cancellation of fn is not counted against the dependency.
func (b *Breaker) Call(ctx context.Context, fn func(ctx context.Context) error) error {
	if !b.allow() {
		return fault.New(fault.CategoryDependencyUnavailable, ErrOpen)
	}

	err := fn(ctx)
	if err == nil {
		b.recordSuccess()
		return nil
	}

	// The caller giving up is not a dependency fault.
	if errors.Is(err, context.Canceled) {
		return err
	}

	b.recordFailure()
	return err
}

// Reset forces the breaker closed and zeroes the failure counter. Exposed to
// operators via the admin endpoint.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateClosed {
		slog.Info("Circuit breaker reset by operator", "breaker", b.name, "previous_state", b.state)
	}
	b.state = StateClosed
	b.failures = 0
}

// Snapshot returns the current observable state.
func (b *Breaker) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{
		Name:             b.name,
		State:            b.currentState(),
		Failures:         b.failures,
		FailureThreshold: b.failureThreshold,
		RecoveryTimeout:  b.recoveryTimeout.String(),
	}
	if !b.lastFailure.IsZero() {
		t := b.lastFailure
		s.LastFailure = &t
	}
	return s
}

// Name returns the breaker's dependency name.
func (b *Breaker) Name() string { return b.name }

// allow decides whether a call may proceed, flipping Open to HalfOpen when
// the recovery timeout has elapsed.
func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.currentState() {
	case StateOpen:
		return false
	case StateHalfOpen:
		b.state = StateHalfOpen
		return true
	default:
		return true
	}
}

// currentState resolves the effective state, accounting for recovery-timeout
// expiry. Callers must hold b.mu.
func (b *Breaker) currentState() State {
	if b.state == StateOpen && b.now().Sub(b.lastFailure) >= b.recoveryTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.currentState() == StateHalfOpen {
		slog.Info("Circuit breaker recovered", "breaker", b.name)
	}
	b.state = StateClosed
	b.failures = 0
}

func (b *Breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	wasHalfOpen := b.currentState() == StateHalfOpen
	b.failures++
	b.lastFailure = b.now()

	if wasHalfOpen || b.failures >= b.failureThreshold {
		if b.state != StateOpen {
			slog.Warn("Circuit breaker opened",
				"breaker", b.name,
				"consecutive_failures", b.failures,
				"recovery_timeout", b.recoveryTimeout)
		}
		b.state = StateOpen
	}
}
