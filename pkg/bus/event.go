// Package bus provides the in-process publish/subscribe fabric bridging
// background workers to per-task event streams. Each task has one logical
// channel, created lazily on first publish and torn down a grace period after
// the terminal event so reconnecting clients can still replay the backlog.
package bus

import (
	"time"

	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/status"
)

// EventType discriminates the event families on the wire.
type EventType string

// Event types. Exactly one of complete/error ends a task's stream; ping and
// lag carry no semantic progress.
const (
	EventTypeStatus   EventType = "status"
	EventTypeProgress EventType = "progress"
	EventTypeComplete EventType = "complete"
	EventTypeError    EventType = "error"
	EventTypePing     EventType = "ping"
	EventTypeLag      EventType = "lag"
)

// Event is a single progress-bus record. Sequence numbers strictly increase
// within a task; ping and lag events are synthesized per-connection and carry
// sequence 0.
type Event struct {
	Type      EventType          `json:"type"`
	TaskID    string             `json:"task_id,omitempty"`
	Status    status.Code        `json:"status,omitempty"`
	Progress  int                `json:"progress,omitempty"`
	Message   string             `json:"message,omitempty"`
	Data      map[string]any     `json:"data,omitempty"`
	Result    *models.TaskResult `json:"result,omitempty"`
	Error     string             `json:"error,omitempty"`
	RetryOK   bool               `json:"retry_allowed,omitempty"`
	Dropped   int                `json:"dropped,omitempty"`
	Sequence  int                `json:"seq,omitempty"`
	Timestamp string             `json:"timestamp,omitempty"`
}

// Terminal reports whether the event ends the task's stream.
func (e *Event) Terminal() bool {
	return e.Type == EventTypeComplete || e.Type == EventTypeError
}

// Ping returns a keep-alive event. Not sequenced, not persisted.
func Ping() Event {
	return Event{Type: EventTypePing, Timestamp: time.Now().Format(time.RFC3339Nano)}
}
