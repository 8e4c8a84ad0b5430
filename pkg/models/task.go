// Package models contains the API-facing request/response structures and the
// domain value types shared across the service, pipeline, and API layers.
package models

import (
	"time"

	"github.com/templeworks/lingqian/pkg/status"
)

// Fortune number admission range, inclusive.
const (
	MinFortuneNumber = 1
	MaxFortuneNumber = 100
)

// MaxQuestionLength is the maximum accepted question length after trimming.
const MaxQuestionLength = 1000

// SubmitTaskInput contains fields for submitting an interpretation request.
type SubmitTaskInput struct {
	UserID        string            `json:"-"`
	DeityID       string            `json:"deity_id"`
	FortuneNumber int               `json:"fortune_number"`
	Question      string            `json:"question"`
	Context       map[string]string `json:"context,omitempty"`
	Language      string            `json:"language,omitempty"`
}

// TaskSummary is the history-listing projection of a task.
type TaskSummary struct {
	ID              string     `json:"task_id"`
	DeityID         string     `json:"deity_id"`
	FortuneNumber   int        `json:"fortune_number"`
	QuestionPreview string     `json:"question_preview"`
	State           string     `json:"state"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// TaskResult is the terminal success payload delivered in complete events and
// task reads.
type TaskResult struct {
	Response          string   `json:"response"`
	Confidence        float64  `json:"confidence"`
	SourcesUsed       []string `json:"sources_used"`
	ProcessingTimeMs  int64    `json:"processing_time_ms"`
	CanGenerateReport bool     `json:"can_generate_report"`
}

// TaskStats is the aggregate view over a trailing window.
type TaskStats struct {
	WindowHours int            `json:"window_hours"`
	ByStatus    map[string]int `json:"by_status"`
	AvgMs       float64        `json:"avg_ms"`
	P95Ms       float64        `json:"p95_ms"`
	SuccessRate float64        `json:"success_rate"`
}

// Transition is one row of the append-only status journal, sufficient to
// reconstruct a task's event stream after the bus backlog is gone.
type Transition struct {
	Sequence  int         `json:"sequence"`
	Code      status.Code `json:"status"`
	Progress  int         `json:"progress"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
