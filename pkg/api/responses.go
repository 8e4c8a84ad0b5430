package api

import (
	"time"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/services"
)

// SubmitResponse acknowledges an accepted submission.
type SubmitResponse struct {
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	StreamURL string `json:"stream_url"`
}

// TaskResponse is the full read view of a task.
type TaskResponse struct {
	TaskID        string             `json:"task_id"`
	DeityID       string             `json:"deity_id"`
	FortuneNumber int                `json:"fortune_number"`
	Question      string             `json:"question"`
	Language      string             `json:"language"`
	State         string             `json:"state"`
	StatusCode    int                `json:"status_code"`
	Progress      int                `json:"progress"`
	Message       string             `json:"message,omitempty"`
	SubmittedAt   time.Time          `json:"submitted_at"`
	StartedAt     *time.Time         `json:"started_at,omitempty"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
	Result        *models.TaskResult `json:"result,omitempty"`
	ErrorCategory string             `json:"error_category,omitempty"`
	ErrorMessage  string             `json:"error_message,omitempty"`
}

// HistoryResponse pages a user's task history.
type HistoryResponse struct {
	Tasks  []models.TaskSummary `json:"tasks"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

func taskResponse(task *ent.InterpretationTask) TaskResponse {
	return TaskResponse{
		TaskID:        task.ID,
		DeityID:       task.DeityID,
		FortuneNumber: task.FortuneNumber,
		Question:      task.Question,
		Language:      task.Language,
		State:         string(task.Status),
		StatusCode:    task.StatusCode,
		Progress:      task.Progress,
		Message:       task.StatusMessage,
		SubmittedAt:   task.SubmittedAt,
		StartedAt:     task.StartedAt,
		CompletedAt:   task.CompletedAt,
		Result:        services.ResultOf(task),
		ErrorCategory: task.ErrorCategory,
		ErrorMessage:  task.ErrorMessage,
	}
}
