package services

import (
	"strings"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/pkg/models"
)

// questionPreviewLen bounds the question excerpt in history listings.
const questionPreviewLen = 60

// ResultOf projects the stored terminal result of a completed task. Returns
// nil for tasks that have not completed successfully.
func ResultOf(task *ent.InterpretationTask) *models.TaskResult {
	if task.Status != interpretationtask.StatusCompleted {
		return nil
	}
	return &models.TaskResult{
		Response:          task.ResponseText,
		Confidence:        task.Confidence,
		SourcesUsed:       task.Sources,
		ProcessingTimeMs:  task.ProcessingTimeMs,
		CanGenerateReport: task.CanGenerateReport,
	}
}

// SummaryOf projects a task into its history-listing form.
func SummaryOf(task *ent.InterpretationTask) models.TaskSummary {
	preview := strings.TrimSpace(task.Question)
	if runes := []rune(preview); len(runes) > questionPreviewLen {
		preview = string(runes[:questionPreviewLen]) + "…"
	}
	return models.TaskSummary{
		ID:              task.ID,
		DeityID:         task.DeityID,
		FortuneNumber:   task.FortuneNumber,
		QuestionPreview: preview,
		State:           string(task.Status),
		SubmittedAt:     task.SubmittedAt,
		CompletedAt:     task.CompletedAt,
	}
}
