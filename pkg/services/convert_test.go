package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/pkg/services"
)

func TestResultOf(t *testing.T) {
	task := &ent.InterpretationTask{
		Status:            interpretationtask.StatusProcessing,
		ResponseText:      "text",
		Confidence:        0.7,
		Sources:           []string{"c1"},
		ProcessingTimeMs:  1200,
		CanGenerateReport: true,
	}
	assert.Nil(t, services.ResultOf(task), "only completed tasks expose a result")

	task.Status = interpretationtask.StatusCompleted
	result := services.ResultOf(task)
	require.NotNil(t, result)
	assert.Equal(t, "text", result.Response)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, []string{"c1"}, result.SourcesUsed)
	assert.Equal(t, int64(1200), result.ProcessingTimeMs)
	assert.True(t, result.CanGenerateReport)
}

func TestSummaryOf_TruncatesQuestion(t *testing.T) {
	task := &ent.InterpretationTask{
		ID:            "t1",
		DeityID:       "guan_yin",
		FortuneNumber: 27,
		Question:      strings.Repeat("问", 80),
		Status:        interpretationtask.StatusQueued,
	}
	summary := services.SummaryOf(task)
	assert.Equal(t, "t1", summary.ID)
	assert.Equal(t, "queued", summary.State)
	assert.Equal(t, 61, len([]rune(summary.QuestionPreview)), "60 runes plus ellipsis")
	assert.True(t, strings.HasSuffix(summary.QuestionPreview, "…"))

	short := &ent.InterpretationTask{Question: "short question"}
	assert.Equal(t, "short question", services.SummaryOf(short).QuestionPreview)
}
