package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/services"
	"github.com/templeworks/lingqian/pkg/status"
	"github.com/templeworks/lingqian/test/util"
)

var testDeities = map[string]string{
	"guan_yin": "GuanYin100",
	"mazu":     "Mazu60",
}

func setupService(t *testing.T) (*services.TaskService, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	return services.NewTaskService(client, testDeities), client
}

func validInput() models.SubmitTaskInput {
	return models.SubmitTaskInput{
		UserID:        "user-1",
		DeityID:       "guan_yin",
		FortuneNumber: 27,
		Question:      "Should I change jobs this year?",
		Context:       map[string]string{"age": "34"},
		Language:      "en",
	}
}

func TestCreate_Validations(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.SubmitTaskInput)
		field  string
	}{
		{"missing user", func(in *models.SubmitTaskInput) { in.UserID = "" }, "user_id"},
		{"unknown deity", func(in *models.SubmitTaskInput) { in.DeityID = "zeus" }, "deity_id"},
		{"number too low", func(in *models.SubmitTaskInput) { in.FortuneNumber = 0 }, "fortune_number"},
		{"number too high", func(in *models.SubmitTaskInput) { in.FortuneNumber = 101 }, "fortune_number"},
		{"blank question", func(in *models.SubmitTaskInput) { in.Question = "   " }, "question"},
		{"question too long", func(in *models.SubmitTaskInput) { in.Question = strings.Repeat("问", 1001) }, "question"},
		{"unsupported language", func(in *models.SubmitTaskInput) { in.Language = "fr" }, "language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			require.Error(t, err)
			var verr *services.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreate_EnqueuesWithJournalRow(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	in := validInput()
	in.Question = "  Should I move?  "
	task, err := svc.Create(ctx, in)
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "GuanYin100", task.Temple)
	assert.Equal(t, interpretationtask.StatusQueued, task.Status)
	assert.Equal(t, int(status.Queued), task.StatusCode)
	assert.Equal(t, 0, task.Progress)
	assert.Equal(t, "Should I move?", task.Question, "question is stored trimmed")
	assert.False(t, task.CancelRequested)

	transitions, err := svc.Transitions(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, transitions, 1)
	assert.Equal(t, 0, transitions[0].Sequence)
	assert.Equal(t, status.Queued, transitions[0].Code)
}

func TestCreate_DefaultLanguageIsZH(t *testing.T) {
	svc, _ := setupService(t)

	in := validInput()
	in.Language = ""
	task, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "zh", task.Language)
}

func TestGet_OwnershipScoping(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	got, err := svc.Get(ctx, task.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	// Another user's task surfaces as not found, not as forbidden.
	_, err = svc.Get(ctx, task.ID, "user-2")
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Empty userID is the internal path and bypasses scoping.
	_, err = svc.Get(ctx, task.ID, "")
	assert.NoError(t, err)

	_, err = svc.Get(ctx, "nonexistent", "user-1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestList_NewestFirstWithPaging(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		task, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		ids = append(ids, task.ID)
		time.Sleep(5 * time.Millisecond) // distinct submitted_at
	}
	_, err := svc.Create(ctx, func() models.SubmitTaskInput {
		in := validInput()
		in.UserID = "someone-else"
		return in
	}())
	require.NoError(t, err)

	tasks, total, err := svc.List(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, tasks, 2)
	assert.Equal(t, ids[4], tasks[0].ID)
	assert.Equal(t, ids[3], tasks[1].ID)

	tasks, total, err = svc.List(ctx, "user-1", 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, ids[0], tasks[0].ID)
}

func TestClaimNext_OrderAndState(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	urgent, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = client.InterpretationTask.UpdateOneID(urgent.ID).SetPriority(10).Save(ctx)
	require.NoError(t, err)

	// Highest priority wins regardless of submission order.
	claimed, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	assert.Equal(t, urgent.ID, claimed.ID)
	assert.Equal(t, interpretationtask.StatusProcessing, claimed.Status)
	assert.Equal(t, "worker-a", claimed.ClaimedBy)
	require.NotNil(t, claimed.StartedAt)

	// Equal priority falls back to submission order.
	claimed, err = svc.ClaimNext(ctx, "worker-b")
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)

	claimed, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = svc.ClaimNext(ctx, "worker-a")
	assert.ErrorIs(t, err, services.ErrNoTasksAvailable)
}

func TestRecordTransition_MonotonicProgress(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	// Transitions only apply to processing tasks.
	err = svc.RecordTransition(ctx, task.ID, status.Initializing, 5, "init")
	assert.ErrorIs(t, err, services.ErrConflictingUpdate)

	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	require.NoError(t, svc.RecordTransition(ctx, task.ID, status.Initializing, 5, "init"))
	require.NoError(t, svc.RecordTransition(ctx, task.ID, status.RAGStart, 20, "rag"))

	// Progress must never move backwards.
	err = svc.RecordTransition(ctx, task.ID, status.Initializing, 5, "stale")
	assert.ErrorIs(t, err, services.ErrConflictingUpdate)

	err = svc.RecordTransition(ctx, "nonexistent", status.RAGStart, 10, "x")
	assert.ErrorIs(t, err, services.ErrNotFound)

	got, err := svc.Get(ctx, task.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 20, got.Progress)
	assert.Equal(t, int(status.RAGStart), got.StatusCode)
}

func TestComplete_TerminalWrite(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	result := &models.TaskResult{
		Response:          "full interpretation text",
		Confidence:        0.85,
		SourcesUsed:       []string{"chunk-1", "chunk-2"},
		ProcessingTimeMs:  4200,
		CanGenerateReport: true,
	}
	sections := map[string]string{"Conclusion": "all shall be well"}
	require.NoError(t, svc.Complete(ctx, task.ID, result, sections, "done"))

	got, err := svc.Get(ctx, task.ID, "")
	require.NoError(t, err)
	assert.Equal(t, interpretationtask.StatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, "full interpretation text", got.ResponseText)
	assert.Equal(t, 0.85, got.Confidence)
	assert.Equal(t, []string{"chunk-1", "chunk-2"}, got.Sources)
	assert.Equal(t, int64(4200), got.ProcessingTimeMs)
	assert.True(t, got.CanGenerateReport)
	require.NotNil(t, got.CompletedAt)

	// A second terminal write loses.
	err = svc.Complete(ctx, task.ID, result, sections, "again")
	assert.ErrorIs(t, err, services.ErrConflictingUpdate)
}

func TestFail_PreservesProgressAndCategory(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.NoError(t, svc.RecordTransition(ctx, task.ID, status.LLMGenerating, 60, "generating"))

	require.NoError(t, svc.Fail(ctx, task.ID, fault.CategoryTimeout, "model timed out"))

	got, err := svc.Get(ctx, task.ID, "")
	require.NoError(t, err)
	assert.Equal(t, interpretationtask.StatusFailed, got.Status)
	assert.Equal(t, int(status.ErrTimeout), got.StatusCode)
	assert.Equal(t, string(fault.CategoryTimeout), got.ErrorCategory)
	assert.Equal(t, "model timed out", got.ErrorMessage)
	assert.Equal(t, 60, got.Progress, "failure keeps the last reached progress")
	require.NotNil(t, got.CompletedAt)

	err = svc.Fail(ctx, task.ID, fault.CategoryInternal, "too late")
	assert.ErrorIs(t, err, services.ErrConflictingUpdate)
}

func TestFail_CancelledCategoryYieldsCancelledState(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	require.NoError(t, svc.Fail(ctx, task.ID, fault.CategoryCancelled, "cancelled by user"))

	got, err := svc.Get(ctx, task.ID, "")
	require.NoError(t, err)
	assert.Equal(t, interpretationtask.StatusCancelled, got.Status)
	assert.Equal(t, int(status.ErrCancelled), got.StatusCode)
}

func TestCancel_QueuedIsImmediate(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	got, finalized, err := svc.Cancel(ctx, task.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, finalized, "queued cancel reaches the terminal state in this call")
	assert.Equal(t, interpretationtask.StatusCancelled, got.Status)
}

func TestCancel_ProcessingSetsFlag(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	got, finalized, err := svc.Cancel(ctx, task.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, finalized)
	assert.Equal(t, interpretationtask.StatusProcessing, got.Status, "worker finalizes at its next checkpoint")
	assert.True(t, got.CancelRequested)

	flagged, err := svc.CancelRequested(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, flagged)
}

func TestCancel_TerminalIsNoop(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, task.ID, &models.TaskResult{Response: "ok"}, nil, "done"))

	got, finalized, err := svc.Cancel(ctx, task.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, finalized)
	assert.Equal(t, interpretationtask.StatusCompleted, got.Status)
	assert.False(t, got.CancelRequested)
}

func TestCancel_OwnershipEnforced(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, _, err = svc.Cancel(ctx, task.ID, "user-2")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTransitions_JournalIsOrderedAndComplete(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.NoError(t, svc.RecordTransition(ctx, task.ID, status.Initializing, 5, "init"))
	require.NoError(t, svc.RecordTransition(ctx, task.ID, status.RAGStart, 20, "rag"))
	require.NoError(t, svc.Complete(ctx, task.ID, &models.TaskResult{Response: "ok"}, nil, "done"))

	transitions, err := svc.Transitions(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, transitions, 4)
	for i, tr := range transitions {
		assert.Equal(t, i, tr.Sequence)
	}
	assert.Equal(t, status.Queued, transitions[0].Code)
	assert.Equal(t, status.Initializing, transitions[1].Code)
	assert.Equal(t, status.RAGStart, transitions[2].Code)
	assert.Equal(t, status.Completed, transitions[3].Code)
	assert.Equal(t, 100, transitions[3].Progress)
}

func TestQueueDepthAndActiveCount(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
	}

	depth, err := svc.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	depth, err = svc.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	active, err := svc.ActiveCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestRequeueOrphans(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	claimed, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.Equal(t, task.ID, claimed.ID)

	requeued, err := svc.RequeueOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, requeued)

	got, err := svc.Get(ctx, task.ID, "")
	require.NoError(t, err)
	assert.Equal(t, interpretationtask.StatusQueued, got.Status)
	assert.Empty(t, got.ClaimedBy)
	assert.Equal(t, 1, got.RetryCount)

	// It is claimable again.
	reclaimed, err := svc.ClaimNext(ctx, "worker-b")
	require.NoError(t, err)
	assert.Equal(t, task.ID, reclaimed.ID)
}

func TestStats_WindowAggregation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	// One completed, one failed, one still queued.
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
	}

	claimed, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, claimed.ID, &models.TaskResult{Response: "ok", ProcessingTimeMs: 3000}, nil, "done"))

	claimed, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, claimed.ID, fault.CategoryInternal, "boom"))

	stats, err := svc.Stats(ctx, 24)
	require.NoError(t, err)
	assert.Equal(t, 24, stats.WindowHours)
	assert.Equal(t, 1, stats.ByStatus[string(interpretationtask.StatusCompleted)])
	assert.Equal(t, 1, stats.ByStatus[string(interpretationtask.StatusFailed)])
	assert.Equal(t, 1, stats.ByStatus[string(interpretationtask.StatusQueued)])
	assert.Equal(t, 0.5, stats.SuccessRate)
	assert.Equal(t, 3000.0, stats.AvgMs)
	assert.Equal(t, 3000.0, stats.P95Ms)
}
