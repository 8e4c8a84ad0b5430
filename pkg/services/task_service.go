// Package services contains the persistence-facing service layer between the
// HTTP handlers, the queue, and the ent task store.
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/ent/tasktransition"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/status"
)

// writeTimeout bounds critical writes that must not inherit a cancelled
// request context.
const writeTimeout = 10 * time.Second

// TaskService manages the interpretation task lifecycle and its append-only
// status journal.
type TaskService struct {
	client  *ent.Client
	deities map[string]string
}

// NewTaskService creates a TaskService. deities is the deity_id to temple
// mapping used for admission.
func NewTaskService(client *ent.Client, deities map[string]string) *TaskService {
	return &TaskService{client: client, deities: deities}
}

// Create validates the submission and enqueues a task, journaling the queued
// transition in the same transaction.
func (s *TaskService) Create(httpCtx context.Context, input models.SubmitTaskInput) (*ent.InterpretationTask, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	temple, ok := s.deities[input.DeityID]
	if !ok {
		return nil, NewValidationError("deity_id", fmt.Sprintf("unknown deity %q", input.DeityID))
	}
	if input.FortuneNumber < models.MinFortuneNumber || input.FortuneNumber > models.MaxFortuneNumber {
		return nil, NewValidationError("fortune_number",
			fmt.Sprintf("must be between %d and %d", models.MinFortuneNumber, models.MaxFortuneNumber))
	}
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, NewValidationError("question", "required")
	}
	if len([]rune(question)) > models.MaxQuestionLength {
		return nil, NewValidationError("question",
			fmt.Sprintf("must be at most %d characters", models.MaxQuestionLength))
	}
	if !status.ValidLanguage(input.Language) {
		return nil, NewValidationError("language", fmt.Sprintf("unsupported language %q", input.Language))
	}
	lang := status.ParseLanguage(input.Language)

	// Background context so a dropped request cannot half-create the task.
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	taskID := uuid.New().String()
	builder := tx.InterpretationTask.Create().
		SetID(taskID).
		SetUserID(input.UserID).
		SetDeityID(input.DeityID).
		SetTemple(temple).
		SetFortuneNumber(input.FortuneNumber).
		SetQuestion(question).
		SetLanguage(string(lang)).
		SetStatus(interpretationtask.StatusQueued).
		SetStatusCode(int(status.Queued)).
		SetStatusMessage(status.Message(lang, status.Queued)).
		SetProgress(status.Queued.Progress())
	if len(input.Context) > 0 {
		builder.SetContext(input.Context)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	_, err = tx.TaskTransition.Create().
		SetTaskID(taskID).
		SetSequence(0).
		SetStatusCode(int(status.Queued)).
		SetProgress(status.Queued.Progress()).
		SetMessage(status.Message(lang, status.Queued)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to journal queued transition: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task creation: %w", err)
	}
	return task, nil
}

// Get retrieves a task by ID. A non-empty userID restricts visibility to the
// owner; tasks of other users surface as ErrNotFound.
func (s *TaskService) Get(ctx context.Context, taskID, userID string) (*ent.InterpretationTask, error) {
	query := s.client.InterpretationTask.Query().
		Where(interpretationtask.IDEQ(taskID))
	if userID != "" {
		query = query.Where(interpretationtask.UserIDEQ(userID))
	}

	task, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// List returns the user's tasks newest first, plus the total count.
func (s *TaskService) List(ctx context.Context, userID string, limit, offset int) ([]*ent.InterpretationTask, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := s.client.InterpretationTask.Query().
		Where(interpretationtask.UserIDEQ(userID))

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	tasks, err := query.
		Order(ent.Desc(interpretationtask.FieldSubmittedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// ClaimNext atomically claims the oldest queued task using FOR UPDATE SKIP
// LOCKED, ordering by priority then submission time. Returns
// ErrNoTasksAvailable when the queue is empty.
func (s *TaskService) ClaimNext(ctx context.Context, workerID string) (*ent.InterpretationTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.InterpretationTask.Query().
		Where(interpretationtask.StatusEQ(interpretationtask.StatusQueued)).
		Order(
			ent.Desc(interpretationtask.FieldPriority),
			ent.Asc(interpretationtask.FieldSubmittedAt),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query queued task: %w", err)
	}

	now := time.Now()
	task, err = task.Update().
		SetStatus(interpretationtask.StatusProcessing).
		SetClaimedBy(workerID).
		SetStartedAt(now).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return task, nil
}

// RecordTransition appends a journal row and advances the task's status
// fields. Progress regressions and writes to terminal tasks fail with
// ErrConflictingUpdate; the journal stays append-only and ordered.
func (s *TaskService) RecordTransition(ctx context.Context, taskID string, code status.Code, progress int, message string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	affected, err := tx.InterpretationTask.Update().
		Where(
			interpretationtask.IDEQ(taskID),
			interpretationtask.StatusEQ(interpretationtask.StatusProcessing),
			interpretationtask.ProgressLTE(progress),
		).
		SetStatusCode(int(code)).
		SetProgress(progress).
		SetStatusMessage(message).
		SetLastActivityAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update task progress: %w", err)
	}
	if affected == 0 {
		exists, err := tx.InterpretationTask.Query().
			Where(interpretationtask.IDEQ(taskID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check task existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConflictingUpdate
	}

	if err := s.appendTransition(ctx, tx, taskID, code, progress, message); err != nil {
		return err
	}
	return tx.Commit()
}

// Complete marks the task successful, persisting the structured result and
// journaling the terminal transition.
func (s *TaskService) Complete(httpCtx context.Context, taskID string, result *models.TaskResult, sections map[string]string, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	affected, err := tx.InterpretationTask.Update().
		Where(
			interpretationtask.IDEQ(taskID),
			interpretationtask.StatusEQ(interpretationtask.StatusProcessing),
		).
		SetStatus(interpretationtask.StatusCompleted).
		SetStatusCode(int(status.Completed)).
		SetProgress(status.Completed.Progress()).
		SetStatusMessage(message).
		SetResponseText(result.Response).
		SetResponseSections(sections).
		SetConfidence(result.Confidence).
		SetSources(result.SourcesUsed).
		SetProcessingTimeMs(result.ProcessingTimeMs).
		SetCanGenerateReport(result.CanGenerateReport).
		SetCompletedAt(now).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if affected == 0 {
		return ErrConflictingUpdate
	}

	if err := s.appendTransition(ctx, tx, taskID, status.Completed, status.Completed.Progress(), message); err != nil {
		return err
	}
	return tx.Commit()
}

// Fail marks the task terminally failed (or cancelled for the cancellation
// category) and journals the transition. The task's last progress value is
// preserved.
func (s *TaskService) Fail(httpCtx context.Context, taskID string, category fault.Category, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.InterpretationTask.Query().
		Where(interpretationtask.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task for failure: %w", err)
	}
	if terminalState(task.Status) {
		return ErrConflictingUpdate
	}

	state := interpretationtask.StatusFailed
	if category == fault.CategoryCancelled {
		state = interpretationtask.StatusCancelled
	}
	code := status.ErrorCode(category)

	now := time.Now()
	_, err = task.Update().
		SetStatus(state).
		SetStatusCode(int(code)).
		SetStatusMessage(message).
		SetErrorCategory(string(category)).
		SetErrorMessage(message).
		SetCompletedAt(now).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark task failed: %w", err)
	}

	if err := s.appendTransition(ctx, tx, taskID, code, task.Progress, message); err != nil {
		return err
	}
	return tx.Commit()
}

// Cancel requests cancellation on behalf of the owning user. Queued tasks
// cancel immediately; processing tasks get the cancel flag and finalize at
// the pipeline's next checkpoint. Cancelling a terminal task is a no-op.
// finalized reports whether this call itself reached the terminal state, so
// the caller can publish the terminal event no worker will ever send.
func (s *TaskService) Cancel(httpCtx context.Context, taskID, userID string) (task *ent.InterpretationTask, finalized bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	task, err = s.Get(ctx, taskID, userID)
	if err != nil {
		return nil, false, err
	}

	switch task.Status {
	case interpretationtask.StatusCompleted, interpretationtask.StatusFailed, interpretationtask.StatusCancelled:
		return task, false, nil

	case interpretationtask.StatusQueued:
		lang := status.ParseLanguage(task.Language)
		message := status.Message(lang, status.ErrCancelled)
		if err := s.Fail(ctx, taskID, fault.CategoryCancelled, message); err != nil {
			// Lost the race with a claim or another cancel; fall through to
			// the flag path below.
			if err != ErrConflictingUpdate {
				return nil, false, err
			}
		} else {
			task, err = s.Get(ctx, taskID, userID)
			if err != nil {
				return nil, false, err
			}
			return task, true, nil
		}
		fallthrough

	default:
		task, err = s.client.InterpretationTask.UpdateOneID(taskID).
			SetCancelRequested(true).
			Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to request cancellation: %w", err)
		}
		return task, false, nil
	}
}

// CancelRequested reports whether cancellation has been requested for taskID.
func (s *TaskService) CancelRequested(ctx context.Context, taskID string) (bool, error) {
	cancelled, err := s.client.InterpretationTask.Query().
		Where(interpretationtask.IDEQ(taskID)).
		Select(interpretationtask.FieldCancelRequested).
		Bool(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read cancel flag: %w", err)
	}
	return cancelled, nil
}

// Heartbeat refreshes last_activity_at so the orphan scan does not reclaim a
// live task.
func (s *TaskService) Heartbeat(ctx context.Context, taskID string) error {
	_, err := s.client.InterpretationTask.UpdateOneID(taskID).
		SetLastActivityAt(time.Now()).
		Save(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to heartbeat task: %w", err)
	}
	return nil
}

// Transitions returns the full status journal for taskID in order.
func (s *TaskService) Transitions(ctx context.Context, taskID string) ([]models.Transition, error) {
	rows, err := s.client.TaskTransition.Query().
		Where(tasktransition.TaskIDEQ(taskID)).
		Order(ent.Asc(tasktransition.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transitions: %w", err)
	}

	transitions := make([]models.Transition, len(rows))
	for i, row := range rows {
		transitions[i] = models.Transition{
			Sequence:  row.Sequence,
			Code:      status.Code(row.StatusCode),
			Progress:  row.Progress,
			Message:   row.Message,
			Timestamp: row.CreatedAt,
		}
	}
	return transitions, nil
}

// Stats aggregates task outcomes over the trailing window.
func (s *TaskService) Stats(ctx context.Context, windowHours int) (*models.TaskStats, error) {
	if windowHours <= 0 {
		windowHours = 24
	}
	since := time.Now().Add(-time.Duration(windowHours) * time.Hour)

	tasks, err := s.client.InterpretationTask.Query().
		Where(interpretationtask.SubmittedAtGTE(since)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for stats: %w", err)
	}

	stats := &models.TaskStats{
		WindowHours: windowHours,
		ByStatus:    make(map[string]int),
	}

	var durations []float64
	var terminal, succeeded int
	for _, task := range tasks {
		stats.ByStatus[string(task.Status)]++
		switch task.Status {
		case interpretationtask.StatusCompleted:
			terminal++
			succeeded++
			durations = append(durations, float64(task.ProcessingTimeMs))
		case interpretationtask.StatusFailed, interpretationtask.StatusCancelled:
			terminal++
		}
	}

	if len(durations) > 0 {
		sort.Float64s(durations)
		var sum float64
		for _, d := range durations {
			sum += d
		}
		stats.AvgMs = sum / float64(len(durations))
		idx := int(float64(len(durations))*0.95) - 1
		if idx < 0 {
			idx = 0
		}
		stats.P95Ms = durations[idx]
	}
	if terminal > 0 {
		stats.SuccessRate = float64(succeeded) / float64(terminal)
	}
	return stats, nil
}

// QueueDepth counts tasks waiting to be claimed.
func (s *TaskService) QueueDepth(ctx context.Context) (int, error) {
	return s.client.InterpretationTask.Query().
		Where(interpretationtask.StatusEQ(interpretationtask.StatusQueued)).
		Count(ctx)
}

// ActiveCount counts tasks currently being processed.
func (s *TaskService) ActiveCount(ctx context.Context) (int, error) {
	return s.client.InterpretationTask.Query().
		Where(interpretationtask.StatusEQ(interpretationtask.StatusProcessing)).
		Count(ctx)
}

// RequeueOrphans returns processing tasks to the queue, clearing their claim
// and counting the retry. Used at startup and during graceful shutdown so an
// interrupted task is picked up again rather than stranded.
func (s *TaskService) RequeueOrphans(ctx context.Context) (int, error) {
	affected, err := s.client.InterpretationTask.Update().
		Where(interpretationtask.StatusEQ(interpretationtask.StatusProcessing)).
		SetStatus(interpretationtask.StatusQueued).
		ClearClaimedBy().
		ClearStartedAt().
		AddRetryCount(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphaned tasks: %w", err)
	}
	return affected, nil
}

// appendTransition writes the next journal row inside tx.
func (s *TaskService) appendTransition(ctx context.Context, tx *ent.Tx, taskID string, code status.Code, progress int, message string) error {
	next, err := tx.TaskTransition.Query().
		Where(tasktransition.TaskIDEQ(taskID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count transitions: %w", err)
	}

	_, err = tx.TaskTransition.Create().
		SetTaskID(taskID).
		SetSequence(next).
		SetStatusCode(int(code)).
		SetProgress(progress).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append transition: %w", err)
	}
	return nil
}

func terminalState(s interpretationtask.Status) bool {
	switch s {
	case interpretationtask.StatusCompleted, interpretationtask.StatusFailed, interpretationtask.StatusCancelled:
		return true
	}
	return false
}
