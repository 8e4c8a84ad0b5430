package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/pkg/config"
	"github.com/templeworks/lingqian/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker. It waits on the submission signal (with
// the backstop timer as a safety net), claims one task at a time, and hands
// it to the executor under the task timeout.
type Worker struct {
	id       string
	store    TaskStore
	config   *config.QueueConfig
	executor TaskExecutor
	pool     TaskRegistry
	wakeup   <-chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	workingSince   time.Time
	tasksProcessed int
	tasksSucceeded int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task
// registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker. wakeup is the shared submission
// signal owned by the pool.
func NewWorker(id string, store TaskStore, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry, wakeup <-chan struct{}) *Worker {
	return &Worker{
		id:           id,
		store:        store,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		wakeup:       wakeup,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// task. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		TasksSucceeded: w.tasksSucceeded,
		WorkingSince:   w.workingSince,
		LastActivity:   w.lastActivity,
	}
}

// run drains the queue, then blocks until woken by a submission or the
// backstop timer.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
		}

		if err := w.claimAndProcess(ctx); err != nil {
			if errors.Is(err, services.ErrNoTasksAvailable) {
				w.wait()
				continue
			}
			log.Error("Error processing task", "error", err)
			w.sleep(time.Second) // Brief backoff on error
		}
	}
}

// wait blocks until a submission signal, the backstop timer, or shutdown.
func (w *Worker) wait() {
	timer := time.NewTimer(w.config.BackstopPoll)
	defer timer.Stop()
	select {
	case <-w.stopCh:
	case <-w.wakeup:
	case <-timer.C:
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// claimAndProcess claims the next task and runs it under the task timeout.
func (w *Worker) claimAndProcess(ctx context.Context) error {
	task, err := w.store.ClaimNext(ctx, w.id)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "worker_id", w.id)
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// Register cancel function for API-triggered cancellation.
	w.pool.RegisterTask(task.ID, cancelTask)
	defer w.pool.UnregisterTask(task.ID)

	// Keep last_activity_at fresh so the orphan scan leaves us alone.
	heartbeatCtx, stopHeartbeat := context.WithCancel(taskCtx)
	defer stopHeartbeat()
	go w.runHeartbeat(heartbeatCtx, task)

	err = w.executor.Execute(taskCtx, task)
	stopHeartbeat()

	w.mu.Lock()
	w.tasksProcessed++
	if err == nil {
		w.tasksSucceeded++
	}
	w.mu.Unlock()

	// Terminal persistence and event publication happened inside the
	// executor; the error is informational here.
	log.Info("Task processing complete", "success", err == nil)
	return nil
}

// runHeartbeat refreshes the task's activity timestamp while it executes.
func (w *Worker) runHeartbeat(ctx context.Context, task *ent.InterpretationTask) {
	ticker := time.NewTicker(w.config.MonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.store.Heartbeat(ctx, task.ID); err != nil {
				slog.Warn("Task heartbeat failed", "task_id", task.ID, "error", err)
			}
		}
	}
}

func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
	if status == WorkerStatusWorking {
		w.workingSince = time.Now()
	} else {
		w.workingSince = time.Time{}
	}
}
