package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/templeworks/lingqian/pkg/config"
)

// WorkerPool manages a pool of queue workers, the submission wakeup signal,
// and the stuck-worker monitor.
type WorkerPool struct {
	store    TaskStore
	config   *config.QueueConfig
	executor TaskExecutor
	workers  []*Worker
	wakeupCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Task cancel registry: task_id → cancel function
	activeTasks map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(store TaskStore, cfg *config.QueueConfig, executor TaskExecutor) *WorkerPool {
	return &WorkerPool{
		store:       store,
		config:      cfg,
		executor:    executor,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		wakeupCh:    make(chan struct{}, 1),
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]context.CancelFunc),
	}
}

// Start requeues orphaned tasks from a previous run, spawns the workers, and
// starts the stuck-worker monitor. Safe to call multiple times; subsequent
// calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	requeued, err := p.store.RequeueOrphans(ctx)
	if err != nil {
		return fmt.Errorf("requeueing orphaned tasks: %w", err)
	}
	if requeued > 0 {
		slog.Info("Requeued orphaned tasks from previous run", "count", requeued)
	}

	slog.Info("Starting worker pool", "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("worker-%d", i)
		worker := NewWorker(workerID, p.store, p.config, p.executor, p, p.wakeupCh)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runMonitor()
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop drains the pool. Workers finish their current tasks; if the drain
// exceeds the graceful shutdown timeout, remaining tasks are cancelled so
// the startup orphan scan can requeue them.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.activeTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active tasks to complete",
			"count", len(active), "task_ids", active)
	}

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.Stop()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timeout exceeded, cancelling active tasks")
		p.mu.RLock()
		for _, cancel := range p.activeTasks {
			cancel()
		}
		p.mu.RUnlock()
		<-done
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped")
}

// Notify wakes one idle worker after a submission. Non-blocking; a pending
// signal already covers the new task.
func (p *WorkerPool) Notify() {
	select {
	case p.wakeupCh <- struct{}{}:
	default:
	}
}

// RegisterTask stores a cancel function for API-triggered cancellation.
func (p *WorkerPool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = cancel
}

// UnregisterTask removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelTask triggers context cancellation for a task running in this
// process. Returns true if the task was found and cancelled.
func (p *WorkerPool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.store.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}
	activeTasks, errA := p.store.ActiveCount(ctx)
	if errA != nil {
		slog.Error("Failed to query active tasks for health check", "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers, processed, succeeded := 0, 0, 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
		processed += stats.TasksProcessed
		succeeded += stats.TasksSucceeded
	}

	dbHealthy := errQ == nil && errA == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errA != nil {
		dbError = fmt.Sprintf("active tasks query failed: %v", errA)
	}

	health := &PoolHealth{
		IsHealthy:      len(p.workers) > 0 && dbHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		ActiveTasks:    activeTasks,
		QueueDepth:     queueDepth,
		TasksProcessed: processed,
		TasksSucceeded: succeeded,
		WorkerStats:    workerStats,
	}
	if processed > 0 {
		health.SuccessRate = float64(succeeded) / float64(processed)
	}
	return health
}

// runMonitor periodically looks for workers that have been busy far past the
// task timeout. The timeout context should have fired long before; a worker
// seen here is possibly stuck in a non-interruptible call.
func (p *WorkerPool) runMonitor() {
	ticker := time.NewTicker(p.config.MonitorInterval)
	defer ticker.Stop()

	threshold := p.config.TaskTimeout + p.config.TaskTimeout/2

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			for _, worker := range p.workers {
				stats := worker.Health()
				if stats.Status != string(WorkerStatusWorking) || stats.WorkingSince.IsZero() {
					continue
				}
				if busy := time.Since(stats.WorkingSince); busy > threshold {
					slog.Warn("Worker possibly stuck",
						"worker_id", stats.ID,
						"task_id", stats.CurrentTaskID,
						"busy_for", busy,
						"threshold", threshold)
				}
			}
		}
	}
}

// activeTaskIDs returns IDs of currently processing tasks (for logging).
func (p *WorkerPool) activeTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		ids = append(ids, id)
	}
	return ids
}
