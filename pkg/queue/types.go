// Package queue provides task queue management and processing infrastructure.
package queue

import (
	"context"
	"time"

	"github.com/templeworks/lingqian/ent"
)

// TaskExecutor runs one claimed task to a terminal state.
//
// The executor owns the ENTIRE task lifecycle internally: stage transitions,
// journaling, event publication, and the terminal write. The worker only
// handles claiming, the task timeout, the activity heartbeat, and the cancel
// registry. The returned error is for worker-side logging; by the time
// Execute returns, the terminal state is already persisted.
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.InterpretationTask) error
}

// TaskStore is the slice of the task service the queue machinery uses.
type TaskStore interface {
	ClaimNext(ctx context.Context, workerID string) (*ent.InterpretationTask, error)
	Heartbeat(ctx context.Context, taskID string) error
	QueueDepth(ctx context.Context) (int, error)
	ActiveCount(ctx context.Context) (int, error)
	RequeueOrphans(ctx context.Context) (int, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	ActiveTasks    int            `json:"active_tasks"`
	QueueDepth     int            `json:"queue_depth"`
	TasksProcessed int            `json:"tasks_processed"`
	TasksSucceeded int            `json:"tasks_succeeded"`
	SuccessRate    float64        `json:"success_rate"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	TasksSucceeded int       `json:"tasks_succeeded"`
	WorkingSince   time.Time `json:"working_since,omitempty"`
	LastActivity   time.Time `json:"last_activity"`
}
