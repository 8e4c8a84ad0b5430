package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/pkg/config"
	"github.com/templeworks/lingqian/pkg/services"
)

// fakeQueueStore is an in-memory queue backing the worker machinery.
type fakeQueueStore struct {
	mu           sync.Mutex
	queued       []*ent.InterpretationTask
	claimedBy    map[string]string
	heartbeats   int
	requeueCalls int
}

func newFakeQueueStore(taskIDs ...string) *fakeQueueStore {
	s := &fakeQueueStore{claimedBy: make(map[string]string)}
	for _, id := range taskIDs {
		s.queued = append(s.queued, &ent.InterpretationTask{ID: id})
	}
	return s
}

func (s *fakeQueueStore) ClaimNext(_ context.Context, workerID string) (*ent.InterpretationTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queued) == 0 {
		return nil, services.ErrNoTasksAvailable
	}
	task := s.queued[0]
	s.queued = s.queued[1:]
	s.claimedBy[task.ID] = workerID
	return task, nil
}

func (s *fakeQueueStore) Heartbeat(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heartbeats++
	return nil
}

func (s *fakeQueueStore) QueueDepth(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queued), nil
}

func (s *fakeQueueStore) ActiveCount(context.Context) (int, error) { return 0, nil }

func (s *fakeQueueStore) RequeueOrphans(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requeueCalls++
	return 0, nil
}

func (s *fakeQueueStore) enqueue(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, &ent.InterpretationTask{ID: id})
}

func (s *fakeQueueStore) claimer(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claimedBy[id]
}

// fakeExecutor records executed task IDs and optionally blocks until its
// context is cancelled.
type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	errs     map[string]error
	block    bool
	started  chan string
}

func (e *fakeExecutor) Execute(ctx context.Context, task *ent.InterpretationTask) error {
	if e.started != nil {
		e.started <- task.ID
	}
	if e.block {
		<-ctx.Done()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executed = append(e.executed, task.ID)
	if e.errs != nil {
		return e.errs[task.ID]
	}
	return nil
}

func (e *fakeExecutor) executedIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.executed...)
}

func testQueueConfig(workers int) *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             workers,
		TaskTimeout:             5 * time.Second,
		BackstopPoll:            50 * time.Millisecond,
		MonitorInterval:         20 * time.Millisecond,
		GracefulShutdownTimeout: 2 * time.Second,
	}
}

func TestWorkerPool_ProcessesQueuedTasks(t *testing.T) {
	store := newFakeQueueStore("task-1", "task-2", "task-3")
	executor := &fakeExecutor{}
	pool := NewWorkerPool(store, testQueueConfig(2), executor)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		return len(executor.executedIDs()) == 3
	}, 5*time.Second, 10*time.Millisecond)

	assert.ElementsMatch(t, []string{"task-1", "task-2", "task-3"}, executor.executedIDs())
	assert.NotEmpty(t, store.claimer("task-1"))
}

func TestWorkerPool_StartRequeuesOrphans(t *testing.T) {
	store := newFakeQueueStore()
	pool := NewWorkerPool(store, testQueueConfig(1), &fakeExecutor{})

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	store.mu.Lock()
	calls := store.requeueCalls
	store.mu.Unlock()
	assert.Equal(t, 1, calls)

	// Duplicate Start is a no-op and must not rescan.
	require.NoError(t, pool.Start(context.Background()))
	store.mu.Lock()
	calls = store.requeueCalls
	store.mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestWorkerPool_NotifyWakesIdleWorker(t *testing.T) {
	store := newFakeQueueStore()
	executor := &fakeExecutor{}
	cfg := testQueueConfig(1)
	cfg.BackstopPoll = time.Hour // force reliance on the wakeup signal

	pool := NewWorkerPool(store, cfg, executor)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	// Let the worker drain the empty queue and park on the wakeup channel.
	time.Sleep(50 * time.Millisecond)

	store.enqueue("task-woken")
	pool.Notify()

	assert.Eventually(t, func() bool {
		ids := executor.executedIDs()
		return len(ids) == 1 && ids[0] == "task-woken"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWorkerPool_BackstopPollCatchesMissedSignal(t *testing.T) {
	store := newFakeQueueStore()
	executor := &fakeExecutor{}
	pool := NewWorkerPool(store, testQueueConfig(1), executor)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	time.Sleep(20 * time.Millisecond)
	store.enqueue("task-polled")
	// No Notify: the backstop timer alone must pick this up.

	assert.Eventually(t, func() bool {
		return len(executor.executedIDs()) == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWorkerPool_CancelTask(t *testing.T) {
	store := newFakeQueueStore("task-long")
	executor := &fakeExecutor{block: true, started: make(chan string, 1)}
	pool := NewWorkerPool(store, testQueueConfig(1), executor)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	select {
	case <-executor.started:
	case <-time.After(5 * time.Second):
		t.Fatal("task never started")
	}

	assert.False(t, pool.CancelTask("task-unknown"))
	assert.True(t, pool.CancelTask("task-long"))

	assert.Eventually(t, func() bool {
		return len(executor.executedIDs()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	// The cancel registry entry is removed once processing ends.
	assert.Eventually(t, func() bool {
		return !pool.CancelTask("task-long")
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWorkerPool_StopDrainsCurrentTask(t *testing.T) {
	store := newFakeQueueStore("task-drain")
	executor := &fakeExecutor{started: make(chan string, 1)}
	pool := NewWorkerPool(store, testQueueConfig(1), executor)

	require.NoError(t, pool.Start(context.Background()))

	select {
	case <-executor.started:
	case <-time.After(5 * time.Second):
		t.Fatal("task never started")
	}

	pool.Stop()
	assert.Equal(t, []string{"task-drain"}, executor.executedIDs())
}

func TestWorkerPool_Health(t *testing.T) {
	store := newFakeQueueStore("task-ok")
	executor := &fakeExecutor{}
	pool := NewWorkerPool(store, testQueueConfig(2), executor)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		return pool.Health().TasksProcessed == 1
	}, 5*time.Second, 10*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
	assert.Equal(t, 1, health.TasksSucceeded)
	assert.Equal(t, 1.0, health.SuccessRate)
	assert.Zero(t, health.QueueDepth)
}

func TestWorker_HeartbeatRefreshesActivity(t *testing.T) {
	store := newFakeQueueStore("task-hb")
	executor := &fakeExecutor{block: true, started: make(chan string, 1)}
	cfg := testQueueConfig(1)
	cfg.MonitorInterval = 10 * time.Millisecond

	pool := NewWorkerPool(store, cfg, executor)
	require.NoError(t, pool.Start(context.Background()))

	select {
	case <-executor.started:
	case <-time.After(5 * time.Second):
		t.Fatal("task never started")
	}

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.heartbeats >= 2
	}, 5*time.Second, 10*time.Millisecond)

	pool.CancelTask("task-hb")
	pool.Stop()
}
