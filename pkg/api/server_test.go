package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/pkg/breaker"
	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/cache"
	"github.com/templeworks/lingqian/pkg/config"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/queue"
	"github.com/templeworks/lingqian/pkg/services"
	"github.com/templeworks/lingqian/pkg/status"
	"github.com/templeworks/lingqian/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// noopExecutor satisfies queue.TaskExecutor; handler tests drive the task
// lifecycle through the service directly instead of running workers.
type noopExecutor struct{}

func (noopExecutor) Execute(context.Context, *ent.InterpretationTask) error { return nil }

type testServer struct {
	router  *gin.Engine
	tasks   *services.TaskService
	bus     *bus.Bus
	breaker *breaker.Breaker
}

func setupServer(t *testing.T) *testServer {
	return setupServerWithStream(t, &config.StreamConfig{
		MaxConnection: 500 * time.Millisecond,
		PingInterval:  time.Minute,
		Backlog:       128,
	})
}

func setupServerWithStream(t *testing.T, stream *config.StreamConfig) *testServer {
	client, _ := util.SetupTestDatabase(t)
	tasks := services.NewTaskService(client, map[string]string{"guan_yin": "GuanYin100"})

	pool := queue.NewWorkerPool(tasks, &config.QueueConfig{
		WorkerCount:             1,
		TaskTimeout:             time.Minute,
		BackstopPoll:            time.Minute,
		MonitorInterval:         time.Minute,
		GracefulShutdownTimeout: time.Second,
	}, noopExecutor{})

	eventBus := bus.New()
	registry := breaker.NewRegistry()
	llmBreaker := breaker.New("llm", 5, time.Minute)
	registry.Register(llmBreaker)

	server := NewServer(tasks, pool, eventBus, registry, nil, nil,
		cache.New(16, time.Minute), stream, slog.Default())
	return &testServer{
		router:  server.Router(),
		tasks:   tasks,
		bus:     eventBus,
		breaker: llmBreaker,
	}
}

func (ts *testServer) do(method, path, user string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-Forwarded-User", user)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

const submitBody = `{"deity_id":"guan_yin","fortune_number":27,"question":"Should I change jobs?","language":"en"}`

func TestSubmitTask(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(http.MethodPost, "/api/v1/tasks", "alice", submitBody)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.TaskID)
	assert.Equal(t, "queued", resp.Status)
	assert.Equal(t, "/api/v1/tasks/"+resp.TaskID+"/stream", resp.StreamURL)

	// The task is persisted under the forwarded identity and its progress
	// channel is already open.
	task, err := ts.tasks.Get(context.Background(), resp.TaskID, "alice")
	require.NoError(t, err)
	assert.Equal(t, interpretationtask.StatusQueued, task.Status)
	assert.Equal(t, 1, ts.bus.ActiveChannels())

	// Submission seeds the channel, so a late subscriber replays the queued
	// event rather than an empty backlog.
	events, cancelSub, ok := ts.bus.Subscribe(resp.TaskID)
	require.True(t, ok)
	defer cancelSub()
	select {
	case ev := <-events:
		assert.Equal(t, bus.EventTypeProgress, ev.Type)
		assert.Equal(t, status.Queued, ev.Status)
		assert.Zero(t, ev.Progress)
	default:
		t.Fatal("queued event missing from the backlog")
	}
}

func TestSubmitTask_RequiresIdentity(t *testing.T) {
	ts := setupServer(t)
	w := ts.do(http.MethodPost, "/api/v1/tasks", "", submitBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitTask_ValidationFailure(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(http.MethodPost, "/api/v1/tasks", "alice",
		`{"deity_id":"zeus","fortune_number":27,"question":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deity_id", resp["field"])
}

func TestSubmitTask_MalformedBody(t *testing.T) {
	ts := setupServer(t)
	w := ts.do(http.MethodPost, "/api/v1/tasks", "alice", `{"deity_id":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTask_OwnershipAndNotFound(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(http.MethodPost, "/api/v1/tasks", "alice", submitBody)
	require.Equal(t, http.StatusAccepted, w.Code)
	var submitted SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))

	w = ts.do(http.MethodGet, "/api/v1/tasks/"+submitted.TaskID, "alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, submitted.TaskID, resp.TaskID)
	assert.Equal(t, "queued", resp.State)
	assert.Nil(t, resp.Result)

	// Someone else's task looks like it does not exist.
	w = ts.do(http.MethodGet, "/api/v1/tasks/"+submitted.TaskID, "bob", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/v1/tasks/nonexistent", "alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHistory(t *testing.T) {
	ts := setupServer(t)

	for i := 0; i < 3; i++ {
		w := ts.do(http.MethodPost, "/api/v1/tasks", "alice", submitBody)
		require.Equal(t, http.StatusAccepted, w.Code)
		time.Sleep(5 * time.Millisecond)
	}

	w := ts.do(http.MethodGet, "/api/v1/tasks?limit=2", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Limit)
	require.Len(t, resp.Tasks, 2)
	assert.Contains(t, resp.Tasks[0].QuestionPreview, "Should I change jobs?")

	// Another user sees nothing.
	w = ts.do(http.MethodGet, "/api/v1/tasks", "bob", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Total)
}

func TestCancelTask(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(http.MethodPost, "/api/v1/tasks", "alice", submitBody)
	require.Equal(t, http.StatusAccepted, w.Code)
	var submitted SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))

	w = ts.do(http.MethodPost, "/api/v1/tasks/"+submitted.TaskID+"/cancel", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.State)

	// The queued task never reached a worker, so the cancel path itself must
	// have published the terminal event for streaming clients.
	events, cancelSub, ok := ts.bus.Subscribe(submitted.TaskID)
	require.True(t, ok)
	defer cancelSub()
	var terminal *bus.Event
	deadline := time.After(2 * time.Second)
	for terminal == nil {
		select {
		case ev := <-events:
			if ev.Terminal() {
				e := ev
				terminal = &e
			}
		case <-deadline:
			t.Fatal("no terminal event replayed after cancel")
		}
	}
	assert.Equal(t, bus.EventTypeError, terminal.Type)
	assert.Equal(t, status.ErrCancelled, terminal.Status)
	assert.False(t, terminal.RetryOK)

	// Cancelling again is a successful no-op.
	w = ts.do(http.MethodPost, "/api/v1/tasks/"+submitted.TaskID+"/cancel", "alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/tasks/nonexistent/cancel", "alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// sseEvents parses the data-only SSE frames out of a response body.
func sseEvents(t *testing.T, body string) []bus.Event {
	t.Helper()
	var events []bus.Event
	for _, frame := range strings.Split(body, "\n\n") {
		frame = strings.TrimSpace(frame)
		if frame == "" {
			continue
		}
		require.True(t, strings.HasPrefix(frame, "data: "), "unexpected frame %q", frame)
		var event bus.Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frame, "data: ")), &event))
		events = append(events, event)
	}
	return events
}

func TestStreamTask_TerminalReplaysJournal(t *testing.T) {
	ts := setupServer(t)
	ctx := context.Background()

	task, err := ts.tasks.Create(ctx, models.SubmitTaskInput{
		UserID:        "alice",
		DeityID:       "guan_yin",
		FortuneNumber: 27,
		Question:      "Should I change jobs?",
		Language:      "en",
	})
	require.NoError(t, err)
	_, err = ts.tasks.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.NoError(t, ts.tasks.RecordTransition(ctx, task.ID, status.RAGStart, 20, "retrieving"))
	require.NoError(t, ts.tasks.Complete(ctx, task.ID, &models.TaskResult{
		Response:   "interpretation",
		Confidence: 0.8,
	}, nil, "done"))

	w := ts.do(http.MethodGet, "/api/v1/tasks/"+task.ID+"/stream", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	events := sseEvents(t, w.Body.String())
	require.Len(t, events, 3)
	assert.Equal(t, bus.EventTypeStatus, events[0].Type, "first replayed row is the snapshot")
	assert.Equal(t, status.Queued, events[0].Status)
	assert.Equal(t, bus.EventTypeProgress, events[1].Type)
	assert.Equal(t, status.RAGStart, events[1].Status)
	assert.Equal(t, bus.EventTypeComplete, events[2].Type)
	require.NotNil(t, events[2].Result)
	assert.Equal(t, "interpretation", events[2].Result.Response)
	assert.Equal(t, 100, events[2].Progress)
}

func TestStreamTask_FailedTaskReplayEndsWithError(t *testing.T) {
	ts := setupServer(t)
	ctx := context.Background()

	task, err := ts.tasks.Create(ctx, models.SubmitTaskInput{
		UserID:        "alice",
		DeityID:       "guan_yin",
		FortuneNumber: 27,
		Question:      "Should I change jobs?",
	})
	require.NoError(t, err)
	_, err = ts.tasks.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	require.NoError(t, ts.tasks.Fail(ctx, task.ID, fault.CategoryDependencyUnavailable, "model down"))

	w := ts.do(http.MethodGet, "/api/v1/tasks/"+task.ID+"/stream", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	events := sseEvents(t, w.Body.String())
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, bus.EventTypeError, last.Type)
	assert.Equal(t, "model down", last.Error)
	assert.True(t, last.RetryOK)
}

func TestStreamTask_LiveSnapshotThenBusEvents(t *testing.T) {
	ts := setupServer(t)
	ctx := context.Background()

	task, err := ts.tasks.Create(ctx, models.SubmitTaskInput{
		UserID:        "alice",
		DeityID:       "guan_yin",
		FortuneNumber: 27,
		Question:      "Should I change jobs?",
	})
	require.NoError(t, err)

	// Publish into the backlog before the client connects; the handler must
	// deliver the snapshot first, then replay, then stop at the terminal.
	ts.bus.Open(task.ID)
	ts.bus.Publish(task.ID, bus.Event{Type: bus.EventTypeProgress, Status: status.Initializing, Progress: 5})
	ts.bus.Publish(task.ID, bus.Event{Type: bus.EventTypeComplete, Status: status.Completed, Progress: 100})

	w := ts.do(http.MethodGet, "/api/v1/tasks/"+task.ID+"/stream", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	events := sseEvents(t, w.Body.String())
	require.Len(t, events, 3)
	assert.Equal(t, bus.EventTypeStatus, events[0].Type)
	assert.Equal(t, status.Queued, events[0].Status, "snapshot reflects the stored row")
	assert.Equal(t, status.Initializing, events[1].Status)
	assert.Equal(t, bus.EventTypeComplete, events[2].Type)
}

func TestStreamTask_PingsOnlyWhenIdle(t *testing.T) {
	ts := setupServerWithStream(t, &config.StreamConfig{
		MaxConnection: 600 * time.Millisecond,
		PingInterval:  150 * time.Millisecond,
		Backlog:       128,
	})
	ctx := context.Background()

	task, err := ts.tasks.Create(ctx, models.SubmitTaskInput{
		UserID:        "alice",
		DeityID:       "guan_yin",
		FortuneNumber: 27,
		Question:      "Should I change jobs?",
	})
	require.NoError(t, err)

	// Feed events faster than the ping interval, then finish; no ping should
	// ever interleave with the steady stream.
	ts.bus.Open(task.ID)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 8; i++ {
			ts.bus.Publish(task.ID, bus.Event{Type: bus.EventTypeProgress, Status: status.Initializing, Progress: 5})
			time.Sleep(50 * time.Millisecond)
		}
		ts.bus.Publish(task.ID, bus.Event{Type: bus.EventTypeComplete, Status: status.Completed, Progress: 100})
	}()

	w := ts.do(http.MethodGet, "/api/v1/tasks/"+task.ID+"/stream", "alice", "")
	<-done
	require.Equal(t, http.StatusOK, w.Code)

	for _, ev := range sseEvents(t, w.Body.String()) {
		assert.NotEqual(t, bus.EventTypePing, ev.Type, "pings must only fill idle gaps")
	}
}

func TestStreamTask_IdleStreamEmitsPings(t *testing.T) {
	ts := setupServerWithStream(t, &config.StreamConfig{
		MaxConnection: 450 * time.Millisecond,
		PingInterval:  100 * time.Millisecond,
		Backlog:       128,
	})
	ctx := context.Background()

	task, err := ts.tasks.Create(ctx, models.SubmitTaskInput{
		UserID:        "alice",
		DeityID:       "guan_yin",
		FortuneNumber: 27,
		Question:      "Should I change jobs?",
	})
	require.NoError(t, err)
	ts.bus.Open(task.ID)

	// Nothing is ever published; the connection ends at the cap.
	w := ts.do(http.MethodGet, "/api/v1/tasks/"+task.ID+"/stream", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	events := sseEvents(t, w.Body.String())
	require.NotEmpty(t, events)
	assert.Equal(t, bus.EventTypeStatus, events[0].Type, "snapshot first")
	pings := 0
	for _, ev := range events[1:] {
		if ev.Type == bus.EventTypePing {
			pings++
		}
	}
	assert.GreaterOrEqual(t, pings, 2)
}

func TestStreamTask_OwnershipEnforced(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(http.MethodPost, "/api/v1/tasks", "alice", submitBody)
	require.Equal(t, http.StatusAccepted, w.Code)
	var submitted SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))

	w = ts.do(http.MethodGet, "/api/v1/tasks/"+submitted.TaskID+"/stream", "bob", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBreakerEndpoints(t *testing.T) {
	ts := setupServer(t)

	// Trip the breaker.
	for i := 0; i < 5; i++ {
		_ = ts.breaker.Call(context.Background(), func(context.Context) error {
			return assert.AnError
		})
	}

	w := ts.do(http.MethodGet, "/api/v1/system/breakers", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Breakers map[string]breaker.Snapshot `json:"breakers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Contains(t, listing.Breakers, "llm")
	assert.Equal(t, breaker.StateOpen, listing.Breakers["llm"].State)

	w = ts.do(http.MethodPost, "/api/v1/system/breakers/llm/reset", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var reset struct {
		Breaker breaker.Snapshot `json:"breaker"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reset))
	assert.Equal(t, breaker.StateClosed, reset.Breaker.State)

	w = ts.do(http.MethodPost, "/api/v1/system/breakers/unknown/reset", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSystemStats(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(http.MethodPost, "/api/v1/tasks", "alice", submitBody)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = ts.do(http.MethodGet, "/api/v1/system/stats?window_hours=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.TaskStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.WindowHours)
	assert.Equal(t, 1, stats.ByStatus["queued"])
}
