package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/cache"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/llm"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/status"
	"github.com/templeworks/lingqian/pkg/vectorstore"
)

// fakeStore records lifecycle writes in memory.
type fakeStore struct {
	mu          sync.Mutex
	transitions []status.Code
	completed   *models.TaskResult
	sections    map[string]string
	failedWith  fault.Category
	failed      bool
	cancelAfter int // CancelRequested turns true after this many checks; -1 = never
	checks      int
}

func newFakeStore() *fakeStore { return &fakeStore{cancelAfter: -1} }

func (s *fakeStore) RecordTransition(_ context.Context, _ string, code status.Code, _ int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitions = append(s.transitions, code)
	return nil
}

func (s *fakeStore) Complete(_ context.Context, _ string, result *models.TaskResult, sections map[string]string, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed = result
	s.sections = sections
	return nil
}

func (s *fakeStore) Fail(_ context.Context, _ string, category fault.Category, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = true
	s.failedWith = category
	return nil
}

func (s *fakeStore) CancelRequested(context.Context, string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks++
	return s.cancelAfter >= 0 && s.checks > s.cancelAfter, nil
}

func (s *fakeStore) codes() []status.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]status.Code(nil), s.transitions...)
}

// fakeIndex serves a fixed poem and contextual set.
type fakeIndex struct {
	poem       []models.PoemChunk
	contextual []models.ScoredChunk
	poemErr    error
	searchErr  error
}

func (f *fakeIndex) GetPoem(context.Context, string, int) ([]models.PoemChunk, error) {
	return f.poem, f.poemErr
}

func (f *fakeIndex) Search(context.Context, string, int, vectorstore.Filters) ([]models.ScoredChunk, error) {
	return f.contextual, f.searchErr
}

// fakeGenerator returns scripted results in order, optionally stalling each
// call so heartbeats fire while it "streams".
type fakeGenerator struct {
	mu      sync.Mutex
	results []*llm.Result
	errs    []error
	delays  []time.Duration
	calls   int
}

func (g *fakeGenerator) Generate(ctx context.Context, _ llm.Request) (*llm.Result, error) {
	g.mu.Lock()
	i := g.calls
	g.calls++
	g.mu.Unlock()

	if i < len(g.delays) && g.delays[i] > 0 {
		select {
		case <-time.After(g.delays[i]):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	if i < len(g.results) {
		return g.results[i], nil
	}
	return g.results[len(g.results)-1], nil
}

func (g *fakeGenerator) Close() error { return nil }

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func goodInterpretation() models.Interpretation {
	return models.Interpretation{
		LineByLineInterpretation: strings.Repeat("解", models.MinLineByLineLength),
		OverallDevelopment:       strings.Repeat("展", models.MinMajorSection),
		PositiveFactors:          strings.Repeat("利", models.MinMajorSection),
		Challenges:               strings.Repeat("挑", models.MinMajorSection),
		SuggestedActions:         strings.Repeat("行", models.MinMajorSection),
		SupplementaryNotes:       strings.Repeat("补", models.MinMinorSection),
		Conclusion:               strings.Repeat("结", models.MinMinorSection),
	}
}

func testTask(id string) *ent.InterpretationTask {
	return &ent.InterpretationTask{
		ID:            id,
		UserID:        "user-1",
		DeityID:       "guan_yin",
		Temple:        "GuanYin100",
		FortuneNumber: 27,
		Question:      "should I change jobs?",
		Language:      "zh",
	}
}

func testIndex() *fakeIndex {
	return &fakeIndex{
		poem: []models.PoemChunk{{ID: "p-27-0", Temple: "GuanYin100", PoemNumber: 27, Body: "签文"}},
		contextual: []models.ScoredChunk{
			{Chunk: models.PoemChunk{ID: "c-1", Body: "参考一"}, Distance: 0.4},
			{Chunk: models.PoemChunk{ID: "c-2", Body: "参考二"}, Distance: 0.8},
		},
	}
}

func newTestPipeline(store *fakeStore, index *fakeIndex, gen *fakeGenerator) (*Pipeline, *bus.Bus, *cache.ResultCache) {
	eventBus := bus.New(bus.WithGracePeriod(time.Minute))
	resultCache := cache.New(32, time.Minute)
	p := New(store, index, gen, resultCache, eventBus, 5, slog.Default())
	return p, eventBus, resultCache
}

// collectAll drains every event up to and including the terminal one.
func collectAll(t *testing.T, events <-chan bus.Event) []bus.Event {
	t.Helper()
	var got []bus.Event
	deadline := time.After(10 * time.Second)
	for {
		select {
		case ev := <-events:
			got = append(got, ev)
			if ev.Terminal() {
				return got
			}
		case <-deadline:
			t.Fatal("no terminal event observed")
		}
	}
}

func collectTerminal(t *testing.T, events <-chan bus.Event) []bus.Event {
	t.Helper()
	var got []bus.Event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == bus.EventTypePing || ev.Type == bus.EventTypeProgress {
				continue
			}
			got = append(got, ev)
			if ev.Terminal() {
				return got
			}
		case <-deadline:
			t.Fatal("no terminal event observed")
		}
	}
}

func TestExecute_HappyPath(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: goodInterpretation()}}}
	p, eventBus, resultCache := newTestPipeline(store, testIndex(), gen)

	task := testTask("t-happy")
	eventBus.Open(task.ID)
	events, cancelSub, ok := eventBus.Subscribe(task.ID)
	require.True(t, ok)
	defer cancelSub()

	require.NoError(t, p.Execute(context.Background(), task))

	assert.Equal(t, []status.Code{
		status.Initializing,
		status.RAGStart, status.RAGConnecting, status.RAGSearching,
		status.RAGSorting, status.RAGComplete,
		status.LLMContext, status.LLMGenerating,
		status.Validating, status.Finalizing,
	}, store.codes())

	require.NotNil(t, store.completed)
	assert.Equal(t, []string{"p-27-0", "c-1", "c-2"}, store.completed.SourcesUsed)
	assert.InDelta(t, 1-0.4/2, store.completed.Confidence, 1e-9)
	assert.True(t, store.completed.CanGenerateReport)
	assert.Contains(t, store.completed.Response, "LineByLineInterpretation:")
	assert.Len(t, store.sections, 7)

	got := collectTerminal(t, events)
	last := got[len(got)-1]
	assert.Equal(t, bus.EventTypeComplete, last.Type)
	assert.Equal(t, 100, last.Progress)
	require.NotNil(t, last.Result)

	// The success is cached for an identical follow-up draw.
	_, hit := resultCache.Get(cache.NewKey(task.Temple, task.FortuneNumber, task.Question, task.Language))
	assert.True(t, hit)
}

func TestExecute_CacheHitSkipsRetrievalAndGeneration(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: goodInterpretation()}}}
	p, _, resultCache := newTestPipeline(store, testIndex(), gen)

	task := testTask("t-cachehit")
	resultCache.Put(
		cache.NewKey(task.Temple, task.FortuneNumber, task.Question, task.Language),
		models.TaskResult{Response: "cached", Confidence: 0.9},
	)

	require.NoError(t, p.Execute(context.Background(), task))

	assert.Equal(t, []status.Code{status.Initializing, status.CacheHit}, store.codes())
	assert.Zero(t, gen.callCount())
	require.NotNil(t, store.completed)
	assert.Equal(t, "cached", store.completed.Response)
}

func TestExecute_SearchFailureDegradesGracefully(t *testing.T) {
	store := newFakeStore()
	index := testIndex()
	index.contextual = nil
	index.searchErr = fault.Newf(fault.CategoryTimeout, "search timed out")
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: goodInterpretation()}}}
	p, _, _ := newTestPipeline(store, index, gen)

	require.NoError(t, p.Execute(context.Background(), testTask("t-degraded")))

	require.NotNil(t, store.completed)
	assert.Equal(t, 0.5, store.completed.Confidence, "no contextual chunks means neutral confidence")
	assert.Equal(t, []string{"p-27-0"}, store.completed.SourcesUsed)
}

func TestExecute_PoemNotFoundFailsTask(t *testing.T) {
	store := newFakeStore()
	index := testIndex()
	index.poem = nil
	index.poemErr = fault.Newf(fault.CategoryNotFound, "no chunks for poem GuanYin100#27")
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: goodInterpretation()}}}
	p, eventBus, _ := newTestPipeline(store, index, gen)

	task := testTask("t-notfound")
	eventBus.Open(task.ID)
	events, cancelSub, ok := eventBus.Subscribe(task.ID)
	require.True(t, ok)
	defer cancelSub()

	require.Error(t, p.Execute(context.Background(), task))

	assert.True(t, store.failed)
	assert.Equal(t, fault.CategoryNotFound, store.failedWith)
	assert.Nil(t, store.completed)

	got := collectTerminal(t, events)
	last := got[len(got)-1]
	assert.Equal(t, bus.EventTypeError, last.Type)
	assert.Equal(t, status.ErrNotFound, last.Status)
	assert.False(t, last.RetryOK)
}

func TestExecute_ValidationRetrySucceeds(t *testing.T) {
	store := newFakeStore()
	thin := goodInterpretation()
	thin.Challenges = "太短"
	gen := &fakeGenerator{results: []*llm.Result{
		{Interpretation: thin},
		{Interpretation: goodInterpretation()},
	}}
	p, _, _ := newTestPipeline(store, testIndex(), gen)

	require.NoError(t, p.Execute(context.Background(), testTask("t-retry")))

	assert.Equal(t, 2, gen.callCount())
	require.NotNil(t, store.completed)
	assert.False(t, store.failed)
}

func TestExecute_StageTransitionsPublishAsProgress(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: goodInterpretation()}}}
	p, eventBus, _ := newTestPipeline(store, testIndex(), gen)

	task := testTask("t-event-types")
	eventBus.Open(task.ID)
	events, cancelSub, ok := eventBus.Subscribe(task.ID)
	require.True(t, ok)
	defer cancelSub()

	require.NoError(t, p.Execute(context.Background(), task))

	got := collectAll(t, events)
	require.NotEmpty(t, got)
	for _, ev := range got[:len(got)-1] {
		assert.Equal(t, bus.EventTypeProgress, ev.Type, "stage %v", ev.Status)
	}
	assert.Equal(t, bus.EventTypeComplete, got[len(got)-1].Type)
}

func TestExecute_RetryHeartbeatKeepsProgressMonotonic(t *testing.T) {
	store := newFakeStore()
	thin := goodInterpretation()
	thin.Challenges = "太短"
	gen := &fakeGenerator{
		results: []*llm.Result{{Interpretation: thin}, {Interpretation: goodInterpretation()}},
		// The rerun outlasts the maximum heartbeat interval so at least one
		// heartbeat fires after Validating was already published.
		delays: []time.Duration{0, 2 * time.Second},
	}
	p, eventBus, _ := newTestPipeline(store, testIndex(), gen)

	task := testTask("t-retry-heartbeat")
	eventBus.Open(task.ID)
	events, cancelSub, ok := eventBus.Subscribe(task.ID)
	require.True(t, ok)
	defer cancelSub()

	require.NoError(t, p.Execute(context.Background(), task))

	got := collectAll(t, events)
	validatingSeen := false
	rerunHeartbeat := false
	last := 0
	for _, ev := range got {
		if ev.Type == bus.EventTypePing || ev.Type == bus.EventTypeLag {
			continue
		}
		assert.GreaterOrEqual(t, ev.Progress, last, "progress regressed at status %v", ev.Status)
		last = ev.Progress
		switch ev.Status {
		case status.Validating:
			validatingSeen = true
		case status.LLMStreamingEarly, status.LLMStreamingMiddle,
			status.LLMStreamingLate, status.LLMStreamingOvertime:
			if validatingSeen {
				rerunHeartbeat = true
			}
		}
	}
	assert.Equal(t, 2, gen.callCount())
	require.True(t, validatingSeen)
	assert.True(t, rerunHeartbeat, "the rerun should have produced heartbeats")
}

func TestExecute_MalformedAfterRetryFails(t *testing.T) {
	store := newFakeStore()
	thin := goodInterpretation()
	thin.Conclusion = ""
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: thin}}}
	p, _, _ := newTestPipeline(store, testIndex(), gen)

	err := p.Execute(context.Background(), testTask("t-malformed"))
	require.Error(t, err)

	assert.Equal(t, 2, gen.callCount(), "exactly one tightened retry")
	assert.True(t, store.failed)
	assert.Equal(t, fault.CategoryMalformedOutput, store.failedWith)
}

func TestExecute_CancellationObservedAtCheckpoint(t *testing.T) {
	store := newFakeStore()
	store.cancelAfter = 3
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: goodInterpretation()}}}
	p, _, _ := newTestPipeline(store, testIndex(), gen)

	err := p.Execute(context.Background(), testTask("t-cancel"))
	require.Error(t, err)

	assert.True(t, store.failed)
	assert.Equal(t, fault.CategoryCancelled, store.failedWith)
	assert.Nil(t, store.completed)
}

func TestExecute_ContextCancelledMapsToCancelled(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{results: []*llm.Result{{Interpretation: goodInterpretation()}}}
	p, _, _ := newTestPipeline(store, testIndex(), gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, p.Execute(ctx, testTask("t-ctx")))
	assert.Equal(t, fault.CategoryCancelled, store.failedWith)
}

func TestRankContextual(t *testing.T) {
	poem := []models.PoemChunk{{ID: "own-1"}}
	contextual := []models.ScoredChunk{
		{Chunk: models.PoemChunk{ID: "c-far"}, Distance: 1.2},
		{Chunk: models.PoemChunk{ID: "own-1"}, Distance: 0.0},
		{Chunk: models.PoemChunk{ID: "c-near"}, Distance: 0.2},
		{Chunk: models.PoemChunk{ID: "c-mid"}, Distance: 0.7},
	}

	ranked := rankContextual(poem, contextual, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "c-near", ranked[0].Chunk.ID)
	assert.Equal(t, "c-mid", ranked[1].Chunk.ID)
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 0.5, confidence(nil))
	assert.InDelta(t, 0.9, confidence([]models.ScoredChunk{{Distance: 0.2}}), 1e-9)
	assert.Equal(t, 0.0, confidence([]models.ScoredChunk{{Distance: 2.5}}))
	assert.Equal(t, 1.0, confidence([]models.ScoredChunk{{Distance: -0.1}}))
}

func TestHeartbeatPhasing(t *testing.T) {
	expected := 10 * time.Second
	assert.Equal(t, status.LLMStreamingEarly, heartbeatCode(2*time.Second, expected))
	assert.Equal(t, status.LLMStreamingMiddle, heartbeatCode(5*time.Second, expected))
	assert.Equal(t, status.LLMStreamingLate, heartbeatCode(8*time.Second, expected))
	assert.Equal(t, status.LLMStreamingOvertime, heartbeatCode(10*time.Second, expected))
	assert.Equal(t, status.LLMStreamingOvertime, heartbeatCode(15*time.Second, expected))

	assert.Equal(t, heartbeatFloor, heartbeatProgress(0, expected, heartbeatFloor))
	assert.Equal(t, heartbeatCeil, heartbeatProgress(expected, expected, heartbeatFloor))
	assert.Equal(t, heartbeatCeil, heartbeatProgress(3*expected, expected, heartbeatFloor))

	// A floor above the ramp ceiling pins the reported progress there.
	validating := status.Validating.Progress()
	assert.Equal(t, validating, heartbeatProgress(0, expected, validating))
	assert.Equal(t, validating, heartbeatProgress(3*expected, expected, validating))
}

func TestDurationTracker(t *testing.T) {
	tr := newDurationTracker()
	assert.Equal(t, defaultGenDuration, tr.expected())

	tr.observe(10 * time.Second)
	got := tr.expected()
	assert.Less(t, got, defaultGenDuration)
	assert.Greater(t, got, 10*time.Second)
}
