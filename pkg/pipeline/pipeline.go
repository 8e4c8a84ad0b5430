// Package pipeline runs one interpretation task end to end: cache probe,
// retrieval, generation with streaming heartbeats, validation, and
// finalization. Every stage boundary is a cancellation checkpoint, and every
// stage transition is journaled and published to the progress bus.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/cache"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/llm"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/prompt"
	"github.com/templeworks/lingqian/pkg/services"
	"github.com/templeworks/lingqian/pkg/status"
	"github.com/templeworks/lingqian/pkg/vectorstore"
)

// TaskStore is the slice of the task service the pipeline writes through.
type TaskStore interface {
	RecordTransition(ctx context.Context, taskID string, code status.Code, progress int, message string) error
	Complete(ctx context.Context, taskID string, result *models.TaskResult, sections map[string]string, message string) error
	Fail(ctx context.Context, taskID string, category fault.Category, message string) error
	CancelRequested(ctx context.Context, taskID string) (bool, error)
}

// VectorIndex is the retrieval surface the pipeline reads from.
type VectorIndex interface {
	GetPoem(ctx context.Context, temple string, number int) ([]models.PoemChunk, error)
	Search(ctx context.Context, query string, topK int, filters vectorstore.Filters) ([]models.ScoredChunk, error)
}

// Pipeline orchestrates task execution. One Pipeline is shared by all
// workers; per-task state lives on the stack of Execute.
type Pipeline struct {
	store     TaskStore
	index     VectorIndex
	generator llm.Client
	cache     *cache.ResultCache
	bus       *bus.Bus
	topK      int
	logger    *slog.Logger

	// genDurations tracks recent generation times to phase the streaming
	// heartbeat codes.
	genDurations *durationTracker
}

// New wires a pipeline. topK bounds the similarity search.
func New(store TaskStore, index VectorIndex, generator llm.Client, resultCache *cache.ResultCache, eventBus *bus.Bus, topK int, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		store:        store,
		index:        index,
		generator:    generator,
		cache:        resultCache,
		bus:          eventBus,
		topK:         topK,
		logger:       logger,
		genDurations: newDurationTracker(),
	}
}

// Execute runs the task to a terminal state. The returned error is for
// worker-side logging only; the terminal state has already been persisted
// and published by the time Execute returns.
func (p *Pipeline) Execute(ctx context.Context, task *ent.InterpretationTask) error {
	started := time.Now()
	lang := status.ParseLanguage(task.Language)
	log := p.logger.With("task_id", task.ID, "temple", task.Temple, "number", task.FortuneNumber)

	run := func() error {
		if err := p.advance(ctx, task, lang, status.Initializing); err != nil {
			return err
		}

		// Cache probe. A hit skips retrieval and generation entirely.
		key := cache.NewKey(task.Temple, task.FortuneNumber, task.Question, task.Language)
		if cached, ok := p.cache.Get(key); ok {
			if err := p.advance(ctx, task, lang, status.CacheHit); err != nil {
				return err
			}
			result := cached
			result.ProcessingTimeMs = time.Since(started).Milliseconds()
			return p.complete(ctx, task, lang, &result, nil)
		}

		poem, contextual, err := p.retrieve(ctx, task, lang)
		if err != nil {
			return err
		}

		interp, err := p.generate(ctx, task, lang, poem, contextual)
		if err != nil {
			return err
		}

		if err := p.advance(ctx, task, lang, status.Finalizing); err != nil {
			return err
		}

		result := &models.TaskResult{
			Response:          interp.Concatenate(),
			Confidence:        confidence(contextual),
			SourcesUsed:       sourceIDs(poem, contextual),
			ProcessingTimeMs:  time.Since(started).Milliseconds(),
			CanGenerateReport: true,
		}
		p.cache.Put(key, *result)
		p.genDurations.observe(time.Since(started))

		return p.complete(ctx, task, lang, result, sectionsOf(interp))
	}

	if err := run(); err != nil {
		p.fail(task, lang, err)
		log.Error("task failed", "error", err, "category", fault.CategoryOf(err))
		return err
	}
	log.Info("task completed", "elapsed", time.Since(started))
	return nil
}

// retrieve fetches the drawn poem and similar chunks concurrently, then
// dedupes and ranks the contextual set.
func (p *Pipeline) retrieve(ctx context.Context, task *ent.InterpretationTask, lang status.Language) ([]models.PoemChunk, []models.ScoredChunk, error) {
	if err := p.advance(ctx, task, lang, status.RAGStart); err != nil {
		return nil, nil, err
	}
	if err := p.advance(ctx, task, lang, status.RAGConnecting); err != nil {
		return nil, nil, err
	}
	if err := p.advance(ctx, task, lang, status.RAGSearching); err != nil {
		return nil, nil, err
	}

	var (
		poem       []models.PoemChunk
		contextual []models.ScoredChunk
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		poem, err = p.index.GetPoem(gctx, task.Temple, task.FortuneNumber)
		return err
	})
	g.Go(func() error {
		var err error
		contextual, err = p.index.Search(gctx, task.Question, p.topK, vectorstore.Filters{
			Temple:   task.Temple,
			Language: task.Language,
		})
		// Contextual retrieval is best-effort: the drawn poem alone still
		// supports a degraded interpretation.
		if err != nil {
			p.logger.Warn("similarity search failed, continuing without context",
				"task_id", task.ID, "error", err)
			contextual = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if err := p.advance(ctx, task, lang, status.RAGSorting); err != nil {
		return nil, nil, err
	}
	contextual = rankContextual(poem, contextual, p.topK)

	if err := p.advance(ctx, task, lang, status.RAGComplete); err != nil {
		return nil, nil, err
	}
	return poem, contextual, nil
}

// generate drafts the interpretation, streaming heartbeat progress while the
// model works, then validates with one tightened retry.
func (p *Pipeline) generate(ctx context.Context, task *ent.InterpretationTask, lang status.Language, poem []models.PoemChunk, contextual []models.ScoredChunk) (*models.Interpretation, error) {
	if err := p.advance(ctx, task, lang, status.LLMContext); err != nil {
		return nil, err
	}

	in := prompt.Input{
		Language:      lang,
		DeityID:       task.DeityID,
		Temple:        task.Temple,
		FortuneNumber: task.FortuneNumber,
		Question:      task.Question,
		Context:       task.Context,
		Poem:          poem,
		Contextual:    contextual,
	}
	messages := prompt.Build(in)

	if err := p.advance(ctx, task, lang, status.LLMGenerating); err != nil {
		return nil, err
	}

	result, err := p.generateWithHeartbeat(ctx, task, lang, messages, status.LLMGenerating.Progress())
	if err != nil {
		return nil, err
	}

	if err := p.advance(ctx, task, lang, status.Validating); err != nil {
		return nil, err
	}

	interp := result.Interpretation
	if short := validate(&interp); len(short) > 0 {
		p.logger.Warn("interpretation failed validation, retrying with tightened prompt",
			"task_id", task.ID, "short_sections", short)

		// The retry runs after Validating was published; its heartbeats are
		// floored there so progress stays monotonic.
		retry, err := p.generateWithHeartbeat(ctx, task, lang, prompt.BuildTightened(in, short), status.Validating.Progress())
		if err != nil {
			return nil, err
		}
		interp = retry.Interpretation
		if short := validate(&interp); len(short) > 0 {
			return nil, fault.Newf(fault.CategoryMalformedOutput,
				"interpretation still invalid after retry: short sections %v", short)
		}
	}
	return &interp, nil
}

// generateWithHeartbeat runs one generation call with the streaming
// heartbeat publisher alive for its duration.
func (p *Pipeline) generateWithHeartbeat(ctx context.Context, task *ent.InterpretationTask, lang status.Language, messages []llm.Message, floor int) (*llm.Result, error) {
	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go p.runHeartbeat(hbCtx, task.ID, lang, floor)

	result, err := p.generator.Generate(ctx, llm.Request{TaskID: task.ID, Messages: messages})
	stopHeartbeat()
	if err != nil {
		return nil, err
	}
	return result, nil
}

// complete persists the terminal result and publishes the complete event.
func (p *Pipeline) complete(ctx context.Context, task *ent.InterpretationTask, lang status.Language, result *models.TaskResult, sections map[string]string) error {
	message := status.Message(lang, status.Completed)
	if err := p.store.Complete(ctx, task.ID, result, sections, message); err != nil {
		return err
	}
	p.bus.Publish(task.ID, bus.Event{
		Type:     bus.EventTypeComplete,
		Status:   status.Completed,
		Progress: status.Completed.Progress(),
		Message:  message,
		Result:   result,
	})
	return nil
}

// fail persists the terminal failure and publishes the error event. Uses a
// background context: the task context may already be cancelled.
func (p *Pipeline) fail(task *ent.InterpretationTask, lang status.Language, cause error) {
	category := fault.CategoryOf(cause)
	code := status.ErrorCode(category)
	message := status.Message(lang, code)

	if err := p.store.Fail(context.Background(), task.ID, category, message); err != nil {
		if !errors.Is(err, services.ErrConflictingUpdate) {
			p.logger.Error("failed to persist task failure", "task_id", task.ID, "error", err)
		}
		return
	}
	p.bus.Publish(task.ID, bus.Event{
		Type:    bus.EventTypeError,
		Status:  code,
		Message: message,
		Error:   cause.Error(),
		RetryOK: category.RetryAllowed(),
	})
}

// advance is a cancellation checkpoint plus one stage transition: it checks
// the context and the cancel flag, journals the transition, and publishes it.
func (p *Pipeline) advance(ctx context.Context, task *ent.InterpretationTask, lang status.Language, code status.Code) error {
	if err := ctx.Err(); err != nil {
		return fault.New(fault.CategoryOf(err), fmt.Errorf("task interrupted before %d: %w", code, err))
	}
	cancelled, err := p.store.CancelRequested(ctx, task.ID)
	if err != nil {
		return err
	}
	if cancelled {
		return fault.Newf(fault.CategoryCancelled, "cancellation requested")
	}

	progress := code.Progress()
	message := status.Message(lang, code)
	if err := p.store.RecordTransition(ctx, task.ID, code, progress, message); err != nil {
		if errors.Is(err, services.ErrConflictingUpdate) {
			return fault.Newf(fault.CategoryCancelled, "task no longer processing")
		}
		return err
	}
	p.bus.Publish(task.ID, bus.Event{
		Type:     bus.EventTypeProgress,
		Status:   code,
		Progress: progress,
		Message:  message,
	})
	return nil
}

// validate returns the labels of sections violating the length contract; an
// out-of-bounds total is reported under a pseudo label.
func validate(interp *models.Interpretation) []string {
	short := interp.ShortSections()
	total := interp.TotalLength()
	if total < models.MinTotalLength || total > models.MaxTotalLength {
		short = append(short, "TotalLength")
	}
	return short
}

// rankContextual drops chunks of the drawn poem from the search results and
// returns the closest topK by ascending distance.
func rankContextual(poem []models.PoemChunk, contextual []models.ScoredChunk, topK int) []models.ScoredChunk {
	own := make(map[string]struct{}, len(poem))
	for _, chunk := range poem {
		own[chunk.ID] = struct{}{}
	}

	ranked := contextual[:0]
	for _, scored := range contextual {
		if _, dup := own[scored.Chunk.ID]; dup {
			continue
		}
		ranked = append(ranked, scored)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// confidence maps the best contextual distance into [0,1]. With no
// contextual chunks the interpretation rests on the poem alone and gets the
// neutral midpoint.
func confidence(contextual []models.ScoredChunk) float64 {
	if len(contextual) == 0 {
		return 0.5
	}
	min := contextual[0].Distance
	for _, scored := range contextual[1:] {
		if scored.Distance < min {
			min = scored.Distance
		}
	}
	c := 1 - min/2
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func sourceIDs(poem []models.PoemChunk, contextual []models.ScoredChunk) []string {
	ids := make([]string, 0, len(poem)+len(contextual))
	for _, chunk := range poem {
		ids = append(ids, chunk.ID)
	}
	for _, scored := range contextual {
		ids = append(ids, scored.Chunk.ID)
	}
	return ids
}

func sectionsOf(interp *models.Interpretation) map[string]string {
	return map[string]string{
		"LineByLineInterpretation": interp.LineByLineInterpretation,
		"OverallDevelopment":       interp.OverallDevelopment,
		"PositiveFactors":          interp.PositiveFactors,
		"Challenges":               interp.Challenges,
		"SuggestedActions":         interp.SuggestedActions,
		"SupplementaryNotes":       interp.SupplementaryNotes,
		"Conclusion":               interp.Conclusion,
	}
}
