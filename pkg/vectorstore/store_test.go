package vectorstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/pkg/breaker"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/models"
)

func trippedBreaker(name string) *breaker.Breaker {
	b := breaker.New(name, 1, time.Minute)
	_ = b.Call(context.Background(), func(context.Context) error { return assert.AnError })
	return b
}

func TestPoemMemo(t *testing.T) {
	memo := newPoemMemo()

	_, ok := memo.get("GuanYin100", 27)
	assert.False(t, ok)

	chunks := []models.PoemChunk{{ID: "c1", Temple: "GuanYin100", PoemNumber: 27}}
	memo.put("GuanYin100", 27, chunks)

	got, ok := memo.get("GuanYin100", 27)
	require.True(t, ok)
	assert.Equal(t, chunks, got)

	// Different numbers and temples are distinct keys.
	_, ok = memo.get("GuanYin100", 28)
	assert.False(t, ok)
	_, ok = memo.get("Mazu", 27)
	assert.False(t, ok)
}

func TestSearch_NonPositiveTopKShortCircuits(t *testing.T) {
	// No db, no embedder: a non-positive topK must not reach either.
	store := New(nil, nil, breaker.New("vector", 3, time.Minute), breaker.New("rag", 3, time.Minute), time.Second)

	results, err := store.Search(context.Background(), "question", 0, Filters{})
	require.NoError(t, err)
	assert.Nil(t, results)

	results, err = store.Search(context.Background(), "question", -1, Filters{})
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestGetPoem_ServedFromMemoWithoutDB(t *testing.T) {
	store := New(nil, nil, breaker.New("vector", 3, time.Minute), breaker.New("rag", 3, time.Minute), time.Second)
	chunks := []models.PoemChunk{{ID: "c1", Temple: "GuanYin100", PoemNumber: 27, Body: "签文"}}
	store.memo.put("GuanYin100", 27, chunks)

	got, err := store.GetPoem(context.Background(), "GuanYin100", 27)
	require.NoError(t, err)
	assert.Equal(t, chunks, got)
}

func TestGetPoem_OpenBreakerFailsFast(t *testing.T) {
	store := New(nil, nil, trippedBreaker("vector"), breaker.New("rag", 3, time.Minute), time.Second)

	_, err := store.GetPoem(context.Background(), "GuanYin100", 27)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.CategoryDependencyUnavailable))
}

func TestSearch_OpenBreakerFailsFast(t *testing.T) {
	// The search path has its own breaker; an open one must fail before the
	// embedder is touched.
	store := New(nil, nil, breaker.New("vector", 3, time.Minute), trippedBreaker("rag"), time.Second)

	_, err := store.Search(context.Background(), "question", 5, Filters{})
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.CategoryDependencyUnavailable))

	// The exact-lookup breaker is unaffected by search failures.
	store.memo.put("GuanYin100", 27, []models.PoemChunk{{ID: "c1"}})
	_, err = store.GetPoem(context.Background(), "GuanYin100", 27)
	assert.NoError(t, err)
}
