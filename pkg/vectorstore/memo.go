package vectorstore

import (
	"fmt"
	"sync"

	"github.com/templeworks/lingqian/pkg/models"
)

// poemMemo caches exact-lookup results. Chunks are immutable once ingested,
// so entries never expire.
type poemMemo struct {
	mu      sync.RWMutex
	entries map[string][]models.PoemChunk
}

func newPoemMemo() *poemMemo {
	return &poemMemo{entries: make(map[string][]models.PoemChunk)}
}

func memoKey(temple string, number int) string {
	return fmt.Sprintf("%s#%d", temple, number)
}

func (m *poemMemo) get(temple string, number int) ([]models.PoemChunk, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	chunks, ok := m.entries[memoKey(temple, number)]
	return chunks, ok
}

func (m *poemMemo) put(temple string, number int, chunks []models.PoemChunk) {
	m.mu.Lock()
	m.entries[memoKey(temple, number)] = chunks
	m.mu.Unlock()
}
