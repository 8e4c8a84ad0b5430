// Package cache provides the bounded per-poem result cache. Entries are keyed
// by (temple, poem number, question fingerprint, language) and written only on
// successful terminal completion; eviction is LRU with TTL expiry.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/templeworks/lingqian/pkg/models"
)

// Key is the composite result-cache key.
type Key struct {
	Temple      string
	PoemNumber  int
	Fingerprint string
	Language    string
}

// NewKey builds a cache key. The question is fingerprinted as the SHA-256 of
// its lowercased, whitespace-trimmed form so trivially re-worded whitespace
// and casing still hit.
func NewKey(temple string, poemNumber int, question, language string) Key {
	return Key{
		Temple:      temple,
		PoemNumber:  poemNumber,
		Fingerprint: QuestionFingerprint(question),
		Language:    language,
	}
}

// QuestionFingerprint returns the hex SHA-256 of the normalized question.
func QuestionFingerprint(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%d|%s|%s", k.Temple, k.PoemNumber, k.Fingerprint, k.Language)
}

// Entry is a cached terminal result plus bookkeeping.
type Entry struct {
	Result    models.TaskResult
	CreatedAt time.Time
	Hits      int64
}

// ResultCache is a bounded, TTL-expiring LRU over terminal interpretation
// results.
type ResultCache struct {
	lru  *expirable.LRU[string, *Entry]
	hits atomic.Int64
	miss atomic.Int64
}

// New creates a result cache holding at most maxEntries entries, each living
// at most ttl.
func New(maxEntries int, ttl time.Duration) *ResultCache {
	return &ResultCache{
		lru: expirable.NewLRU[string, *Entry](maxEntries, nil, ttl),
	}
}

// Get returns the cached result for key, if present and unexpired.
func (c *ResultCache) Get(key Key) (models.TaskResult, bool) {
	entry, ok := c.lru.Get(key.String())
	if !ok {
		c.miss.Add(1)
		return models.TaskResult{}, false
	}
	atomic.AddInt64(&entry.Hits, 1)
	c.hits.Add(1)
	return entry.Result, true
}

// Put stores a successful terminal result. Callers must only write results
// from Completed tasks.
func (c *ResultCache) Put(key Key, result models.TaskResult) {
	c.lru.Add(key.String(), &Entry{
		Result:    result,
		CreatedAt: time.Now(),
	})
}

// Stats reports cache size and hit/miss counters for health reporting.
func (c *ResultCache) Stats() map[string]any {
	return map[string]any{
		"entries": c.lru.Len(),
		"hits":    c.hits.Load(),
		"misses":  c.miss.Load(),
	}
}
