package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/pkg/models"
)

func TestQuestionFingerprint_Normalization(t *testing.T) {
	base := QuestionFingerprint("Will I pass the exam?")
	assert.Equal(t, base, QuestionFingerprint("  Will I pass the exam?  "))
	assert.Equal(t, base, QuestionFingerprint("will i pass the exam?"))
	assert.NotEqual(t, base, QuestionFingerprint("Will I pass the exams?"))
}

func TestNewKey_DiffersPerDimension(t *testing.T) {
	base := NewKey("GuanYin100", 7, "question", "zh")
	assert.NotEqual(t, base.String(), NewKey("Mazu", 7, "question", "zh").String())
	assert.NotEqual(t, base.String(), NewKey("GuanYin100", 8, "question", "zh").String())
	assert.NotEqual(t, base.String(), NewKey("GuanYin100", 7, "other", "zh").String())
	assert.NotEqual(t, base.String(), NewKey("GuanYin100", 7, "question", "en").String())
}

func TestResultCache_PutGet(t *testing.T) {
	c := New(10, time.Minute)
	key := NewKey("GuanYin100", 7, "question", "zh")

	_, ok := c.Get(key)
	assert.False(t, ok)

	want := models.TaskResult{Response: "text", Confidence: 0.8, CanGenerateReport: true}
	c.Put(key, want)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Same question with different whitespace and casing hits.
	_, ok = c.Get(NewKey("GuanYin100", 7, "  QUESTION ", "zh"))
	assert.True(t, ok)
}

func TestResultCache_TTLExpiry(t *testing.T) {
	c := New(10, 20*time.Millisecond)
	key := NewKey("GuanYin100", 7, "question", "zh")
	c.Put(key, models.TaskResult{Response: "text"})

	require.Eventually(t, func() bool {
		_, ok := c.Get(key)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestResultCache_Stats(t *testing.T) {
	c := New(10, time.Minute)
	key := NewKey("GuanYin100", 7, "question", "zh")

	c.Get(key)
	c.Put(key, models.TaskResult{})
	c.Get(key)

	stats := c.Stats()
	assert.Equal(t, 1, stats["entries"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}
