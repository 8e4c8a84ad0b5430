package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestInitialize_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 120*time.Second, cfg.Queue.TaskTimeout)
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)
	assert.Equal(t, 5, cfg.RAG.TopK)
	assert.Equal(t, "localhost:50051", cfg.LLM.Addr)
	assert.Equal(t, 5, cfg.Breakers.LLM.FailureThreshold)
	assert.Equal(t, 128, cfg.Stream.Backlog)
	assert.NotEmpty(t, cfg.Deities)

	temple, ok := cfg.Temple("guan_yin")
	require.True(t, ok)
	assert.Equal(t, "GuanYin100", temple)

	_, ok = cfg.Temple("unknown")
	assert.False(t, ok)
}

func TestInitialize_FileOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
queue:
  worker_count: 8
  task_timeout: 90s
llm:
  model: gemini-2.5-pro
deities:
  city_god: ChengHuang
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, 90*time.Second, cfg.Queue.TaskTimeout)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)

	// Untouched sections keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Queue.BackstopPoll)
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)
	assert.Equal(t, "localhost:50051", cfg.LLM.Addr)

	// Deity maps merge rather than replace.
	temple, ok := cfg.Temple("city_god")
	require.True(t, ok)
	assert.Equal(t, "ChengHuang", temple)
	_, ok = cfg.Temple("guan_yin")
	assert.True(t, ok)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("LINGQIAN_LLM_ADDR", "model-backend:50051")

	dir := writeConfig(t, `
llm:
  addr: "{{.LINGQIAN_LLM_ADDR}}"
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "model-backend:50051", cfg.LLM.Addr)
}

func TestInitialize_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative workers", "queue:\n  worker_count: -1\n"},
		{"temperature out of range", "llm:\n  temperature: 3.5\n"},
		{"negative top_k", "rag:\n  top_k: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Initialize(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestInitialize_MalformedYAML(t *testing.T) {
	_, err := Initialize(writeConfig(t, "queue: [unclosed"))
	assert.Error(t, err)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("LINGQIAN_TEST_VALUE", "secret")

	out := ExpandEnv([]byte("password: {{.LINGQIAN_TEST_VALUE}}"))
	assert.Equal(t, "password: secret", string(out))

	// Missing variables expand to empty rather than erroring.
	out = ExpandEnv([]byte("password: {{.LINGQIAN_NO_SUCH_VAR}}"))
	assert.Equal(t, "password: ", string(out))

	// Content with literal template breakage passes through unchanged.
	raw := []byte("pattern: {{invalid")
	assert.Equal(t, raw, ExpandEnv(raw))
}
