// Package config loads and validates the service configuration: a YAML file
// merged over built-in defaults, with environment expansion for secrets.
package config

import "time"

// Config is the umbrella configuration returned by Initialize and threaded
// through process wiring.
type Config struct {
	configDir string

	Queue    *QueueConfig      `yaml:"queue"`
	Cache    *CacheConfig      `yaml:"cache"`
	RAG      *RAGConfig        `yaml:"rag"`
	LLM      *LLMConfig        `yaml:"llm"`
	Breakers *BreakerSetConfig `yaml:"breakers"`
	Stream   *StreamConfig     `yaml:"stream"`

	// Deities is the injected deity_id → temple mapping. The core requires
	// only that every accepted pair resolves to poems in the vector store.
	Deities map[string]string `yaml:"deities"`
}

// QueueConfig controls the worker pool and queue wakeup behavior.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines.
	WorkerCount int `yaml:"worker_count"`

	// TaskTimeout is the whole-task wall-clock budget enforced by the worker.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// BackstopPoll is the coarse timer that catches submissions whose wakeup
	// signal was missed (e.g. across restarts).
	BackstopPoll time.Duration `yaml:"backstop_poll"`

	// MonitorInterval is how often the stuck-worker monitor inspects workers.
	MonitorInterval time.Duration `yaml:"monitor_interval"`

	// GracefulShutdownTimeout bounds the drain on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// CacheConfig bounds the per-poem result cache.
type CacheConfig struct {
	MaxEntries int           `yaml:"max_entries"`
	TTL        time.Duration `yaml:"ttl"`
}

// RAGConfig controls retrieval over the poem knowledge base.
type RAGConfig struct {
	TopK    int           `yaml:"top_k"`
	Timeout time.Duration `yaml:"timeout"`
}

// LLMConfig controls the generation backend.
type LLMConfig struct {
	// Addr is the gRPC address of the generation service.
	Addr string `yaml:"addr"`

	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
}

// BreakerConfig is one circuit breaker's thresholds.
type BreakerConfig struct {
	FailureThreshold int           `yaml:"failure_threshold"`
	RecoveryTimeout  time.Duration `yaml:"recovery_timeout"`
}

// BreakerSetConfig holds the per-dependency breaker thresholds.
type BreakerSetConfig struct {
	RAG    BreakerConfig `yaml:"rag"`
	LLM    BreakerConfig `yaml:"llm"`
	Vector BreakerConfig `yaml:"vector"`
}

// StreamConfig controls the SSE stream gateway.
type StreamConfig struct {
	// MaxConnection is the absolute bound on one stream connection; clients
	// reconnect and resume from the backlog.
	MaxConnection time.Duration `yaml:"max_connection"`

	// PingInterval is the keep-alive cadence in the absence of events.
	PingInterval time.Duration `yaml:"ping_interval"`

	// Backlog is the per-task replay depth retained by the progress bus.
	Backlog int `yaml:"backlog"`

	// GracePeriod keeps a task channel alive after its terminal event.
	GracePeriod time.Duration `yaml:"grace_period"`
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string { return c.configDir }

// Temple resolves a deity identifier to its temple corpus name.
func (c *Config) Temple(deityID string) (string, bool) {
	temple, ok := c.Deities[deityID]
	return temple, ok
}
