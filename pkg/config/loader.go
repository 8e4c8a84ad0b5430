package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the expected YAML file inside the config directory.
const ConfigFileName = "lingqian.yaml"

// Initialize loads, merges, and validates configuration from configDir.
// A missing lingqian.yaml is not an error; the built-in defaults apply.
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := DefaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("No configuration file found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(ExpandEnv(data), &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		// User-provided values override defaults; unset fields keep defaults.
		if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging configuration: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"workers", cfg.Queue.WorkerCount,
		"deities", len(cfg.Deities),
		"rag_top_k", cfg.RAG.TopK,
		"llm_model", cfg.LLM.Model)
	return cfg, nil
}

// validate rejects configurations that cannot run.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be >= 1, got %d", cfg.Queue.WorkerCount)
	}
	if cfg.Queue.TaskTimeout <= 0 {
		return fmt.Errorf("queue.task_timeout must be positive")
	}
	if cfg.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be >= 1, got %d", cfg.Cache.MaxEntries)
	}
	if cfg.RAG.TopK < 0 {
		return fmt.Errorf("rag.top_k must be >= 0, got %d", cfg.RAG.TopK)
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be in [0, 2], got %v", cfg.LLM.Temperature)
	}
	if cfg.Stream.Backlog < 1 {
		return fmt.Errorf("stream.backlog must be >= 1, got %d", cfg.Stream.Backlog)
	}
	if len(cfg.Deities) == 0 {
		return fmt.Errorf("at least one deity mapping is required")
	}
	for deity, temple := range cfg.Deities {
		if temple == "" {
			return fmt.Errorf("deity %q maps to an empty temple name", deity)
		}
	}
	for name, b := range map[string]BreakerConfig{
		"rag": cfg.Breakers.RAG, "llm": cfg.Breakers.LLM, "vector": cfg.Breakers.Vector,
	} {
		if b.FailureThreshold < 1 {
			return fmt.Errorf("breakers.%s.failure_threshold must be >= 1", name)
		}
		if b.RecoveryTimeout <= 0 {
			return fmt.Errorf("breakers.%s.recovery_timeout must be positive", name)
		}
	}
	return nil
}
