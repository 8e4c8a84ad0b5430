package config

import "time"

// DefaultConfig returns the built-in defaults. A user-provided lingqian.yaml
// is deep-merged over these, so partial configuration files are valid.
func DefaultConfig() *Config {
	return &Config{
		Queue: &QueueConfig{
			WorkerCount:             3,
			TaskTimeout:             120 * time.Second,
			BackstopPoll:            30 * time.Second,
			MonitorInterval:         30 * time.Second,
			GracefulShutdownTimeout: 30 * time.Second,
		},
		Cache: &CacheConfig{
			MaxEntries: 1000,
			TTL:        time.Hour,
		},
		RAG: &RAGConfig{
			TopK:    5,
			Timeout: 30 * time.Second,
		},
		LLM: &LLMConfig{
			Addr:        "localhost:50051",
			Model:       "gemini-2.0-flash",
			Timeout:     120 * time.Second,
			Temperature: 0.7,
			MaxTokens:   2500,
		},
		Breakers: &BreakerSetConfig{
			RAG:    BreakerConfig{FailureThreshold: 3, RecoveryTimeout: 30 * time.Second},
			LLM:    BreakerConfig{FailureThreshold: 5, RecoveryTimeout: 60 * time.Second},
			Vector: BreakerConfig{FailureThreshold: 3, RecoveryTimeout: 45 * time.Second},
		},
		Stream: &StreamConfig{
			MaxConnection: 5 * time.Minute,
			PingInterval:  30 * time.Second,
			Backlog:       128,
			GracePeriod:   60 * time.Second,
		},
		Deities: map[string]string{
			"guan_yin":   "GuanYin100",
			"mazu":       "Mazu",
			"guan_yu":    "GuanYu",
			"yue_lao":    "YueLao",
			"bao_sheng":  "BaoSheng",
			"qi_tian":    "QiTian",
			"cai_shen":   "CaiShen",
			"tu_di_gong": "TuDiGong",
		},
	}
}
