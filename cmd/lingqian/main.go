// Lingqian server: accepts fortune interpretation requests over HTTP,
// manages the queue workers, and streams task progress to clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/templeworks/lingqian/pkg/api"
	"github.com/templeworks/lingqian/pkg/breaker"
	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/cache"
	"github.com/templeworks/lingqian/pkg/config"
	"github.com/templeworks/lingqian/pkg/database"
	"github.com/templeworks/lingqian/pkg/llm"
	"github.com/templeworks/lingqian/pkg/pipeline"
	"github.com/templeworks/lingqian/pkg/queue"
	"github.com/templeworks/lingqian/pkg/services"
	"github.com/templeworks/lingqian/pkg/vectorstore"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	logger := slog.Default()

	slog.Info("Starting lingqian", "http_port", httpPort, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Circuit breakers
	breakers := breaker.NewRegistry()
	ragBreaker := breaker.New("rag", cfg.Breakers.RAG.FailureThreshold, cfg.Breakers.RAG.RecoveryTimeout)
	llmBreaker := breaker.New("llm", cfg.Breakers.LLM.FailureThreshold, cfg.Breakers.LLM.RecoveryTimeout)
	vectorBreaker := breaker.New("vector", cfg.Breakers.Vector.FailureThreshold, cfg.Breakers.Vector.RecoveryTimeout)
	breakers.Register(ragBreaker)
	breakers.Register(llmBreaker)
	breakers.Register(vectorBreaker)

	// 4. Model client and embedder
	// grpc.NewClient dials lazily; a down sidecar surfaces on the first RPC.
	llmClient, err := llm.NewGRPCClient(*cfg.LLM, llmBreaker, logger)
	if err != nil {
		slog.Error("Failed to initialize model client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing model client", "error", err)
		}
	}()

	// 5. Retrieval, cache, progress bus
	vectorStore := vectorstore.New(dbClient.DB(), llm.NewEmbedder(llmClient), vectorBreaker, ragBreaker, cfg.RAG.Timeout)
	resultCache := cache.New(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	eventBus := bus.New(
		bus.WithBacklog(cfg.Stream.Backlog),
		bus.WithGracePeriod(cfg.Stream.GracePeriod),
	)

	// 6. Services and pipeline
	taskService := services.NewTaskService(dbClient.Client, cfg.Deities)
	taskPipeline := pipeline.New(taskService, vectorStore, llmClient, resultCache, eventBus, cfg.RAG.TopK, logger)
	slog.Info("Services initialized")

	// 7. Worker pool (requeues orphans from a previous run, then starts)
	workerPool := queue.NewWorkerPool(taskService, cfg.Queue, taskPipeline)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. HTTP server
	server := api.NewServer(taskService, workerPool, eventBus, breakers, dbClient, vectorStore, resultCache, cfg.Stream, logger)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Lingqian started successfully", "workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain workers first, then the HTTP server.
	workerPool.Stop()

	// Interrupted tasks go back to the queue for the next run.
	if requeued, err := taskService.RequeueOrphans(ctx); err != nil {
		slog.Error("Failed to requeue interrupted tasks", "error", err)
	} else if requeued > 0 {
		slog.Info("Requeued interrupted tasks", "count", requeued)
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
