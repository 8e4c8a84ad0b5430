// Package api exposes the HTTP surface: task submission and reads, the SSE
// progress stream, and the operational endpoints.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/templeworks/lingqian/pkg/breaker"
	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/cache"
	"github.com/templeworks/lingqian/pkg/config"
	"github.com/templeworks/lingqian/pkg/database"
	"github.com/templeworks/lingqian/pkg/queue"
	"github.com/templeworks/lingqian/pkg/services"
	"github.com/templeworks/lingqian/pkg/vectorstore"
)

// Server holds the API dependencies.
type Server struct {
	tasks    *services.TaskService
	pool     *queue.WorkerPool
	bus      *bus.Bus
	breakers *breaker.Registry
	db       *database.Client
	vector   *vectorstore.Store
	cache    *cache.ResultCache
	stream   *config.StreamConfig
	logger   *slog.Logger
}

// NewServer creates a new API server.
func NewServer(tasks *services.TaskService, pool *queue.WorkerPool, eventBus *bus.Bus, breakers *breaker.Registry, db *database.Client, vector *vectorstore.Store, resultCache *cache.ResultCache, stream *config.StreamConfig, logger *slog.Logger) *Server {
	return &Server{
		tasks:    tasks,
		pool:     pool,
		bus:      eventBus,
		breakers: breakers,
		db:       db,
		vector:   vector,
		cache:    resultCache,
		stream:   stream,
		logger:   logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/system/stats", s.SystemStats)
	v1.GET("/system/breakers", s.ListBreakers)
	v1.POST("/system/breakers/:name/reset", s.ResetBreaker)

	tasks := v1.Group("/tasks", requireUser())
	tasks.POST("", s.SubmitTask)
	tasks.GET("", s.ListHistory)
	tasks.GET("/:id", s.GetTask)
	tasks.POST("/:id/cancel", s.CancelTask)
	tasks.GET("/:id/stream", s.StreamTask)

	return router
}
