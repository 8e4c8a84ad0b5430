package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/templeworks/lingqian/pkg/database"
)

// Health reports liveness of the process and its dependencies.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db.DB())
	poolHealth := s.pool.Health()

	body := gin.H{
		"status":          "healthy",
		"database":        dbHealth,
		"queue":           poolHealth,
		"active_channels": s.bus.ActiveChannels(),
		"cache":           s.cache.Stats(),
	}

	if vectorStats, err := s.vector.Stats(ctx); err == nil {
		body["vector_store"] = vectorStats
	} else {
		body["vector_store_error"] = err.Error()
	}

	if dbErr != nil || !poolHealth.IsHealthy {
		body["status"] = "unhealthy"
		if dbErr != nil {
			body["error"] = dbErr.Error()
		}
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

// SystemStats aggregates task outcomes over a trailing window (default 24h).
func (s *Server) SystemStats(c *gin.Context) {
	windowHours, _ := strconv.Atoi(c.DefaultQuery("window_hours", "24"))

	stats, err := s.tasks.Stats(c.Request.Context(), windowHours)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListBreakers reports the state of every registered circuit breaker.
func (s *Server) ListBreakers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"breakers": s.breakers.Snapshots()})
}

// ResetBreaker forces a breaker back to closed. Operational escape hatch for
// when the dependency is known to have recovered.
func (s *Server) ResetBreaker(c *gin.Context) {
	name := c.Param("name")
	breaker, ok := s.breakers.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown breaker: " + name})
		return
	}
	breaker.Reset()
	s.logger.Info("breaker reset", "breaker", name)
	c.JSON(http.StatusOK, gin.H{"breaker": breaker.Snapshot()})
}
