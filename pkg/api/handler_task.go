package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/services"
	"github.com/templeworks/lingqian/pkg/status"
)

// SubmitTask validates and enqueues an interpretation request, wakes the
// pool, and returns 202 with the stream URL.
func (s *Server) SubmitTask(c *gin.Context) {
	var input models.SubmitTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	input.UserID = currentUser(c)

	task, err := s.tasks.Create(c.Request.Context(), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	// Seed the channel with the queued event before acknowledging, so a
	// client that connects immediately never races channel creation and a
	// late subscriber replays the full lifecycle from the start.
	s.bus.Open(task.ID)
	s.bus.Publish(task.ID, bus.Event{
		Type:     bus.EventTypeProgress,
		Status:   status.Queued,
		Progress: status.Queued.Progress(),
		Message:  task.StatusMessage,
	})
	s.pool.Notify()

	s.logger.Info("task submitted",
		"task_id", task.ID, "deity_id", task.DeityID, "number", task.FortuneNumber)

	c.JSON(http.StatusAccepted, SubmitResponse{
		TaskID:    task.ID,
		Status:    string(task.Status),
		Message:   task.StatusMessage,
		StreamURL: fmt.Sprintf("/api/v1/tasks/%s/stream", task.ID),
	})
}

// GetTask returns the caller's task, including the result once completed.
func (s *Server) GetTask(c *gin.Context) {
	task, err := s.tasks.Get(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskResponse(task))
}

// ListHistory pages the caller's tasks, newest first.
func (s *Server) ListHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tasks, total, err := s.tasks.List(c.Request.Context(), currentUser(c), limit, offset)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	summaries := make([]models.TaskSummary, len(tasks))
	for i, task := range tasks {
		summaries[i] = services.SummaryOf(task)
	}
	c.JSON(http.StatusOK, HistoryResponse{
		Tasks:  summaries,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// CancelTask requests cancellation of the caller's task. Cancelling a task
// that already finished is a successful no-op.
func (s *Server) CancelTask(c *gin.Context) {
	taskID := c.Param("id")
	task, finalized, err := s.tasks.Cancel(c.Request.Context(), taskID, currentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	// A queued task never reaches a worker, so its terminal event is
	// published here; processing tasks get theirs from the pipeline.
	if finalized {
		s.bus.Publish(taskID, bus.Event{
			Type:    bus.EventTypeError,
			Status:  status.ErrCancelled,
			Message: task.StatusMessage,
			Error:   task.ErrorMessage,
			RetryOK: false,
		})
	}

	// Interrupt the in-process worker promptly; the pipeline checkpoint
	// would catch the flag anyway, just later.
	if s.pool.CancelTask(taskID) {
		s.logger.Info("cancelled running task", "task_id", taskID)
	}

	c.JSON(http.StatusOK, taskResponse(task))
}
