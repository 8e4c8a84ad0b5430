package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/templeworks/lingqian/ent"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/fault"
	"github.com/templeworks/lingqian/pkg/models"
	"github.com/templeworks/lingqian/pkg/status"
)

// StreamTask serves the task's progress as a line-delimited SSE stream.
//
// A terminal task gets its journal replayed and the stream closed. A live
// task gets a snapshot of its current state, the bus backlog, then live
// events until the terminal event, the ping-keepalive connection cap, or the
// client disconnecting. Disconnecting never cancels the task.
func (s *Server) StreamTask(c *gin.Context) {
	taskID := c.Param("id")
	task, err := s.tasks.Get(c.Request.Context(), taskID, currentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	if isTerminal(task) {
		s.replayJournal(c, task)
		return
	}

	// Ensure the channel exists before subscribing: the worker may not have
	// published anything yet for a queued task.
	s.bus.Open(taskID)
	events, cancelSub, ok := s.bus.Subscribe(taskID)
	if !ok {
		// Torn down between the terminal check and here; the journal has
		// the full story.
		s.replayJournal(c, task)
		return
	}
	defer cancelSub()

	// Snapshot first so the client renders current state before replay
	// catches up.
	if err := writeEvent(c, bus.Event{
		Type:     bus.EventTypeStatus,
		TaskID:   task.ID,
		Status:   status.Code(task.StatusCode),
		Progress: task.Progress,
		Message:  task.StatusMessage,
	}); err != nil {
		return
	}

	ping := time.NewTicker(s.stream.PingInterval)
	defer ping.Stop()
	deadline := time.NewTimer(s.stream.MaxConnection)
	defer deadline.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-deadline.C:
			s.logger.Debug("stream connection cap reached", "task_id", taskID)
			return
		case <-ping.C:
			if err := writeEvent(c, bus.Ping()); err != nil {
				return
			}
		case event, open := <-events:
			if !open {
				return
			}
			if err := writeEvent(c, event); err != nil {
				return
			}
			if event.Terminal() {
				return
			}
			// Pings fill idle gaps only; a delivered event restarts the clock.
			ping.Reset(s.stream.PingInterval)
		}
	}
}

// replayJournal reconstructs the event stream of a finished task from the
// persisted transitions.
func (s *Server) replayJournal(c *gin.Context, task *ent.InterpretationTask) {
	transitions, err := s.tasks.Transitions(c.Request.Context(), task.ID)
	if err != nil {
		s.logger.Error("failed to load journal for replay", "task_id", task.ID, "error", err)
		return
	}

	for i, tr := range transitions {
		event := journalEvent(task, tr)
		// The first replayed row doubles as the state snapshot.
		if i == 0 && !event.Terminal() {
			event.Type = bus.EventTypeStatus
		}
		if err := writeEvent(c, event); err != nil {
			return
		}
	}
}

// journalEvent converts one journal row back into its stream form. The
// terminal row regains its result or error payload from the task record.
func journalEvent(task *ent.InterpretationTask, tr models.Transition) bus.Event {
	event := bus.Event{
		Type:      bus.EventTypeProgress,
		TaskID:    task.ID,
		Status:    tr.Code,
		Progress:  tr.Progress,
		Message:   tr.Message,
		Sequence:  tr.Sequence + 1,
		Timestamp: tr.Timestamp.Format(time.RFC3339Nano),
	}
	switch {
	case tr.Code == status.Completed:
		event.Type = bus.EventTypeComplete
		event.Result = &models.TaskResult{
			Response:          task.ResponseText,
			Confidence:        task.Confidence,
			SourcesUsed:       task.Sources,
			ProcessingTimeMs:  task.ProcessingTimeMs,
			CanGenerateReport: task.CanGenerateReport,
		}
	case tr.Code.IsError():
		event.Type = bus.EventTypeError
		event.Error = task.ErrorMessage
		event.RetryOK = fault.Category(task.ErrorCategory).RetryAllowed()
	}
	return event
}

func isTerminal(task *ent.InterpretationTask) bool {
	switch task.Status {
	case interpretationtask.StatusCompleted, interpretationtask.StatusFailed, interpretationtask.StatusCancelled:
		return true
	}
	return false
}

// writeEvent frames one event as an SSE data line and flushes it.
func writeEvent(c *gin.Context, event bus.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
