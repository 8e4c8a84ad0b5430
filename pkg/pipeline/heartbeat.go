package pipeline

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/templeworks/lingqian/pkg/bus"
	"github.com/templeworks/lingqian/pkg/status"
)

// Heartbeat cadence bounds. Jittered so concurrent tasks do not publish in
// lockstep.
const (
	heartbeatMin = 800 * time.Millisecond
	heartbeatMax = 1500 * time.Millisecond
)

// Progress window the heartbeat may occupy. The validating stage starts at
// 92, so heartbeats never pass 90.
const (
	heartbeatFloor = 60
	heartbeatCeil  = 90
)

// defaultGenDuration seeds the tracker before any generation has completed.
const defaultGenDuration = 30 * time.Second

// runHeartbeat publishes synthetic streaming progress while generation is in
// flight. Heartbeats go to the bus only; the journal records stage
// transitions, not keep-alives. floor is the task's last published progress,
// so a generation rerun after validation cannot walk the stream backwards.
func (p *Pipeline) runHeartbeat(ctx context.Context, taskID string, lang status.Language, floor int) {
	started := time.Now()
	expected := p.genDurations.expected()

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(heartbeatInterval()):
		}

		elapsed := time.Since(started)
		code := heartbeatCode(elapsed, expected)
		p.bus.Publish(taskID, bus.Event{
			Type:     bus.EventTypeProgress,
			Status:   code,
			Progress: heartbeatProgress(elapsed, expected, floor),
			Message:  status.Message(lang, code),
		})
	}
}

func heartbeatInterval() time.Duration {
	return heartbeatMin + rand.N(heartbeatMax-heartbeatMin)
}

// heartbeatCode phases the streaming codes against the expected duration:
// early below 30%, middle below 70%, late below 100%, overtime beyond.
func heartbeatCode(elapsed, expected time.Duration) status.Code {
	switch ratio := float64(elapsed) / float64(expected); {
	case ratio < 0.3:
		return status.LLMStreamingEarly
	case ratio < 0.7:
		return status.LLMStreamingMiddle
	case ratio < 1.0:
		return status.LLMStreamingLate
	default:
		return status.LLMStreamingOvertime
	}
}

// heartbeatProgress ramps linearly across the window, saturating at the
// ceiling once elapsed reaches the expected duration, and never reporting
// below floor.
func heartbeatProgress(elapsed, expected time.Duration, floor int) int {
	span := heartbeatCeil - heartbeatFloor
	progress := heartbeatFloor + int(float64(span)*float64(elapsed)/float64(expected))
	if progress > heartbeatCeil {
		progress = heartbeatCeil
	}
	if progress < floor {
		progress = floor
	}
	return progress
}

// durationTracker keeps an exponential moving average of generation times.
type durationTracker struct {
	mu  sync.Mutex
	avg time.Duration
}

func newDurationTracker() *durationTracker {
	return &durationTracker{avg: defaultGenDuration}
}

func (t *durationTracker) expected() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.avg
}

// observe folds a completed run into the average with factor 0.3.
func (t *durationTracker) observe(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.avg = time.Duration(0.7*float64(t.avg) + 0.3*float64(d))
}
