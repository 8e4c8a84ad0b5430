package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeworks/lingqian/pkg/status"
)

func statusEvent(code status.Code, progress int) Event {
	return Event{Type: EventTypeStatus, Status: code, Progress: progress}
}

func TestBus_PublishAssignsSequenceAndTimestamp(t *testing.T) {
	b := New()
	b.Publish("t1", statusEvent(status.Initializing, 5))
	b.Publish("t1", statusEvent(status.RAGStart, 20))

	events, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	defer cancel()

	first := <-events
	second := <-events
	assert.Equal(t, 1, first.Sequence)
	assert.Equal(t, 2, second.Sequence)
	assert.Equal(t, "t1", first.TaskID)
	assert.NotEmpty(t, first.Timestamp)
}

func TestBus_SubscribeReplaysBacklogThenLive(t *testing.T) {
	b := New()
	b.Publish("t1", statusEvent(status.Initializing, 5))
	b.Publish("t1", statusEvent(status.RAGStart, 20))

	events, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	defer cancel()

	b.Publish("t1", statusEvent(status.RAGComplete, 50))

	var got []status.Code
	for i := 0; i < 3; i++ {
		select {
		case ev := <-events:
			got = append(got, ev.Status)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
	assert.Equal(t, []status.Code{status.Initializing, status.RAGStart, status.RAGComplete}, got)
}

func TestBus_BacklogTrimmedToCapacity(t *testing.T) {
	b := New(WithBacklog(3))
	for i := 0; i < 10; i++ {
		b.Publish("t1", statusEvent(status.LLMStreamingEarly, 60+i))
	}

	events, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	defer cancel()

	first := <-events
	assert.Equal(t, 8, first.Sequence, "replay starts at the oldest retained event")
}

func TestBus_PublishAfterTerminalIsNoop(t *testing.T) {
	b := New(WithGracePeriod(time.Minute))
	b.Publish("t1", Event{Type: EventTypeComplete, Status: status.Completed, Progress: 100})
	b.Publish("t1", statusEvent(status.Validating, 92))

	events, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	defer cancel()

	ev := <-events
	assert.Equal(t, EventTypeComplete, ev.Type)

	select {
	case extra := <-events:
		t.Fatalf("unexpected event after terminal: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_SubscribeUnknownTaskFallsBack(t *testing.T) {
	b := New()
	_, _, ok := b.Subscribe("never-published")
	assert.False(t, ok)
}

func TestBus_OpenMakesChannelSubscribable(t *testing.T) {
	b := New()
	b.Open("t1")

	events, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	defer cancel()

	b.Publish("t1", statusEvent(status.Initializing, 5))
	select {
	case ev := <-events:
		assert.Equal(t, status.Initializing, ev.Status)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_TerminalTeardownAfterGrace(t *testing.T) {
	b := New(WithGracePeriod(20 * time.Millisecond))
	b.Publish("t1", statusEvent(status.Initializing, 5))

	events, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	defer cancel()

	b.Publish("t1", Event{Type: EventTypeError, Status: status.ErrTimeout, Error: "deadline"})

	require.Eventually(t, func() bool {
		_, _, ok := b.Subscribe("t1")
		return !ok
	}, time.Second, 10*time.Millisecond, "channel should be torn down after the grace period")

	// The live subscriber's channel is closed on teardown.
	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-events:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("subscriber channel never closed")
		}
	}
}

func TestBus_SlowSubscriberGetsLagMarker(t *testing.T) {
	b := New(WithBacklog(2))

	b.Open("t1")
	events, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	defer cancel()

	// Fill well past the subscriber buffer (backlog + slack) without
	// reading, forcing evictions.
	overflow := 2 + subscriberSlack + 8
	for i := 0; i < overflow; i++ {
		b.Publish("t1", statusEvent(status.LLMStreamingMiddle, 60))
	}

	// Make room, then publish once more: the owed lag marker is flushed
	// ahead of the new event.
	<-events
	<-events
	b.Publish("t1", statusEvent(status.LLMStreamingLate, 85))

	sawLag := false
	for !sawLag {
		select {
		case ev := <-events:
			if ev.Type == EventTypeLag {
				assert.Greater(t, ev.Dropped, 0)
				sawLag = true
			}
		case <-time.After(time.Second):
			t.Fatal("never saw a lag marker")
		}
	}
}

func TestBus_ActiveChannelsAndSubscriberCount(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.ActiveChannels())

	b.Open("t1")
	b.Open("t2")
	assert.Equal(t, 2, b.ActiveChannels())
	assert.Equal(t, 0, b.SubscriberCount("t1"))

	_, cancel, ok := b.Subscribe("t1")
	require.True(t, ok)
	assert.Equal(t, 1, b.SubscriberCount("t1"))

	cancel()
	assert.Equal(t, 0, b.SubscriberCount("t1"))
}
