package bus

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultBacklog is the number of events retained per task for late
// subscribers. Sized to hold a full task lifetime.
const DefaultBacklog = 128

// DefaultGracePeriod is how long a task channel survives after its terminal
// event, absorbing client reconnects.
const DefaultGracePeriod = 60 * time.Second

// subscriberSlack is extra per-subscriber buffer capacity beyond the backlog,
// so a fresh subscriber can absorb replay plus a burst of live events.
const subscriberSlack = 16

// Bus is the per-task progress fabric. Publishers are queue workers;
// subscribers are stream-gateway handlers. Neither blocks the other: a slow
// subscriber loses its oldest buffered events and receives a lag marker.
type Bus struct {
	mu       sync.RWMutex
	channels map[string]*taskChannel

	backlog int
	grace   time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// taskChannel is the per-task state: a sequence counter, a bounded replay
// backlog, and the live subscriber set.
type taskChannel struct {
	mu       sync.Mutex
	seq      int
	backlog  []Event
	subs     map[int]*subscriber
	nextSub  int
	terminal bool
	teardown *time.Timer
}

type subscriber struct {
	ch      chan Event
	dropped int
}

// Option configures a Bus.
type Option func(*Bus)

// WithBacklog overrides the per-task backlog size.
func WithBacklog(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.backlog = n
		}
	}
}

// WithGracePeriod overrides the post-terminal channel lifetime.
func WithGracePeriod(d time.Duration) Option {
	return func(b *Bus) {
		if d > 0 {
			b.grace = d
		}
	}
}

// New creates a progress bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		channels: make(map[string]*taskChannel),
		backlog:  DefaultBacklog,
		grace:    DefaultGracePeriod,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish appends an event to the task's channel and fans it out to every
// subscriber. The event's Sequence and Timestamp are assigned here. Publishing
// after the terminal event is a no-op (exactly one terminal per lifetime).
func (b *Bus) Publish(taskID string, event Event) {
	tc := b.channel(taskID, true)

	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.terminal {
		slog.Warn("Dropping publish after terminal event", "task_id", taskID, "type", event.Type)
		return
	}

	tc.seq++
	event.TaskID = taskID
	event.Sequence = tc.seq
	event.Timestamp = b.now().Format(time.RFC3339Nano)

	tc.backlog = append(tc.backlog, event)
	if len(tc.backlog) > b.backlog {
		tc.backlog = tc.backlog[len(tc.backlog)-b.backlog:]
	}

	for _, sub := range tc.subs {
		deliver(sub, event)
	}

	if event.Terminal() {
		tc.terminal = true
		tc.teardown = time.AfterFunc(b.grace, func() { b.destroy(taskID) })
	}
}

// deliver sends an event to one subscriber without ever blocking the
// publisher. On a full buffer the subscriber's oldest pending event is
// discarded and accounted for; a lag marker is inserted ahead of the next
// successful delivery.
func deliver(sub *subscriber, event Event) {
	// Flush an owed lag marker first so the subscriber learns about the gap
	// before seeing post-gap events.
	if sub.dropped > 0 {
		select {
		case sub.ch <- Event{Type: EventTypeLag, Dropped: sub.dropped}:
			sub.dropped = 0
		default:
			// Still no room; the gap grows below.
		}
	}

	for {
		select {
		case sub.ch <- event:
			return
		default:
		}
		// Buffer full: evict the oldest buffered event for this subscriber
		// only, then retry.
		select {
		case <-sub.ch:
			sub.dropped++
		default:
		}
	}
}

// Subscribe attaches to a task's channel, replaying the retained backlog
// before live events. The returned cancel function must be called when the
// consumer detaches. ok is false when the channel has already been torn down
// (or never existed); callers then fall back to the persisted journal.
func (b *Bus) Subscribe(taskID string) (events <-chan Event, cancel func(), ok bool) {
	b.mu.RLock()
	tc, exists := b.channels[taskID]
	b.mu.RUnlock()
	if !exists {
		return nil, nil, false
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	sub := &subscriber{ch: make(chan Event, b.backlog+subscriberSlack)}
	for _, event := range tc.backlog {
		sub.ch <- event
	}

	id := tc.nextSub
	tc.nextSub++
	tc.subs[id] = sub

	cancel = func() {
		tc.mu.Lock()
		delete(tc.subs, id)
		tc.mu.Unlock()
	}
	return sub.ch, cancel, true
}

// Open ensures a task channel exists without publishing. Used at submission
// time so a subscriber attaching before the first worker event still finds
// the channel.
func (b *Bus) Open(taskID string) {
	b.channel(taskID, true)
}

// SubscriberCount returns the number of live subscribers for a task.
func (b *Bus) SubscriberCount(taskID string) int {
	b.mu.RLock()
	tc, exists := b.channels[taskID]
	b.mu.RUnlock()
	if !exists {
		return 0
	}
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.subs)
}

// ActiveChannels returns the number of live task channels, for health
// reporting.
func (b *Bus) ActiveChannels() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.channels)
}

// channel returns the task channel, lazily creating it when create is set.
func (b *Bus) channel(taskID string, create bool) *taskChannel {
	b.mu.RLock()
	tc, exists := b.channels[taskID]
	b.mu.RUnlock()
	if exists || !create {
		return tc
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if tc, exists = b.channels[taskID]; exists {
		return tc
	}
	tc = &taskChannel{subs: make(map[int]*subscriber)}
	b.channels[taskID] = tc
	return tc
}

// destroy tears down a task channel after the grace period, closing all
// remaining subscriber channels.
func (b *Bus) destroy(taskID string) {
	b.mu.Lock()
	tc, exists := b.channels[taskID]
	delete(b.channels, taskID)
	b.mu.Unlock()
	if !exists {
		return
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()
	for id, sub := range tc.subs {
		close(sub.ch)
		delete(tc.subs, id)
	}
}
