package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuffer is the subscriber channel size used when Subscribe gets a non-positive buffer
const DefaultBuffer = 16

// Broker is an in-process fan-out of state change events.
// Slow subscribers lose events rather than blocking the publisher;
// every event only means "re-read the snapshot", so a dropped one is
// covered by the next.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[int]chan Event
	nextID      int
	closed      bool

	sequence atomic.Int64
	dropped  atomic.Int64
	logger   *slog.Logger
}

// NewBroker creates an empty broker. A nil logger falls back to slog.Default().
func NewBroker(logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		subscribers: make(map[int]chan Event),
		logger:      logger,
	}
}

// Publish stamps the event with a sequence ID and timestamp and delivers it
// to every subscriber that has room.
func (b *Broker) Publish(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBrokerClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
			b.logger.Debug("dropped event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
	return nil
}

// Subscribe registers a subscriber. On a closed broker the returned channel
// is already closed.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
	return ch, unsubscribe
}

// Close closes all subscriber channels. Calling Close twice is a no-op.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
	return nil
}

// SubscriberCount returns the number of live subscribers
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped returns how many deliveries were skipped because a subscriber was full
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}
