package events

// Publisher defines the interface for fanning out state change events.
// The project service depends on this rather than on *Broker so tests can
// pass nil or a recording fake.
type Publisher interface {
	// Publish delivers the event to every current subscriber without blocking
	Publish(event Event) error

	// Subscribe registers a new subscriber with the given channel buffer.
	// The returned function unsubscribes and closes the channel.
	Subscribe(buffer int) (<-chan Event, func())

	// Close closes every subscriber channel; later publishes fail
	Close() error
}

// Compile-time verification that *Broker implements Publisher
var _ Publisher = (*Broker)(nil)
