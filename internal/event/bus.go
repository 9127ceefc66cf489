// Package event implements the keyed publish/consume queue that lets the
// simulation's parts talk to each other without holding references.
//
// Producers append events under a key; consumers drain a key in one shot,
// inspect it without draining, or pull out only the events they care about.
// A Bus is not safe for concurrent use: it belongs to the simulation loop
// that owns it and is drained every tick.
package event

// Key identifies an event queue.
type Key string

// Event is a single notification. Payload is owned by the producer and
// must not be mutated after the event is posted.
type Event struct {
	Key     Key
	Payload any
}

// New creates an event for the given key.
func New(key Key, payload any) Event {
	return Event{Key: key, Payload: payload}
}

// Bus holds pending events per key in arrival order.
type Bus struct {
	queues map[Key][]Event
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{queues: make(map[Key][]Event)}
}

// Notify appends ev to the queue for ev.Key, creating the queue if needed.
// Queues are unbounded; the owner is expected to drain every key it posts to.
func (b *Bus) Notify(ev Event) {
	if b.queues == nil {
		b.queues = make(map[Key][]Event)
	}
	b.queues[ev.Key] = append(b.queues[ev.Key], ev)
}

// Consume removes and returns every pending event for key.
// Returns nil when nothing is pending.
func (b *Bus) Consume(key Key) []Event {
	q, ok := b.queues[key]
	if !ok {
		return nil
	}
	delete(b.queues, key)
	if len(q) == 0 {
		return nil
	}
	return q
}

// Peek returns a copy of the pending events for key without removing them.
// Returns nil when nothing is pending.
func (b *Bus) Peek(key Key) []Event {
	q := b.queues[key]
	if len(q) == 0 {
		return nil
	}
	out := make([]Event, len(q))
	copy(out, q)
	return out
}

// ConsumeMatching removes and returns the events for key that satisfy
// match, preserving arrival order. Events that do not match stay queued,
// also in arrival order. Returns nil when nothing matched.
func (b *Bus) ConsumeMatching(key Key, match func(Event) bool) []Event {
	q := b.queues[key]
	if len(q) == 0 {
		return nil
	}

	var taken []Event
	kept := make([]Event, 0, len(q))
	for _, ev := range q {
		if match(ev) {
			taken = append(taken, ev)
		} else {
			kept = append(kept, ev)
		}
	}

	if len(kept) == 0 {
		delete(b.queues, key)
	} else {
		b.queues[key] = kept
	}
	return taken
}

// Len returns the number of pending events for key.
func (b *Bus) Len(key Key) int {
	return len(b.queues[key])
}

// Pending returns the number of pending events across all keys.
func (b *Bus) Pending() int {
	n := 0
	for _, q := range b.queues {
		n += len(q)
	}
	return n
}

// Reset drops every pending event.
func (b *Bus) Reset() {
	b.queues = make(map[Key][]Event)
}
