package event

import (
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"go.uber.org/atomic"
)

// Queue is a fixed-capacity FIFO ring buffer of events.
//
// It is safe for exactly one producer and one consumer running
// concurrently: the producer only advances tail, the consumer only
// advances head. A Put on a full queue silently drops the new event.
type Queue struct {
	clock   clock.Clock
	slots   []Event
	head    atomic.Uint64 // next slot to read, consumer owned
	tail    atomic.Uint64 // next slot to write, producer owned
	dropped atomic.Uint32
}

// NewQueue allocates a queue holding up to capacity events. Capacities
// below one are raised to one.
func NewQueue(c clock.Clock, capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		clock: c,
		slots: make([]Event, capacity),
	}
}

// Put appends an event stamped with the current time. When the queue is
// full the event is discarded.
func (q *Queue) Put(source Source, data byte) {
	tail := q.tail.Load()
	if int(tail-q.head.Load()) >= len(q.slots) {
		q.dropped.Inc()
		return
	}

	q.slots[tail%uint64(len(q.slots))] = Event{
		Time:   q.clock.Millis(),
		Source: source,
		Data:   data,
	}
	q.tail.Store(tail + 1)
}

// Get removes and returns the oldest event, or Null if the queue is empty.
func (q *Queue) Get() Event {
	head := q.head.Load()
	if head == q.tail.Load() {
		return Null
	}

	e := q.slots[head%uint64(len(q.slots))]
	q.head.Store(head + 1)
	return e
}

// Count returns the number of buffered events.
func (q *Queue) Count() int {
	return int(q.tail.Load() - q.head.Load())
}

// Cap returns the fixed capacity.
func (q *Queue) Cap() int {
	return len(q.slots)
}

// Dropped returns how many events were discarded because the queue was full.
func (q *Queue) Dropped() uint32 {
	return q.dropped.Load()
}
