// Package event defines the input event record and the fixed-capacity
// queue that buffers events between dispatch ticks.
package event

import "fmt"

// Source identifies the channel or semantic type of an event.
type Source uint8

// Well-known sources. Button events carry the button id as data, wheel
// events carry the signed click delta.
const (
	None          Source = 0
	Wheel         Source = 1
	ButtonPress   Source = 2
	ButtonRelease Source = 3
	Click         Source = 4
	Hold          Source = 5

	// Pop is reserved for screens that want to pop themselves by
	// posting an event their own controllers react to.
	Pop Source = 255
)

func (s Source) String() string {
	switch s {
	case None:
		return "none"
	case Wheel:
		return "wheel"
	case ButtonPress:
		return "press"
	case ButtonRelease:
		return "release"
	case Click:
		return "click"
	case Hold:
		return "hold"
	case Pop:
		return "pop"
	default:
		return fmt.Sprintf("source(%d)", uint8(s))
	}
}

// Event is a single timestamped input record.
type Event struct {
	Time   uint64 // Clock milliseconds at enqueue time
	Source Source
	Data   byte
}

// Null is returned by Queue.Get when the queue is empty.
var Null = Event{}

// IsNull reports whether e is the null event.
func (e Event) IsNull() bool {
	return e == Null
}

// Delta interprets Data as a signed wheel delta.
func (e Event) Delta() int8 {
	return int8(e.Data)
}

// Matches reports whether the event has exactly the given source and data.
func (e Event) Matches(source Source, data byte) bool {
	return e.Source == source && e.Data == data
}

func (e Event) String() string {
	return fmt.Sprintf("%s:%d@%d", e.Source, e.Data, e.Time)
}
