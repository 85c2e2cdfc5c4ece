// Package clock provides the monotonic millisecond clock used for event
// timestamps and debounce windows.
package clock

import (
	"time"
)

// Clock returns a monotonic millisecond count. Only differences between
// readings are meaningful.
type Clock interface {
	Millis() uint64
}

// System is a Clock backed by the Go runtime's monotonic clock.
type System struct {
	start time.Time
}

// NewSystem returns a System clock starting at zero.
func NewSystem() *System {
	return &System{start: time.Now()}
}

func (s *System) Millis() uint64 {
	return uint64(time.Since(s.start) / time.Millisecond)
}

// Manual is a Clock that only moves when told to. Used by tests and by
// hosts that already own a tick counter.
type Manual struct {
	now uint64
}

func (m *Manual) Millis() uint64 {
	return m.now
}

// Set moves the clock to an absolute millisecond value.
func (m *Manual) Set(ms uint64) {
	m.now = ms
}

// Advance moves the clock forward by d, truncated to milliseconds.
func (m *Manual) Advance(d time.Duration) {
	m.now += uint64(d / time.Millisecond)
}

// Millis converts a duration into the clock's unit.
func Millis(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}
