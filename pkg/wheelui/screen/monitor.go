package screen

import (
	"fmt"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/constants"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
)

// EventMonitor shows the most recent event it received. Useful for
// checking input wiring on new hardware.
type EventMonitor struct {
	last      event.Event
	rowHeight int16
}

// NewEventMonitor creates a monitor. A zero rowHeight uses the default.
func NewEventMonitor(rowHeight int16) *EventMonitor {
	if rowHeight <= 0 {
		rowHeight = constants.DefaultRowHeight
	}
	return &EventMonitor{last: event.Null, rowHeight: rowHeight}
}

// Last returns the most recently handled event.
func (m *EventMonitor) Last() event.Event {
	return m.last
}

func (m *EventMonitor) Draw(d display.Display, bounds display.Rect) {
	theme := display.GetTheme()
	d.Clear(bounds)

	lines := [...]string{
		fmt.Sprintf("Time: %d", m.last.Time),
		fmt.Sprintf("Src: %d %s", uint8(m.last.Source), m.last.Source),
		fmt.Sprintf("Data: %d", m.last.Data),
	}
	y := bounds.Y
	for _, line := range lines {
		if y+m.rowHeight > bounds.Y+bounds.H {
			return
		}
		d.Text(bounds.X, y, line, theme.Foreground)
		y += m.rowHeight
	}
}

func (m *EventMonitor) HandleEvent(_ Navigator, e event.Event) {
	m.last = e
}
