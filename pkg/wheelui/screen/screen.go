// Package screen defines the unit of drawing and event handling, and the
// composite and menu screens built on it.
package screen

import (
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
)

// Navigator is the dispatch context handed to every event handler.
type Navigator interface {
	Push(h router.Handle)
	Pop()
	Show(h router.Handle)
	// Put enqueues an event for a later tick.
	Put(source event.Source, data byte)
}

// Screen draws itself into a rectangle and reacts to events.
type Screen interface {
	Draw(d display.Display, bounds display.Rect)
	HandleEvent(nav Navigator, e event.Event)
}

// Controller reacts to events on behalf of a screen. Controllers filter
// events themselves; every controller of a screen sees every event.
type Controller interface {
	HandleEvent(nav Navigator, e event.Event)
}

// Invalidator is implemented by screens that skip repainting unchanged
// content. Invalidate forces a full repaint on the next Draw, and is
// called whenever the screen becomes active.
type Invalidator interface {
	Invalidate()
}

// Invalidate calls s.Invalidate if s implements Invalidator.
func Invalidate(s Screen) {
	if inv, ok := s.(Invalidator); ok {
		inv.Invalidate()
	}
}
