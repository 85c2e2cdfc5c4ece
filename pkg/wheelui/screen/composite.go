package screen

import (
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
)

// Placement positions a view inside a composite. Bounds are relative to
// the composite's own origin.
type Placement struct {
	View   Screen
	Bounds display.Rect
}

// Layout is the fixed wiring of a composite screen.
type Layout struct {
	Views       []Placement
	Controllers []Controller
}

// Composite aggregates views and controllers that share one event stream.
//
// Draw always draws every view; dirtiness is the views' business. Events
// are broadcast to every controller and never consumed, so controllers
// must not depend on each other's order.
type Composite struct {
	views       []Placement
	controllers []Controller
}

// NewComposite resolves layout. The tables are copied; later changes to
// the Layout value have no effect.
func NewComposite(layout Layout) *Composite {
	return &Composite{
		views:       append([]Placement(nil), layout.Views...),
		controllers: append([]Controller(nil), layout.Controllers...),
	}
}

func (c *Composite) Draw(d display.Display, bounds display.Rect) {
	for _, p := range c.views {
		r := p.Bounds.Translate(bounds).Intersect(bounds)
		if r.Empty() {
			continue
		}
		p.View.Draw(d, r)
	}
}

func (c *Composite) HandleEvent(nav Navigator, e event.Event) {
	for _, ctl := range c.controllers {
		ctl.HandleEvent(nav, e)
	}
}

// Invalidate forwards to every view.
func (c *Composite) Invalidate() {
	for _, p := range c.views {
		Invalidate(p.View)
	}
}
