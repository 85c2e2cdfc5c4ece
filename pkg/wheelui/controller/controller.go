// Package controller provides the stateless event handlers that bind
// input events to models and navigation.
//
// Each controller reacts to exactly one (source, id) pair and ignores
// everything else, which makes it safe to broadcast every event to every
// controller of a composite screen.
package controller

import (
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/model"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/screen"
)

// Toggle flips a boolean model.
type Toggle struct {
	Source event.Source
	ID     byte
	Model  model.Model[bool]
}

func NewToggle(source event.Source, id byte, m model.Model[bool]) *Toggle {
	return &Toggle{Source: source, ID: id, Model: m}
}

func (c *Toggle) HandleEvent(_ screen.Navigator, e event.Event) {
	if !e.Matches(c.Source, c.ID) {
		return
	}
	c.Model.Update(!c.Model.Value())
}

// Number is the set of types a Knob can drive.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Knob adjusts a numeric model by the wheel delta, clamped to [Min, Max].
type Knob[T Number] struct {
	Source      event.Source
	Coefficient T
	Min, Max    T
	Model       model.Model[T]
}

// NewKnob creates a knob on event.Wheel with a coefficient of one.
func NewKnob[T Number](m model.Model[T], lo, hi T) *Knob[T] {
	return &Knob[T]{
		Source:      event.Wheel,
		Coefficient: 1,
		Min:         lo,
		Max:         hi,
		Model:       m,
	}
}

func (c *Knob[T]) HandleEvent(_ screen.Navigator, e event.Event) {
	if e.Source != c.Source {
		return
	}
	v := c.Model.Value()
	if isFloat[T]() {
		v = T(float64(v) + float64(c.Coefficient)*float64(e.Delta()))
	} else {
		v = c.addInt(v, int64(e.Delta()))
	}
	c.Model.Update(max(c.Min, min(c.Max, v)))
}

// addInt adds Coefficient*delta to v in int64, saturating at Min and Max
// so narrow integer types cannot wrap.
func (c *Knob[T]) addInt(v T, delta int64) T {
	coef := int64(c.Coefficient)
	step := coef * delta
	if delta != 0 && step/delta != coef {
		if (coef > 0) == (delta > 0) {
			return c.Max
		}
		return c.Min
	}
	x := int64(v)
	switch {
	case step > 0 && x > int64(c.Max)-step:
		return c.Max
	case step < 0 && x < int64(c.Min)-step:
		return c.Min
	}
	return T(x + step)
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// Nav runs a navigation action on a matching event.
type Nav struct {
	Source event.Source
	ID     byte
	Action func(nav screen.Navigator)
}

func (c *Nav) HandleEvent(nav screen.Navigator, e event.Event) {
	if !e.Matches(c.Source, c.ID) || c.Action == nil {
		return
	}
	c.Action(nav)
}

// NewPush creates a Nav that pushes target.
func NewPush(source event.Source, id byte, target router.Handle) *Nav {
	return &Nav{
		Source: source,
		ID:     id,
		Action: func(nav screen.Navigator) { nav.Push(target) },
	}
}

// NewPop creates a Nav that pops the active screen.
func NewPop(source event.Source, id byte) *Nav {
	return &Nav{
		Source: source,
		ID:     id,
		Action: func(nav screen.Navigator) { nav.Pop() },
	}
}

// NewShow creates a Nav that jumps straight to target.
func NewShow(source event.Source, id byte, target router.Handle) *Nav {
	return &Nav{
		Source: source,
		ID:     id,
		Action: func(nav screen.Navigator) { nav.Show(target) },
	}
}

// Shortcut re-posts a matching event as another event, e.g. a hold on
// the back button as event.Pop.
type Shortcut struct {
	Source event.Source
	ID     byte
	Post   event.Source
	Data   byte
}

func (c *Shortcut) HandleEvent(nav screen.Navigator, e event.Event) {
	if !e.Matches(c.Source, c.ID) {
		return
	}
	nav.Put(c.Post, c.Data)
}
