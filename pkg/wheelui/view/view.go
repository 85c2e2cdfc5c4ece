// Package view provides leaf screens that render models.
//
// Views repaint their rectangle only when their model is dirty or after
// Invalidate, and reset the model once they have drawn it. When several
// views share a model only the first one drawn observes the change, so
// keep one visible view per model.
package view

import (
	"fmt"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/icon"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/model"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/screen"
)

// passive implements the event half of screen.Screen for views.
type passive struct{}

func (passive) HandleEvent(screen.Navigator, event.Event) {}

// stale tracks whether a view must repaint regardless of its model.
type stale struct {
	drawn bool
}

func (s *stale) Invalidate() {
	s.drawn = false
}

// Label draws fixed text.
type Label struct {
	passive
	stale
	Text string
}

func NewLabel(text string) *Label {
	return &Label{Text: text}
}

func (l *Label) Draw(d display.Display, bounds display.Rect) {
	if l.drawn {
		return
	}
	d.Clear(bounds)
	d.Text(bounds.X, bounds.Y, l.Text, display.GetTheme().Foreground)
	l.drawn = true
}

// Value draws a model's value through a format string.
type Value[T any] struct {
	passive
	stale
	Model  model.Model[T]
	Format string // fmt verb string, "%v" when empty
}

func NewValue[T any](m model.Model[T], format string) *Value[T] {
	if format == "" {
		format = "%v"
	}
	return &Value[T]{Model: m, Format: format}
}

func (v *Value[T]) Draw(d display.Display, bounds display.Rect) {
	if v.drawn && !v.Model.Dirty() {
		return
	}
	d.Clear(bounds)
	d.Text(bounds.X, bounds.Y, fmt.Sprintf(v.Format, v.Model.Value()), display.GetTheme().Foreground)
	v.Model.Reset()
	v.drawn = true
}

// Bar draws an integer model as a horizontal level between Min and Max.
type Bar struct {
	passive
	stale
	Model    model.Model[int]
	Min, Max int
}

func NewBar(m model.Model[int], lo, hi int) *Bar {
	return &Bar{Model: m, Min: lo, Max: hi}
}

// Fill returns the width in pixels of the filled part for a given
// outline width.
func (b *Bar) Fill(width int16) int16 {
	span := b.Max - b.Min
	if span <= 0 || width <= 2 {
		return 0
	}
	v := max(b.Min, min(b.Max, b.Model.Value()))
	return int16(int(width-2) * (v - b.Min) / span)
}

func (b *Bar) Draw(d display.Display, bounds display.Rect) {
	if b.drawn && !b.Model.Dirty() {
		return
	}
	theme := display.GetTheme()
	d.Clear(bounds)
	d.StrokeRect(bounds, theme.Foreground)
	if fill := b.Fill(bounds.W); fill > 0 {
		inner := bounds.Inset(display.UniformPadding(1))
		inner.W = fill
		d.FillRect(inner, theme.Accent)
	}
	b.Model.Reset()
	b.drawn = true
}

// Icon draws a fixed icon at the top-left of its bounds.
type Icon struct {
	passive
	stale
	Icon icon.Icon
}

func NewIcon(ic icon.Icon) *Icon {
	return &Icon{Icon: ic}
}

func (v *Icon) Draw(d display.Display, bounds display.Rect) {
	if v.drawn {
		return
	}
	d.Clear(bounds)
	drawIcon(d, bounds, v.Icon)
	v.drawn = true
}

// IconSwitch draws On or Off depending on a boolean model.
type IconSwitch struct {
	passive
	stale
	Model   model.Model[bool]
	On, Off icon.Icon
}

func NewIconSwitch(m model.Model[bool], on, off icon.Icon) *IconSwitch {
	return &IconSwitch{Model: m, On: on, Off: off}
}

func (v *IconSwitch) Draw(d display.Display, bounds display.Rect) {
	if v.drawn && !v.Model.Dirty() {
		return
	}
	ic := v.Off
	if v.Model.Value() {
		ic = v.On
	}
	d.Clear(bounds)
	drawIcon(d, bounds, ic)
	v.Model.Reset()
	v.drawn = true
}

// drawIcon draws ic at the top-left of bounds. Icons that do not fit
// are skipped.
func drawIcon(d display.Display, bounds display.Rect, ic icon.Icon) {
	if ic.Width > bounds.W || ic.Height > bounds.H {
		return
	}
	icon.Draw(d, bounds.X, bounds.Y, ic, display.GetTheme().Accent)
}
