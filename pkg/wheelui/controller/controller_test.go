package controller

import (
	"testing"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/model"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
)

type fakeNav struct {
	pushed []router.Handle
	shown  []router.Handle
	pops   int
	posted []event.Event
}

func (n *fakeNav) Push(h router.Handle) { n.pushed = append(n.pushed, h) }
func (n *fakeNav) Pop() { n.pops++ }
func (n *fakeNav) Show(h router.Handle) { n.shown = append(n.shown, h) }
func (n *fakeNav) Put(source event.Source, data byte) {
	n.posted = append(n.posted, event.Event{Source: source, Data: data})
}

func wheel(delta int8) event.Event {
	return event.Event{Source: event.Wheel, Data: byte(delta)}
}

func TestKnob_ClampsToMax(t *testing.T) {
	m := model.NewDirect(5)
	k := NewKnob[int](m, 0, 10)
	nav := &fakeNav{}

	for i := 0; i < 5; i++ {
		k.HandleEvent(nav, wheel(20))
		if m.Value() > 10 {
			t.Fatalf("value %d exceeded max", m.Value())
		}
	}
	if m.Value() != 10 {
		t.Errorf("Value() = %d, want 10", m.Value())
	}
}

func TestKnob_Steps(t *testing.T) {
	tests := map[string]struct {
		start, coef int
		deltas      []int8
		expected    int
	}{
		"single step up":       {start: 5, coef: 1, deltas: []int8{1}, expected: 6},
		"negative delta":       {start: 5, coef: 1, deltas: []int8{-3}, expected: 2},
		"clamps at min":        {start: 2, coef: 1, deltas: []int8{-20}, expected: 0},
		"coefficient scales":   {start: 0, coef: 2, deltas: []int8{3}, expected: 6},
		"max bound inclusive":  {start: 9, coef: 1, deltas: []int8{1}, expected: 10},
		"min bound inclusive":  {start: 1, coef: 1, deltas: []int8{-1}, expected: 0},
		"back and forth":       {start: 5, coef: 1, deltas: []int8{4, -2, 1}, expected: 8},
		"large negative delta": {start: 10, coef: 1, deltas: []int8{-128}, expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := model.NewDirect(tt.start)
			k := NewKnob[int](m, 0, 10)
			k.Coefficient = tt.coef

			for _, d := range tt.deltas {
				k.HandleEvent(&fakeNav{}, wheel(d))
			}
			if m.Value() != tt.expected {
				t.Errorf("Value() = %d, want %d", m.Value(), tt.expected)
			}
			if !m.Dirty() {
				t.Error("model should be dirty after a wheel event")
			}
		})
	}
}

func TestKnob_NarrowTypeDoesNotWrap(t *testing.T) {
	tests := map[string]struct {
		start, lo, hi, coef int8
		delta               int8
		want                int8
	}{
		"sum overflows":       {start: 120, lo: -100, hi: 127, coef: 1, delta: 100, want: 127},
		"step overflows up":   {start: 10, lo: 0, hi: 100, coef: 2, delta: 100, want: 100},
		"step overflows down": {start: 10, lo: 0, hi: 100, coef: 2, delta: -100, want: 0},
		"step fits":           {start: 10, lo: 0, hi: 100, coef: 2, delta: 3, want: 16},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := model.NewDirect(tt.start)
			k := NewKnob[int8](m, tt.lo, tt.hi)
			k.Coefficient = tt.coef
			k.HandleEvent(&fakeNav{}, wheel(tt.delta))
			if m.Value() != tt.want {
				t.Errorf("Value() = %d, want %d", m.Value(), tt.want)
			}
		})
	}
}

func TestKnob_Float(t *testing.T) {
	m := model.NewDirect(0.5)
	k := &Knob[float64]{Source: event.Wheel, Coefficient: 0.25, Min: 0, Max: 1, Model: m}

	k.HandleEvent(&fakeNav{}, wheel(1))
	if m.Value() != 0.75 {
		t.Errorf("Value() = %v, want 0.75", m.Value())
	}
	k.HandleEvent(&fakeNav{}, wheel(10))
	if m.Value() != 1 {
		t.Errorf("Value() = %v, want clamped to 1", m.Value())
	}
}

func TestKnob_IgnoresOtherSources(t *testing.T) {
	m := model.NewDirect(5)
	k := NewKnob[int](m, 0, 10)
	k.HandleEvent(&fakeNav{}, event.Event{Source: event.Click, Data: 1})
	if m.Dirty() || m.Value() != 5 {
		t.Errorf("click should not move the knob: (%d, %v)", m.Value(), m.Dirty())
	}
}

func TestToggle(t *testing.T) {
	m := model.NewDirect(false)
	c := NewToggle(event.Click, 3, m)

	c.HandleEvent(&fakeNav{}, event.Event{Source: event.Click, Data: 4})
	c.HandleEvent(&fakeNav{}, event.Event{Source: event.Hold, Data: 3})
	if m.Dirty() {
		t.Fatal("non-matching events should not touch the model")
	}

	c.HandleEvent(&fakeNav{}, event.Event{Source: event.Click, Data: 3})
	if !m.Value() || !m.Dirty() {
		t.Errorf("after first click: (%v, %v), want (true, true)", m.Value(), m.Dirty())
	}
	c.HandleEvent(&fakeNav{}, event.Event{Source: event.Click, Data: 3})
	if m.Value() {
		t.Error("second click should flip back to false")
	}
}

func TestNav(t *testing.T) {
	nav := &fakeNav{}
	push := NewPush(event.Click, 1, router.Handle(4))
	pop := NewPop(event.Click, 2)
	show := NewShow(event.Hold, 1, router.Handle(2))

	for _, e := range []event.Event{
		{Source: event.Click, Data: 1},
		{Source: event.Click, Data: 2},
		{Source: event.Hold, Data: 1},
		{Source: event.Hold, Data: 2},
	} {
		push.HandleEvent(nav, e)
		pop.HandleEvent(nav, e)
		show.HandleEvent(nav, e)
	}

	if len(nav.pushed) != 1 || nav.pushed[0] != 4 {
		t.Errorf("pushed = %v, want [4]", nav.pushed)
	}
	if nav.pops != 1 {
		t.Errorf("pops = %d, want 1", nav.pops)
	}
	if len(nav.shown) != 1 || nav.shown[0] != 2 {
		t.Errorf("shown = %v, want [2]", nav.shown)
	}
}

func TestShortcut(t *testing.T) {
	nav := &fakeNav{}
	s := &Shortcut{Source: event.Hold, ID: 2, Post: event.Pop}

	s.HandleEvent(nav, event.Event{Source: event.Click, Data: 2})
	s.HandleEvent(nav, event.Event{Source: event.Hold, Data: 2})

	if len(nav.posted) != 1 || nav.posted[0].Source != event.Pop {
		t.Errorf("posted = %v, want one pop", nav.posted)
	}
}
