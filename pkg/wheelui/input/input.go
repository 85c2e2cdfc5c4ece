// Package input turns raw electrical input into semantic events.
//
// Sources are polled once per cycle by the caller, before the UI tick.
// Each source owns its own timing state; nothing is shared between them.
package input

import "github.com/BrandonKowalski/wheelui/pkg/wheelui/event"

// Pin reads the raw level of a digital input.
type Pin interface {
	Read() bool
}

// Counter returns the encoder clicks accumulated since the previous call
// and resets the accumulator.
type Counter interface {
	Take() int
}

// Sink receives emitted events. event.Queue satisfies it.
type Sink interface {
	Put(source event.Source, data byte)
}

// Source is anything that can be polled for events.
type Source interface {
	Poll(sink Sink)
}

// Sources polls a fixed list of sources in order.
type Sources []Source

func (s Sources) Poll(sink Sink) {
	for _, src := range s {
		src.Poll(sink)
	}
}

// PinFunc adapts a function to the Pin interface.
type PinFunc func() bool

func (f PinFunc) Read() bool {
	return f()
}

// CounterFunc adapts a function to the Counter interface.
type CounterFunc func() int

func (f CounterFunc) Take() int {
	return f()
}
