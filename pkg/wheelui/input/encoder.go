package input

import (
	"math"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
)

// EncoderConfig binds a rotary encoder. A zero Source means event.Wheel.
type EncoderConfig struct {
	Source event.Source
	Invert bool // Swap clockwise and counter-clockwise
}

// Encoder emits one wheel event per poll carrying the signed click delta.
type Encoder struct {
	counter Counter
	cfg     EncoderConfig
	pending int
}

func NewEncoder(counter Counter, cfg EncoderConfig) *Encoder {
	if cfg.Source == event.None {
		cfg.Source = event.Wheel
	}
	return &Encoder{counter: counter, cfg: cfg}
}

// Source returns the source id wheel events are emitted with.
func (e *Encoder) Source() event.Source {
	return e.cfg.Source
}

// Poll drains the counter. A delta beyond the int8 payload range is
// emitted in full-scale steps, one per poll, until the remainder fits.
func (e *Encoder) Poll(sink Sink) {
	delta := e.counter.Take()
	if e.cfg.Invert {
		delta = -delta
	}
	delta += e.pending
	if delta == 0 {
		return
	}
	out := max(math.MinInt8, min(math.MaxInt8, delta))
	e.pending = delta - out
	sink.Put(e.cfg.Source, byte(int8(out)))
}
