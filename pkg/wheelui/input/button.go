package input

import (
	"time"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/constants"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
)

// ButtonConfig binds a momentary button. Zero durations take the
// defaults from the constants package.
type ButtonConfig struct {
	ID             byte          // Carried as data on every emitted event
	ActiveLow      bool          // Pressed when the pin reads false
	Debounce       time.Duration // Raw transitions ignored after an edge
	ClickThreshold time.Duration // Presses held longer than this are holds
}

func (c ButtonConfig) withDefaults() ButtonConfig {
	if c.Debounce <= 0 {
		c.Debounce = constants.DebounceWindow
	}
	if c.ClickThreshold <= 0 {
		c.ClickThreshold = constants.ClickThreshold
	}
	return c
}

// Button debounces a pin and classifies press/release pairs.
//
// Every edge emits press or release. A release additionally emits hold
// when the press lasted longer than the click threshold, otherwise click.
type Button struct {
	pin   Pin
	clock clock.Clock
	cfg   ButtonConfig

	debounce       uint64
	clickThreshold uint64

	raw           bool // last accepted raw level
	pressed       bool
	pressedAt     uint64
	debounceUntil uint64
}

// NewButton creates a button in the released state. The raw level is
// assumed idle until the first poll observes otherwise.
func NewButton(pin Pin, c clock.Clock, cfg ButtonConfig) *Button {
	cfg = cfg.withDefaults()
	return &Button{
		pin:            pin,
		clock:          c,
		cfg:            cfg,
		debounce:       clock.Millis(cfg.Debounce),
		clickThreshold: clock.Millis(cfg.ClickThreshold),
		raw:            cfg.ActiveLow,
	}
}

// ID returns the configured button id.
func (b *Button) ID() byte {
	return b.cfg.ID
}

// Pressed reports the debounced logical state.
func (b *Button) Pressed() bool {
	return b.pressed
}

func (b *Button) Poll(sink Sink) {
	now := b.clock.Millis()
	if now < b.debounceUntil {
		return
	}

	raw := b.pin.Read()
	if raw == b.raw {
		return
	}
	b.raw = raw

	pressed := raw != b.cfg.ActiveLow
	b.pressed = pressed

	if pressed {
		sink.Put(event.ButtonPress, b.cfg.ID)
		b.pressedAt = now
	} else {
		sink.Put(event.ButtonRelease, b.cfg.ID)
		if now-b.pressedAt > b.clickThreshold {
			sink.Put(event.Hold, b.cfg.ID)
		} else {
			sink.Put(event.Click, b.cfg.ID)
		}
	}

	b.debounceUntil = now + b.debounce
}
