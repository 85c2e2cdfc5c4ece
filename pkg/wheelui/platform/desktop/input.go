package desktop

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/internal"
)

// Events drains the SDL event queue once per poll. Register it as the
// first input source so key pins and the wheel see fresh state.
type Events struct {
	wheel  int
	quit   bool
	OnQuit func()
}

// Poll pumps SDL events. It never emits wheelui events itself.
func (e *Events) Poll(input.Sink) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			e.requestQuit()
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_q && ev.Keysym.Mod&sdl.KMOD_CTRL != 0 {
				e.requestQuit()
			}
		case *sdl.MouseWheelEvent:
			y := int(ev.Y)
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			e.wheel += y
		}
	}
}

func (e *Events) requestQuit() {
	if e.quit {
		return
	}
	e.quit = true
	internal.GetInternalLogger().Debug("Quit requested")
	if e.OnQuit != nil {
		e.OnQuit()
	}
}

// Quit reports whether the window was closed.
func (e *Events) Quit() bool {
	return e.quit
}

// Wheel returns a counter over the mouse wheel clicks seen since the
// last Take.
func (e *Events) Wheel() input.Counter {
	return input.CounterFunc(func() int {
		n := e.wheel
		e.wheel = 0
		return n
	})
}

// KeyPin returns a pin that reads high while the named key is held.
// Names are SDL key names such as "Return", "Space" or "Left".
func KeyPin(name string) (input.Pin, error) {
	sc := sdl.GetScancodeFromName(name)
	if sc == sdl.SCANCODE_UNKNOWN {
		return nil, fmt.Errorf("key %q: %w", name, wheelui.ErrUnknownDevice)
	}
	return input.PinFunc(func() bool {
		state := sdl.GetKeyboardState()
		return int(sc) < len(state) && state[sc] != 0
	}), nil
}

// Clock reads SDL's millisecond tick counter relative to its creation.
type Clock struct {
	start uint64
}

func NewClock() *Clock {
	return &Clock{start: sdl.GetTicks64()}
}

func (c *Clock) Millis() uint64 {
	return sdl.GetTicks64() - c.start
}
