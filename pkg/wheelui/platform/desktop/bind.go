package desktop

import (
	"fmt"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/internal"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
)

// Bind maps a profile onto the keyboard and mouse wheel. The returned
// sources start with events, so SDL state is pumped before any pin is
// read. Only the first encoder gets the wheel.
func Bind(p *profile.Profile, events *Events, c clock.Clock) (input.Sources, error) {
	sources := input.Sources{events}

	for _, b := range p.Buttons {
		if b.Key == "" {
			internal.GetInternalLogger().Warn("Button has no key binding", "button", b.Name)
			continue
		}
		pin, err := KeyPin(b.Key)
		if err != nil {
			return nil, fmt.Errorf("button %q: %w", b.Name, err)
		}
		sources = append(sources, input.NewButton(pin, c, b.Config()))
	}

	for i, e := range p.Encoders {
		if i > 0 {
			internal.GetInternalLogger().Warn("Only one encoder can follow the mouse wheel", "encoder", e.Name)
			continue
		}
		sources = append(sources, input.NewEncoder(events.Wheel(), e.Config()))
	}

	return sources, nil
}
