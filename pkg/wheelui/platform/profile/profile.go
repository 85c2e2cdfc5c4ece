// Package profile loads device profiles: the TOML files that describe a
// panel, its theme and which keys or input codes drive each button and
// encoder.
//
// A minimal profile:
//
//	name = "bench"
//
//	[display]
//	width = 128
//	height = 64
//	scale = 4
//
//	[theme]
//	foreground = "#FFFFFF"
//	background = "#000000"
//
//	[[button]]
//	name = "select"
//	id = 1
//	key = "Return"
//	code = 28
//
//	[[encoder]]
//	name = "volume"
//	device = "/dev/input/event3"
package profile

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
)

// ErrInvalidProfile is wrapped by every validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile describes one device.
type Profile struct {
	Name     string    `toml:"name"`
	Display  Display   `toml:"display"`
	Theme    Theme     `toml:"theme"`
	Buttons  []Button  `toml:"button"`
	Encoders []Encoder `toml:"encoder"`
}

// Display describes the panel. Scale and Font only matter to the desktop
// simulator.
type Display struct {
	Width    int16  `toml:"width"`
	Height   int16  `toml:"height"`
	Scale    int    `toml:"scale"`     // Window pixels per panel pixel
	Font     string `toml:"font"`      // TTF used to render text
	FontSize int    `toml:"font_size"` // Points, before scaling
}

// Theme holds "#RRGGBB" colors. Empty entries keep display.Monochrome.
type Theme struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Highlight  string `toml:"highlight"`
	Accent     string `toml:"accent"`
}

// Button binds one momentary button to a keyboard key (desktop) or an
// evdev key code (linux).
type Button struct {
	Name             string `toml:"name"`
	ID               byte   `toml:"id"`
	Key              string `toml:"key"`    // SDL key name, e.g. "Return"
	Code             uint16 `toml:"code"`   // EV_KEY code, e.g. 28 for KEY_ENTER
	Device           string `toml:"device"` // evdev node, e.g. /dev/input/event0
	ActiveLow        bool   `toml:"active_low"`
	DebounceMS       int    `toml:"debounce_ms"`
	ClickThresholdMS int    `toml:"click_threshold_ms"`
}

// Encoder binds one rotary encoder. On the desktop the mouse wheel drives
// it; on linux an EV_REL axis does.
type Encoder struct {
	Name   string `toml:"name"`
	Source uint8  `toml:"source"` // Event source id, defaults to event.Wheel
	Invert bool   `toml:"invert"`
	Device string `toml:"device"`
	Code   uint16 `toml:"code"` // EV_REL code; zero means RelDial
}

// RelDial is the EV_REL code most rotary encoder drivers report on.
const RelDial uint16 = 0x07

// Default returns the profile used when none is given: a 128x64 panel
// with select and back buttons and one wheel.
func Default() *Profile {
	p := &Profile{
		Name: "default",
		Buttons: []Button{
			{Name: "select", ID: 1, Key: "Return", Code: 28},
			{Name: "back", ID: 2, Key: "Escape", Code: 1},
		},
		Encoders: []Encoder{
			{Name: "wheel"},
		},
	}
	p.applyDefaults()
	return p
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads and validates a profile. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Decode(r io.Reader) (*Profile, error) {
	var p Profile
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidProfile, strings.Join(keys, ", "))
	}

	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) applyDefaults() {
	if p.Display.Width == 0 {
		p.Display.Width = 128
	}
	if p.Display.Height == 0 {
		p.Display.Height = 64
	}
	if p.Display.Scale == 0 {
		p.Display.Scale = 4
	}
	if p.Display.FontSize == 0 {
		p.Display.FontSize = 8
	}
	for i := range p.Encoders {
		if p.Encoders[i].Source == 0 {
			p.Encoders[i].Source = uint8(event.Wheel)
		}
		if p.Encoders[i].Code == 0 {
			p.Encoders[i].Code = RelDial
		}
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidProfile.
func (p *Profile) Validate() error {
	if p.Display.Width < 0 || p.Display.Height < 0 || p.Display.Scale < 0 {
		return fmt.Errorf("%w: display dimensions must be positive", ErrInvalidProfile)
	}
	if _, err := p.Theme.Resolve(); err != nil {
		return err
	}

	ids := make(map[byte]string, len(p.Buttons))
	for _, b := range p.Buttons {
		if b.Name == "" {
			return fmt.Errorf("%w: button %d has no name", ErrInvalidProfile, b.ID)
		}
		if other, ok := ids[b.ID]; ok {
			return fmt.Errorf("%w: buttons %q and %q share id %d", ErrInvalidProfile, other, b.Name, b.ID)
		}
		ids[b.ID] = b.Name
		if b.DebounceMS < 0 || b.ClickThresholdMS < 0 {
			return fmt.Errorf("%w: button %q has a negative duration", ErrInvalidProfile, b.Name)
		}
	}

	for _, e := range p.Encoders {
		switch s := event.Source(e.Source); s {
		case event.ButtonPress, event.ButtonRelease, event.Click, event.Hold, event.Pop:
			return fmt.Errorf("%w: encoder %q uses reserved source %s", ErrInvalidProfile, e.Name, s)
		}
	}
	return nil
}

// Button returns the button called name.
func (p *Profile) Button(name string) (Button, bool) {
	for _, b := range p.Buttons {
		if b.Name == name {
			return b, true
		}
	}
	return Button{}, false
}

// Config converts the button into its input configuration.
func (b Button) Config() input.ButtonConfig {
	return input.ButtonConfig{
		ID:             b.ID,
		ActiveLow:      b.ActiveLow,
		Debounce:       time.Duration(b.DebounceMS) * time.Millisecond,
		ClickThreshold: time.Duration(b.ClickThresholdMS) * time.Millisecond,
	}
}

// Config converts the encoder into its input configuration.
func (e Encoder) Config() input.EncoderConfig {
	return input.EncoderConfig{
		Source: event.Source(e.Source),
		Invert: e.Invert,
	}
}

// Resolve parses the theme colors on top of display.Monochrome.
func (t Theme) Resolve() (display.Theme, error) {
	theme := display.Monochrome
	fields := []struct {
		name string
		raw  string
		dst  *color.RGBA
	}{
		{"foreground", t.Foreground, &theme.Foreground},
		{"background", t.Background, &theme.Background},
		{"highlight", t.Highlight, &theme.Highlight},
		{"accent", t.Accent, &theme.Accent},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := ParseColor(f.raw)
		if err != nil {
			return display.Theme{}, fmt.Errorf("%w: theme %s: %w", ErrInvalidProfile, f.name, err)
		}
		*f.dst = c
	}
	return theme, nil
}

// ParseColor parses "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want six hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return display.HexToColor(uint32(v)), nil
}
