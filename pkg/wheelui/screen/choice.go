package screen

import (
	"strings"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/constants"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/model"
)

// ChoiceConfig binds a choice to its inputs.
type ChoiceConfig struct {
	Wheel       event.Source // Source that cycles the options, defaults to event.Wheel
	ConfirmID   byte         // Button whose click commits the highlighted option
	BackID      byte         // Button whose click leaves without committing
	DisableBack bool         // Ignore the back button
	RowHeight   int16        // Pixels per row, defaults to constants.DefaultRowHeight
}

// Choice shows a message above a single-line option selector:
//
//	< Option >
//
// The wheel cycles through the options with wrap-around. Confirming
// writes the option index into Model and pops the screen.
type Choice struct {
	Message string // May span several lines separated by "\n"
	Options []string
	Model   model.Model[int]

	cfg      ChoiceConfig
	selected int
}

// NewChoice creates a choice highlighting the option Model currently holds.
func NewChoice(message string, options []string, m model.Model[int], cfg ChoiceConfig) *Choice {
	if cfg.Wheel == event.None {
		cfg.Wheel = event.Wheel
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = constants.DefaultRowHeight
	}
	c := &Choice{
		Message: message,
		Options: append([]string(nil), options...),
		Model:   m,
		cfg:     cfg,
	}
	c.selected = c.clamp(m.Value())
	return c
}

// Selected returns the highlighted option index.
func (c *Choice) Selected() int {
	return c.selected
}

// Invalidate re-reads the selection from Model, which may have changed
// while the choice was not on screen.
func (c *Choice) Invalidate() {
	c.selected = c.clamp(c.Model.Value())
}

func (c *Choice) clamp(i int) int {
	if i < 0 || i >= len(c.Options) {
		return 0
	}
	return i
}

func (c *Choice) HandleEvent(nav Navigator, e event.Event) {
	if len(c.Options) == 0 {
		return
	}
	switch {
	case e.Source == c.cfg.Wheel:
		n := len(c.Options)
		c.selected = ((c.selected+int(e.Delta()))%n + n) % n
	case e.Matches(event.Click, c.cfg.ConfirmID):
		c.Model.Update(c.selected)
		nav.Pop()
	case e.Matches(event.Click, c.cfg.BackID) && !c.cfg.DisableBack:
		c.selected = c.clamp(c.Model.Value())
		nav.Pop()
	}
}

func (c *Choice) Draw(d display.Display, bounds display.Rect) {
	theme := display.GetTheme()
	d.Clear(bounds)

	y := bounds.Y
	if c.Message != "" {
		for _, line := range strings.Split(c.Message, "\n") {
			if y+c.cfg.RowHeight > bounds.Y+bounds.H {
				break
			}
			d.Text(bounds.X+constants.DefaultPadding, y, line, theme.Foreground)
			y += c.cfg.RowHeight
		}
	}

	if len(c.Options) == 0 || y+c.cfg.RowHeight > bounds.Y+bounds.H {
		return
	}
	row := display.Rect{X: bounds.X, Y: y, W: bounds.W, H: c.cfg.RowHeight}
	d.FillRect(row, theme.Highlight)
	d.Text(row.X+constants.DefaultPadding, row.Y, "< "+c.Options[c.selected]+" >", theme.Inverse().Foreground)
}
