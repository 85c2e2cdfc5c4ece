package screen

import (
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/constants"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
)

// MenuItem represents a single entry in a Menu.
type MenuItem struct {
	Text   string        // Display text for the item
	Target router.Handle // Screen pushed when the item is selected; router.None or the zero value (router.Home) is inert
}

// MenuConfig binds a menu to its inputs.
type MenuConfig struct {
	Wheel     event.Source // Source of cursor movement, defaults to event.Wheel
	SelectID  byte         // Button whose click opens the focused item
	BackID    byte         // Button whose click pops the menu
	NoBack    bool         // Ignore the back button, e.g. on the home menu
	RowHeight int16        // Pixels per row, defaults to constants.DefaultRowHeight
}

// Menu is a vertical list of items navigated with the wheel.
type Menu struct {
	items  []MenuItem
	cfg    MenuConfig
	cursor int
	offset int
}

// NewMenu copies items and creates a menu with the cursor on the first one.
func NewMenu(items []MenuItem, cfg MenuConfig) *Menu {
	if cfg.Wheel == event.None {
		cfg.Wheel = event.Wheel
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = constants.DefaultRowHeight
	}
	return &Menu{
		items: append([]MenuItem(nil), items...),
		cfg:   cfg,
	}
}

// Cursor returns the index of the focused item.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Focused returns the focused item, if any.
func (m *Menu) Focused() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// SetItems replaces the items and moves the cursor back to the first one.
// Menus are often built before the screens they open are registered.
func (m *Menu) SetItems(items []MenuItem) {
	m.items = append(m.items[:0], items...)
	m.cursor = 0
	m.offset = 0
}

func (m *Menu) HandleEvent(nav Navigator, e event.Event) {
	switch {
	case e.Source == m.cfg.Wheel:
		m.move(int(e.Delta()))
	case e.Matches(event.Click, m.cfg.SelectID):
		if item, ok := m.Focused(); ok && item.Target != router.None && item.Target != router.Home {
			nav.Push(item.Target)
		}
	case e.Matches(event.Click, m.cfg.BackID) && !m.cfg.NoBack:
		nav.Pop()
	}
}

func (m *Menu) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.items)-1, m.cursor+delta))
}

func (m *Menu) Draw(d display.Display, bounds display.Rect) {
	theme := display.GetTheme()
	d.Clear(bounds)

	rows := int(bounds.H / m.cfg.RowHeight)
	if rows <= 0 {
		return
	}
	m.scrollTo(rows)

	y := bounds.Y
	for i := m.offset; i < len(m.items) && i < m.offset+rows; i++ {
		row := display.Rect{X: bounds.X, Y: y, W: bounds.W, H: m.cfg.RowHeight}
		fg := theme.Foreground
		if i == m.cursor {
			d.FillRect(row, theme.Highlight)
			fg = theme.Inverse().Foreground
		}
		d.Text(row.X+constants.DefaultPadding, row.Y, m.items[i].Text, fg)
		y += m.cfg.RowHeight
	}
}

// scrollTo keeps the cursor inside the visible window of rows.
func (m *Menu) scrollTo(rows int) {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}
