// Package tinydisplay adapts any TinyGo panel driver to display.Display.
//
// Drivers only need to implement drivers.Displayer. Those that can fill
// rectangles natively (most SPI TFT drivers) get that path for Clear and
// FillRect; everything else is drawn pixel by pixel.
package tinydisplay

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/internal"
)

// Filler is implemented by drivers with a native rectangle fill.
type Filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Display draws onto a drivers.Displayer.
type Display struct {
	dev    drivers.Displayer
	font   tinyfont.Fonter
	ascent int16 // baseline offset from the top of a text row
}

// Option configures a Display.
type Option func(*Display)

// WithFont selects the text font. ascent is the distance from the top of
// a row to the font's baseline.
func WithFont(f tinyfont.Fonter, ascent int16) Option {
	return func(d *Display) {
		d.font = f
		d.ascent = ascent
	}
}

// New wraps dev. Text uses TomThumb unless WithFont says otherwise.
func New(dev drivers.Displayer, opts ...Option) *Display {
	d := &Display{
		dev:    dev,
		font:   &tinyfont.TomThumb,
		ascent: 5,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Display) Size() (int16, int16) {
	return d.dev.Size()
}

func (d *Display) Clear(r display.Rect) {
	d.FillRect(r, display.GetTheme().Background)
}

func (d *Display) Text(x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d.dev, d.font, x, y+d.ascent, s, c)
}

func (d *Display) FillRect(r display.Rect, c color.RGBA) {
	r = r.Intersect(display.Bounds(d))
	if r.Empty() {
		return
	}

	if f, ok := d.dev.(Filler); ok {
		if err := f.FillRectangle(r.X, r.Y, r.W, r.H, c); err == nil {
			return
		}
	}

	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			d.dev.SetPixel(x, y, c)
		}
	}
}

func (d *Display) StrokeRect(r display.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	d.FillRect(display.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	d.FillRect(display.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c)
	d.FillRect(display.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	d.FillRect(display.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

func (d *Display) Bitmap(x, y, w, h int16, data []byte, c color.RGBA) {
	sw, sh := d.Size()
	stride := (int(w) + 7) / 8
	for row := 0; row < int(h); row++ {
		py := y + int16(row)
		if py < 0 || py >= sh {
			continue
		}
		for col := 0; col < int(w); col++ {
			i := row*stride + col/8
			if i >= len(data) {
				return
			}
			if data[i]&(0x80>>uint(col%8)) == 0 {
				continue
			}
			px := x + int16(col)
			if px < 0 || px >= sw {
				continue
			}
			d.dev.SetPixel(px, py, c)
		}
	}
}

func (d *Display) Flush() {
	if err := d.dev.Display(); err != nil {
		internal.GetInternalLogger().Warn("Panel refresh failed", "error", err)
	}
}
