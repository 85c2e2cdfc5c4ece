package tinydisplay

import (
	"errors"
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/icon"
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// panel is an in-memory drivers.Displayer.
type panel struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	displays int
	err      error
}

func newPanel(w, h int16) *panel {
	return &panel{w: w, h: h, pixels: make(map[[2]int16]color.RGBA)}
}

func (p *panel) Size() (int16, int16) { return p.w, p.h }

func (p *panel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		panic("pixel out of range")
	}
	p.pixels[[2]int16{x, y}] = c
}

func (p *panel) Display() error {
	p.displays++
	return p.err
}

func (p *panel) lit() int {
	n := 0
	for _, c := range p.pixels {
		if c == white {
			n++
		}
	}
	return n
}

// fillPanel records native fills.
type fillPanel struct {
	*panel
	fills []display.Rect
}

func (p *fillPanel) FillRectangle(x, y, w, h int16, _ color.RGBA) error {
	p.fills = append(p.fills, display.Rect{X: x, Y: y, W: w, H: h})
	return nil
}

func TestFillRect_Clips(t *testing.T) {
	p := newPanel(8, 8)
	d := New(p)

	d.FillRect(display.Rect{X: 6, Y: 6, W: 10, H: 10}, white)

	if got := p.lit(); got != 4 {
		t.Errorf("lit pixels = %d, want 4", got)
	}
}

func TestFillRect_NativeFill(t *testing.T) {
	p := &fillPanel{panel: newPanel(16, 16)}
	d := New(p)

	d.FillRect(display.Rect{X: -2, Y: 0, W: 4, H: 4}, white)

	if len(p.fills) != 1 || p.fills[0] != (display.Rect{X: 0, Y: 0, W: 2, H: 4}) {
		t.Errorf("fills = %v", p.fills)
	}
	if p.lit() != 0 {
		t.Error("native fill should bypass SetPixel")
	}
}

func TestStrokeRect(t *testing.T) {
	p := newPanel(10, 10)
	d := New(p)

	d.StrokeRect(display.Rect{X: 1, Y: 1, W: 4, H: 3}, white)

	// 4+4 horizontal, plus 1 interior pixel on each vertical edge.
	if got := p.lit(); got != 10 {
		t.Errorf("lit pixels = %d, want 10", got)
	}
	if _, ok := p.pixels[[2]int16{2, 2}]; ok {
		t.Error("interior pixel drawn")
	}
}

func TestBitmap(t *testing.T) {
	p := newPanel(32, 16)
	d := New(p)

	icon.Draw(d, 2, 3, icon.Speaker, white)

	for y := 0; y < int(icon.Speaker.Height); y++ {
		for x := 0; x < int(icon.Speaker.Width); x++ {
			_, lit := p.pixels[[2]int16{int16(x) + 2, int16(y) + 3}]
			if lit != icon.Speaker.Bit(x, y) {
				t.Fatalf("pixel (%d,%d) lit=%v, want %v", x, y, lit, !lit)
			}
		}
	}
}

func TestBitmap_ClipsToPanel(t *testing.T) {
	p := newPanel(4, 4)
	d := New(p)

	d.Bitmap(-4, 2, 16, 4, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, white)

	if got := p.lit(); got != 8 {
		t.Errorf("lit pixels = %d, want 8", got)
	}
}

func TestText(t *testing.T) {
	p := newPanel(64, 16)
	d := New(p, WithFont(&tinyfont.TomThumb, 5))

	d.Text(0, 0, "Hi", white)

	if p.lit() == 0 {
		t.Fatal("no pixels drawn")
	}
	for xy := range p.pixels {
		if xy[1] >= 8 {
			t.Errorf("pixel %v below the first text row", xy)
		}
	}
}

func TestFlush(t *testing.T) {
	p := newPanel(4, 4)
	d := New(p)

	d.Flush()
	p.err = errors.New("spi timeout")
	d.Flush()

	if p.displays != 2 {
		t.Errorf("Display() calls = %d, want 2", p.displays)
	}
}

func TestClear_UsesThemeBackground(t *testing.T) {
	p := newPanel(2, 2)
	d := New(p)

	d.Clear(display.Bounds(d))

	for xy, c := range p.pixels {
		if c != display.GetTheme().Background {
			t.Errorf("pixel %v = %v, want background", xy, c)
		}
	}
	if len(p.pixels) != 4 {
		t.Errorf("cleared %d pixels, want 4", len(p.pixels))
	}
}
