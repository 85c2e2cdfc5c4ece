// Package displaytest provides an in-memory Display that records every
// drawing call, for tests of screens and views.
package displaytest

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
)

// Op is a single recorded drawing call.
type Op struct {
	Kind  string // "clear", "text", "fill", "stroke", "bitmap"
	Rect  display.Rect
	Text  string
	Color color.RGBA
	Data  []byte
}

func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("text(%d,%d,%q)", o.Rect.X, o.Rect.Y, o.Text)
	default:
		return fmt.Sprintf("%s(%d,%d,%d,%d)", o.Kind, o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H)
	}
}

// Recorder implements display.Display.
type Recorder struct {
	W, H    int16
	Ops     []Op
	Flushes int
}

// New returns a Recorder of the given size.
func New(w, h int16) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int16, int16) {
	return r.W, r.H
}

func (r *Recorder) Clear(rect display.Rect) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Rect: rect})
}

func (r *Recorder) Text(x, y int16, s string, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "text", Rect: display.Rect{X: x, Y: y}, Text: s, Color: c})
}

func (r *Recorder) FillRect(rect display.Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect display.Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", Rect: rect, Color: c})
}

func (r *Recorder) Bitmap(x, y, w, h int16, data []byte, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "bitmap", Rect: display.Rect{X: x, Y: y, W: w, H: h}, Data: data, Color: c})
}

func (r *Recorder) Flush() {
	r.Flushes++
}

// Reset forgets all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Flushes = 0
}

// Texts returns the strings drawn so far, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any drawn string contains substr.
func (r *Recorder) HasText(substr string) bool {
	for _, s := range r.Texts() {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// Count returns how many operations of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
