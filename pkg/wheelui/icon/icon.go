// Package icon holds small 1-bit bitmaps and the single function that
// draws them.
//
// Rows are byte-padded and most significant bit first, the layout most
// monochrome panel drivers blit directly.
package icon

import (
	"image/color"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
)

// Icon is one bitmap table entry.
type Icon struct {
	Name   string
	Width  int16
	Height int16
	Data   []byte
}

// Stride returns the number of bytes per row.
func (ic Icon) Stride() int {
	return (int(ic.Width) + 7) / 8
}

// Valid reports whether Data is large enough for the declared size.
func (ic Icon) Valid() bool {
	return ic.Width > 0 && ic.Height > 0 && len(ic.Data) >= ic.Stride()*int(ic.Height)
}

// Bit reports whether the pixel at (x, y) is set.
func (ic Icon) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= int(ic.Width) || y >= int(ic.Height) {
		return false
	}
	b := ic.Data[y*ic.Stride()+x/8]
	return b&(0x80>>uint(x%8)) != 0
}

// Draw blits ic with its top-left corner at (x, y). Malformed icons are
// skipped.
func Draw(d display.Display, x, y int16, ic Icon, c color.RGBA) {
	if !ic.Valid() {
		return
	}
	d.Bitmap(x, y, ic.Width, ic.Height, ic.Data, c)
}

var (
	Speaker = Icon{Name: "speaker", Width: 16, Height: 8, Data: []byte{
		0x04, 0x80,
		0x0C, 0x40,
		0x1D, 0x20,
		0xFC, 0xA0,
		0xFC, 0xA0,
		0x1D, 0x20,
		0x0C, 0x40,
		0x04, 0x80,
	}}

	Play = Icon{Name: "play", Width: 8, Height: 9, Data: []byte{
		0x60, 0x70, 0x78, 0x7C, 0x7E, 0x7C, 0x78, 0x70, 0x60,
	}}

	Pause = Icon{Name: "pause", Width: 8, Height: 9, Data: []byte{
		0xE7, 0xE7, 0xE7, 0xE7, 0xE7, 0xE7, 0xE7, 0xE7, 0xE7,
	}}

	Online = Icon{Name: "online", Width: 16, Height: 8, Data: []byte{
		0x03, 0xC0,
		0x1C, 0x38,
		0x20, 0x04,
		0x10, 0x08,
		0x08, 0x10,
		0x04, 0x20,
		0x02, 0x40,
		0x01, 0x80,
	}}

	Offline = Icon{Name: "offline", Width: 16, Height: 8, Data: []byte{
		0x03, 0xC0,
		0x1C, 0x38,
		0x20, 0x04,
		0x03, 0xC0,
		0x0C, 0x30,
		0x00, 0x00,
		0x01, 0x80,
		0x01, 0x80,
	}}
)

// Table lists the built-in icons.
var Table = []Icon{Speaker, Play, Pause, Online, Offline}

// Lookup finds a built-in icon by name.
func Lookup(name string) (Icon, bool) {
	for _, ic := range Table {
		if ic.Name == name {
			return ic, true
		}
	}
	return Icon{}, false
}
