// Package display defines the drawing capability screens render through,
// along with rectangle helpers and the color theme.
//
// Implementations live under platform/. None of the drawing calls report
// failures; a display that cannot draw simply shows nothing.
package display

import "image/color"

// Display is the raw drawing surface of the device.
type Display interface {
	// Size returns the drawable width and height in pixels.
	Size() (w, h int16)
	// Clear fills r with the theme background.
	Clear(r Rect)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y int16, s string, c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	// Bitmap draws a 1-bit image whose rows are byte-padded, most
	// significant bit first. Unset bits are left untouched.
	Bitmap(x, y, w, h int16, data []byte, c color.RGBA)
	// Flush pushes the frame to the panel.
	Flush()
}

// Bounds returns the full drawable area of d.
func Bounds(d Display) Rect {
	w, h := d.Size()
	return Rect{W: w, H: h}
}
