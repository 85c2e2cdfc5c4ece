package display

import "image/color"

// Theme defines the colors views draw with. Monochrome panels only care
// whether a color is black.
type Theme struct {
	Foreground color.RGBA // Text and strokes
	Background color.RGBA // Cleared areas
	Highlight  color.RGBA // Selected menu row background
	Accent     color.RGBA // Bars and icons
}

// Monochrome is the default theme for 1-bit OLED panels.
var Monochrome = Theme{
	Foreground: HexToColor(0xFFFFFF),
	Background: HexToColor(0x000000),
	Highlight:  HexToColor(0xFFFFFF),
	Accent:     HexToColor(0xFFFFFF),
}

var currentTheme = Monochrome

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// Inverse returns the foreground/background swapped, for highlighted text.
func (t Theme) Inverse() Theme {
	t.Foreground, t.Background = t.Background, t.Foreground
	return t
}
