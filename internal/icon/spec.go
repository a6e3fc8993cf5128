package icon

import "image/color"

// Glyph is the letter drawn on every icon.
const Glyph = "S"

// Icon colors.
var (
	Background = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// fontRatio is the glyph font size as a fraction of the icon side.
const fontRatio = 0.6

// Spec describes one icon file: a square of Size pixels written to Filename.
type Spec struct {
	Size     int
	Filename string
}

// DefaultSpecs returns the icons written by mkicon, in generation order.
func DefaultSpecs() []Spec {
	return []Spec{
		{Size: 192, Filename: "icon-192x192.png"},
		{Size: 512, Filename: "icon-512x512.png"},
	}
}

// FontPixels returns the glyph size in pixels for an icon of the given side.
func FontPixels(size int) float64 {
	return float64(int(float64(size) * fontRatio))
}
