// Package icon renders square app icons: a flat background with a centered
// letter, or an inset square when no font can be loaded.
package icon

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders a size×size icon. With a nil face the glyph is replaced by a
// filled square inset by size/4 on every side.
func Draw(size int, face font.Face) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetColor(Background)
	dc.Clear()

	if face == nil {
		margin := size / 4
		side := size - 2*margin
		dc.SetColor(Foreground)
		dc.DrawRectangle(float64(margin), float64(margin), float64(side), float64(side))
		dc.Fill()
		return dc.Image()
	}

	// Center the ink box, not the advance box.
	bounds, _ := font.BoundString(face, Glyph)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (size-w)/2 - bounds.Min.X.Floor()
	y := (size-h)/2 - bounds.Min.Y.Floor()

	// Keep a one-pixel border clear so tiny icons never lose their corners.
	img := dc.Image().(*image.RGBA)
	border := image.Rectangle{Min: image.Pt(1, 1), Max: image.Pt(size-1, size-1)}
	inner := img.SubImage(border).(*image.RGBA)
	d := &font.Drawer{
		Dst:  inner,
		Src:  image.NewUniform(Foreground),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(Glyph)
	return img
}
