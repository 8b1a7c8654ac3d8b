package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var hintBand = color.RGBA{R: 244, G: 244, B: 236, A: 255}

// drawHint writes text into the padding below the plot, left-aligned with the
// plot area, on a pale band. Text wider than the image is clipped.
func drawHint(img image.Image, text string, f Frame, ink color.Color) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	top := f.Bottom + (b.Max.Y-f.Bottom-lineH)/2
	if top < b.Min.Y {
		top = b.Min.Y
	}
	d := &font.Drawer{Dst: out, Src: image.NewUniform(ink), Face: face}
	w := d.MeasureString(text).Ceil()
	band := image.Rect(f.Left, top-2, f.Left+w+8, top+lineH+2).Intersect(b)
	draw.Draw(out, band, image.NewUniform(hintBand), image.Point{}, draw.Src)
	d.Dot = fixed.P(f.Left+4, top+m.Ascent.Ceil())
	d.DrawString(text)
	return out
}
