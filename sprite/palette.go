package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// maxColors is the palette budget of an indexed PNG.
const maxColors = 256

// Palettize reduces m to at most 256 colors so the PNG encoder writes it
// as PNG-8. A transparent palette entry is reserved whenever m has
// transparent pixels, which keeps keyed sprite backgrounds clear, though
// the color channels hidden under them collapse to the single entry.
func Palettize(m image.Image) *image.Paletted {
	// Already paletted and within budget, keep the palette as is
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= maxColors {
		return pm
	}

	b := m.Bounds()

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), q.Quantize(make(color.Palette, 0, maxColors), m))
	draw.Draw(out, out.Bounds(), m, b.Min, draw.Src)

	return out
}
