/*
Package sprite prepares decoded Wolf3D rasters for the game's renderer.

The source bitmaps are palette-indexed images with no alpha channel.
Convert reinterprets any decoded image as 4-channel non-premultiplied
RGBA, synthesizing a fully opaque alpha for sources that carry none.
Colorkey additionally clears the sprite sheet background: the dumps mark
background with a single solid color placed in the top-left corner, and
every pixel whose color channels match that corner exactly has its alpha
set to zero while the color channels stay as they were.
*/
package sprite

import (
	"image"
	"image/color"
	"image/draw"
)

// Convert returns m as an NRGBA image with its top-left corner at
// (0, 0). Sources without an alpha channel come out fully opaque.
func Convert(m image.Image) *image.NRGBA {
	b := m.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), m, b.Min, draw.Src)
	return out
}

// Colorkey converts m to NRGBA and keys its background to transparent.
// The key is whatever color occupies the top-left pixel; only the three
// color channels take part in the match and there is no tolerance, so
// applying Colorkey twice yields the same pixels as applying it once.
func Colorkey(m image.Image) *image.NRGBA {
	out := Convert(m)
	key := out.NRGBAAt(0, 0)

	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := out.NRGBAAt(x, y); c.R == key.R && c.G == key.G && c.B == key.B {
				out.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 0})
			}
		}
	}

	return out
}
