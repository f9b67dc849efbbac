package sprite

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale enlarges m by an integer factor using nearest-neighbor sampling,
// which keeps the hard pixel edges of the source art instead of blending
// them. Factors below 2 return m untouched.
func Scale(m image.Image, factor int) image.Image {
	if factor < 2 {
		return m
	}

	b := m.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), m, b, xdraw.Src, nil)

	return out
}
