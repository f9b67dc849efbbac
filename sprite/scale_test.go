package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleBelowTwoReturnsSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))

	assert.Same(t, src, Scale(src, -1))
	assert.Same(t, src, Scale(src, 0))
	assert.Same(t, src, Scale(src, 1))
}

func TestScaleNearestNeighbor(t *testing.T) {
	left := color.NRGBA{152, 0, 136, 255}
	right := color.NRGBA{48, 96, 160, 255}

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, left)
	src.SetNRGBA(1, 0, right)

	out := Scale(src, 3)

	require.Equal(t, image.Rect(0, 0, 6, 3), out.Bounds())

	m, ok := out.(*image.NRGBA)
	require.True(t, ok)

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			want := left
			if x >= 3 {
				want = right
			}
			assert.Equal(t, want, m.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}
