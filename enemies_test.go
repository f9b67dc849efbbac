package wolfconv

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationDigit(t *testing.T) {
	for frame := byte('A'); frame <= 'E'; frame++ {
		assert.Equal(t, byte('1'), rotation(frame), "frame %c", frame)
	}
	for frame := byte('F'); frame <= 'P'; frame++ {
		assert.Equal(t, byte('0'), rotation(frame), "frame %c", frame)
	}
}

func TestConvertEnemies(t *testing.T) {
	srcRoot, destRoot := t.TempDir(), t.TempDir()

	background := color.RGBA{152, 0, 136, 255}
	writeBMP(t, filepath.Join(srcRoot, enemySourceDir, "GARDA1.bmp"), spriteSheet(background, 40))
	writeBMP(t, filepath.Join(srcRoot, enemySourceDir, "GARDF0.bmp"), spriteSheet(background, 12))

	var buf bytes.Buffer
	c := New(Options{SourceDir: srcRoot, DestDir: destRoot, Output: &buf}, nil, nil)

	n, err := c.ConvertEnemies()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	a := decodeNRGBA(t, filepath.Join(destRoot, "enemies", "guard", "a.png"))
	assert.Equal(t, 40, alphaCount(a, 0))
	assert.Equal(t, 24, alphaCount(a, 255))
	// keyed pixels keep their color channels
	assert.Equal(t, color.NRGBA{152, 0, 136, 0}, a.NRGBAAt(0, 0))
	// first body pixel after the 40 background ones, row-major
	assert.Equal(t, color.NRGBA{40, 215, 77, 255}, a.NRGBAAt(0, 5))

	// action frames read the 0-rotation source
	f := decodeNRGBA(t, filepath.Join(destRoot, "enemies", "guard", "f.png"))
	assert.Equal(t, 12, alphaCount(f, 0))

	// category directories exist even when every frame is missing
	info, err := os.Stat(filepath.Join(destRoot, "enemies", "mutant"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	output := buf.String()
	assert.Contains(t, output, "Converting enemy sprites...")
	assert.Contains(t, output, "  SKIP (not found): "+filepath.Join(srcRoot, enemySourceDir, "GARDB1.bmp"))
	assert.Contains(t, output, "  OK GARD: 14 frames -> guard/")
	assert.Contains(t, output, "  OK OFFI: 15 frames -> officer/")
	assert.Contains(t, output, "  OK NZSS: 14 frames -> ss/")
	assert.Contains(t, output, "  OK MTNT: 16 frames -> mutant/")
	assert.Contains(t, output, "  2 enemy sprites converted.")
}
