package wolfconv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/humancto/wolfconv/sprite"
)

// wallMapping pairs a source bitmap with the texture name the game
// engine looks up. Eight wall surfaces plus the two door faces.
type wallMapping struct {
	src string
	dst string
}

// The mixed-case source names match the asset dump verbatim; lookups on
// a case-sensitive filesystem depend on them.
var wallMappings = []wallMapping{
	{"greybrick1.bmp", "wall_0.png"},
	{"bluestone1.BMP", "wall_1.png"},
	{"wood1.BMP", "wall_2.png"},
	{"stone1.BMP", "wall_3.png"},
	{"bluestone3.BMP", "wall_4.png"},
	{"wood3.BMP", "wall_5.png"},
	{"greybrick5.bmp", "wall_6.png"},
	{"brick1.BMP", "wall_7.png"},
	{"door1.BMP", "door_0.png"},
	{"elevator1.BMP", "door_1.png"},
}

// ConvertWalls converts every mapped wall texture found in the source
// dump to an opaque PNG under the walls directory, in table order.
// Missing sources are skipped; any other failure stops the phase.
func (c *Converter) ConvertWalls() (int, error) {
	fmt.Fprintln(c.opt.Output, "Converting wall textures...")

	outDir := filepath.Join(c.opt.DestDir, "walls")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, fmt.Errorf("walls: %w", err)
	}

	converted := 0
	for _, m := range wallMappings {
		src := filepath.Join(c.opt.SourceDir, wallSourceDir, m.src)
		ok, err := c.convertFile(src, filepath.Join(outDir, m.dst), "walls", sprite.Convert)
		if err != nil {
			return converted, fmt.Errorf("wall %s: %w", m.src, err)
		}
		if !ok {
			continue
		}
		fmt.Fprintf(c.opt.Output, "  OK %s -> %s\n", m.src, m.dst)
		converted++
	}

	fmt.Fprintf(c.opt.Output, "  %d wall textures converted.\n\n", converted)

	return converted, nil
}
