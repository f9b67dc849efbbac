package wolfconv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/humancto/wolfconv/sprite"
)

// enemyCategory describes one enemy's sprite series: the four-letter
// prefix its dump files carry, the directory the game loads frames from,
// and the frame letters to convert.
type enemyCategory struct {
	prefix string
	dir    string
	frames string
}

var enemyCategories = []enemyCategory{
	{"GARD", "guard", "ABCDEFGHIJKLMN"},
	{"OFFI", "officer", "ABCDEFGHIJKLMNO"},
	{"NZSS", "ss", "ABCDEFGHIJKLMN"},
	{"MTNT", "mutant", "ABCDEFGHIJKLMNOP"},
}

// lastWalkingFrame is the final frame letter stored with eight
// rotations. Frames past it are action poses with a single view.
const lastWalkingFrame = 'E'

// rotation returns the rotation digit encoded in a frame's source
// filename: walking frames use the front-facing angle 1, action frames
// only exist at angle 0.
func rotation(frame byte) byte {
	if frame <= lastWalkingFrame {
		return '1'
	}
	return '0'
}

// ConvertEnemies converts every enemy sprite frame found in the source
// dump, keying the sheet background of each frame to full transparency.
// The destination directory of every category is created whether or not
// any of its frames exist.
func (c *Converter) ConvertEnemies() (int, error) {
	fmt.Fprintln(c.opt.Output, "Converting enemy sprites...")

	converted := 0
	for _, e := range enemyCategories {
		outDir := filepath.Join(c.opt.DestDir, "enemies", e.dir)
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return converted, fmt.Errorf("enemies: %w", err)
		}

		for i := 0; i < len(e.frames); i++ {
			frame := e.frames[i]
			name := fmt.Sprintf("%s%c%c.bmp", e.prefix, frame, rotation(frame))
			dst := strings.ToLower(string(frame)) + ".png"

			src := filepath.Join(c.opt.SourceDir, enemySourceDir, name)
			ok, err := c.convertFile(src, filepath.Join(outDir, dst), e.dir, sprite.Colorkey)
			if err != nil {
				return converted, fmt.Errorf("enemy %s: %w", name, err)
			}
			if ok {
				converted++
			}
		}

		fmt.Fprintf(c.opt.Output, "  OK %s: %d frames -> %s/\n", e.prefix, len(e.frames), e.dir)
	}

	fmt.Fprintf(c.opt.Output, "  %d enemy sprites converted.\n\n", converted)

	return converted, nil
}
