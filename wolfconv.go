/*
Package wolfconv converts the palette-indexed bitmaps of a Wolf3D asset
dump into the transparent PNG files the game loads at runtime.

The conversion is a one-shot batch over two fixed tables. Wall textures
are decoded and rewritten as opaque RGBA PNGs under walls/. Enemy sprite
frames additionally have their background color keyed to full
transparency and are written into a per-enemy directory under enemies/.
Missing source files are reported and skipped so a partial dump still
converts; decode and write failures abort the batch.
*/
package wolfconv

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// DefaultSourceDir is where the extraction step leaves the asset dump.
const DefaultSourceDir = "/tmp/wolf3d-assets"

const (
	wallSourceDir  = "w3d_textures_fix"
	enemySourceDir = "w3d_enemies_fix"
)

// Options configures a Converter. Zero values select the layout the
// original asset dump uses.
type Options struct {
	// SourceDir is the root of the extracted asset dump, holding the
	// w3d_textures_fix and w3d_enemies_fix directories.
	SourceDir string
	// DestDir is the root of the generated asset tree. The walls and
	// enemies directories are created beneath it as needed.
	DestDir string
	// Indexed writes 256-color paletted PNGs instead of 32-bit RGBA.
	Indexed bool
	// Scale enlarges output images by an integer factor. Values below
	// 2 keep the source dimensions.
	Scale int
	// Output receives the progress lines. Defaults to os.Stdout.
	Output io.Writer
}

// Converter runs the batch conversion described by its Options.
type Converter struct {
	opt     Options
	catalog *Catalog
	logger  *log.Logger
}

// New returns a Converter. The catalog may be nil, in which case no
// record of the converted assets is kept.
func New(opt Options, catalog *Catalog, logger *log.Logger) *Converter {
	if opt.SourceDir == "" {
		opt.SourceDir = DefaultSourceDir
	}
	if opt.DestDir == "" {
		opt.DestDir = filepath.Join("public", "assets")
	}
	if opt.Output == nil {
		opt.Output = os.Stdout
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Converter{
		opt:     opt,
		catalog: catalog,
		logger:  logger,
	}
}

// Run converts the wall textures followed by the enemy sprites and
// prints the closing summary. It returns the number of files written by
// each phase.
func (c *Converter) Run() (int, int, error) {
	fmt.Fprintf(c.opt.Output, "=== Wolf3D BMP -> PNG Converter ===\n\n")

	walls, err := c.ConvertWalls()
	if err != nil {
		return walls, 0, err
	}

	enemies, err := c.ConvertEnemies()
	if err != nil {
		return walls, enemies, err
	}

	fmt.Fprintf(c.opt.Output, "=== Done: %d walls, %d enemies ===\n", walls, enemies)

	return walls, enemies, nil
}
