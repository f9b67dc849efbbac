package wolfconv

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/humancto/wolfconv/sprite"
)

// transform produces the output raster for one decoded source image.
type transform func(image.Image) *image.NRGBA

// convertFile converts a single source bitmap to the PNG at dst. It
// reports false with no error when the source does not exist, which the
// callers count as a skip. Any other failure is returned as-is.
func (c *Converter) convertFile(src, dst, category string, fn transform) (bool, error) {
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(c.opt.Output, "  SKIP (not found): %s\n", src)
			return false, nil
		}
		return false, err
	}

	f, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer f.Close()

	h := sha1.New()

	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", src, err)
	}

	var out image.Image = fn(m)
	if c.opt.Scale > 1 {
		out = sprite.Scale(out, c.opt.Scale)
	}
	if c.opt.Indexed {
		out = sprite.Palettize(out)
	}

	w, err := os.Create(dst)
	if err != nil {
		return false, err
	}

	if err := png.Encode(w, out); err != nil {
		w.Close()
		return false, fmt.Errorf("encode %s: %w", dst, err)
	}

	if err := w.Close(); err != nil {
		return false, err
	}

	if c.catalog != nil {
		b := out.Bounds()
		sha := fmt.Sprintf("%X", h.Sum(nil))
		if err := c.catalog.Record(dst, category, sha, b.Dx(), b.Dy()); err != nil {
			return false, fmt.Errorf("catalog %s: %w", dst, err)
		}
	}

	c.logger.Printf("converted %s -> %s", src, dst)

	return true, nil
}
