package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/lvlset/ndimage"
)

// ToImage converts a 2-D Uint8, Uint16 or RGB8 buffer to an image.Image.
func ToImage(d ndimage.Dynamic) (image.Image, error) {
	s := d.Shape()
	if s.Dims() != 2 {
		return nil, fmt.Errorf("shape %v: %w", s, ErrDims)
	}
	h, w := s[0], s[1]
	rect := image.Rect(0, 0, w, h)

	switch b := d.Buffer().(type) {
	case *ndimage.Buffer[uint8]:
		img := image.NewGray(rect)
		copy(img.Pix, b.Data())
		return img, nil
	case *ndimage.Buffer[uint16]:
		img := image.NewGray16(rect)
		for p, v := range b.Data() {
			img.SetGray16(p%w, p/w, color.Gray16{Y: v})
		}
		return img, nil
	case *ndimage.Buffer[ndimage.RGB]:
		img := image.NewNRGBA(rect)
		for p, c := range b.Data() {
			img.SetNRGBA(p%w, p/w, color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff})
		}
		return img, nil
	default:
		return nil, fmt.Errorf("encode %v: %w", d.Kind(), ndimage.ErrUnsupportedKind)
	}
}

// EncodePNG writes d as a PNG image.
func EncodePNG(w io.Writer, d ndimage.Dynamic) error {
	img, err := ToImage(d)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// Save writes d to path, choosing PNG, TIFF or BMP from the extension.
func Save(path string, d ndimage.Dynamic) error {
	img, err := ToImage(d)
	if err != nil {
		return err
	}
	var enc func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = png.Encode
	case ".tif", ".tiff":
		enc = func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }
	case ".bmp":
		enc = bmp.Encode
	default:
		return fmt.Errorf("%s: %w", path, ErrFormat)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}

	return f.Close()
}
