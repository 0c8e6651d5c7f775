package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/katalvlaran/lvlset/ndimage"
)

// Option configures decoding.
type Option func(*options)

type options struct {
	gray bool
}

// AsGray converts color images to 8-bit luminance.
func AsGray() Option {
	return func(o *options) { o.gray = true }
}

// Decode reads an image and returns its samples with the name of the
// detected format.
func Decode(r io.Reader, opts ...Option) (ndimage.Dynamic, string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return ndimage.Dynamic{}, "", fmt.Errorf("imageio: decode: %w", err)
	}
	d, err := FromImage(img, o.gray)

	return d, format, err
}

// Load decodes the image file at path.
func Load(path string, opts ...Option) (ndimage.Dynamic, error) {
	f, err := os.Open(path)
	if err != nil {
		return ndimage.Dynamic{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	d, _, err := Decode(f, opts...)
	if err != nil {
		return ndimage.Dynamic{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// FromImage copies img into a buffer of shape {height, width}.
// Gray and Gray16 images keep their depth; other models become RGB8, or
// Uint8 luminance when gray is set.
func FromImage(img image.Image, gray bool) (ndimage.Dynamic, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf, err := ndimage.New[uint8](h, w)
		if err != nil {
			return ndimage.Dynamic{}, err
		}
		for y := 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf.Data()[y*w:(y+1)*w], src.Pix[off:off+w])
		}
		return ndimage.NewDynamic(buf)
	case *image.Gray16:
		buf, err := ndimage.New[uint16](h, w)
		if err != nil {
			return ndimage.Dynamic{}, err
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				buf.Set(y*w+x, src.Gray16At(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
		return ndimage.NewDynamic(buf)
	}

	if gray {
		buf, err := ndimage.New[uint8](h, w)
		if err != nil {
			return ndimage.Dynamic{}, err
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				buf.Set(y*w+x, c.Y)
			}
		}
		return ndimage.NewDynamic(buf)
	}

	buf, err := ndimage.New[ndimage.RGB](h, w)
	if err != nil {
		return ndimage.Dynamic{}, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			buf.Set(y*w+x, ndimage.RGB{c.R, c.G, c.B})
		}
	}

	return ndimage.NewDynamic(buf)
}
