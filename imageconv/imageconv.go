// Package imageconv turns decoded images into the float64 grids the
// histogram functions expect.
package imageconv

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nfnt/resize"

	"histogram-descriptors/grid"
)

// Luminance weights for Gray.
const (
	weightR = 0.2989
	weightG = 0.5870
	weightB = 0.1140
)

type Options struct {
	// MaxSize bounds the larger side of the image. Larger images are
	// downscaled with bicubic interpolation, keeping the aspect ratio.
	// Zero leaves the image as is.
	MaxSize uint
}

// Color returns a rows×cols×3 float64 array of R, G, B values in [0, 255].
// Alpha is discarded after un-premultiplying.
func Color(img image.Image, opts Options) (*grid.Array, error) {
	src, err := prepare(img, opts)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	out := grid.Zeros(grid.Float64, rows, cols, 3)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.Set(float64(c.R), y, x, 0)
			out.Set(float64(c.G), y, x, 1)
			out.Set(float64(c.B), y, x, 2)
		}
	}

	return out, nil
}

// Gray returns a rows×cols float64 luminance array in [0, 255]. Values are
// not rounded.
func Gray(img image.Image, opts Options) (*grid.Array, error) {
	rgb, err := Color(img, opts)
	if err != nil {
		return nil, err
	}

	shape := rgb.Shape()
	rows, cols := shape[0], shape[1]
	out := grid.Zeros(grid.Float64, rows, cols)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := weightR*rgb.At(y, x, 0) + weightG*rgb.At(y, x, 1) + weightB*rgb.At(y, x, 2)
			out.Set(v, y, x)
		}
	}

	return out, nil
}

func prepare(img image.Image, opts Options) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	if opts.MaxSize == 0 {
		return img, nil
	}
	return resize.Thumbnail(opts.MaxSize, opts.MaxSize, img, resize.Bicubic), nil
}
