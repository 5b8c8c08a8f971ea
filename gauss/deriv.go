package gauss

import (
	"fmt"

	"histogram-descriptors/grid"
)

// Deriver computes the x and y Gaussian partial derivatives of a 2D image.
// Both outputs have the shape of the input.
type Deriver interface {
	Deriv(img *grid.Array, sigma float64) (dx, dy *grid.Array, err error)
}

type DeriverFunc func(img *grid.Array, sigma float64) (*grid.Array, *grid.Array, error)

func (f DeriverFunc) Deriv(img *grid.Array, sigma float64) (*grid.Array, *grid.Array, error) {
	return f(img, sigma)
}

// Default is the pure Go implementation.
var Default Deriver = DeriverFunc(Deriv)

// Deriv smooths with a Gaussian across the derivative direction and
// differentiates along it:
//
//	dx = convX(convY(img, G), D)
//	dy = convY(convX(img, G), D)
func Deriv(img *grid.Array, sigma float64) (*grid.Array, *grid.Array, error) {
	if err := grid.RequireNdim(img, 2, "gaussian derivative"); err != nil {
		return nil, nil, err
	}
	if err := grid.RequireFloat(img, "gaussian derivative"); err != nil {
		return nil, nil, err
	}

	g, err := Kernel(sigma)
	if err != nil {
		return nil, nil, err
	}
	d, err := DerivKernel(sigma)
	if err != nil {
		return nil, nil, err
	}

	smoothY, err := Convolve(img, g, AxisY)
	if err != nil {
		return nil, nil, err
	}
	dx, err := Convolve(smoothY, d, AxisX)
	if err != nil {
		return nil, nil, err
	}

	smoothX, err := Convolve(img, g, AxisX)
	if err != nil {
		return nil, nil, err
	}
	dy, err := Convolve(smoothX, d, AxisY)
	if err != nil {
		return nil, nil, err
	}

	return dx, dy, nil
}

// Convolve applies a 1D kernel along one axis of a 2D array. The output has
// the input's shape and is centred on the full convolution; samples outside
// the image count as zero.
func Convolve(img *grid.Array, kernel []float64, axis Axis) (*grid.Array, error) {
	if err := grid.RequireNdim(img, 2, "convolution"); err != nil {
		return nil, err
	}
	if len(kernel) == 0 {
		return nil, fmt.Errorf("empty kernel for convolution")
	}

	shape := img.Shape()
	rows, cols := shape[0], shape[1]
	out := grid.Zeros(grid.Float64, rows, cols)
	offset := (len(kernel) - 1) / 2

	n := cols
	if axis == AxisY {
		n = rows
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pos := x
			if axis == AxisY {
				pos = y
			}

			full := pos + offset
			var sum float64
			for k, w := range kernel {
				src := full - k
				if src < 0 || src >= n {
					continue
				}
				if axis == AxisY {
					sum += img.At(src, x) * w
				} else {
					sum += img.At(y, src) * w
				}
			}
			out.Set(sum, y, x)
		}
	}

	return out, nil
}
