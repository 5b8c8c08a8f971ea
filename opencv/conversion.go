// Package opencv bridges gocv matrices and grid arrays, and provides an
// OpenCV-backed Gaussian derivative operator.
package opencv

import (
	"fmt"

	"gocv.io/x/gocv"

	"histogram-descriptors/grid"
)

// MatToArray copies a Mat into a float64 array. Single-channel Mats become
// rows×cols arrays. CV8UC3 Mats become rows×cols×3 arrays with the channels
// reordered from BGR to RGB.
func MatToArray(m gocv.Mat) (*grid.Array, error) {
	if m.Empty() {
		return nil, fmt.Errorf("Mat is empty for operation: Mat to array conversion")
	}

	rows, cols := m.Rows(), m.Cols()

	switch m.Type() {
	case gocv.MatTypeCV8UC1:
		out := grid.Zeros(grid.Float64, rows, cols)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out.Set(float64(m.GetUCharAt(y, x)), y, x)
			}
		}
		return out, nil

	case gocv.MatTypeCV8UC3:
		out := grid.Zeros(grid.Float64, rows, cols, 3)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out.Set(float64(m.GetUCharAt3(y, x, 2)), y, x, 0)
				out.Set(float64(m.GetUCharAt3(y, x, 1)), y, x, 1)
				out.Set(float64(m.GetUCharAt3(y, x, 0)), y, x, 2)
			}
		}
		return out, nil

	case gocv.MatTypeCV32FC1:
		out := grid.Zeros(grid.Float64, rows, cols)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out.Set(float64(m.GetFloatAt(y, x)), y, x)
			}
		}
		return out, nil

	case gocv.MatTypeCV64FC1:
		out := grid.Zeros(grid.Float64, rows, cols)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out.Set(m.GetDoubleAt(y, x), y, x)
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported MatType %d for operation: Mat to array conversion", int(m.Type()))
	}
}

// ArrayToMat copies a 2D array into a new CV64FC1 Mat. The caller owns the
// result and must Close it.
func ArrayToMat(a *grid.Array) (gocv.Mat, error) {
	if err := grid.RequireNdim(a, 2, "array to Mat conversion"); err != nil {
		return gocv.Mat{}, err
	}

	shape := a.Shape()
	rows, cols := shape[0], shape[1]
	if rows <= 0 || cols <= 0 {
		return gocv.Mat{}, fmt.Errorf("invalid dimensions %dx%d for operation: array to Mat conversion", cols, rows)
	}

	m := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV64FC1)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.SetDoubleAt(y, x, a.At(y, x))
		}
	}
	return m, nil
}

// kernelMat builds a 1×n (horizontal) or n×1 Mat holding the kernel
// reversed, so that OpenCV's correlation computes a convolution.
func kernelMat(kernel []float64, horizontal bool) gocv.Mat {
	n := len(kernel)
	rows, cols := n, 1
	if horizontal {
		rows, cols = 1, n
	}

	m := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV64FC1)
	for i, w := range kernel {
		if horizontal {
			m.SetDoubleAt(0, n-1-i, w)
		} else {
			m.SetDoubleAt(n-1-i, 0, w)
		}
	}
	return m
}
