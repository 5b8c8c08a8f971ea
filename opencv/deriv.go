package opencv

import (
	"image"

	"gocv.io/x/gocv"

	"histogram-descriptors/gauss"
	"histogram-descriptors/grid"
)

// Deriver computes Gaussian derivatives with cv::filter2D. It uses the same
// kernels and zero border as gauss.Deriv, and agrees with it to floating
// point rounding whenever the kernel length is odd (integer sigma).
type Deriver struct{}

var _ gauss.Deriver = Deriver{}

func (Deriver) Deriv(img *grid.Array, sigma float64) (*grid.Array, *grid.Array, error) {
	if err := grid.RequireNdim(img, 2, "opencv gaussian derivative"); err != nil {
		return nil, nil, err
	}
	if err := grid.RequireFloat(img, "opencv gaussian derivative"); err != nil {
		return nil, nil, err
	}

	g, err := gauss.Kernel(sigma)
	if err != nil {
		return nil, nil, err
	}
	d, err := gauss.DerivKernel(sigma)
	if err != nil {
		return nil, nil, err
	}

	src, err := ArrayToMat(img)
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	gx, gy := kernelMat(g, true), kernelMat(g, false)
	defer gx.Close()
	defer gy.Close()
	dxk, dyk := kernelMat(d, true), kernelMat(d, false)
	defer dxk.Close()
	defer dyk.Close()

	dx, err := separable(src, gy, dxk)
	if err != nil {
		return nil, nil, err
	}
	dy, err := separable(src, gx, dyk)
	if err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}

// separable applies first then second and copies the result out.
func separable(src, first, second gocv.Mat) (*grid.Array, error) {
	tmp := gocv.NewMat()
	defer tmp.Close()
	dst := gocv.NewMat()
	defer dst.Close()

	anchor := image.Point{X: -1, Y: -1}
	gocv.Filter2D(src, &tmp, gocv.MatTypeCV64F, first, anchor, 0, gocv.BorderConstant)
	gocv.Filter2D(tmp, &dst, gocv.MatTypeCV64F, second, anchor, 0, gocv.BorderConstant)

	return MatToArray(dst)
}
