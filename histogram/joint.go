package histogram

import (
	"fmt"
	"math"

	"histogram-descriptors/gauss"
	"histogram-descriptors/grid"
)

// DefaultSigma is the smoothing scale DxDy hands to the derivative operator.
const DefaultSigma = 3.0

// jointBinSize is shared by every joint histogram, including dxdy whose
// values only span [-6, 6].
func jointBinSize(numBins int) float64 {
	return 256.0 / float64(numBins)
}

// binIndex maps v to floor(v/binSize). Indices in [-numBins, -1] count from
// the end of the axis.
func binIndex(v, binSize float64, numBins int, op string) (int, error) {
	q := math.Floor(v / binSize)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, fmt.Errorf("%w: %v for operation: %s", ErrInvalidValue, v, op)
	}
	if q < -float64(numBins) || q >= float64(numBins) {
		return 0, fmt.Errorf("%w: value %v falls in bin %v of %d for operation: %s",
			ErrBinOutOfRange, v, q, numBins, op)
	}

	idx := int(q)
	if idx < 0 {
		idx += numBins
	}
	return idx, nil
}

func requireBins(numBins int, op string) error {
	if numBins < 1 {
		return fmt.Errorf("%w: got %d for operation: %s", ErrInvalidBins, numBins, op)
	}
	return nil
}

// RGB computes the normalized joint histogram of the R, G and B channels of
// a channel-last float64 image. The numBins^3 result is flattened with R
// varying slowest.
func RGB(img *grid.Array, numBins int) ([]float64, error) {
	const op = "rgb histogram"

	hist, err := jointColor(img, numBins, 3, op)
	if err != nil {
		return nil, err
	}
	normalize(hist)
	return hist, nil
}

// RG is RGB restricted to the first two channels. The blue channel, if any,
// is ignored.
func RG(img *grid.Array, numBins int) ([]float64, error) {
	const op = "rg histogram"

	hist, err := jointColor(img, numBins, 2, op)
	if err != nil {
		return nil, err
	}
	normalize(hist)
	return hist, nil
}

func jointColor(img *grid.Array, numBins, channels int, op string) ([]float64, error) {
	if err := grid.RequireNdim(img, 3, op); err != nil {
		return nil, err
	}
	if err := grid.RequireFloat(img, op); err != nil {
		return nil, err
	}
	if err := grid.RequireChannels(img, channels, op); err != nil {
		return nil, err
	}
	if err := requireBins(numBins, op); err != nil {
		return nil, err
	}

	size := 1
	for c := 0; c < channels; c++ {
		size *= numBins
	}
	hist := make([]float64, size)

	stride := img.Shape()[2]
	data := img.Data()
	binSize := jointBinSize(numBins)

	for p := 0; p+stride <= len(data); p += stride {
		flat := 0
		for c := 0; c < channels; c++ {
			idx, err := binIndex(data[p+c], binSize, numBins, op)
			if err != nil {
				return nil, err
			}
			flat = flat*numBins + idx
		}
		hist[flat]++
	}

	return hist, nil
}

// DxDy computes the joint histogram of the x and y Gaussian derivatives of a
// 2D float64 image, using the default derivative operator at sigma 3.
func DxDy(img *grid.Array, numBins int) ([]float64, error) {
	return dxdy(img, numBins, gauss.Default, DefaultSigma)
}

// dxdy rescales each derivative grid onto [-6, 6] from its own minimum and
// maximum, then bins the pairs. The result holds raw counts with dx varying
// slowest. A constant derivative grid cannot be rescaled and fails with
// ErrInvalidValue.
func dxdy(img *grid.Array, numBins int, deriver gauss.Deriver, sigma float64) ([]float64, error) {
	const op = "dxdy histogram"

	if err := grid.RequireNdim(img, 2, op); err != nil {
		return nil, err
	}
	if err := grid.RequireFloat(img, op); err != nil {
		return nil, err
	}
	if err := requireBins(numBins, op); err != nil {
		return nil, err
	}

	imgDx, imgDy, err := deriver.Deriv(img, sigma)
	if err != nil {
		return nil, err
	}
	if imgDx.Len() != img.Len() || imgDy.Len() != img.Len() {
		return nil, fmt.Errorf("%w: derivative grids %v and %v for image %v for operation: %s",
			ErrDimensionMismatch, imgDx.Shape(), imgDy.Shape(), img.Shape(), op)
	}

	dx, err := rescale(imgDx, op)
	if err != nil {
		return nil, err
	}
	dy, err := rescale(imgDy, op)
	if err != nil {
		return nil, err
	}

	hist := make([]float64, numBins*numBins)
	binSize := jointBinSize(numBins)

	for i := range dx {
		x, err := binIndex(dx[i], binSize, numBins, op)
		if err != nil {
			return nil, err
		}
		y, err := binIndex(dy[i], binSize, numBins, op)
		if err != nil {
			return nil, err
		}
		hist[x*numBins+y]++
	}

	return hist, nil
}

// rescale maps a grid linearly so that its minimum becomes -6 and its
// maximum +6.
func rescale(a *grid.Array, op string) ([]float64, error) {
	if a.Len() == 0 {
		return nil, fmt.Errorf("%w: empty derivative grid for operation: %s", ErrInvalidValue, op)
	}

	mn, mx := a.Min(), a.Max()
	out := make([]float64, a.Len())
	a.Ravel(func(i int, v float64) {
		out[i] = 12*(v-mn)/(mx-mn) - 6
	})
	return out, nil
}
