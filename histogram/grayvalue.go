package histogram

import (
	"fmt"
	"math"
	"sort"

	"histogram-descriptors/grid"
)

// DefaultRangeMax is the upper end of the intensity range assumed by
// GrayValue.
const DefaultRangeMax = 255.0

// GrayValue computes the normalized intensity histogram of a 2D float64
// image over [0, 255]. It also returns the numBins+1 reference points that
// pixel values are snapped to before binning.
func GrayValue(img *grid.Array, numBins int) ([]float64, []float64, error) {
	return GrayValueRange(img, numBins, DefaultRangeMax)
}

// GrayValueRange is GrayValue over [0, rangeMax].
//
// Every pixel is snapped to its nearest reference point i*rangeMax/numBins
// (the lower point on a tie) and counted in bin int(snapped*numBins/rangeMax).
// Pixels snapped to rangeMax itself land one past the last bin and are not
// counted. The histogram is divided by the number of counted pixels, so an
// image with none yields NaN bins.
func GrayValueRange(img *grid.Array, numBins int, rangeMax float64) ([]float64, []float64, error) {
	const op = "grayvalue histogram"

	if err := grid.RequireNdim(img, 2, op); err != nil {
		return nil, nil, err
	}
	if err := grid.RequireFloat(img, op); err != nil {
		return nil, nil, err
	}
	if numBins < 1 {
		return nil, nil, fmt.Errorf("%w: got %d for operation: %s", ErrInvalidBins, numBins, op)
	}
	if !(rangeMax > 0) || math.IsInf(rangeMax, 0) {
		return nil, nil, fmt.Errorf("%w: range maximum %v for operation: %s", ErrInvalidValue, rangeMax, op)
	}

	edges := make([]float64, numBins+1)
	for i := range edges {
		edges[i] = float64(i) * rangeMax / float64(numBins)
	}

	hist := make([]float64, numBins)
	img.Ravel(func(_ int, v float64) {
		bin := int(snap(edges, v) * float64(numBins) / rangeMax)
		if bin < numBins {
			hist[bin]++
		}
	})

	normalize(hist)
	return hist, edges, nil
}

// snap returns the edge closest to v, preferring the earliest edge when
// distances are equal. Non-finite values snap to the first edge.
func snap(edges []float64, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return edges[0]
	}

	i := sort.SearchFloat64s(edges, v)
	switch {
	case i == 0:
		return edges[0]
	case i == len(edges):
		return edges[len(edges)-1]
	}

	below := v - edges[i-1]
	if edges[i]-v < below {
		return edges[i]
	}
	// Rounding can make further edges look equally close.
	for i > 1 && v-edges[i-2] == below {
		i--
	}
	return edges[i-1]
}

func normalize(hist []float64) {
	var total float64
	for _, c := range hist {
		total += c
	}
	for i := range hist {
		hist[i] /= total
	}
}
