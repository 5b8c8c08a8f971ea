// Package gauss provides sampled Gaussian kernels and the Gaussian partial
// derivative operator used by the gradient histogram.
package gauss

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidSigma = errors.New("invalid sigma")

// Axis selects the direction a 1D kernel is applied along.
type Axis int

const (
	// AxisY runs down the rows.
	AxisY Axis = iota
	// AxisX runs along each row.
	AxisX
)

// samples returns x = -3σ, -3σ+1, ... while x < 3σ+1.
func samples(sigma float64) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}
	start := -3 * sigma
	n := int(math.Ceil(3*sigma + 1 - start))
	xs := make([]float64, n)
	for k := range xs {
		xs[k] = start + float64(k)
	}
	return xs, nil
}

// Kernel returns the Gaussian G(x) = exp(-x²/2σ²)/(√(2π)σ) sampled at
// integer steps over [-3σ, 3σ].
func Kernel(sigma float64) ([]float64, error) {
	xs, err := samples(sigma)
	if err != nil {
		return nil, err
	}

	norm := 1 / (math.Sqrt(2*math.Pi) * sigma)
	invTwoSigmaSq := 1 / (2 * sigma * sigma)
	kernel := make([]float64, len(xs))
	for i, x := range xs {
		kernel[i] = norm * math.Exp(-x*x*invTwoSigmaSq)
	}
	return kernel, nil
}

// DerivKernel returns the first derivative of the Gaussian,
// D(x) = -x·exp(-x²/2σ²)/(√(2π)σ³), on the same sample points as Kernel.
func DerivKernel(sigma float64) ([]float64, error) {
	xs, err := samples(sigma)
	if err != nil {
		return nil, err
	}

	norm := -1 / (math.Sqrt(2*math.Pi) * sigma * sigma * sigma)
	invTwoSigmaSq := 1 / (2 * sigma * sigma)
	kernel := make([]float64, len(xs))
	for i, x := range xs {
		kernel[i] = norm * x * math.Exp(-x*x*invTwoSigmaSq)
	}
	return kernel, nil
}
