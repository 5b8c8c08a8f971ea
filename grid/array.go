// Package grid holds the numeric arrays the histogram code operates on.
//
// An Array is an N-dimensional, row-major grid of values tagged with the
// element type it was built from. Values are always stored as float64; the
// tag is what callers check when an operation only accepts floating point
// input.
package grid

import (
	"fmt"
	"math"
)

type DType int

const (
	Float64 DType = iota
	Float32
	Int64
	Uint8
)

func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return fmt.Sprintf("dtype(%d)", int(d))
	}
}

// Array is immutable from the point of view of the histogram functions; only
// Set mutates it.
type Array struct {
	shape []int
	dtype DType
	data  []float64
}

func NewFloat64(shape []int, data []float64) (*Array, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return nil, err
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Array{shape: cloneShape(shape), dtype: Float64, data: buf}, nil
}

func NewFloat32(shape []int, data []float32) (*Array, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return nil, err
	}
	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}
	return &Array{shape: cloneShape(shape), dtype: Float32, data: buf}, nil
}

func NewInt64(shape []int, data []int64) (*Array, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return nil, err
	}
	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}
	return &Array{shape: cloneShape(shape), dtype: Int64, data: buf}, nil
}

func NewUint8(shape []int, data []uint8) (*Array, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return nil, err
	}
	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}
	return &Array{shape: cloneShape(shape), dtype: Uint8, data: buf}, nil
}

// Zeros returns a zero-filled array. It panics on a negative dimension, like
// make does for a negative length.
func Zeros(dtype DType, shape ...int) *Array {
	if err := checkShape(shape, -1); err != nil {
		panic(err)
	}
	return &Array{shape: cloneShape(shape), dtype: dtype, data: make([]float64, product(shape))}
}

func (a *Array) Ndim() int {
	return len(a.shape)
}

func (a *Array) Shape() []int {
	return cloneShape(a.shape)
}

func (a *Array) Len() int {
	return len(a.data)
}

func (a *Array) DType() DType {
	return a.dtype
}

// Data returns a copy of the row-major storage.
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// Ravel calls fn for every element in row-major order without copying.
func (a *Array) Ravel(fn func(i int, v float64)) {
	for i, v := range a.data {
		fn(i, v)
	}
}

func (a *Array) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

func (a *Array) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Channel returns channel c of a 3D channel-last array as a 2D array with
// the same dtype.
func (a *Array) Channel(c int) (*Array, error) {
	if err := RequireNdim(a, 3, "channel extraction"); err != nil {
		return nil, err
	}
	if c < 0 {
		return nil, fmt.Errorf("%w: negative channel %d", ErrDimensionMismatch, c)
	}
	if err := RequireChannels(a, c+1, "channel extraction"); err != nil {
		return nil, err
	}

	rows, cols, channels := a.shape[0], a.shape[1], a.shape[2]
	out := Zeros(a.dtype, rows, cols)
	for p := 0; p < rows*cols; p++ {
		out.data[p] = a.data[p*channels+c]
	}
	return out, nil
}

// Min returns the smallest element, or NaN for an empty array. NaN elements
// propagate.
func (a *Array) Min() float64 {
	if len(a.data) == 0 {
		return math.NaN()
	}
	m := a.data[0]
	for _, v := range a.data[1:] {
		if math.IsNaN(v) {
			return v
		}
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest element, or NaN for an empty array. NaN elements
// propagate.
func (a *Array) Max() float64 {
	if len(a.data) == 0 {
		return math.NaN()
	}
	m := a.data[0]
	for _, v := range a.data[1:] {
		if math.IsNaN(v) {
			return v
		}
		if v > m {
			m = v
		}
	}
	return m
}

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("grid: %d indices for %d-dimensional array", len(idx), len(a.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("grid: index %d out of range [0, %d) on axis %d", i, a.shape[d], d))
		}
		off = off*a.shape[d] + i
	}
	return off
}

func checkShape(shape []int, n int) error {
	for d, s := range shape {
		if s < 0 {
			return fmt.Errorf("%w: negative dimension %d on axis %d", ErrShape, s, d)
		}
	}
	if n >= 0 && product(shape) != n {
		return fmt.Errorf("%w: shape %v needs %d values, got %d", ErrShape, shape, product(shape), n)
	}
	return nil
}

func product(shape []int) int {
	p := 1
	for _, s := range shape {
		p *= s
	}
	return p
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}
