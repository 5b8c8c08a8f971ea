package grid

import (
	"errors"
	"fmt"
)

var (
	ErrShape             = errors.New("invalid shape")
	ErrDimensionMismatch = errors.New("image dimension mismatch")
	ErrTypeMismatch      = errors.New("incorrect image type")
)

func RequireNdim(a *Array, ndim int, operation string) error {
	if a == nil {
		return fmt.Errorf("%w: array is nil for operation: %s", ErrDimensionMismatch, operation)
	}
	if a.Ndim() != ndim {
		return fmt.Errorf("%w: want %d dimensions, got %d for operation: %s",
			ErrDimensionMismatch, ndim, a.Ndim(), operation)
	}
	return nil
}

// RequireFloat accepts only Float64 arrays. Float32 input is rejected the
// same way integer input is.
func RequireFloat(a *Array, operation string) error {
	if a.DType() != Float64 {
		return fmt.Errorf("%w: want float64, got %s for operation: %s", ErrTypeMismatch, a.DType(), operation)
	}
	return nil
}

// RequireChannels checks that a 3D array has at least the given number of
// channels on its last axis.
func RequireChannels(a *Array, channels int, operation string) error {
	if err := RequireNdim(a, 3, operation); err != nil {
		return err
	}
	if got := a.shape[2]; got < channels {
		return fmt.Errorf("%w: want at least %d channels, got %d for operation: %s",
			ErrDimensionMismatch, channels, got, operation)
	}
	return nil
}
