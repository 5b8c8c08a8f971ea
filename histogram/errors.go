package histogram

import (
	"errors"

	"histogram-descriptors/grid"
)

// Re-exported so callers only need this package for errors.Is checks.
var (
	ErrDimensionMismatch = grid.ErrDimensionMismatch
	ErrTypeMismatch      = grid.ErrTypeMismatch
)

var (
	ErrUnknownType   = errors.New("unknown histogram type")
	ErrInvalidBins   = errors.New("number of bins must be at least 1")
	ErrBinOutOfRange = errors.New("bin index out of range")
	ErrInvalidValue  = errors.New("value cannot be binned")
)
