package prng

import (
	"github.com/joomcode/errorx"
)

var (
	// Errors is a namespace for all generator errors.
	Errors = errorx.NewNamespace("xorshift32")

	// ErrInvalidState - draw attempted while state is zero.
	// Reseed or restore nonzero state before retrying.
	ErrInvalidState = Errors.NewType("invalid_state")
	// ErrInvalidRange - requested range is empty (max <= min) or count is negative.
	ErrInvalidRange = Errors.NewType("invalid_range")
)

var (
	// EKState - state of generator at the moment of error.
	EKState = errorx.RegisterProperty("state")
	// EKMin - lower bound passed to ranged sampling.
	EKMin = errorx.RegisterProperty("min")
	// EKMax - upper bound passed to ranged sampling.
	EKMax = errorx.RegisterProperty("max")
	// EKCount - requested permutation length.
	EKCount = errorx.RegisterProperty("count")
)

func errZeroState() *errorx.Error {
	return ErrInvalidState.New("state cannot be zero: use a valid seed or restore a saved state").
		WithProperty(EKState, uint32(0))
}

func errEmptyRange(min, max int) *errorx.Error {
	return ErrInvalidRange.New("max must be greater than min").
		WithProperty(EKMin, min).
		WithProperty(EKMax, max)
}
