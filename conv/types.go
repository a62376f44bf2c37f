// Package conv: boundary modes and sentinel errors.
package conv

import "errors"

// Boundary selects how the signal is extended to the filter support before
// the frequency-domain multiply.
type Boundary int

const (
	// ZeroPad extends the signal with zeros up to the filter support, then
	// unpads the result. The default for spatial axes.
	ZeroPad Boundary = iota
	// Periodic treats the signal as circular: no padding, no unpadding.
	// Requires the filter support to equal the signal length. Used for the
	// orientation axis of roto-translation scattering.
	Periodic
)

// Sentinel errors for the convolution primitive.
var (
	// ErrEmptyInput indicates a signal or filter with no samples.
	ErrEmptyInput = errors.New("conv: empty signal or filter")
	// ErrNegativeRate indicates a negative downsampling exponent.
	ErrNegativeRate = errors.New("conv: downsampling rate must be ≥ 0")
	// ErrSupportTooSmall indicates a filter support smaller than the signal.
	ErrSupportTooSmall = errors.New("conv: filter support smaller than signal")
	// ErrPeriodicLength indicates Periodic mode with support ≠ signal length.
	ErrPeriodicLength = errors.New("conv: periodic mode requires filter support equal to signal length")
	// ErrRateTooDeep indicates 2^ds does not divide the padded length.
	ErrRateTooDeep = errors.New("conv: downsampling rate too deep for padded length")
	// ErrBadBoundary indicates an unrecognized boundary mode.
	ErrBadBoundary = errors.New("conv: unsupported boundary mode")
)
