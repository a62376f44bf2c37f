// Package filterbank: contract types and sentinel errors.
package filterbank

import "errors"

// Sentinel errors for bank construction and lookup. All are configuration
// errors in the engine's taxonomy: detected eagerly, never recovered from.
var (
	// ErrEmptyFilter indicates a filter with no frequency coefficients.
	ErrEmptyFilter = errors.New("filterbank: filter has no coefficients")
	// ErrShapeMismatch indicates coefficient length does not match the declared support.
	ErrShapeMismatch = errors.New("filterbank: coefficients do not match declared support")
	// ErrDimsMismatch indicates a ψ filter whose dimensionality differs from φ's.
	ErrDimsMismatch = errors.New("filterbank: ψ dimensionality differs from φ")
	// ErrBadQ indicates a decimation quality factor below 1.
	ErrBadQ = errors.New("filterbank: quality factor Q must be ≥ 1")
	// ErrBadMetadata indicates missing or non-finite filter metadata.
	ErrBadMetadata = errors.New("filterbank: filter metadata missing or non-finite")
	// ErrBadDimension indicates an unsupported filter dimensionality.
	ErrBadDimension = errors.New("filterbank: only 1-D and 2-D filters are supported")
	// ErrResolution indicates a filter support not divisible by 2^resolution.
	ErrResolution = errors.New("filterbank: support not divisible at requested resolution")
	// ErrAngularLength indicates an angular bank whose support is not the doubled orientation count.
	ErrAngularLength = errors.New("filterbank: angular bank support must equal 2·L orientation samples")
)

// Filter is one frequency-domain filter in multiresolution Fourier form.
//
// Coeffs[0] is the full-resolution response over Shape; Coeffs[r], when
// present (non-nil), is the same filter periodized to resolution r, i.e. the
// response matching a signal that has been downsampled r times. Missing
// copies are computed on demand by AtResolution.
//
// Metadata follows the external filter-design contract: CenterFreq ξ in
// angular units (0 for φ), Scale j (J for φ), Orientation θ index (2-D banks
// only, -1 for 1-D), Bandwidth σ the frequency-support radius.
type Filter struct {
	Coeffs      [][]complex128
	Shape       []int
	CenterFreq  float64
	Scale       int
	Orientation int
	Bandwidth   float64
}

// Bank is one immutable wavelet filter bank: the low-pass φ, the band-pass
// family {ψ_p}, and the bank-wide decimation quality factor Q. Constructed
// once per run by New, read-only thereafter.
type Bank struct {
	Phi  Filter
	Psis []Filter
	Q    int
}

// Dims returns the dimensionality of the bank's filters (1 or 2).
func (b *Bank) Dims() int { return len(b.Phi.Shape) }

// J returns the low-pass scale of the bank.
func (b *Bank) J() int { return b.Phi.Scale }
