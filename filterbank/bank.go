package filterbank

import (
	"fmt"
	"math"
)

// New assembles and validates a bank from externally designed filters.
//
// Validation is eager (fail fast, no partial bank):
//  1. q ≥ 1.
//  2. φ non-empty, 1-D or 2-D, coefficients matching the declared support.
//  3. every ψ_p non-empty, same dimensionality and support as φ.
//  4. all scalar metadata finite; scales ≥ 0; bandwidths > 0.
//
// The returned bank references the supplied coefficient slices; callers hand
// over ownership and must not mutate them afterwards.
func New(phi Filter, psis []Filter, q int) (*Bank, error) {
	if q < 1 {
		return nil, ErrBadQ
	}
	if err := validateFilter(phi, nil); err != nil {
		return nil, fmt.Errorf("φ: %w", err)
	}
	for p, psi := range psis {
		if err := validateFilter(psi, phi.Shape); err != nil {
			return nil, fmt.Errorf("ψ_%d: %w", p, err)
		}
	}

	return &Bank{Phi: phi, Psis: psis, Q: q}, nil
}

// validateFilter checks one filter against the optional reference support.
func validateFilter(f Filter, refShape []int) error {
	if len(f.Coeffs) == 0 || len(f.Coeffs[0]) == 0 {
		return ErrEmptyFilter
	}
	if len(f.Shape) < 1 || len(f.Shape) > 2 {
		return ErrBadDimension
	}
	n := 1
	for _, s := range f.Shape {
		if s <= 0 {
			return ErrShapeMismatch
		}
		n *= s
	}
	if len(f.Coeffs[0]) != n {
		return ErrShapeMismatch
	}
	if refShape != nil {
		if len(refShape) != len(f.Shape) {
			return ErrDimsMismatch
		}
		for i := range refShape {
			if refShape[i] != f.Shape[i] {
				return ErrShapeMismatch
			}
		}
	}
	if f.Scale < 0 || f.Bandwidth <= 0 ||
		math.IsNaN(f.CenterFreq) || math.IsInf(f.CenterFreq, 0) ||
		math.IsNaN(f.Bandwidth) || math.IsInf(f.Bandwidth, 0) {
		return ErrBadMetadata
	}

	return nil
}

// ValidateAngular checks that b can serve as the periodic angular bank for a
// roto-translation layer over nOrient orientation samples: the bank must be
// 1-D with support exactly nOrient (the 2·L doubled circle).
func ValidateAngular(b *Bank, nOrient int) error {
	if b.Dims() != 1 {
		return ErrBadDimension
	}
	if b.Phi.Shape[0] != nOrient {
		return fmt.Errorf("%w: support %d, want %d", ErrAngularLength, b.Phi.Shape[0], nOrient)
	}

	return nil
}
