// Package cascade: operator variants and sentinel errors.
package cascade

import (
	"errors"

	"github.com/katalvlaran/scatter/filterbank"
)

// Sentinel errors for layer transforms and the factory.
var (
	// ErrNilBank indicates a transform invoked without a filter bank.
	ErrNilBank = errors.New("cascade: filter bank must not be nil")
	// ErrDimsMismatch indicates a bank dimensionality that does not match the layer's signals.
	ErrDimsMismatch = errors.New("cascade: bank dimensionality does not match layer signals")
	// ErrBadOrder indicates a requested maximal order M < 0.
	ErrBadOrder = errors.New("cascade: maximal order M must be ≥ 0")
	// ErrUnknownKind indicates an operator with an unrecognized variant tag.
	ErrUnknownKind = errors.New("cascade: unknown operator kind")
	// ErrOrientationGroup indicates roto-translation input whose orientation
	// groups are ragged: differing slice counts, shapes, or resolutions.
	ErrOrientationGroup = errors.New("cascade: inconsistent orientation group in roto-translation input")
	// ErrStackShape indicates a roto-translation entry that is neither an
	// orientation-tagged 2-D slice nor a 3-D stack.
	ErrStackShape = errors.New("cascade: roto-translation entries must be oriented 2-D slices or 3-D stacks")
	// ErrUnknownOption indicates an unrecognized configuration key.
	ErrUnknownOption = errors.New("cascade: unknown option key")
	// ErrBadOption indicates an option value outside its legal range.
	ErrBadOption = errors.New("cascade: option value out of range")
)

// Kind tags the layer variant an operator executes.
type Kind int

const (
	// Dim1 runs the 1-D layer transform (bandwidth-threshold pruning).
	Dim1 Kind = iota
	// Dim2 runs the 2-D layer transform (scale-gap pruning).
	Dim2
	// RotoTranslation runs the joint spatial/angular 3-D layer transform.
	RotoTranslation
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case Dim1:
		return "1d"
	case Dim2:
		return "2d"
	case RotoTranslation:
		return "roto-translation"
	default:
		return "unknown"
	}
}

// Operator is one layer of the scattering network: a variant tag plus the
// bank reference(s) it closes over. Operators carry no other state — the
// sequence returned by Build is inspectable and each element testable in
// isolation.
type Operator struct {
	Kind    Kind
	Bank    *filterbank.Bank
	Angular *filterbank.Bank // roto-translation only
}
