package cascade

import (
	"context"
	"fmt"

	"github.com/katalvlaran/scatter/filterbank"
	"github.com/katalvlaran/scatter/signal"
)

// Build composes the operator sequence of a plain (translation-only)
// scattering network of maximal order m: m+1 operators, every one running
// the bank's base dimension (1-D or 2-D). Operator k consumes the order-k
// layer and yields that order's (U_phi, U_psi).
func Build(bank *filterbank.Bank, m int) ([]Operator, error) {
	if bank == nil {
		return nil, ErrNilBank
	}
	if m < 0 {
		return nil, ErrBadOrder
	}
	kind := Dim1
	if bank.Dims() == 2 {
		kind = Dim2
	}
	ops := make([]Operator, m+1)
	for k := range ops {
		ops[k] = Operator{Kind: kind, Bank: bank}
	}

	return ops, nil
}

// BuildRoto composes a roto-translation network: operator 0 is the plain
// 2-D layer (producing one modulus image per scale/orientation pair), and
// every operator from order 1 onward is the roto-translation layer
// combining the spatial bank with the periodic angular bank.
func BuildRoto(spatial, angular *filterbank.Bank, m int) ([]Operator, error) {
	if spatial == nil || angular == nil {
		return nil, ErrNilBank
	}
	if m < 0 {
		return nil, ErrBadOrder
	}
	if spatial.Dims() != 2 {
		return nil, fmt.Errorf("%w: spatial bank is %d-D, want 2-D", ErrDimsMismatch, spatial.Dims())
	}
	if angular.Dims() != 1 {
		return nil, fmt.Errorf("%w: angular bank is %d-D, want 1-D", ErrDimsMismatch, angular.Dims())
	}
	ops := make([]Operator, m+1)
	ops[0] = Operator{Kind: Dim2, Bank: spatial}
	for k := 1; k <= m; k++ {
		ops[k] = Operator{Kind: RotoTranslation, Bank: spatial, Angular: angular}
	}

	return ops, nil
}

// Apply dispatches one operator on an input layer. computeContinuations
// false skips every ψ convolution — used for the final order, whose U_psi
// would never be consumed.
func Apply(ctx context.Context, op Operator, layer signal.Layer, opts Options, computeContinuations bool) (uPhi, uPsi signal.Layer, err error) {
	switch op.Kind {
	case Dim1:
		return Transform1D(ctx, layer, op.Bank, opts, computeContinuations)
	case Dim2:
		return Transform2D(ctx, layer, op.Bank, opts, computeContinuations)
	case RotoTranslation:
		return TransformRoto(ctx, layer, op.Bank, op.Angular, opts, computeContinuations)
	default:
		return signal.Layer{}, signal.Layer{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(op.Kind))
	}
}

// Run drives the full cascade composition operator ∘ modulus ∘ operator ∘ …
// over an order-0 input layer and returns the scattering coefficients of
// every order: element m is operator m's U_phi. The modulus nonlinearity is
// applied between orders; intermediate layers are treated as frozen.
func Run(ctx context.Context, input signal.Layer, ops []Operator, opts Options) ([]signal.Layer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := make([]signal.Layer, 0, len(ops))
	current := rebase(input, opts.Resolution)
	for m, op := range ops {
		wantPsi := m < len(ops)-1
		uPhi, uPsi, err := Apply(ctx, op, current, opts, wantPsi)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", m, err)
		}
		out = append(out, uPhi)
		if wantPsi {
			current = signal.Modulus(uPsi)
		}
	}

	return out, nil
}

// rebase ascribes the configured order-0 resolution to an input layer.
// Signals already carrying it pass through; otherwise a fresh layer is
// built (inputs are never mutated), sharing the sample data.
func rebase(input signal.Layer, resolution int) signal.Layer {
	if resolution == 0 {
		return input
	}
	out := signal.Layer{Order: input.Order, Entries: make([]signal.Entry, len(input.Entries))}
	for i, e := range input.Entries {
		sig := *e.Sig
		sig.Resolution = resolution
		path := e.Path.Clone()
		path.Resolution = resolution
		out.Entries[i] = signal.Entry{Sig: &sig, Path: path}
	}

	return out
}
