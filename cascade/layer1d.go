package cascade

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/scatter/conv"
	"github.com/katalvlaran/scatter/filterbank"
	"github.com/katalvlaran/scatter/signal"
)

// Transform1D applies one wavelet layer to a 1-D input layer.
//
// For every entry, independently: compute the active-ψ mask (1-D
// bandwidth-threshold pruning), convolve with φ at the entry's resolution,
// and — when computeContinuations is true — with every active ψ_p, each at
// its own downsampling rate. φ results land in U_phi (terminal, order =
// layer's order); ψ results land in U_psi (order+1), children of entry p
// contiguous and in increasing filter index.
//
// With computeContinuations false every ψ convolution is skipped: the caller
// only wants terminal coefficients for this order.
func Transform1D(ctx context.Context, layer signal.Layer, bank *filterbank.Bank, opts Options, computeContinuations bool) (uPhi, uPsi signal.Layer, err error) {
	if err = checkLayer(layer, bank, opts, 1); err != nil {
		return signal.Layer{}, signal.Layer{}, err
	}

	n := len(layer.Entries)
	masks := make([]*bitset.BitSet, n)
	offsets := make([]int, n+1)
	for i := range layer.Entries {
		if computeContinuations {
			masks[i] = ActiveFilters1D(bank, layer.Entries[i].Path.Bandwidth, opts.PathMargin)
		} else {
			masks[i] = noFilters(bank)
		}
		offsets[i+1] = offsets[i] + int(masks[i].Count())
	}

	uPhi = signal.Layer{Order: layer.Order, Entries: make([]signal.Entry, n)}
	uPsi = signal.Layer{Order: layer.Order + 1, Entries: make([]signal.Entry, offsets[n])}

	err = runEntries(ctx, n, opts.MaxWorkers, func(i int) error {
		e := layer.Entries[i]

		// Averaged branch: φ at the entry's resolution, real-valued by contract.
		phiOut, phiRes, phiBW, cerr := convolve1D(e.Sig, &bank.Phi, bank.Q, opts)
		if cerr != nil {
			return fmt.Errorf("entry %d, φ: %w", i, cerr)
		}
		uPhi.Entries[i] = signal.Entry{
			Sig:  phiOut,
			Path: e.Path.ExtendPhi(bank.J(), phiRes, phiBW),
		}

		// Continuations: active ψ filters, ascending index, contiguous slots.
		slot := offsets[i]
		for p, ok := masks[i].NextSet(0); ok; p, ok = masks[i].NextSet(p + 1) {
			psi := &bank.Psis[p]
			psiOut, psiRes, psiBW, perr := convolve1D(e.Sig, psi, bank.Q, opts)
			if perr != nil {
				return fmt.Errorf("entry %d, ψ_%d: %w", i, p, perr)
			}
			uPsi.Entries[slot] = signal.Entry{
				Sig:  psiOut,
				Path: e.Path.ExtendScale(psi.Scale, psiRes, psiBW),
			}
			slot++
		}

		return nil
	})
	if err != nil {
		return signal.Layer{}, signal.Layer{}, err
	}

	return uPhi, uPsi, nil
}

// convolve1D runs the band-limited convolution of one 1-D signal with one
// filter, returning the output signal plus its new resolution and bandwidth.
func convolve1D(sig *signal.Signal, f *filterbank.Filter, q int, opts Options) (*signal.Signal, int, float64, error) {
	r := sig.Resolution
	ds := conv.DownsamplingRate(f.Scale, q, r, opts.Oversampling)
	coeffs, err := f.AtResolution(r)
	if err != nil {
		return nil, 0, 0, err
	}
	out, err := conv.Subsample1D(sig.Data, coeffs, ds, conv.ZeroPad)
	if err != nil {
		return nil, 0, 0, err
	}
	newRes := r + ds
	bw := minBandwidth(sig.Bandwidth, f.Bandwidth)

	return &signal.Signal{
		Data:       out,
		Shape:      []int{len(out)},
		Resolution: newRes,
		Bandwidth:  bw,
	}, newRes, bw, nil
}

// minBandwidth clamps a filter's output bandwidth to the parent's: a
// convolution can only shrink frequency support, never restore it.
func minBandwidth(parent, filter float64) float64 {
	if filter < parent {
		return filter
	}

	return parent
}

// checkLayer validates the transform preconditions eagerly: non-nil bank of
// the expected dimensionality, valid options, and input signals matching.
func checkLayer(layer signal.Layer, bank *filterbank.Bank, opts Options, dims int) error {
	if bank == nil {
		return ErrNilBank
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if bank.Dims() != dims {
		return fmt.Errorf("%w: bank is %d-D, want %d-D", ErrDimsMismatch, bank.Dims(), dims)
	}
	for i := range layer.Entries {
		if layer.Entries[i].Sig.Dims() != dims {
			return fmt.Errorf("%w: entry %d is %d-D", ErrDimsMismatch, i, layer.Entries[i].Sig.Dims())
		}
	}

	return nil
}
