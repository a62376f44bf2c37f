package cascade

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/scatter/conv"
	"github.com/katalvlaran/scatter/filterbank"
	"github.com/katalvlaran/scatter/signal"
)

// Transform2D applies one wavelet layer to a 2-D (image) input layer.
//
// Identical orchestration to Transform1D with the image-specific policies:
// scale-gap pruning (ψ_p active iff j_p ≥ j_last + Q) and joint
// (scale, orientation) path extension — one orientation decision per scale
// decision.
func Transform2D(ctx context.Context, layer signal.Layer, bank *filterbank.Bank, opts Options, computeContinuations bool) (uPhi, uPsi signal.Layer, err error) {
	if err = checkLayer(layer, bank, opts, 2); err != nil {
		return signal.Layer{}, signal.Layer{}, err
	}

	n := len(layer.Entries)
	masks := make([]*bitset.BitSet, n)
	offsets := make([]int, n+1)
	for i := range layer.Entries {
		if computeContinuations {
			masks[i] = ActiveFilters2D(bank, layer.Entries[i].Path)
		} else {
			masks[i] = noFilters(bank)
		}
		offsets[i+1] = offsets[i] + int(masks[i].Count())
	}

	uPhi = signal.Layer{Order: layer.Order, Entries: make([]signal.Entry, n)}
	uPsi = signal.Layer{Order: layer.Order + 1, Entries: make([]signal.Entry, offsets[n])}

	err = runEntries(ctx, n, opts.MaxWorkers, func(i int) error {
		e := layer.Entries[i]

		phiOut, phiRes, phiBW, cerr := convolve2D(e.Sig, &bank.Phi, bank.Q, opts)
		if cerr != nil {
			return fmt.Errorf("entry %d, φ: %w", i, cerr)
		}
		uPhi.Entries[i] = signal.Entry{
			Sig:  phiOut,
			Path: e.Path.ExtendPhi(bank.J(), phiRes, phiBW),
		}

		slot := offsets[i]
		for p, ok := masks[i].NextSet(0); ok; p, ok = masks[i].NextSet(p + 1) {
			psi := &bank.Psis[p]
			psiOut, psiRes, psiBW, perr := convolve2D(e.Sig, psi, bank.Q, opts)
			if perr != nil {
				return fmt.Errorf("entry %d, ψ_%d: %w", i, p, perr)
			}
			uPsi.Entries[slot] = signal.Entry{
				Sig:  psiOut,
				Path: e.Path.ExtendScaleOrientation(psi.Scale, psi.Orientation, psiRes, psiBW),
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

// convolve2D runs the band-limited convolution of one image with one filter.
func convolve2D(sig *signal.Signal, f *filterbank.Filter, q int, opts Options) (*signal.Signal, int, float64, error) {
	r := sig.Resolution
	ds := conv.DownsamplingRate(f.Scale, q, r, opts.Oversampling)
	coeffs, err := f.AtResolution(r)
	if err != nil {
		return nil, 0, 0, err
	}
	d := 1 << uint(r)
	fr, fc := f.Shape[0]/d, f.Shape[1]/d
	out, or, oc, err := conv.Subsample2D(sig.Data, sig.Shape[0], sig.Shape[1], coeffs, fr, fc, ds, conv.ZeroPad)
	if err != nil {
		return nil, 0, 0, err
	}
	newRes := r + ds
	bw := minBandwidth(sig.Bandwidth, f.Bandwidth)

	return &signal.Signal{
		Data:       out,
		Shape:      []int{or, oc},
		Resolution: newRes,
		Bandwidth:  bw,
	}, newRes, bw, nil
}
