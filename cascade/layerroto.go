package cascade

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/scatter/conv"
	"github.com/katalvlaran/scatter/filterbank"
	"github.com/katalvlaran/scatter/signal"
)

// TransformRoto applies one roto-translation wavelet layer: a joint
// decomposition over spatial translation (2-D bank) and image orientation
// (1-D periodic angular bank).
//
// Input forms. The first roto order receives the 2-D wavelet-modulus images
// of the previous layer; entries whose paths differ only in their last
// orientation decision form one scale-group, which is gathered into a stack
// and doubled from L to 2·L orientation samples (the modulus at θ and θ+π
// coincides, so the doubled stack honors the bank's [0, 2π) periodic
// support). Later roto orders receive 3-D stacks directly, orientation axis
// outermost, already periodic.
//
// Per stack, the layer composes two independent wavelet decompositions:
// every sample profile along the orientation axis is convolved with the
// angular φ and ψ filters (periodic boundary, no padding), and each
// resulting slice is convolved with the spatial φ and the scale-gap-active
// spatial ψ filters. The doubly-averaged product φ_spatial∘φ_angular is the
// order's scattering output (U_phi); every product with at least one
// band-pass factor continues the cascade (U_psi), written per parent in the
// order
//
//	ψ_0∘φa, ψ_0∘ψa_0, ψ_0∘ψa_1, …, ψ_1∘φa, …, φ∘ψa_0, φ∘ψa_1, …
//
// (spatial-major, ascending angular index within each spatial choice).
//
// Path bookkeeping: the gathered orientation is folded into the stack's
// axis, so roto orders append the spatial scale to Scales and the
// angular-wavelet index (or AngularLowpass) to Orientations.
func TransformRoto(ctx context.Context, layer signal.Layer, spatial, angular *filterbank.Bank, opts Options, computeContinuations bool) (uPhi, uPsi signal.Layer, err error) {
	if spatial == nil || angular == nil {
		return signal.Layer{}, signal.Layer{}, ErrNilBank
	}
	if err = opts.Validate(); err != nil {
		return signal.Layer{}, signal.Layer{}, err
	}
	if spatial.Dims() != 2 {
		return signal.Layer{}, signal.Layer{}, fmt.Errorf("%w: spatial bank is %d-D, want 2-D", ErrDimsMismatch, spatial.Dims())
	}
	if angular.Dims() != 1 {
		return signal.Layer{}, signal.Layer{}, fmt.Errorf("%w: angular bank is %d-D, want 1-D", ErrDimsMismatch, angular.Dims())
	}

	stacks, err := gatherStacks(layer, angular)
	if err != nil {
		return signal.Layer{}, signal.Layer{}, err
	}

	n := len(stacks)
	na := 0
	if computeContinuations {
		na = len(angular.Psis)
	}
	masks := make([]*bitset.BitSet, n)
	offsets := make([]int, n+1)
	for i := range stacks {
		if computeContinuations {
			masks[i] = ActiveFilters2D(spatial, stacks[i].Path)
		} else {
			masks[i] = noFilters(spatial)
		}
		ns := int(masks[i].Count())
		offsets[i+1] = offsets[i] + ns*(1+na) + na
	}

	uPhi = signal.Layer{Order: layer.Order, Entries: make([]signal.Entry, n)}
	uPsi = signal.Layer{Order: layer.Order + 1, Entries: make([]signal.Entry, offsets[n])}

	err = runEntries(ctx, n, opts.MaxWorkers, func(i int) error {
		return rotoEntry(stacks[i], spatial, angular, opts, masks[i], na,
			&uPhi.Entries[i], uPsi.Entries[offsets[i]:offsets[i+1]])
	})
	if err != nil {
		return signal.Layer{}, signal.Layer{}, err
	}

	return uPhi, uPsi, nil
}

// rotoEntry processes one gathered stack, writing its φ output and its
// preassigned block of ψ continuations.
func rotoEntry(e signal.Entry, spatial, angular *filterbank.Bank, opts Options, spatialMask *bitset.BitSet, na int, phiSlot *signal.Entry, psiSlots []signal.Entry) error {
	aCount, rows, cols := e.Sig.Shape[0], e.Sig.Shape[1], e.Sig.Shape[2]

	// Angular pass: φ_angular and every ψ_angular over the periodic axis.
	angPhi, err := angularConvolve(e.Sig.Data, aCount, rows*cols, &angular.Phi, angular, opts)
	if err != nil {
		return fmt.Errorf("angular φ: %w", err)
	}
	angPsis := make([]*orientStack, na)
	for k := 0; k < na; k++ {
		if angPsis[k], err = angularConvolve(e.Sig.Data, aCount, rows*cols, &angular.Psis[k], angular, opts); err != nil {
			return fmt.Errorf("angular ψ_%d: %w", k, err)
		}
	}

	// Doubly-averaged branch: spatial φ over the angular low-pass stack.
	phiSig, phiRes, phiBW, err := spatialStack(angPhi, rows, cols, e, &spatial.Phi, spatial.Q, opts)
	if err != nil {
		return fmt.Errorf("spatial φ: %w", err)
	}
	*phiSlot = signal.Entry{
		Sig:  phiSig,
		Path: e.Path.ExtendPhi(spatial.J(), phiRes, phiBW),
	}

	// Continuations, spatial-major: ψ_p∘φa then ψ_p∘ψa_k, finally φ∘ψa_k.
	slot := 0
	for p, ok := spatialMask.NextSet(0); ok; p, ok = spatialMask.NextSet(p + 1) {
		psi := &spatial.Psis[p]
		sig, res, bw, serr := spatialStack(angPhi, rows, cols, e, psi, spatial.Q, opts)
		if serr != nil {
			return fmt.Errorf("ψ_%d∘φa: %w", p, serr)
		}
		psiSlots[slot] = signal.Entry{
			Sig:  sig,
			Path: e.Path.ExtendScaleOrientation(psi.Scale, signal.AngularLowpass, res, bw),
		}
		slot++
		for k := 0; k < na; k++ {
			sig, res, bw, serr = spatialStack(angPsis[k], rows, cols, e, psi, spatial.Q, opts)
			if serr != nil {
				return fmt.Errorf("ψ_%d∘ψa_%d: %w", p, k, serr)
			}
			psiSlots[slot] = signal.Entry{
				Sig:  sig,
				Path: e.Path.ExtendScaleOrientation(psi.Scale, k, res, bw),
			}
			slot++
		}
	}
	for k := 0; k < na; k++ {
		sig, res, bw, serr := spatialStack(angPsis[k], rows, cols, e, &spatial.Phi, spatial.Q, opts)
		if serr != nil {
			return fmt.Errorf("φ∘ψa_%d: %w", k, serr)
		}
		psiSlots[slot] = signal.Entry{
			Sig:  sig,
			Path: e.Path.ExtendScaleOrientation(spatial.J(), k, res, bw),
		}
		slot++
	}

	return nil
}

// orientStack is an intermediate orientation-axis convolution result:
// aCount slices of rows×cols samples, stored slice-major.
type orientStack struct {
	data   []complex128
	aCount int
}

// angularConvolve filters every orientation profile of a stack with one
// angular filter, periodic boundary. The angular resolution is derived from
// the axis length against the bank's full support; the downsampling rate is
// clamped so the decimated axis length stays a positive divisor.
func angularConvolve(data []complex128, aCount, pixels int, f *filterbank.Filter, bank *filterbank.Bank, opts Options) (*orientStack, error) {
	support := bank.Phi.Shape[0]
	ra := 0
	for support>>uint(ra) > aCount {
		ra++
	}
	if support>>uint(ra) != aCount {
		return nil, fmt.Errorf("%w: axis %d against support %d", ErrOrientationGroup, aCount, support)
	}
	coeffs, err := f.AtResolution(ra)
	if err != nil {
		return nil, err
	}
	ds := conv.DownsamplingRate(f.Scale, bank.Q, ra, opts.Oversampling)
	for ds > 0 && aCount%(1<<uint(ds)) != 0 {
		ds--
	}
	outA := aCount >> uint(ds)

	out := &orientStack{data: make([]complex128, outA*pixels), aCount: outA}
	profile := make([]complex128, aCount)
	for px := 0; px < pixels; px++ {
		for a := 0; a < aCount; a++ {
			profile[a] = data[a*pixels+px]
		}
		filtered, cerr := conv.Subsample1D(profile, coeffs, ds, conv.Periodic)
		if cerr != nil {
			return nil, cerr
		}
		for a := 0; a < outA; a++ {
			out.data[a*pixels+px] = filtered[a]
		}
	}

	return out, nil
}

// spatialStack applies one spatial filter to every slice of an
// angular-convolution result, reassembling a 3-D stack signal.
func spatialStack(st *orientStack, rows, cols int, parent signal.Entry, f *filterbank.Filter, q int, opts Options) (*signal.Signal, int, float64, error) {
	slice := &signal.Signal{
		Shape:      []int{rows, cols},
		Resolution: parent.Sig.Resolution,
		Bandwidth:  parent.Path.Bandwidth,
	}

	var (
		out         []complex128
		or, oc, res int
		bw          float64
	)
	for a := 0; a < st.aCount; a++ {
		slice.Data = st.data[a*rows*cols : (a+1)*rows*cols]
		conved, newRes, newBW, err := convolve2D(slice, f, q, opts)
		if err != nil {
			return nil, 0, 0, err
		}
		if out == nil {
			or, oc = conved.Shape[0], conved.Shape[1]
			res, bw = newRes, newBW
			out = make([]complex128, st.aCount*or*oc)
		}
		copy(out[a*or*oc:(a+1)*or*oc], conved.Data)
	}

	return &signal.Signal{
		Data:       out,
		Shape:      []int{st.aCount, or, oc},
		Resolution: res,
		Bandwidth:  bw,
	}, res, bw, nil
}

// gatherStacks normalizes roto input into 3-D stack entries. 2-D oriented
// slices are grouped by their path prefix (everything but the last
// orientation) and doubled over the half turn; 3-D entries pass through.
func gatherStacks(layer signal.Layer, angular *filterbank.Bank) ([]signal.Entry, error) {
	if len(layer.Entries) == 0 {
		return nil, nil
	}

	dims := layer.Entries[0].Sig.Dims()
	for i := range layer.Entries {
		if layer.Entries[i].Sig.Dims() != dims {
			return nil, fmt.Errorf("%w: mixed dimensionalities", ErrStackShape)
		}
	}

	if dims == 3 {
		out := make([]signal.Entry, len(layer.Entries))
		copy(out, layer.Entries)

		return out, nil
	}
	if dims != 2 {
		return nil, ErrStackShape
	}

	var stacks []signal.Entry
	i := 0
	for i < len(layer.Entries) {
		first := layer.Entries[i]
		if len(first.Path.Orientations) == 0 {
			return nil, fmt.Errorf("%w: 2-D entry %d carries no orientation decision", ErrStackShape, i)
		}
		j := i + 1
		for j < len(layer.Entries) && sameGroup(first, layer.Entries[j]) {
			j++
		}
		st, err := buildStack(layer.Entries[i:j], angular)
		if err != nil {
			return nil, err
		}
		stacks = append(stacks, st)
		i = j
	}

	return stacks, nil
}

// sameGroup reports whether b belongs to a's scale-group: identical scale
// history, identical orientation history up to the last decision, same
// resolution and shape.
func sameGroup(a, b signal.Entry) bool {
	pa, pb := a.Path, b.Path
	if len(pa.Scales) != len(pb.Scales) || len(pa.Orientations) != len(pb.Orientations) {
		return false
	}
	for i := range pa.Scales {
		if pa.Scales[i] != pb.Scales[i] {
			return false
		}
	}
	for i := 0; i < len(pa.Orientations)-1; i++ {
		if pa.Orientations[i] != pb.Orientations[i] {
			return false
		}
	}
	if pa.Resolution != pb.Resolution {
		return false
	}
	sa, sb := a.Sig.Shape, b.Sig.Shape

	return sa[0] == sb[0] && sa[1] == sb[1]
}

// buildStack doubles one scale-group of L orientation slices into a 2·L
// periodic stack and folds the gathered orientation out of the path.
func buildStack(group []signal.Entry, angular *filterbank.Bank) (signal.Entry, error) {
	l := len(group)
	rows, cols := group[0].Sig.Shape[0], group[0].Sig.Shape[1]
	if err := filterbank.ValidateAngular(angular, 2*l); err != nil {
		return signal.Entry{}, fmt.Errorf("%w: group of %d slices: %w", ErrOrientationGroup, l, err)
	}

	data := make([]complex128, 2*l*rows*cols)
	for t, e := range group {
		copy(data[t*rows*cols:(t+1)*rows*cols], e.Sig.Data)
		copy(data[(l+t)*rows*cols:(l+t+1)*rows*cols], e.Sig.Data)
	}

	path := group[0].Path.Clone()
	path.Orientations = path.Orientations[:len(path.Orientations)-1]

	return signal.Entry{
		Sig: &signal.Signal{
			Data:       data,
			Shape:      []int{2 * l, rows, cols},
			Resolution: group[0].Sig.Resolution,
			Bandwidth:  group[0].Sig.Bandwidth,
		},
		Path: path,
	}, nil
}
