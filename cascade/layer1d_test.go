package cascade_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scatter/cascade"
	"github.com/katalvlaran/scatter/signal"
)

// TestTransform1D_OrderingInvariant feeds two parents with different
// bandwidths: parent 0 keeps both ψ, parent 1 only the coarse one. The
// flattened U_psi must show parent-0 children first, each block in
// increasing filter index.
func TestTransform1D_OrderingInvariant(t *testing.T) {
	bank := bank1D(t)
	layer := signal.Layer{Order: 0, Entries: []signal.Entry{
		ramp1D(t, 8, 0, 2*math.Pi), // both ψ active
		ramp1D(t, 8, 0, math.Pi),   // only ψ_1 (ξ = π/2) active
	}}

	uPhi, uPsi, err := cascade.Transform1D(context.Background(), layer, bank, cascade.DefaultOptions(), true)
	require.NoError(t, err)

	require.Len(t, uPhi.Entries, 2)
	assert.Equal(t, 0, uPhi.Order)
	assert.Equal(t, 1, uPsi.Order)

	require.Len(t, uPsi.Entries, 3)
	assert.Equal(t, []int{1}, uPsi.Entries[0].Path.Scales, "parent 0, filter 0")
	assert.Equal(t, []int{2}, uPsi.Entries[1].Path.Scales, "parent 0, filter 1")
	assert.Equal(t, []int{2}, uPsi.Entries[2].Path.Scales, "parent 1, filter 1")

	for _, e := range uPsi.Entries {
		assert.Equal(t, signal.NoPhi, e.Path.PhiScale, "continuations stay continuable")
	}
	for i, e := range uPhi.Entries {
		assert.Empty(t, e.Path.Scales, "terminal paths keep the (empty) history")
		assert.Equal(t, bank.J(), e.Path.PhiScale, "entry %d tagged with the layer's φ scale", i)
	}
}

// TestTransform1D_PruningCorrectness: no ψ_p with ξ_p ≥ bandwidth·2^margin
// ever appears among the continuations.
func TestTransform1D_PruningCorrectness(t *testing.T) {
	bank := bank1D(t)
	xiByScale := map[int]float64{1: math.Pi, 2: math.Pi / 2}

	for _, bw := range []float64{2 * math.Pi, math.Pi, math.Pi / 2} {
		layer := signal.Layer{Order: 0, Entries: []signal.Entry{ramp1D(t, 8, 0, bw)}}
		_, uPsi, err := cascade.Transform1D(context.Background(), layer, bank, cascade.DefaultOptions(), true)
		require.NoError(t, err)

		for _, e := range uPsi.Entries {
			j := e.Path.Scales[len(e.Path.Scales)-1]
			assert.Less(t, xiByScale[j], bw, "bandwidth %v admitted ξ=%v", bw, xiByScale[j])
		}
	}
}

// TestTransform1D_EmptyMaskIsNotAnError: a fully collapsed bandwidth yields
// an empty continuation layer, φ is still computed.
func TestTransform1D_EmptyMaskIsNotAnError(t *testing.T) {
	bank := bank1D(t)
	layer := signal.Layer{Order: 1, Entries: []signal.Entry{ramp1D(t, 8, 0, math.Pi/4)}}

	uPhi, uPsi, err := cascade.Transform1D(context.Background(), layer, bank, cascade.DefaultOptions(), true)
	require.NoError(t, err)
	assert.Len(t, uPhi.Entries, 1)
	assert.Empty(t, uPsi.Entries)
}

// TestTransform1D_ResolutionBookkeeping pins the multiresolution arithmetic
// of the synthetic bank: ψ at scale 1 keeps resolution 0, ψ at scale 2 and
// φ decimate one octave.
func TestTransform1D_ResolutionBookkeeping(t *testing.T) {
	bank := bank1D(t)
	layer := signal.Layer{Order: 0, Entries: []signal.Entry{ramp1D(t, 8, 0, 2*math.Pi)}}

	uPhi, uPsi, err := cascade.Transform1D(context.Background(), layer, bank, cascade.DefaultOptions(), true)
	require.NoError(t, err)

	require.Len(t, uPsi.Entries, 2)
	assert.Equal(t, 0, uPsi.Entries[0].Path.Resolution)
	assert.Equal(t, 8, uPsi.Entries[0].Sig.Len())
	assert.Equal(t, 1, uPsi.Entries[1].Path.Resolution)
	assert.Equal(t, 4, uPsi.Entries[1].Sig.Len())

	assert.Equal(t, 1, uPhi.Entries[0].Path.Resolution)
	assert.Equal(t, 4, uPhi.Entries[0].Sig.Len())
	assert.Equal(t, uPhi.Entries[0].Path.Resolution, uPhi.Entries[0].Sig.Resolution)
}

// TestTransform1D_BandwidthMonotone: every produced path's bandwidth is at
// most its parent's.
func TestTransform1D_BandwidthMonotone(t *testing.T) {
	bank := bank1D(t)
	parentBW := 2 * math.Pi
	layer := signal.Layer{Order: 0, Entries: []signal.Entry{ramp1D(t, 8, 0, parentBW)}}

	uPhi, uPsi, err := cascade.Transform1D(context.Background(), layer, bank, cascade.DefaultOptions(), true)
	require.NoError(t, err)

	for _, e := range uPhi.Entries {
		assert.LessOrEqual(t, e.Path.Bandwidth, parentBW)
	}
	for _, e := range uPsi.Entries {
		assert.LessOrEqual(t, e.Path.Bandwidth, parentBW)
	}
}

// TestTransform1D_NoContinuations skips every ψ convolution when the caller
// only wants terminal coefficients.
func TestTransform1D_NoContinuations(t *testing.T) {
	bank := bank1D(t)
	layer := signal.Layer{Order: 0, Entries: []signal.Entry{ramp1D(t, 8, 0, 2*math.Pi)}}

	uPhi, uPsi, err := cascade.Transform1D(context.Background(), layer, bank, cascade.DefaultOptions(), false)
	require.NoError(t, err)
	assert.Len(t, uPhi.Entries, 1, "φ is always computed")
	assert.Empty(t, uPsi.Entries)
}

// TestTransform1D_Validation covers the eager precondition checks.
func TestTransform1D_Validation(t *testing.T) {
	layer := signal.Layer{Order: 0, Entries: []signal.Entry{ramp1D(t, 8, 0, 2*math.Pi)}}

	_, _, err := cascade.Transform1D(context.Background(), layer, nil, cascade.DefaultOptions(), true)
	assert.ErrorIs(t, err, cascade.ErrNilBank)

	_, _, err = cascade.Transform1D(context.Background(), layer, bank2D(t), cascade.DefaultOptions(), true)
	assert.ErrorIs(t, err, cascade.ErrDimsMismatch)

	bad := cascade.DefaultOptions()
	bad.Oversampling = -1
	_, _, err = cascade.Transform1D(context.Background(), layer, bank1D(t), bad, true)
	assert.ErrorIs(t, err, cascade.ErrBadOption)
}

// TestTransform1D_Cancelled: a cancelled context aborts the dispatch as a
// unit; no partial output is returned.
func TestTransform1D_Cancelled(t *testing.T) {
	bank := bank1D(t)
	layer := signal.Layer{Order: 0, Entries: []signal.Entry{ramp1D(t, 8, 0, 2*math.Pi)}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uPhi, uPsi, err := cascade.Transform1D(ctx, layer, bank, cascade.DefaultOptions(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, uPhi.Entries)
	assert.Empty(t, uPsi.Entries)
}

// TestTransform1D_ParallelMatchesSerial: worker count must not change the
// output (slot ownership, not completion order, decides placement).
func TestTransform1D_ParallelMatchesSerial(t *testing.T) {
	bank := bank1D(t)
	entries := make([]signal.Entry, 16)
	for i := range entries {
		entries[i] = ramp1D(t, 8, 0, 2*math.Pi)
	}
	layer := signal.Layer{Order: 0, Entries: entries}

	serialOpts := cascade.DefaultOptions()
	serialOpts.MaxWorkers = 1
	parallelOpts := cascade.DefaultOptions()
	parallelOpts.MaxWorkers = 8

	_, serial, err := cascade.Transform1D(context.Background(), layer, bank, serialOpts, true)
	require.NoError(t, err)
	_, parallel, err := cascade.Transform1D(context.Background(), layer, bank, parallelOpts, true)
	require.NoError(t, err)

	require.Equal(t, len(serial.Entries), len(parallel.Entries))
	for i := range serial.Entries {
		assert.Equal(t, serial.Entries[i].Path, parallel.Entries[i].Path, "entry %d", i)
		assert.Equal(t, serial.Entries[i].Sig.Data, parallel.Entries[i].Sig.Data, "entry %d", i)
	}
}
