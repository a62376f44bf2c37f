package cascade_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scatter/filterbank"
	"github.com/katalvlaran/scatter/signal"
)

// Synthetic banks with distinguishable scales/orientations. Responses are
// chosen so spectral behavior is predictable: φ has unit DC gain, each 1-D
// ψ is a single frequency bin, 2-D responses are flat (identity-like) where
// only bookkeeping is under test.

func flat(n int, v float64) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(v, 0)
	}

	return out
}

func flat64(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func bin(n, k int) []complex128 {
	out := make([]complex128, n)
	out[k] = 1

	return out
}

// bank1D: support 8, Q=1, φ at scale 2 with unit DC gain, ψ at scales 1 and
// 2 centered on π and π/2. Downsampling at resolution 0 with the default
// margin: φ→1, ψ_0→0, ψ_1→1.
func bank1D(t *testing.T) *filterbank.Bank {
	t.Helper()
	phi := filterbank.Filter{
		Coeffs:    [][]complex128{{1, 0.5, 0, 0, 0, 0, 0, 0.5}},
		Shape:     []int{8},
		Scale:     2,
		Bandwidth: math.Pi / 4,
	}
	psis := []filterbank.Filter{
		{Coeffs: [][]complex128{bin(8, 4)}, Shape: []int{8}, CenterFreq: math.Pi, Scale: 1, Bandwidth: math.Pi / 2},
		{Coeffs: [][]complex128{bin(8, 2)}, Shape: []int{8}, CenterFreq: math.Pi / 2, Scale: 2, Bandwidth: math.Pi / 4},
	}
	b, err := filterbank.New(phi, psis, 1)
	require.NoError(t, err)

	return b
}

// bank2D: support 4×4, Q=1, two scales × two orientations, flat responses.
func bank2D(t *testing.T) *filterbank.Bank {
	t.Helper()
	phi := filterbank.Filter{
		Coeffs:    [][]complex128{flat(16, 1)},
		Shape:     []int{4, 4},
		Scale:     2,
		Bandwidth: math.Pi / 4,
	}
	var psis []filterbank.Filter
	for j := 1; j <= 2; j++ {
		for theta := 0; theta < 2; theta++ {
			psis = append(psis, filterbank.Filter{
				Coeffs:      [][]complex128{flat(16, 0.5)},
				Shape:       []int{4, 4},
				CenterFreq:  math.Pi / float64(int(1)<<uint(j)),
				Scale:       j,
				Orientation: theta,
				Bandwidth:   math.Pi / float64(int(2)<<uint(j)),
			})
		}
	}
	b, err := filterbank.New(phi, psis, 1)
	require.NoError(t, err)

	return b
}

// bankAngular: periodic 1-D bank over 2·L = 4 orientation samples.
func bankAngular(t *testing.T) *filterbank.Bank {
	t.Helper()
	phi := filterbank.Filter{
		Coeffs:    [][]complex128{flat(4, 1)},
		Shape:     []int{4},
		Scale:     1,
		Bandwidth: math.Pi / 2,
	}
	psis := []filterbank.Filter{
		{Coeffs: [][]complex128{bin(4, 1)}, Shape: []int{4}, CenterFreq: math.Pi / 2, Scale: 1, Bandwidth: math.Pi / 4},
	}
	b, err := filterbank.New(phi, psis, 1)
	require.NoError(t, err)

	return b
}

// ramp1D builds a 1-D entry at an explicit resolution and bandwidth.
func ramp1D(t *testing.T, n, resolution int, bandwidth float64) signal.Entry {
	t.Helper()
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(float64(i+1), 0)
	}
	sig, err := signal.FromComplex(data, []int{n}, resolution, bandwidth)
	require.NoError(t, err)

	return signal.Entry{
		Sig:  sig,
		Path: signal.PathMeta{Resolution: resolution, Bandwidth: bandwidth, PhiScale: signal.NoPhi},
	}
}

// constImage wraps a constant rows×cols image as an order-0 layer.
func constImage(t *testing.T, rows, cols int, v float64) signal.Layer {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}
	img, err := signal.New2D(rows, cols, data)
	require.NoError(t, err)

	return signal.NewInput(img)
}
