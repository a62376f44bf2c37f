package cascade

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/scatter/filterbank"
	"github.com/katalvlaran/scatter/signal"
)

// ActiveFilters1D returns the 1-D pruning mask over bank.Psis: ψ_p is active
// iff bandwidth·2^margin > ξ_p. Only filters whose center frequency lies
// below the (margin-relaxed) current signal bandwidth can still extract
// non-negligible energy; everything above is pruned, which both bounds the
// path tree and enforces the monotone-bandwidth invariant.
func ActiveFilters1D(bank *filterbank.Bank, bandwidth, margin float64) *bitset.BitSet {
	mask := bitset.New(uint(len(bank.Psis)))
	thresh := bandwidth * math.Exp2(margin)
	for p := range bank.Psis {
		if bank.Psis[p].CenterFreq < thresh {
			mask.Set(uint(p))
		}
	}

	return mask
}

// ActiveFilters2D returns the 2-D pruning mask: ψ_p is active iff
// j_p ≥ j_last + Q, where j_last is the path's most recent scale decision.
// With Q filters per octave this guarantees each successive wavelet probes
// a strictly lower band by at least one full octave-family step. The empty
// (order-0) path activates every filter.
func ActiveFilters2D(bank *filterbank.Bank, path signal.PathMeta) *bitset.BitSet {
	mask := bitset.New(uint(len(bank.Psis)))
	last, ok := path.LastScale()
	for p := range bank.Psis {
		if !ok || bank.Psis[p].Scale >= last+bank.Q {
			mask.Set(uint(p))
		}
	}

	return mask
}

// noFilters is the all-false mask used when the caller does not need
// continuation paths: every ψ convolution is skipped, φ is still computed.
func noFilters(bank *filterbank.Bank) *bitset.BitSet {
	return bitset.New(uint(len(bank.Psis)))
}
