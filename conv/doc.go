// Package conv implements the band-limited convolution primitive of the
// scattering cascade: frequency-domain filtering fused with dyadic
// decimation.
//
// One call to Subsample1D/Subsample2D performs, in order:
//  1. zero-pad the signal to the filter's declared support (suppresses
//     circular-convolution artifacts at the borders);
//  2. FFT of the padded signal;
//  3. pointwise multiply with the resolution-matched frequency response;
//  4. periodize the product spectrum by 2^ds — the exact frequency-domain
//     counterpart of ideal decimation by 2^ds;
//  5. inverse FFT at the reduced length;
//  6. unpad back to the size implied by the input size and the new
//     resolution (⌈n/2^ds⌉ per axis).
//
// The Periodic boundary mode skips the pad/unpad steps for signals that are
// genuinely circular — the orientation axis of roto-translation scattering —
// and therefore requires the filter support to equal the signal length.
//
// DownsamplingRate gives the decimation exponent for a filter of scale s
// with quality factor Q at a given signal resolution:
//
//	ds = max(⌊s/Q⌋ - resolution - oversampling, 0)
//
// Coarser filters decimate more; the oversampling margin (default 1) keeps
// one octave of headroom so critical sampling is never hit exactly.
//
// FFTs are computed with gonum's dsp/fourier; 2-D transforms are separable
// row/column passes.
package conv
