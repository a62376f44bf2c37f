// Package filterbank defines the contract between the scattering engine and
// an externally constructed wavelet filter bank.
//
// The engine never designs filters. It consumes a Bank: one frequency-domain
// low-pass filter φ (scale J) and a family of band-pass filters ψ_p, each
// annotated with its center frequency ξ_p, scale j_p, orientation θ_p (2-D
// banks only) and bandwidth, plus the bank-wide decimation quality factor Q
// (filters per octave).
//
// Filters are supplied in "multiresolution Fourier" form: the full-resolution
// frequency response, optionally with precomputed periodized copies at lower
// resolutions. AtResolution resolves the copy the convolution kernel needs,
// periodizing on the fly when a copy is absent — the bank itself is immutable
// after New and is freely shared across goroutines, orders, and samples.
//
// Angular banks: roto-translation scattering reuses the same Bank type for
// the 1-D periodic filter bank along the orientation axis, built over 2·L
// samples (orientations in [0, π) doubled to [0, 2π) for the half-turn
// symmetry of the modulus). ValidateAngular checks that contract.
package filterbank
