// Package scatter is your in-memory toolkit for computing wavelet
// scattering transforms — cascades of wavelet convolution, modulus and
// low-pass averaging that turn raw signals and images into stable,
// deformation-tolerant feature vectors.
//
// 🚀 What is scatter?
//
//	A pure-Go scattering engine that brings together:
//		• Band-limited convolution: FFT multiply + exact frequency folding
//		• Multiresolution filter banks: φ/ψ coefficients per resolution
//		• Path pruning: bandwidth thresholds (1-D) & scale gaps (2-D)
//		• Scattering layers: 1-D, 2-D and 3-D roto-translation
//		• Cascade builder: compose operators up to any order
//		• Output formatting: per-order tables, one table, or a flat vector
//
// ✨ Why choose scatter?
//
//   - Predictable numerics – unit DC gain through every averaging branch
//   - Deterministic output – path ordering is invariant under parallelism
//   - Pure Go – gonum FFTs, no cgo, no hidden deps
//   - Extensible – bring your own externally designed filter banks
//
// Under the hood, everything is organized under six subpackages:
//
//	signal/     — Signal, PathMeta, Layer types & the modulus nonlinearity
//	filterbank/ — validated φ/ψ banks + periodization across resolutions
//	conv/       — downsampling rates & fused convolve-and-decimate kernels
//	cascade/    — pruning masks, per-dimension layers, builder & Run driver
//	format/     — raw, order_table, table and vector output layouts
//	examples/   — runnable end-to-end scenarios
//
// Quick ASCII example:
//
//	x ──ψ_j──▶ |·| ──ψ_k──▶ |·| ──φ──▶ S[j,k]x
//	   └──────────φ──▶ S[]x      └─φ─▶ S[j]x
//
//	every path through the tree of wavelets ends in one averaged
//	coefficient vector; together they form the scattering output.
//
// Dive into DESIGN.md for the architecture notes and the per-package
// grounding of every numerical convention.
//
//	go get github.com/katalvlaran/scatter
package scatter
