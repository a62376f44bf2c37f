// Package signal defines the data model of the scattering engine:
// multiresolution signals, scattering paths, and layers.
//
// 🌊 What is a scattering layer?
//
//	A wavelet scattering network iterates three operators — wavelet
//	convolution, pointwise modulus, low-pass averaging — and keeps the
//	low-pass output at every order. Between orders, the unit of currency
//	is a Layer: an ordered collection of signals, each annotated with the
//	Path of wavelet choices that produced it.
//
// Core types:
//   - Signal   — an n-dimensional numeric array (1-D, 2-D row-major, or a
//     3-D roto-translation stack with the orientation axis outermost),
//     carrying its Resolution (dyadic downsamplings already applied) and
//     Bandwidth (frequency-support radius).
//   - PathMeta — the ordered scale/orientation decisions behind a signal,
//     plus its current resolution and bandwidth. One record per signal;
//     never shared between entries.
//   - Layer    — an ordered []Entry of (Signal, PathMeta) pairs at one
//     cascade order. Entry order is significant: downstream formatting
//     aligns coefficient rows with metadata positionally.
//
// Invariants:
//   - Bandwidth is non-increasing along any path as order grows.
//   - A Layer is immutable once returned by the engine; callers must not
//     mutate entries in place, because later orders treat prior layers as
//     frozen.
//
// Modulus applies the elementwise complex modulus to every signal of a
// layer, producing the input of the next cascade order.
package signal
