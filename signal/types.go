// Package signal: core value types shared by every stage of the cascade.
package signal

import (
	"errors"
	"math"
)

// FullBand is the bandwidth of a signal at native sampling rate: the
// frequency support covers the whole circle, radius 2π.
const FullBand = 2 * math.Pi

// Sentinel errors for signal construction.
var (
	// ErrEmptyData indicates a signal with no samples.
	ErrEmptyData = errors.New("signal: data must contain at least one sample")
	// ErrShapeMismatch indicates data length does not match the declared shape.
	ErrShapeMismatch = errors.New("signal: data length does not match shape")
	// ErrBadDimension indicates an unsupported dimensionality (1-D to 3-D).
	ErrBadDimension = errors.New("signal: only 1-D, 2-D and 3-D signals are supported")
)

// Signal is an n-dimensional numeric array attached to its multiresolution
// bookkeeping. Data is stored complex (band-pass branches stay complex until
// the modulus is applied); 2-D data is row-major with Shape = [rows, cols].
// Roto-translation stacks are 3-D with Shape = [orientations, rows, cols],
// the orientation axis outermost.
//
// Resolution counts the dyadic downsamplings already applied relative to the
// original sampling rate; Bandwidth is the frequency-support radius in the
// same angular units as filter center frequencies.
type Signal struct {
	Data       []complex128
	Shape      []int
	Resolution int
	Bandwidth  float64
}

// PathMeta records the ordered sequence of wavelet-selection decisions that
// produced a signal. Scales holds one scale index per cascade order so far;
// Orientations (2-D and roto-translation only) holds one orientation index
// per order, aligned with Scales. Resolution and Bandwidth describe the
// signal the path currently points at.
//
// PhiScale tags terminal (averaged) entries with the low-pass scale J of the
// layer that produced them; it is NoPhi on every continuable path. Keeping
// the tag out of Scales preserves the one-decision-per-order alignment
// between Scales and Orientations.
//
// Roto-translation orders fold the last orientation decision into the
// orientation axis of a 3-D stack; from then on Orientations records the
// angular-wavelet choice per order (AngularLowpass for the angular φ
// branch), and sits one slot behind Scales.
type PathMeta struct {
	Scales       []int
	Orientations []int
	Resolution   int
	Bandwidth    float64
	PhiScale     int
}

// NoPhi marks a continuable path: no low-pass tag has been applied.
const NoPhi = -1

// AngularLowpass is the Orientations marker for the angular low-pass branch
// of a roto-translation order.
const AngularLowpass = -1

// Entry pairs one signal with the path that produced it.
type Entry struct {
	Sig  *Signal
	Path PathMeta
}

// Layer is an ordered collection of entries sharing one cascade order.
// Entries are independent of one another; their order must be preserved
// because outputs are aligned positionally with metadata downstream.
type Layer struct {
	Order   int
	Entries []Entry
}
