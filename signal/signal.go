package signal

import (
	"math/cmplx"
)

// New1D wraps real-valued samples as a 1-D signal at resolution 0 with full
// bandwidth. Returns ErrEmptyData on empty input.
func New1D(data []float64) (*Signal, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	c := make([]complex128, len(data))
	for i, v := range data {
		c[i] = complex(v, 0)
	}

	return &Signal{Data: c, Shape: []int{len(data)}, Bandwidth: FullBand}, nil
}

// New2D wraps a row-major real-valued image of rows×cols samples as a 2-D
// signal at resolution 0 with full bandwidth.
func New2D(rows, cols int, data []float64) (*Signal, error) {
	if rows <= 0 || cols <= 0 || len(data) == 0 {
		return nil, ErrEmptyData
	}
	if len(data) != rows*cols {
		return nil, ErrShapeMismatch
	}
	c := make([]complex128, len(data))
	for i, v := range data {
		c[i] = complex(v, 0)
	}

	return &Signal{Data: c, Shape: []int{rows, cols}, Bandwidth: FullBand}, nil
}

// FromComplex wraps complex samples with an explicit shape, resolution and
// bandwidth. The slice is referenced, not copied.
func FromComplex(data []complex128, shape []int, resolution int, bandwidth float64) (*Signal, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if len(shape) < 1 || len(shape) > 3 {
		return nil, ErrBadDimension
	}
	n := 1
	for _, s := range shape {
		n *= s
	}
	if n != len(data) {
		return nil, ErrShapeMismatch
	}

	return &Signal{Data: data, Shape: shape, Resolution: resolution, Bandwidth: bandwidth}, nil
}

// Dims returns the dimensionality of the signal (1, 2, or 3).
func (s *Signal) Dims() int { return len(s.Shape) }

// Len returns the total number of samples.
func (s *Signal) Len() int { return len(s.Data) }

// Real extracts the real part of every sample. Low-pass (averaged) branches
// of the cascade are real-valued by construction; this is how they are read
// out for formatting.
func (s *Signal) Real() []float64 {
	out := make([]float64, len(s.Data))
	for i, v := range s.Data {
		out[i] = real(v)
	}

	return out
}

// Clone deep-copies the signal, including its shape slice.
func (s *Signal) Clone() *Signal {
	data := make([]complex128, len(s.Data))
	copy(data, s.Data)
	shape := make([]int, len(s.Shape))
	copy(shape, s.Shape)

	return &Signal{Data: data, Shape: shape, Resolution: s.Resolution, Bandwidth: s.Bandwidth}
}

// Modulus returns a new layer whose every sample is the complex modulus of
// the corresponding input sample. The input layer is left untouched: layers
// are frozen once produced. Path metadata is copied verbatim — the modulus
// changes neither resolution nor bandwidth accounting.
func Modulus(layer Layer) Layer {
	out := Layer{Order: layer.Order, Entries: make([]Entry, len(layer.Entries))}
	for i, e := range layer.Entries {
		mod := e.Sig.Clone()
		for k, v := range mod.Data {
			mod.Data[k] = complex(cmplx.Abs(v), 0)
		}
		out.Entries[i] = Entry{Sig: mod, Path: e.Path.Clone()}
	}

	return out
}
