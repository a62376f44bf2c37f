package filterbank

import "fmt"

// AtResolution returns the filter's frequency response matched to a signal
// that has been downsampled r times: Shape collapsed by 2^r along every
// axis. Precomputed copies are used when the bank carries them; otherwise
// the copy is periodized on the fly from the full-resolution response. The
// filter itself is never mutated (banks are shared read-only), so on-the-fly
// copies are not cached.
func (f *Filter) AtResolution(r int) ([]complex128, error) {
	if r == 0 {
		return f.Coeffs[0], nil
	}
	if r < len(f.Coeffs) && f.Coeffs[r] != nil {
		return f.Coeffs[r], nil
	}
	switch len(f.Shape) {
	case 1:
		return Periodize1D(f.Coeffs[0], r)
	case 2:
		return Periodize2D(f.Coeffs[0], f.Shape[0], f.Shape[1], r)
	default:
		return nil, ErrBadDimension
	}
}

// Periodize1D folds a full-resolution frequency response of length N onto
// the N/2^r grid: out[k] = Σ_m in[k + m·N/2^r]. Frequency-domain
// periodization is the exact counterpart of subsampling the filter in the
// signal domain, so the folded response convolves signals at resolution r
// without further adjustment. N must be divisible by 2^r.
func Periodize1D(coeffs []complex128, r int) ([]complex128, error) {
	n := len(coeffs)
	d := 1 << uint(r)
	if n%d != 0 {
		return nil, fmt.Errorf("%w: length %d, resolution %d", ErrResolution, n, r)
	}
	block := n / d
	out := make([]complex128, block)
	for m := 0; m < d; m++ {
		off := m * block
		for k := 0; k < block; k++ {
			out[k] += coeffs[off+k]
		}
	}

	return out, nil
}

// Periodize2D is the two-axis form of Periodize1D for a rows×cols response
// stored row-major. Both dimensions must be divisible by 2^r.
func Periodize2D(coeffs []complex128, rows, cols, r int) ([]complex128, error) {
	d := 1 << uint(r)
	if rows%d != 0 || cols%d != 0 {
		return nil, fmt.Errorf("%w: shape %dx%d, resolution %d", ErrResolution, rows, cols, r)
	}
	bh, bw := rows/d, cols/d
	out := make([]complex128, bh*bw)
	for m1 := 0; m1 < d; m1++ {
		for m2 := 0; m2 < d; m2++ {
			for k1 := 0; k1 < bh; k1++ {
				src := (k1 + m1*bh) * cols
				dst := k1 * bw
				for k2 := 0; k2 < bw; k2++ {
					out[dst+k2] += coeffs[src+k2+m2*bw]
				}
			}
		}
	}

	return out, nil
}
