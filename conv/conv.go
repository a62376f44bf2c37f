package conv

// Subsample1D convolves a 1-D signal with a frequency-domain filter and
// decimates by 2^ds in one fused pass (see the package doc for the exact
// pipeline). filt must already be matched to the signal's resolution — its
// length is the padded working length.
//
// Output length is ⌈len(sig)/2^ds⌉ in ZeroPad mode and len(sig)/2^ds in
// Periodic mode. The result stays complex; averaged (low-pass) branches take
// the real part at the call site.
func Subsample1D(sig, filt []complex128, ds int, boundary Boundary) ([]complex128, error) {
	n := len(sig)
	np := len(filt)
	if n == 0 || np == 0 {
		return nil, ErrEmptyInput
	}
	if ds < 0 {
		return nil, ErrNegativeRate
	}
	switch boundary {
	case ZeroPad:
		if np < n {
			return nil, ErrSupportTooSmall
		}
	case Periodic:
		if np != n {
			return nil, ErrPeriodicLength
		}
	default:
		return nil, ErrBadBoundary
	}
	d := 1 << uint(ds)
	if np%d != 0 {
		return nil, ErrRateTooDeep
	}

	// Pad, transform, multiply.
	work := make([]complex128, np)
	copy(work, sig)
	spec := fft1(work)
	for k := range spec {
		spec[k] *= filt[k]
	}

	// Periodized decimation in frequency, then inverse transform.
	out := ifft1(periodize(spec, d))

	if boundary == Periodic {
		return out, nil
	}

	return out[:ceilDiv(n, d)], nil
}

// Subsample2D is the two-dimensional Subsample1D for a rows×cols row-major
// signal and an fr×fc filter. Both axes decimate by the same 2^ds. Returns
// the output array along with its dimensions.
func Subsample2D(sig []complex128, rows, cols int, filt []complex128, fr, fc, ds int, boundary Boundary) ([]complex128, int, int, error) {
	if rows*cols == 0 || len(sig) != rows*cols || fr*fc == 0 || len(filt) != fr*fc {
		return nil, 0, 0, ErrEmptyInput
	}
	if ds < 0 {
		return nil, 0, 0, ErrNegativeRate
	}
	switch boundary {
	case ZeroPad:
		if fr < rows || fc < cols {
			return nil, 0, 0, ErrSupportTooSmall
		}
	case Periodic:
		if fr != rows || fc != cols {
			return nil, 0, 0, ErrPeriodicLength
		}
	default:
		return nil, 0, 0, ErrBadBoundary
	}
	d := 1 << uint(ds)
	if fr%d != 0 || fc%d != 0 {
		return nil, 0, 0, ErrRateTooDeep
	}

	// Pad into the filter support.
	work := make([]complex128, fr*fc)
	for r := 0; r < rows; r++ {
		copy(work[r*fc:r*fc+cols], sig[r*cols:(r+1)*cols])
	}
	spec := fft2(work, fr, fc)
	for k := range spec {
		spec[k] *= filt[k]
	}

	dr, dc := fr/d, fc/d
	out := ifft2(periodize2(spec, fr, fc, d), dr, dc)

	if boundary == Periodic {
		return out, dr, dc, nil
	}

	// Unpad to the size implied by the input size at the new resolution.
	or, oc := ceilDiv(rows, d), ceilDiv(cols, d)
	res := make([]complex128, or*oc)
	for r := 0; r < or; r++ {
		copy(res[r*oc:(r+1)*oc], out[r*dc:r*dc+oc])
	}

	return res, or, oc, nil
}

// periodize folds a length-n spectrum onto n/d bins with 1/d weighting —
// ideal decimation by d in the signal domain.
func periodize(spec []complex128, d int) []complex128 {
	nd := len(spec) / d
	out := make([]complex128, nd)
	for m := 0; m < d; m++ {
		off := m * nd
		for k := 0; k < nd; k++ {
			out[k] += spec[off+k]
		}
	}
	w := complex(1/float64(d), 0)
	for k := range out {
		out[k] *= w
	}

	return out
}

// periodize2 folds a rows×cols spectrum onto (rows/d)×(cols/d) bins with
// 1/d² weighting.
func periodize2(spec []complex128, rows, cols, d int) []complex128 {
	dr, dc := rows/d, cols/d
	out := make([]complex128, dr*dc)
	for m1 := 0; m1 < d; m1++ {
		for m2 := 0; m2 < d; m2++ {
			for k1 := 0; k1 < dr; k1++ {
				src := (k1 + m1*dr) * cols
				dst := k1 * dc
				for k2 := 0; k2 < dc; k2++ {
					out[dst+k2] += spec[src+k2+m2*dc]
				}
			}
		}
	}
	w := complex(1/float64(d*d), 0)
	for k := range out {
		out[k] *= w
	}

	return out
}

func ceilDiv(n, d int) int { return (n + d - 1) / d }
