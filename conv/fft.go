package conv

import "gonum.org/v1/gonum/dsp/fourier"

// fft1 returns the forward DFT of src.
func fft1(src []complex128) []complex128 {
	t := fourier.NewCmplxFFT(len(src))

	return t.Coefficients(nil, src)
}

// ifft1 returns the normalized inverse DFT of src. gonum's Sequence is
// unnormalized, so the 1/n factor is applied here.
func ifft1(src []complex128) []complex128 {
	n := len(src)
	t := fourier.NewCmplxFFT(n)
	out := t.Sequence(nil, src)
	inv := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= inv
	}

	return out
}

// fft2 computes the 2-D DFT of a rows×cols row-major array as separable
// row then column passes.
func fft2(src []complex128, rows, cols int) []complex128 {
	out := make([]complex128, rows*cols)

	rowT := fourier.NewCmplxFFT(cols)
	for r := 0; r < rows; r++ {
		rowT.Coefficients(out[r*cols:(r+1)*cols], src[r*cols:(r+1)*cols])
	}

	colT := fourier.NewCmplxFFT(rows)
	colIn := make([]complex128, rows)
	colOut := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			colIn[r] = out[r*cols+c]
		}
		colT.Coefficients(colOut, colIn)
		for r := 0; r < rows; r++ {
			out[r*cols+c] = colOut[r]
		}
	}

	return out
}

// ifft2 computes the normalized 2-D inverse DFT of a rows×cols array.
func ifft2(src []complex128, rows, cols int) []complex128 {
	out := make([]complex128, rows*cols)

	rowT := fourier.NewCmplxFFT(cols)
	for r := 0; r < rows; r++ {
		rowT.Sequence(out[r*cols:(r+1)*cols], src[r*cols:(r+1)*cols])
	}

	colT := fourier.NewCmplxFFT(rows)
	colIn := make([]complex128, rows)
	colOut := make([]complex128, rows)
	inv := complex(1/float64(rows*cols), 0)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			colIn[r] = out[r*cols+c]
		}
		colT.Sequence(colOut, colIn)
		for r := 0; r < rows; r++ {
			out[r*cols+c] = colOut[r] * inv
		}
	}

	return out
}
