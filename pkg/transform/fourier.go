package transform

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FourierTransform renders the centered log-magnitude spectrum of each
// channel: 2-D DFT, zero frequency shifted to the middle, then
// 20 * ln(|F| + 1) cast to 8 bits. Magnitudes above 255 wrap.
type FourierTransform struct{}

func (FourierTransform) Apply(img *Image) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	w, h := img.Width, img.Height
	out := img.SameShape()
	grid := make([]complex128, w*h)
	rowFFT := newFFT(w)
	colFFT := newFFT(h)
	col := make([]complex128, h)

	for c := 0; c < img.Channels; c++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				grid[y*w+x] = complex(img.At(x, y, c), 0)
			}
		}

		for y := 0; y < h; y++ {
			row := grid[y*w : (y+1)*w]
			rowFFT(row)
		}
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				col[y] = grid[y*w+x]
			}
			colFFT(col)
			for y := 0; y < h; y++ {
				grid[y*w+x] = col[y]
			}
		}

		for y := 0; y < h; y++ {
			sy := shiftIndex(y, h)
			for x := 0; x < w; x++ {
				f := grid[sy*w+shiftIndex(x, w)]
				out.Set(x, y, c, toUint8(20*math.Log(cmplx.Abs(f)+1)))
			}
		}
	}
	return out, nil
}

// newFFT returns an in-place forward DFT of length n.
func newFFT(n int) func(seq []complex128) {
	if n == 1 {
		return func([]complex128) {}
	}
	fft := fourier.NewCmplxFFT(n)
	buf := make([]complex128, n)
	return func(seq []complex128) {
		copy(seq, fft.Coefficients(buf, seq))
	}
}

// shiftIndex returns the source index that lands at i after moving the
// zero-frequency bin to the center, matching numpy's fftshift.
func shiftIndex(i, n int) int {
	return ((i-n/2)%n + n) % n
}
