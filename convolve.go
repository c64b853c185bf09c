package fourier

import (
	"fmt"

	"github.com/waveform-dsp/fourier/internal/cnum"
)

// Convolve computes the linear convolution of x and y by zero-padding both to length
// len(x)+len(y)-1 and evaluating the product in the frequency domain. Unlike the
// teacher's power-of-two-only convolution, this works for any combined length: a Plan
// falls back to Bluestein's algorithm whenever the length isn't a product of 2s and 3s.
func Convolve(x, y []complex128) ([]complex128, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, nil
	}
	n := len(x) + len(y) - 1
	xp := ZeroPadComplex128(x, n)
	yp := ZeroPadComplex128(y, n)
	if err := FastConvolve(xp, yp); err != nil {
		return nil, err
	}
	return xp, nil
}

// FastConvolve computes the circular convolution of x and y in place: the result
// overwrites x and y is zeroed. x and y must have the same length; callers performing a
// linear convolution (as Convolve does) must zero-pad first to avoid wraparound.
func FastConvolve(x, y []complex128) error {
	if len(x) != len(y) {
		return &InputSizeError{Context: "y", Want: fmt.Sprintf("the same length as x (%d)", len(x)), Got: len(y)}
	}
	if len(x) == 0 {
		return nil
	}

	p, err := New[float64](len(x))
	if err != nil {
		return err
	}
	xc, yc := cnum.FromComplex128(x), cnum.FromComplex128(y)
	p.Transform(xc, Fft)
	p.Transform(yc, Fft)
	for i := range xc {
		xc[i] = xc[i].Mul(yc[i])
		yc[i] = cnum.Zero[float64]()
	}
	p.Transform(xc, Ifft)
	return nil
}
