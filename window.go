package fourier

import (
	"math"

	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
)

// Window names a windowing function applied to a sequence before transforming it, to
// reduce spectral leakage from truncating a non-periodic signal to a finite buffer.
type Window int

const (
	Rectangular Window = iota
	Hanning
	Hamming
	Blackman
)

func windowWeight(window Window, i, n int) float64 {
	switch window {
	case Rectangular:
		return 1.0
	case Hanning:
		return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	case Hamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	case Blackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1)) +
			0.08*math.Cos(4*math.Pi*float64(i)/float64(n-1))
	default:
		panic("fourier: invalid Window")
	}
}

// applyWindow multiplies x in place by window's weight sequence. One generic
// implementation replaces the teacher's hand-duplicated ApplyWindow/ApplyWindow64.
func applyWindow[F fftfloat.Float](x []cnum.Complex[F], window Window) {
	n := len(x)
	for i := range x {
		x[i] = x[i].Scale(F(windowWeight(window, i, n)))
	}
}

// ApplyWindow multiplies x in place by window's weight sequence.
func ApplyWindow(x []complex128, window Window) {
	applyWindow(cnum.FromComplex128(x), window)
}

// ApplyWindow64 is the single-precision counterpart to ApplyWindow.
func ApplyWindow64(x []complex64, window Window) {
	applyWindow(cnum.FromComplex64(x), window)
}

func powerSpectrum[F fftfloat.Float](x []cnum.Complex[F]) []F {
	result := make([]F, len(x))
	for i, v := range x {
		result[i] = v.Re*v.Re + v.Im*v.Im
	}
	return result
}

// PowerSpectrum computes |x[i]|^2 for each element of a double-precision transform result.
func PowerSpectrum(x []complex128) []float64 {
	return powerSpectrum(cnum.FromComplex128(x))
}

// PowerSpectrum64 computes |x[i]|^2 for each element of a single-precision transform
// result.
func PowerSpectrum64(x []complex64) []float32 {
	return powerSpectrum(cnum.FromComplex64(x))
}
