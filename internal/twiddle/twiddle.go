// Package twiddle computes roots of unity for the FFT engine. Every twiddle factor used
// anywhere in the engine is built here, in double precision, cast down to the plan's
// working precision only at the end: autosort stage tables and radix-3/radix-8 butterfly
// constants come from Compute, and Bluestein's chirp sequences from ComputeHalf.
package twiddle

import (
	"math"

	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
)

// Compute returns exp(-2*pi*i*k/n) for forward, or its conjugate for inverse. The phase
// is always evaluated in float64 and only the result is cast to F, which keeps phase
// error bounded even for single-precision plans with large N.
func Compute[F fftfloat.Float](k, n int, forward bool) cnum.Complex[F] {
	theta := 2 * math.Pi * float64(k) / float64(n)
	s, c := math.Sincos(theta)
	// forward: cos(theta) - i*sin(theta)
	w := cnum.FromFloat64[F](c, -s)
	if forward {
		return w
	}
	return w.Conj()
}

// ComputeHalf returns exp(+/- i*pi*index/n), the chirp phasor used by Bluestein's
// algorithm, where index is typically k^2 (possibly negative). forward selects the sign
// convention consistent with Compute's forward/inverse pair.
func ComputeHalf[F fftfloat.Float](index float64, n int, forward bool) cnum.Complex[F] {
	theta := index * math.Pi / float64(n)
	s, c := math.Sincos(theta)
	w := cnum.FromFloat64[F](c, -s)
	if forward {
		return w
	}
	return w.Conj()
}
