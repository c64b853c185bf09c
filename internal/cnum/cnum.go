// Package cnum implements complex arithmetic over a generic precision, laid out so that
// a []Complex[float32] aliases a []complex64 buffer and a []Complex[float64] aliases a
// []complex128 buffer byte-for-byte, letting the root package hand the engine a caller's
// native buffer with no copy.
package cnum

import (
	"unsafe"

	"github.com/waveform-dsp/fourier/internal/fftfloat"
)

// Complex is a two-field (re, im) pair with the same memory layout as the corresponding
// native complex64/complex128 type.
type Complex[F fftfloat.Float] struct {
	Re, Im F
}

// FromFloat64 casts a double-precision phasor down to the plan's precision. Twiddle
// computation is always done in float64 (see internal/twiddle) and cast down here so
// that large-N single-precision plans don't accumulate phase error in the cast itself.
func FromFloat64[F fftfloat.Float](re, im float64) Complex[F] {
	return Complex[F]{Re: F(re), Im: F(im)}
}

func (a Complex[F]) Add(b Complex[F]) Complex[F] {
	return Complex[F]{a.Re + b.Re, a.Im + b.Im}
}

func (a Complex[F]) Sub(b Complex[F]) Complex[F] {
	return Complex[F]{a.Re - b.Re, a.Im - b.Im}
}

func (a Complex[F]) Mul(b Complex[F]) Complex[F] {
	return Complex[F]{a.Re*b.Re - a.Im*b.Im, a.Re*b.Im + a.Im*b.Re}
}

func (a Complex[F]) Scale(s F) Complex[F] {
	return Complex[F]{a.Re * s, a.Im * s}
}

func (a Complex[F]) Conj() Complex[F] {
	return Complex[F]{a.Re, -a.Im}
}

// RotPos multiplies by +i: (re, im) -> (-im, re).
func (a Complex[F]) RotPos() Complex[F] {
	return Complex[F]{-a.Im, a.Re}
}

// RotNeg multiplies by -i: (re, im) -> (im, -re).
func (a Complex[F]) RotNeg() Complex[F] {
	return Complex[F]{a.Im, -a.Re}
}

// Rotate multiplies by +i when fwd, -i otherwise, matching the vector abstraction's
// rotate(v, fwd) contract.
func (a Complex[F]) Rotate(fwd bool) Complex[F] {
	if fwd {
		return a.RotPos()
	}
	return a.RotNeg()
}

// NegRe returns (-re, im), the radix-8 butterfly's twiddle-conjugate-like partner value.
func (a Complex[F]) NegRe() Complex[F] {
	return Complex[F]{-a.Re, a.Im}
}

// Zero is the additive identity, exported as a function so callers never need to spell
// out the generic instantiation as a composite literal.
func Zero[F fftfloat.Float]() Complex[F] {
	return Complex[F]{}
}

// FromComplex64 reinterprets s as a []Complex[float32] with no copy: the underlying
// memory of a complex64 is two adjacent float32 values, the same layout as Complex[float32].
func FromComplex64(s []complex64) []Complex[float32] {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*Complex[float32])(unsafe.Pointer(&s[0])), len(s))
}

// FromComplex128 reinterprets s as a []Complex[float64] with no copy, for the same reason
// FromComplex64 works for complex64.
func FromComplex128(s []complex128) []Complex[float64] {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*Complex[float64])(unsafe.Pointer(&s[0])), len(s))
}
