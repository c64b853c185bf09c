// Package fourier computes the one-dimensional complex discrete Fourier transform and
// its inverse for single- and double-precision complex sequences of arbitrary length. A
// Plan is built once for a given length and precision and reused across many transform
// calls, which never allocate.
//
// Construction dispatches to one of three algorithms by length: the identity transform
// for N = 1, the mixed-radix Stockham auto-sort engine (internal/autosort) for lengths
// that factor into 2s and 3s, and Bluestein's chirp-z algorithm (internal/bluestein)
// otherwise.
package fourier

import (
	"github.com/waveform-dsp/fourier/internal/autosort"
	"github.com/waveform-dsp/fourier/internal/bluestein"
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/cpufeat"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
)

// algorithm is the dispatched transform: the identity plan, an autosort plan, or a
// Bluestein plan. All three share this shape.
type algorithm[F fftfloat.Float] interface {
	Size() int
	TransformInPlace(buf []cnum.Complex[F], forward bool, scale F, hasScale bool)
	TransformTo(dst, src []cnum.Complex[F], forward bool, scale F, hasScale bool)
}

type identityAlgorithm[F fftfloat.Float] struct{}

func (identityAlgorithm[F]) Size() int { return 1 }

func (identityAlgorithm[F]) TransformInPlace(buf []cnum.Complex[F], forward bool, scale F, hasScale bool) {
	if hasScale {
		buf[0] = buf[0].Scale(scale)
	}
}

func (a identityAlgorithm[F]) TransformTo(dst, src []cnum.Complex[F], forward bool, scale F, hasScale bool) {
	dst[0] = src[0]
	a.TransformInPlace(dst, forward, scale, hasScale)
}

// Plan is a precomputed transform of a fixed length N and precision F, reusable across
// many calls. A Plan must not be used concurrently by more than one goroutine at a time;
// callers needing concurrent use construct one Plan per worker.
type Plan[F fftfloat.Float] struct {
	n   int
	alg algorithm[F]
}

// New constructs a Plan for transforms of length n and precision F (float32 for
// complex64, float64 for complex128). It returns an *InputSizeError if n is not
// positive.
func New[F fftfloat.Float](n int) (*Plan[F], error) {
	if n <= 0 {
		return nil, &InputSizeError{Context: "transform length", Want: "positive", Got: n}
	}
	if n == 1 {
		return &Plan[F]{n: 1, alg: identityAlgorithm[F]{}}, nil
	}

	width := kernelWidth[F]()
	if ap, ok := autosort.NewPlan[F](n, width); ok {
		return &Plan[F]{n: n, alg: ap}, nil
	}
	bp, ok := bluestein.NewPlan[F](n, width)
	if !ok {
		// Unreachable in practice: Bluestein's inner length is always a power of two,
		// and every power of two factors under autosort's radix-4/radix-2 stages.
		return nil, &InputSizeError{Context: "transform length", Want: "factorable into 2s and 3s, or reducible by Bluestein's algorithm", Got: n}
	}
	return &Plan[F]{n: n, alg: bp}, nil
}

// kernelWidth picks the vector width for precision F using the CPU features available at
// runtime, the Go-idiomatic analogue of compile-time SIMD dispatch.
func kernelWidth[F fftfloat.Float]() int {
	var zero F
	switch any(zero).(type) {
	case float32:
		return cpufeat.WideWidth32()
	case float64:
		return cpufeat.WideWidth64()
	default:
		return 1
	}
}

// Size returns the transform length p was constructed for.
func (p *Plan[F]) Size() int { return p.n }

// Transform evaluates kind in place over buf, which must have length p.Size(). It panics
// if buf's length does not match, or, for N > 1, if p is already executing on another
// goroutine.
func (p *Plan[F]) Transform(buf []cnum.Complex[F], kind Kind) {
	if len(buf) != p.n {
		panic("fourier: buffer length does not match plan size")
	}
	scale, hasScale := kind.scaleFactor(p.n)
	p.alg.TransformInPlace(buf, kind.IsForward(), F(scale), hasScale)
}

// TransformInto evaluates kind with input read from src and the result written to dst;
// src and dst must each have length p.Size() and must not alias. src is left unmodified.
func (p *Plan[F]) TransformInto(dst, src []cnum.Complex[F], kind Kind) {
	if len(dst) != p.n || len(src) != p.n {
		panic("fourier: buffer length does not match plan size")
	}
	scale, hasScale := kind.scaleFactor(p.n)
	p.alg.TransformTo(dst, src, kind.IsForward(), F(scale), hasScale)
}
