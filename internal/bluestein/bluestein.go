// Package bluestein implements Bluestein's chirp-z algorithm, reducing an arbitrary-length
// discrete Fourier transform to a length-L convolution evaluated by a power-of-two
// autosort FFT, for lengths the autosort planner cannot factor directly.
package bluestein

import (
	"sync/atomic"

	"github.com/waveform-dsp/fourier/internal/autosort"
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/twiddle"
)

// Plan is a precomputed Bluestein wrapper for a transform of length N. The inner autosort
// FFT runs at length L = nextPow2(2N-1); the "w" chirps are stored already transformed
// into the frequency domain so each call needs exactly one inner forward and one inner
// inverse FFT.
type Plan[F fftfloat.Float] struct {
	n, l       int
	inner      *autosort.Plan[F]
	xFwd, xInv []cnum.Complex[F]
	wFwd, wInv []cnum.Complex[F]
	scratch    []cnum.Complex[F]
	invL       F
	busy       int32
}

// NewPlan builds a Bluestein plan for length n using an inner autosort FFT driven by a
// kernel of the given vector width. It reports ok=false only if the inner length L (a
// power of two) somehow fails autosort factorization, which cannot happen in practice
// since every power of two factors as repeated radix-4/radix-2 stages.
func NewPlan[F fftfloat.Float](n, width int) (p *Plan[F], ok bool) {
	var noScale F
	l := nextPow2(2*n - 1)
	inner, ok := autosort.NewPlan[F](l, width)
	if !ok {
		return nil, false
	}

	// x[k] = exp(-i*pi*k^2/n), the chirp applied to the input before the inner forward FFT
	// and to the convolution result after the inner inverse FFT (fourier/src/bluesteins.rs
	// derives both from the same k^2/N-indexed value/index k*k, n, n identity).
	xFwd := make([]cnum.Complex[F], n)
	xInv := make([]cnum.Complex[F], n)
	for k := 0; k < n; k++ {
		xFwd[k] = twiddle.ComputeHalf[F](float64(k*k), n, true)
		xInv[k] = xFwd[k].Conj()
	}

	// w[m] = exp(+i*pi*m^2/n) -- the opposite sign from x -- wrapped to length l so the
	// pointwise product with the inner transform realizes a length-l cyclic convolution
	// equal to the desired length-n linear chirp convolution.
	wFwd := make([]cnum.Complex[F], l)
	wInv := make([]cnum.Complex[F], l)
	for k := 0; k < n; k++ {
		v := twiddle.ComputeHalf[F](-float64(k*k), n, true)
		wFwd[k] = v
		wInv[k] = v.Conj()
	}
	for k := l - n + 1; k < l; k++ {
		m := k - l
		v := twiddle.ComputeHalf[F](-float64(m*m), n, true)
		wFwd[k] = v
		wInv[k] = v.Conj()
	}
	inner.TransformInPlace(wFwd, true, noScale, false)
	inner.TransformInPlace(wInv, true, noScale, false)

	return &Plan[F]{
		n:       n,
		l:       l,
		inner:   inner,
		xFwd:    xFwd,
		xInv:    xInv,
		wFwd:    wFwd,
		wInv:    wInv,
		scratch: make([]cnum.Complex[F], l),
		invL:    F(1) / F(l),
	}, true
}

// Size returns the transform length the plan was built for.
func (p *Plan[F]) Size() int { return p.n }

// TransformInPlace runs the forward or inverse N-point DFT over buf (length p.Size())
// using the chirp-z reduction: pointwise multiply into scratch, forward inner FFT,
// pointwise multiply by the precomputed frequency-domain chirp, inverse inner FFT scaled
// by 1/L, then pointwise multiply back out with the optional requested scale.
//
// The plan borrows its scratch buffer for the duration of the call and panics on
// concurrent use.
func (p *Plan[F]) TransformInPlace(buf []cnum.Complex[F], forward bool, scale F, hasScale bool) {
	if len(buf) != p.n {
		panic("bluestein: buffer length does not match plan size")
	}
	if !atomic.CompareAndSwapInt32(&p.busy, 0, 1) {
		panic("bluestein: concurrent use of the same plan from more than one goroutine")
	}
	defer atomic.StoreInt32(&p.busy, 0)
	var noScale F

	x, w := p.xFwd, p.wFwd
	if !forward {
		x, w = p.xInv, p.wInv
	}

	for k := 0; k < p.n; k++ {
		p.scratch[k] = x[k].Mul(buf[k])
	}
	for k := p.n; k < p.l; k++ {
		p.scratch[k] = cnum.Zero[F]()
	}

	p.inner.TransformInPlace(p.scratch, true, noScale, false)
	for k := 0; k < p.l; k++ {
		p.scratch[k] = p.scratch[k].Mul(w[k])
	}
	// An unscaled forward/inverse inner FFT pair would recover L times the true cyclic
	// convolution, so the inverse inner FFT applies the 1/L factor here rather than folding
	// it into the unrelated caller-requested scale (UnscaledIfft/Ifft/SqrtScaledFft all
	// need this L term regardless of what the caller asked for).
	p.inner.TransformInPlace(p.scratch, false, p.invL, true)

	if hasScale {
		for k := 0; k < p.n; k++ {
			buf[k] = p.scratch[k].Mul(x[k]).Scale(scale)
		}
		return
	}
	for k := 0; k < p.n; k++ {
		buf[k] = p.scratch[k].Mul(x[k])
	}
}

// TransformTo runs the transform with input read from src and the result written to dst;
// src and dst must each have length p.Size() and must not alias.
func (p *Plan[F]) TransformTo(dst, src []cnum.Complex[F], forward bool, scale F, hasScale bool) {
	if len(src) != p.n || len(dst) != p.n {
		panic("bluestein: buffer length does not match plan size")
	}
	copy(dst, src)
	p.TransformInPlace(dst, forward, scale, hasScale)
}

func nextPow2(m int) int {
	if m <= 1 {
		return 1
	}
	p := 1
	for p < m {
		p <<= 1
	}
	return p
}
