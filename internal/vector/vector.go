// Package vector implements the lane-wise complex vector abstraction spec'd for the
// stage driver: a width W and a fixed operation set (zero, splat, add, sub, mul, rotate,
// load, store, load1, store1), each required to behave lane-wise. Two incarnations are
// provided: width 1 (the scalar fallback) and a "wide" incarnation (width 4 for
// single-precision, width 2 for double-precision) that batches W lanes per call the way
// a 256-bit (f32) or 128-bit (f64) SIMD register would. Both share the same Go code path
// here -- there is no portable SIMD intrinsic surface in standard Go, so "wide" means "W
// scalar lanes updated together," which gives bit-identical results to calling the scalar
// kernel W times, up to floating-point reordering, exactly as spec.md ss4.2 requires of
// any conforming implementation. internal/cpufeat decides, once per plan, whether a
// width-1 or width-W Kernel is constructed.
package vector

import (
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
)

// Kernel performs the vector abstraction's operations at a fixed lane width W. Every
// slice argument to a Kernel method must have length W; internal/stage and
// internal/butterfly are the only callers and always size their scratch buffers to the
// Kernel's Width, so this is not re-checked per call on the hot path.
type Kernel[F fftfloat.Float] struct {
	Width int
}

// Zero fills dst (length W) with the additive identity.
func (k Kernel[F]) Zero(dst []cnum.Complex[F]) {
	for i := range dst {
		dst[i] = cnum.Complex[F]{}
	}
}

// Splat broadcasts z into every lane of dst.
func (k Kernel[F]) Splat(dst []cnum.Complex[F], z cnum.Complex[F]) {
	for i := range dst {
		dst[i] = z
	}
}

// Add computes dst[i] = a[i] + b[i] lane-wise.
func (k Kernel[F]) Add(dst, a, b []cnum.Complex[F]) {
	for i := range dst {
		dst[i] = a[i].Add(b[i])
	}
}

// Sub computes dst[i] = a[i] - b[i] lane-wise.
func (k Kernel[F]) Sub(dst, a, b []cnum.Complex[F]) {
	for i := range dst {
		dst[i] = a[i].Sub(b[i])
	}
}

// Mul computes dst[i] = a[i] * b[i] lane-wise.
func (k Kernel[F]) Mul(dst, a, b []cnum.Complex[F]) {
	for i := range dst {
		dst[i] = a[i].Mul(b[i])
	}
}

// Rotate multiplies every lane by +i when fwd, -i otherwise.
func (k Kernel[F]) Rotate(dst, src []cnum.Complex[F], fwd bool) {
	for i := range dst {
		dst[i] = src[i].Rotate(fwd)
	}
}

// Load reads W contiguous complex numbers starting at p[0].
func (k Kernel[F]) Load(dst []cnum.Complex[F], p []cnum.Complex[F]) {
	copy(dst, p[:k.Width])
}

// Store writes src's W lanes to p[0:W].
func (k Kernel[F]) Store(p []cnum.Complex[F], src []cnum.Complex[F]) {
	copy(p[:k.Width], src)
}

// Load1 reads one complex number and broadcasts it to every lane of dst.
func (k Kernel[F]) Load1(dst []cnum.Complex[F], p *cnum.Complex[F]) {
	k.Splat(dst, *p)
}

// Store1 writes lane 0 of src as a single complex number.
func (k Kernel[F]) Store1(p *cnum.Complex[F], src []cnum.Complex[F]) {
	*p = src[0]
}

// New constructs a Kernel of the requested width.
func New[F fftfloat.Float](width int) Kernel[F] {
	return Kernel[F]{Width: width}
}
