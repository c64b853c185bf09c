package butterfly

import (
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/twiddle"
	"github.com/waveform-dsp/fourier/internal/vector"
)

// Apply8 implements the radix-8 DFT as two radix-4 butterflies over the even- and
// odd-indexed inputs, three twiddle-shaped adjustments to the odd half (a multiply by
// exp(-2*pi*i/8), a rotation by the opposite direction of the outer transform, and a
// multiply by the (-re, im) partner of the same twiddle), then four radix-2 butterflies
// combining even and odd with the fixed interleaved output order
// [0,0; 1,0; 2,0; 3,0; 0,1; 1,1; 2,1; 3,1].
func Apply8[F fftfloat.Float](k vector.Kernel[F], dst [8][]cnum.Complex[F], src [8][]cnum.Complex[F], forward bool) {
	t := twiddle.Compute[F](1, 8, forward)
	tneg := t.NegRe()

	var a0, a1, a2, a3, b0, b1, b2, b3 [maxWidth]cnum.Complex[F]
	aEven := [4][]cnum.Complex[F]{a0[:k.Width], a1[:k.Width], a2[:k.Width], a3[:k.Width]}
	aOdd := [4][]cnum.Complex[F]{b0[:k.Width], b1[:k.Width], b2[:k.Width], b3[:k.Width]}

	Apply4(k, aEven[0], aEven[1], aEven[2], aEven[3], src[0], src[2], src[4], src[6], forward)
	Apply4(k, aOdd[0], aOdd[1], aOdd[2], aOdd[3], src[1], src[3], src[5], src[7], forward)

	var twBuf, tnegBuf [maxWidth]cnum.Complex[F]
	tw := twBuf[:k.Width]
	tnw := tnegBuf[:k.Width]
	k.Splat(tw, t)
	k.Splat(tnw, tneg)

	var odd1, odd2, odd3 [maxWidth]cnum.Complex[F]
	o1 := odd1[:k.Width]
	o2 := odd2[:k.Width]
	o3 := odd3[:k.Width]
	k.Mul(o1, aOdd[1], tw)
	k.Rotate(o2, aOdd[2], !forward)
	k.Mul(o3, aOdd[3], tnw)
	aOdd[1] = o1
	aOdd[2] = o2
	aOdd[3] = o3

	Apply2(k, dst[0], dst[4], aEven[0], aOdd[0])
	Apply2(k, dst[1], dst[5], aEven[1], aOdd[1])
	Apply2(k, dst[2], dst[6], aEven[2], aOdd[2])
	Apply2(k, dst[3], dst[7], aEven[3], aOdd[3])
}
