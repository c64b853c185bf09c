package butterfly

import (
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/twiddle"
	"github.com/waveform-dsp/fourier/internal/vector"
)

// Apply3 implements the radix-3 DFT. With t = exp(-2*pi*i/3) (conjugated for inverse):
//
//	dst0 = src0 + src1 + src2
//	dst1 = src0 + src1*t + src2*conj(t)
//	dst2 = src0 + src1*conj(t) + src2*t
func Apply3[F fftfloat.Float](k vector.Kernel[F], dst0, dst1, dst2, src0, src1, src2 []cnum.Complex[F], forward bool) {
	t := twiddle.Compute[F](1, 3, forward)
	tc := t.Conj()

	var twBuf, tcBuf [maxWidth]cnum.Complex[F]
	tw := twBuf[:k.Width]
	tcw := tcBuf[:k.Width]
	k.Splat(tw, t)
	k.Splat(tcw, tc)

	var s1tBuf, s2tcBuf, s1tcBuf, s2tBuf [maxWidth]cnum.Complex[F]
	s1t := s1tBuf[:k.Width]
	s2tc := s2tcBuf[:k.Width]
	s1tc := s1tcBuf[:k.Width]
	s2t := s2tBuf[:k.Width]
	k.Mul(s1t, src1, tw)
	k.Mul(s2tc, src2, tcw)
	k.Mul(s1tc, src1, tcw)
	k.Mul(s2t, src2, tw)

	var sumBuf [maxWidth]cnum.Complex[F]
	sum := sumBuf[:k.Width]

	k.Add(sum, src0, src1)
	k.Add(dst0, sum, src2)

	k.Add(sum, src0, s1t)
	k.Add(dst1, sum, s2tc)

	k.Add(sum, src0, s1tc)
	k.Add(dst2, sum, s2t)
}
