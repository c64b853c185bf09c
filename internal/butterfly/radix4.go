package butterfly

import (
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/vector"
)

// Apply4 implements the radix-4 DFT as two radix-2 butterflies, a rotation of the fourth
// intermediate lane (+i forward, -i inverse), two more radix-2 butterflies, and the fixed
// output permutation [0,3,1,2] over the intermediate ordering.
func Apply4[F fftfloat.Float](k vector.Kernel[F], dst0, dst1, dst2, dst3, src0, src1, src2, src3 []cnum.Complex[F], forward bool) {
	var a0Buf, a2Buf, a1Buf, a3Buf [maxWidth]cnum.Complex[F]
	a0 := a0Buf[:k.Width]
	a2 := a2Buf[:k.Width]
	a1 := a1Buf[:k.Width]
	a3 := a3Buf[:k.Width]
	Apply2(k, a0, a2, src0, src2)
	Apply2(k, a1, a3, src1, src3)

	var a3rotBuf [maxWidth]cnum.Complex[F]
	a3rot := a3rotBuf[:k.Width]
	k.Rotate(a3rot, a3, forward)

	var b0Buf, b2Buf, b1Buf, b3Buf [maxWidth]cnum.Complex[F]
	b0 := b0Buf[:k.Width]
	b2 := b2Buf[:k.Width]
	b1 := b1Buf[:k.Width]
	b3 := b3Buf[:k.Width]
	Apply2(k, b0, b2, a0, a1)
	Apply2(k, b1, b3, a2, a3rot)

	// intermediate b = [b0, b2, b1, b3]; output = [b[0], b[3], b[1], b[2]]
	copy(dst0, b0)
	copy(dst1, b3)
	copy(dst2, b2)
	copy(dst3, b1)
}
