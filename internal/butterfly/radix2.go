// Package butterfly implements the radix-2/3/4/8 DFT kernels used by every autosort
// stage. Each Apply function is a pure function of R vector-valued inputs to R outputs;
// "vector-valued" here means a lane-width-W slice, via internal/vector's Kernel, so the
// same code serves both the scalar (W=1) and wide (W=4/2) kernels.
package butterfly

import (
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/vector"
)

// maxWidth bounds the scratch arrays declared by the radix-3/4/8 kernels below; it must
// be >= the widest Kernel in use (today: 4, for single-precision wide vectors).
const maxWidth = 4

// Apply2 implements the radix-2 DFT: (x0+x1, x0-x1). dst and src must not alias.
func Apply2[F fftfloat.Float](k vector.Kernel[F], dst0, dst1, src0, src1 []cnum.Complex[F]) {
	k.Add(dst0, src0, src1)
	k.Sub(dst1, src0, src1)
}
