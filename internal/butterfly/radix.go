package butterfly

import (
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/vector"
)

// Apply dispatches to the radix-R butterfly named by radix. dst and src each carry radix
// active lanes (dst[radix:] and src[radix:] are unused); radix must be one of 2, 3, 4, 8.
func Apply[F fftfloat.Float](k vector.Kernel[F], radix int, dst, src [8][]cnum.Complex[F], forward bool) {
	switch radix {
	case 2:
		Apply2(k, dst[0], dst[1], src[0], src[1])
	case 3:
		Apply3(k, dst[0], dst[1], dst[2], src[0], src[1], src[2], forward)
	case 4:
		Apply4(k, dst[0], dst[1], dst[2], dst[3], src[0], src[1], src[2], src[3], forward)
	case 8:
		Apply8(k, dst, src, forward)
	default:
		panic("butterfly: unsupported radix")
	}
}
