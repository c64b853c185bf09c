// Package stage implements the autosort stage driver: for a given size, stride, radix,
// and twiddle slice, it iterates the butterfly across the data in a "wide" regime
// (stride >= the kernel's vector width, gathering/scattering full vectors with an
// overlapping final vector to cover any tail) or a "narrow" regime (stride < width,
// which would otherwise read out of bounds on a full-vector gather; one complex number
// at a time via load1/store1 instead).
//
// A specialized stride-1 radix-4 gather path is described in spec as optional, "an
// equivalent but faster implementation of the stride-1 narrow stage." This package does
// not implement it separately: without real SIMD instructions to exploit (see
// internal/vector's doc comment), a dedicated gather path buys nothing over the general
// narrow regime below, which already produces bit-compatible results for stride 1 --
// exactly the fallback spec.md ss4.4 permits when the optimization is omitted.
package stage

import (
	"github.com/waveform-dsp/fourier/internal/butterfly"
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/vector"
)

const (
	maxRadix = 8
	maxWidth = 4
)

// Lanes is the stage driver's scratch space: R input lanes, R output lanes, and R
// twiddle-broadcast lanes, each up to maxWidth complex numbers wide. A Plan allocates one
// Lanes per precision at construction time and reuses it for every stage of every
// transform call, so Apply itself never allocates.
type Lanes[F fftfloat.Float] struct {
	srcBuf, dstBuf, twBuf [maxRadix][maxWidth]cnum.Complex[F]
	src, dst, tw          [maxRadix][]cnum.Complex[F]
	width                 int
}

// NewLanes constructs scratch space for the given vector width (1, 2, or 4).
func NewLanes[F fftfloat.Float](width int) *Lanes[F] {
	l := &Lanes[F]{width: width}
	for c := 0; c < maxRadix; c++ {
		l.src[c] = l.srcBuf[c][:width]
		l.dst[c] = l.dstBuf[c][:width]
		l.tw[c] = l.twBuf[c][:width]
	}
	return l
}

func (l *Lanes[F]) slice(radix int) {
	for c := 0; c < radix; c++ {
		l.src[c] = l.srcBuf[c][:l.width]
		l.dst[c] = l.dstBuf[c][:l.width]
		l.tw[c] = l.twBuf[c][:l.width]
	}
}

// Apply transforms size/radix independent sub-DFTs of length radix, spaced stride apart,
// reading input and writing output. input and output must not alias and must each have
// length size*stride. twiddles must have length size, laid out as documented in
// internal/autosort (slab [i*radix .. i*radix+radix) per sub-DFT index i). lanes must
// have been constructed with the same width as k.
func Apply[F fftfloat.Float](k vector.Kernel[F], lanes *Lanes[F], radix, size, stride int, input, output []cnum.Complex[F], twiddles []cnum.Complex[F], forward bool) {
	lanes.slice(radix)
	if stride >= k.Width {
		applyWide(k, lanes, radix, size, stride, input, output, twiddles, forward)
	} else {
		applyNarrow(k, lanes, radix, size, stride, input, output, twiddles, forward)
	}
}

func applyWide[F fftfloat.Float](k vector.Kernel[F], l *Lanes[F], radix, size, stride int, input, output []cnum.Complex[F], twiddles []cnum.Complex[F], forward bool) {
	m := size / radix
	w := k.Width
	fullCount := ((stride - 1) / w) * w
	finalOffset := stride - w
	base := radix == size

	step := func(i, j int) {
		for c := 0; c < radix; c++ {
			off := stride*(i+c*m) + j
			k.Load(l.src[c], input[off:off+w])
		}
		butterfly.Apply(k, radix, l.dst, l.src, forward)
		if !base {
			for c := 1; c < radix; c++ {
				k.Mul(l.dst[c], l.dst[c], l.tw[c])
			}
		}
		outBase := j + radix*stride*i
		for c := 0; c < radix; c++ {
			off := outBase + stride*c
			k.Store(output[off:off+w], l.dst[c])
		}
	}

	for i := 0; i < m; i++ {
		if !base {
			for c := 1; c < radix; c++ {
				k.Splat(l.tw[c], twiddles[i*radix+c])
			}
		}
		for j := 0; j < fullCount; j += w {
			step(i, j)
		}
		step(i, finalOffset)
	}
}

func applyNarrow[F fftfloat.Float](k vector.Kernel[F], l *Lanes[F], radix, size, stride int, input, output []cnum.Complex[F], twiddles []cnum.Complex[F], forward bool) {
	m := size / radix
	base := radix == size

	for i := 0; i < m; i++ {
		if !base {
			for c := 1; c < radix; c++ {
				k.Splat(l.tw[c], twiddles[i*radix+c])
			}
		}
		for j := 0; j < stride; j++ {
			for c := 0; c < radix; c++ {
				k.Load1(l.src[c], &input[stride*(i+c*m)+j])
			}
			butterfly.Apply(k, radix, l.dst, l.src, forward)
			if !base {
				for c := 1; c < radix; c++ {
					k.Mul(l.dst[c], l.dst[c], l.tw[c])
				}
			}
			outBase := j + radix*stride*i
			for c := 0; c < radix; c++ {
				k.Store1(&output[outBase+stride*c], l.dst[c])
			}
		}
	}
}
