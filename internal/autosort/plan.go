// Package autosort implements the mixed-radix Stockham auto-sort FFT for lengths whose
// prime factorization uses only 2 and 3.
package autosort

import (
	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/twiddle"
)

// Step is one autosort stage application. Size is the sub-DFT length at the first (and
// only, since each Step already represents a single iteration) application of this step;
// Stride is the input spacing between elements of one sub-DFT; TwiddleOffset is the
// index into the twiddle table where this step's size-length twiddle segment begins.
//
// spec.md's stage descriptor additionally names a "count" of repeated iterations at a
// given radix; this package follows
// _examples/original_source/fourier-algorithms/src/autosort/mod.rs::steps, which emits
// one Step per iteration rather than grouping repeats under a count -- equivalent, and
// simpler for the executor to drive uniformly.
type Step struct {
	Size, Stride, Radix, TwiddleOffset int
}

// radixPreference is the fixed factorization order spec.md requires: after the leading
// radix-4 stage (handled separately, see Factor) absorbs at most one factor of 4, the
// remaining factors are consumed high-radix-first so later stride-1 traversals see
// stride >= 4 as often as possible, with 3 and 2 as fallbacks that cover every length
// built only from 2s and 3s.
var radixPreference = [4]int{8, 4, 3, 2}

// Factor computes the autosort stage list for a transform of length n. It reports
// ok=false if n has a prime factor other than 2 or 3, in which case the caller (the
// dispatcher in the root package) falls back to Bluestein's algorithm.
func Factor(n int) (steps []Step, ok bool) {
	size := n
	stride := 1

	if size%4 == 0 {
		steps = append(steps, Step{Size: size, Stride: stride, Radix: 4})
		size /= 4
		stride *= 4
	}

	for _, radix := range radixPreference {
		for size%radix == 0 {
			steps = append(steps, Step{Size: size, Stride: stride, Radix: radix})
			size /= radix
			stride *= radix
		}
	}

	if size != 1 {
		return nil, false
	}

	offset := 0
	for i := range steps {
		steps[i].TwiddleOffset = offset
		offset += steps[i].Size
	}
	return steps, true
}

// NumTwiddles returns the total twiddle-table length required by steps (the sum of each
// step's Size).
func NumTwiddles(steps []Step) int {
	total := 0
	for _, s := range steps {
		total += s.Size
	}
	return total
}

// TwiddleTables builds the forward and inverse twiddle tables for steps. For stage
// (size, radix), at sub-DFT index i in [0, size/radix), the table carries a unit value
// at slab offset i*radix and exp(+/-2*pi*i*(i*j)/size) at slab offset i*radix+j for
// j in [1, radix) -- see spec.md ss3's "Twiddle table" and ss4.5.
func TwiddleTables[F fftfloat.Float](steps []Step) (forward, inverse []cnum.Complex[F]) {
	total := NumTwiddles(steps)
	forward = make([]cnum.Complex[F], total)
	inverse = make([]cnum.Complex[F], total)
	unit := cnum.FromFloat64[F](1, 0)
	for _, s := range steps {
		m := s.Size / s.Radix
		for i := 0; i < m; i++ {
			base := s.TwiddleOffset + i*s.Radix
			forward[base] = unit
			inverse[base] = unit
			for j := 1; j < s.Radix; j++ {
				forward[base+j] = twiddle.Compute[F](i*j, s.Size, true)
				inverse[base+j] = twiddle.Compute[F](i*j, s.Size, false)
			}
		}
	}
	return forward, inverse
}
