package stage

import (
	"math"
	"math/rand"
	"testing"

	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/twiddle"
	"github.com/waveform-dsp/fourier/internal/vector"
)

func randComplex(n int) []cnum.Complex[float64] {
	x := make([]cnum.Complex[float64], n)
	for i := range x {
		x[i] = cnum.FromFloat64[float64](rand.NormFloat64(), rand.NormFloat64())
	}
	return x
}

func naiveDFT(x []cnum.Complex[float64], forward bool) []cnum.Complex[float64] {
	n := len(x)
	y := make([]cnum.Complex[float64], n)
	for k := 0; k < n; k++ {
		var sum cnum.Complex[float64]
		for j := 0; j < n; j++ {
			sum = sum.Add(x[j].Mul(twiddle.Compute[float64](k*j, n, forward)))
		}
		y[k] = sum
	}
	return y
}

func maxDiff(a, b []cnum.Complex[float64]) float64 {
	var m float64
	for i := range a {
		d := math.Hypot(a[i].Re-b[i].Re, a[i].Im-b[i].Im)
		if d > m {
			m = d
		}
	}
	return m
}

// buildTwiddles builds a size-length twiddle table matching internal/autosort's slab
// layout for a single stage of the given size and radix.
func buildTwiddles(size, radix int, forward bool) []cnum.Complex[float64] {
	m := size / radix
	tw := make([]cnum.Complex[float64], size)
	unit := cnum.FromFloat64[float64](1, 0)
	for i := 0; i < m; i++ {
		base := i * radix
		tw[base] = unit
		for j := 1; j < radix; j++ {
			tw[base+j] = twiddle.Compute[float64](i*j, size, forward)
		}
	}
	return tw
}

// testBaseStage checks a base stage (size == radix) applied across `stride` interleaved
// sub-DFTs against stride independent radix-point naive DFTs.
func testBaseStage(t *testing.T, radix, stride, width int) {
	k := vector.New[float64](width)
	lanes := NewLanes[float64](width)

	total := radix * stride
	input := randComplex(total)
	output := make([]cnum.Complex[float64], total)

	Apply(k, lanes, radix, radix, stride, input, output, nil, true)

	for j := 0; j < stride; j++ {
		group := make([]cnum.Complex[float64], radix)
		for c := 0; c < radix; c++ {
			group[c] = input[stride*c+j]
		}
		want := naiveDFT(group, true)
		got := make([]cnum.Complex[float64], radix)
		for c := 0; c < radix; c++ {
			got[c] = output[j+stride*c]
		}
		if d := maxDiff(want, got); d > 1e-9 {
			t.Errorf("radix=%d stride=%d width=%d j=%d: diff %v", radix, stride, width, j, d)
		}
	}
}

func TestBaseStageAllWidths(t *testing.T) {
	for _, radix := range []int{2, 3, 4, 8} {
		for _, stride := range []int{1, 2, 3, 5} {
			for _, width := range []int{1, 2, 4} {
				testBaseStage(t, radix, stride, width)
			}
		}
	}
}

// TestNonBaseStageMatchesWiderDFT builds a size=8, radix=2, stride=1 non-base stage (part
// of a larger transform) and checks its output against the definition in spec.md ss4.4:
// gather, butterfly, twiddle-multiply lanes 1..R-1, scatter.
func TestNonBaseStageMatchesWiderDFT(t *testing.T) {
	const size = 8
	const radix = 2
	const stride = 1
	k := vector.New[float64](1)
	lanes := NewLanes[float64](1)

	input := randComplex(size)
	output := make([]cnum.Complex[float64], size)
	tw := buildTwiddles(size, radix, true)

	Apply(k, lanes, radix, size, stride, input, output, tw, true)

	m := size / radix
	for i := 0; i < m; i++ {
		pair := []cnum.Complex[float64]{input[i], input[i+m]}
		sum := pair[0].Add(pair[1])
		diff := pair[0].Sub(pair[1])
		diff = diff.Mul(twiddle.Compute[float64](i, size, true))
		if d := math.Hypot(output[2*i].Re-sum.Re, output[2*i].Im-sum.Im); d > 1e-9 {
			t.Errorf("i=%d: output[%d] diff from sum", i, 2*i)
		}
		if d := math.Hypot(output[2*i+1].Re-diff.Re, output[2*i+1].Im-diff.Im); d > 1e-9 {
			t.Errorf("i=%d: output[%d] diff from twiddled diff", i, 2*i+1)
		}
	}
}
