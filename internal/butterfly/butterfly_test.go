package butterfly

import (
	"math"
	"math/rand"
	"testing"

	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/vector"
)

func naiveDFT(x []cnum.Complex[float64], forward bool) []cnum.Complex[float64] {
	n := len(x)
	y := make([]cnum.Complex[float64], n)
	sign := -1.0
	if !forward {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sum cnum.Complex[float64]
		for j := 0; j < n; j++ {
			theta := sign * 2 * math.Pi * float64(k*j) / float64(n)
			s, c := math.Sincos(theta)
			sum = sum.Add(x[j].Mul(cnum.FromFloat64[float64](c, s)))
		}
		y[k] = sum
	}
	return y
}

func randComplex(n int) []cnum.Complex[float64] {
	x := make([]cnum.Complex[float64], n)
	for i := range x {
		x[i] = cnum.FromFloat64[float64](rand.NormFloat64(), rand.NormFloat64())
	}
	return x
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

func testRadix(t *testing.T, radix int, forward bool) {
	k := vector.New[float64](1)
	src := randComplex(radix)
	want := naiveDFT(src, forward)

	srcLanes := [8][]cnum.Complex[float64]{}
	dstLanes := [8][]cnum.Complex[float64]{}
	for c := 0; c < radix; c++ {
		srcLanes[c] = []cnum.Complex[float64]{src[c]}
		dstLanes[c] = make([]cnum.Complex[float64], 1)
	}

	Apply(k, radix, dstLanes, srcLanes, forward)

	got := make([]cnum.Complex[float64], radix)
	for c := 0; c < radix; c++ {
		got[c] = dstLanes[c][0]
	}

	if d := maxDiff(want, got); d > 1e-9 {
		t.Errorf("radix=%d forward=%v: diff %v\nwant %v\ngot  %v", radix, forward, d, want, got)
	}
}

func TestButterflies(t *testing.T) {
	for _, radix := range []int{2, 3, 4, 8} {
		for _, forward := range []bool{true, false} {
			testRadix(t, radix, forward)
		}
	}
}
