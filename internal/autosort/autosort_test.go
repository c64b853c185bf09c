package autosort

import (
	"math"
	"math/rand"
	"testing"

	"github.com/waveform-dsp/fourier/internal/cnum"
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
	sign := -1.0
	if !forward {
		sign = 1.0
	}
	y := make([]cnum.Complex[float64], n)
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

func TestFactorRejectsNonSmoothSizes(t *testing.T) {
	for _, n := range []int{5, 7, 11, 13, 191} {
		if _, ok := Factor(n); ok {
			t.Errorf("Factor(%d) should fail (has a prime factor other than 2 or 3)", n)
		}
	}
}

func TestFactorCoversSmoothSizes(t *testing.T) {
	for n := 1; n <= 1024; n++ {
		residual := n
		for residual%2 == 0 {
			residual /= 2
		}
		for residual%3 == 0 {
			residual /= 3
		}
		steps, ok := Factor(n)
		if residual != 1 {
			if ok {
				t.Errorf("Factor(%d) should fail", n)
			}
			continue
		}
		if !ok {
			t.Fatalf("Factor(%d) should succeed", n)
		}
		size, stride := n, 1
		for _, s := range steps {
			if s.Size != size || s.Stride != stride {
				t.Fatalf("Factor(%d): step %+v inconsistent with running size=%d stride=%d", n, s, size, stride)
			}
			size /= s.Radix
			stride *= s.Radix
		}
		if size != 1 {
			t.Errorf("Factor(%d): residual size %d after all steps, want 1", n, size)
		}
	}
}

func TestPlanAgreesWithNaiveDFT(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 6, 8, 9, 12, 16, 24, 27, 32, 64, 81, 96, 128, 243} {
		for width := 1; width <= 4; width++ {
			if width == 3 {
				continue
			}
			p, ok := NewPlan[float64](n, width)
			if !ok {
				t.Fatalf("NewPlan(%d, %d) failed", n, width)
			}
			x := randComplex(n)
			want := naiveDFT(x, true)

			got := make([]cnum.Complex[float64], n)
			copy(got, x)
			var noScale float64
			p.TransformInPlace(got, true, noScale, false)

			if d := maxDiff(want, got); d > 1e-9*float64(n) {
				t.Errorf("N=%d width=%d: forward transform diff %v", n, width, d)
			}
		}
	}
}

func TestPlanRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 8, 9, 16, 27, 32, 81} {
		p, ok := NewPlan[float64](n, 1)
		if !ok {
			t.Fatalf("NewPlan(%d) failed", n)
		}
		x := randComplex(n)
		buf := make([]cnum.Complex[float64], n)
		copy(buf, x)

		var noScale float64
		p.TransformInPlace(buf, true, noScale, false)
		scale := 1.0 / float64(n)
		p.TransformInPlace(buf, false, scale, true)

		if d := maxDiff(x, buf); d > 1e-9*float64(n) {
			t.Errorf("N=%d: round trip diff %v", n, d)
		}
	}
}

func TestPlanReentrancyPanics(t *testing.T) {
	p, ok := NewPlan[float64](8, 1)
	if !ok {
		t.Fatal("NewPlan(8) failed")
	}
	p.busy = 1
	defer func() {
		p.busy = 0
		if recover() == nil {
			t.Error("expected panic on re-entrant use")
		}
	}()
	var noScale float64
	p.TransformInPlace(make([]cnum.Complex[float64], 8), true, noScale, false)
}
