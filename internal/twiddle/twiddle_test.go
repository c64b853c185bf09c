package twiddle

import (
	"math"
	"testing"
)

func TestComputeForwardMatchesEuler(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 17} {
		for k := 0; k < n; k++ {
			w := Compute[float64](k, n, true)
			theta := -2 * math.Pi * float64(k) / float64(n)
			wantRe, wantIm := math.Cos(theta), math.Sin(theta)
			if math.Abs(w.Re-wantRe) > 1e-12 || math.Abs(w.Im-wantIm) > 1e-12 {
				t.Errorf("Compute(%d,%d,true) = (%v,%v), want (%v,%v)", k, n, w.Re, w.Im, wantRe, wantIm)
			}
		}
	}
}

func TestComputeInverseIsConjugate(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 17} {
		for k := 0; k < n; k++ {
			fwd := Compute[float64](k, n, true)
			inv := Compute[float64](k, n, false)
			if math.Abs(fwd.Re-inv.Re) > 1e-15 || math.Abs(fwd.Im+inv.Im) > 1e-15 {
				t.Errorf("Compute(%d,%d,false) is not the conjugate of the forward value", k, n)
			}
		}
	}
}

func TestComputeHalfChirpIdentities(t *testing.T) {
	// Bluestein's forward "w" chirp, w_fwd[k] = exp(+i*pi*k^2/N), must equal
	// ComputeHalf(-(k*k), N, true).
	const n = 7
	for k := 0; k < n; k++ {
		v := ComputeHalf[float64](-float64(k*k), n, true)
		theta := math.Pi * float64(k*k) / float64(n)
		wantRe, wantIm := math.Cos(theta), math.Sin(theta)
		if math.Abs(v.Re-wantRe) > 1e-12 || math.Abs(v.Im-wantIm) > 1e-12 {
			t.Errorf("k=%d: w_fwd = (%v,%v), want (%v,%v)", k, v.Re, v.Im, wantRe, wantIm)
		}
	}
}
