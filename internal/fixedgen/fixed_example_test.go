package fixedgen

import (
	"math"
	"testing"

	"github.com/waveform-dsp/fourier"
)

func TestSize8RoundTrip(t *testing.T) {
	var x Size8
	for i := range x {
		x[i] = complex(float64(i), -float64(i))
	}
	orig := x

	x.Transform(fourier.Fft)
	x.Transform(fourier.Ifft)

	for i := range x {
		if d := math.Hypot(real(x[i])-real(orig[i]), imag(x[i])-imag(orig[i])); d > 1e-9 {
			t.Errorf("index %d: round trip diff %v (got %v, want %v)", i, d, x[i], orig[i])
		}
	}
}

func TestSize8UnitImpulse(t *testing.T) {
	var x Size8
	x[0] = 1
	x.Transform(fourier.Fft)
	for i := range x {
		if d := math.Hypot(real(x[i])-1, imag(x[i])); d > 1e-9 {
			t.Errorf("index %d: expected flat spectrum of 1, got %v", i, x[i])
		}
	}
}
