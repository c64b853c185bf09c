package fourier

import (
	"testing"

	ktyefft "github.com/ktye/fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	gonumfft "gonum.org/v1/gonum/dsp/fourier"
	scientificfft "scientificgo.org/fft"

	"github.com/waveform-dsp/fourier/internal/cnum"
)

// powerOfTwoSizes restricts cross-validation to lengths every one of the four reference
// libraries accepts: ktye/fft and go-dsp/fft both require a power of two.
var powerOfTwoSizes = []int{2, 4, 8, 16, 32, 64, 128, 256}

func TestCrossValidateKtyeFFT(t *testing.T) {
	for _, n := range powerOfTwoSizes {
		x := complexRand(n)

		ref := copyVector(x)
		f, err := ktyefft.New(n)
		if err != nil {
			t.Fatalf("ktyefft.New(%d): %v", n, err)
		}
		f.Transform(ref)

		p, err := New[float64](n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		got := copyVector(x)
		p.Transform(cnum.FromComplex128(got), Fft)

		if d := maxAbsDiff(ref, got); d > tolerance(n) {
			t.Errorf("N=%d: engine disagrees with ktye/fft by %v", n, d)
		}
	}
}

func TestCrossValidateGoDSPFFT(t *testing.T) {
	for _, n := range powerOfTwoSizes {
		x := complexRand(n)

		dspfft.EnsureRadix2Factors(n)
		ref := dspfft.FFT(copyVector(x))

		p, err := New[float64](n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		got := copyVector(x)
		p.Transform(cnum.FromComplex128(got), Fft)

		if d := maxAbsDiff(ref, got); d > tolerance(n) {
			t.Errorf("N=%d: engine disagrees with go-dsp/fft by %v", n, d)
		}
	}
}

func TestCrossValidateGonumFFT(t *testing.T) {
	for _, n := range powerOfTwoSizes {
		x := complexRand(n)

		fft := gonumfft.NewCmplxFFT(n)
		src := copyVector(x)
		dst := make([]complex128, n)
		ref := fft.Coefficients(dst, src)

		p, err := New[float64](n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		got := copyVector(x)
		p.Transform(cnum.FromComplex128(got), Fft)

		if d := maxAbsDiff(ref, got); d > tolerance(n) {
			t.Errorf("N=%d: engine disagrees with gonum by %v", n, d)
		}
	}
}

func TestCrossValidateScientificFFT(t *testing.T) {
	for _, n := range powerOfTwoSizes {
		x := complexRand(n)

		ref := scientificfft.Fft(copyVector(x), false)

		p, err := New[float64](n)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		got := copyVector(x)
		p.Transform(cnum.FromComplex128(got), Fft)

		if d := maxAbsDiff(ref, got); d > tolerance(n) {
			t.Errorf("N=%d: engine disagrees with scientificgo.org/fft by %v", n, d)
		}
	}
}
