package fourier

import "math"

// Kind selects one of five closely related transforms: a direction (forward or inverse)
// and a scale policy applied to every output element.
type Kind int

const (
	// Fft is the unscaled forward transform.
	Fft Kind = iota
	// Ifft is the inverse transform, scaled by 1/N.
	Ifft
	// UnscaledIfft is the inverse transform with no scaling applied. It has no inverse:
	// Inverse reports ok=false for it.
	UnscaledIfft
	// SqrtScaledFft is the forward transform, scaled by 1/sqrt(N).
	SqrtScaledFft
	// SqrtScaledIfft is the inverse transform, scaled by 1/sqrt(N).
	SqrtScaledIfft
)

func (kind Kind) String() string {
	switch kind {
	case Fft:
		return "Fft"
	case Ifft:
		return "Ifft"
	case UnscaledIfft:
		return "UnscaledIfft"
	case SqrtScaledFft:
		return "SqrtScaledFft"
	case SqrtScaledIfft:
		return "SqrtScaledIfft"
	default:
		return "Kind(invalid)"
	}
}

// IsForward reports whether kind evaluates the forward transform.
func (kind Kind) IsForward() bool {
	switch kind {
	case Fft, SqrtScaledFft:
		return true
	case Ifft, UnscaledIfft, SqrtScaledIfft:
		return false
	default:
		panic("fourier: invalid Kind")
	}
}

// Inverse returns the kind whose transform undoes kind, and ok=true, except for
// UnscaledIfft, whose inverse is undefined (ok=false).
func (kind Kind) Inverse() (inverse Kind, ok bool) {
	switch kind {
	case Fft:
		return Ifft, true
	case Ifft:
		return Fft, true
	case UnscaledIfft:
		return UnscaledIfft, false
	case SqrtScaledFft:
		return SqrtScaledIfft, true
	case SqrtScaledIfft:
		return SqrtScaledFft, true
	default:
		panic("fourier: invalid Kind")
	}
}

// scaleFactor reports the scale factor to apply to an n-point transform of this kind, and
// whether any scaling is needed (Fft and UnscaledIfft apply none).
func (kind Kind) scaleFactor(n int) (factor float64, has bool) {
	switch kind {
	case Fft, UnscaledIfft:
		return 0, false
	case Ifft:
		return 1 / float64(n), true
	case SqrtScaledFft, SqrtScaledIfft:
		return 1 / math.Sqrt(float64(n)), true
	default:
		panic("fourier: invalid Kind")
	}
}
