package fourier

import "math/bits"

// IsPow2 returns true if n is a perfect power of two (1, 2, 4, 8, ...).
func IsPow2(n int) bool {
	if n <= 0 {
		return false
	}
	return n&(n-1) == 0
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(uint64(n-1))
}

// ZeroPadComplex64 copies x into a new slice of length n, zero-filling the tail. It does
// not modify x.
func ZeroPadComplex64(x []complex64, n int) []complex64 {
	y := make([]complex64, n)
	copy(y, x)
	return y
}

// ZeroPadComplex128 copies x into a new slice of length n, zero-filling the tail. It does
// not modify x.
func ZeroPadComplex128(x []complex128, n int) []complex128 {
	y := make([]complex128, n)
	copy(y, x)
	return y
}

// Complex64ToComplex128 converts a slice of complex64 to complex128.
func Complex64ToComplex128(x []complex64) []complex128 {
	y := make([]complex128, len(x))
	for i, v := range x {
		y[i] = complex(float64(real(v)), float64(imag(v)))
	}
	return y
}

// Complex128ToComplex64 converts a slice of complex128 to complex64.
func Complex128ToComplex64(x []complex128) []complex64 {
	y := make([]complex64, len(x))
	for i, v := range x {
		y[i] = complex(float32(real(v)), float32(imag(v)))
	}
	return y
}
