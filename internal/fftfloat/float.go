// Package fftfloat declares the precision constraint shared by every layer of the
// transform engine.
package fftfloat

// Float is the set of real types the engine can be instantiated over: single precision
// (complex64's component type) and double precision (complex128's component type).
type Float interface {
	~float32 | ~float64
}
