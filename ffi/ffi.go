// Command ffi exposes the fourier engine to C callers as a shared/archive library
// (`go build -buildmode=c-archive` or `-buildmode=c-shared`). Handles are opaque
// integers into a process-wide registry rather than raw pointers, so a stray or
// double-freed handle can be rejected instead of dereferenced.
package main

/*
#include <stddef.h>
#include <complex.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/waveform-dsp/fourier"
)

// transformFromCode maps the wire-level 0..4 transform codes from spec.md §6 onto the
// package's Kind enum. An unrecognized code panics; every caller evaluates it inside
// safeCall, so the panic is recovered and the transform call becomes a no-op.
func transformFromCode(code C.int) fourier.Kind {
	switch code {
	case 0:
		return fourier.Fft
	case 1:
		return fourier.Ifft
	case 2:
		return fourier.UnscaledIfft
	case 3:
		return fourier.SqrtScaledFft
	case 4:
		return fourier.SqrtScaledIfft
	default:
		panic("ffi: invalid transform code")
	}
}

var (
	registryMu     sync.Mutex
	registryNext   C.size_t = 1
	float32Plans            = map[C.size_t]*fourier.Complex64Plan{}
	float64Plans            = map[C.size_t]*fourier.Complex128Plan{}
)

func register64(p *fourier.Complex64Plan) C.size_t {
	registryMu.Lock()
	defer registryMu.Unlock()
	h := registryNext
	registryNext++
	float32Plans[h] = p
	return h
}

func register128(p *fourier.Complex128Plan) C.size_t {
	registryMu.Lock()
	defer registryMu.Unlock()
	h := registryNext
	registryNext++
	float64Plans[h] = p
	return h
}

// safeCall runs fn and converts any panic into a false return, the Go analogue of the
// Rust side's catch_unwind-to-null-pointer convention.
func safeCall(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	fn()
	return true
}

//export fourier_create_float
func fourier_create_float(size C.size_t) C.size_t {
	var handle C.size_t
	ok := safeCall(func() {
		p, err := fourier.NewComplex64(int(size))
		if err != nil {
			panic(err)
		}
		handle = register64(p)
	})
	if !ok {
		return 0
	}
	return handle
}

//export fourier_destroy_float
func fourier_destroy_float(state C.size_t) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(float32Plans, state)
}

//export fourier_transform_in_place_float
func fourier_transform_in_place_float(state C.size_t, input *C.float, transform C.int) {
	registryMu.Lock()
	p, found := float32Plans[state]
	registryMu.Unlock()
	if !found {
		return
	}
	safeCall(func() {
		buf := unsafe.Slice((*complex64)(unsafe.Pointer(input)), p.Size())
		p.Transform(buf, transformFromCode(transform))
	})
}

//export fourier_transform_float
func fourier_transform_float(state C.size_t, input *C.float, output *C.float, transform C.int) {
	registryMu.Lock()
	p, found := float32Plans[state]
	registryMu.Unlock()
	if !found {
		return
	}
	safeCall(func() {
		src := unsafe.Slice((*complex64)(unsafe.Pointer(input)), p.Size())
		dst := unsafe.Slice((*complex64)(unsafe.Pointer(output)), p.Size())
		p.TransformInto(dst, src, transformFromCode(transform))
	})
}

//export fourier_create_double
func fourier_create_double(size C.size_t) C.size_t {
	var handle C.size_t
	ok := safeCall(func() {
		p, err := fourier.NewComplex128(int(size))
		if err != nil {
			panic(err)
		}
		handle = register128(p)
	})
	if !ok {
		return 0
	}
	return handle
}

//export fourier_destroy_double
func fourier_destroy_double(state C.size_t) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(float64Plans, state)
}

//export fourier_transform_in_place_double
func fourier_transform_in_place_double(state C.size_t, input *C.double, transform C.int) {
	registryMu.Lock()
	p, found := float64Plans[state]
	registryMu.Unlock()
	if !found {
		return
	}
	safeCall(func() {
		buf := unsafe.Slice((*complex128)(unsafe.Pointer(input)), p.Size())
		p.Transform(buf, transformFromCode(transform))
	})
}

//export fourier_transform_double
func fourier_transform_double(state C.size_t, input *C.double, output *C.double, transform C.int) {
	registryMu.Lock()
	p, found := float64Plans[state]
	registryMu.Unlock()
	if !found {
		return
	}
	safeCall(func() {
		src := unsafe.Slice((*complex128)(unsafe.Pointer(input)), p.Size())
		dst := unsafe.Slice((*complex128)(unsafe.Pointer(output)), p.Size())
		p.TransformInto(dst, src, transformFromCode(transform))
	})
}

func main() {}
