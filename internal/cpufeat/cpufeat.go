// Package cpufeat decides, once per plan construction, which vector kernel width the
// engine should use for a given precision. This is the Go-idiomatic replacement for the
// Rust engine's compile-time `multiversion`/`target_clones` dispatch: Go has no portable
// way to emit multiple compiled variants of a function and pick one at call time, so the
// selection happens once, up front, using runtime CPU-feature detection, and the chosen
// width is then fixed for the life of the plan (spec: "Once chosen for a given plan
// instance, the chosen kernel is used for the life of the plan").
package cpufeat

import "golang.org/x/sys/cpu"

// WideWidth32 returns the SIMD-equivalent lane width for single-precision plans: 4 lanes
// (four complex64 values, 256 bits) when the host advertises a vector
// extension wide enough to be worth the narrow-regime fallback, 1 otherwise.
func WideWidth32() int {
	if hasWideVectorSupport() {
		return 4
	}
	return 1
}

// WideWidth64 returns the SIMD-equivalent lane width for double-precision plans.
func WideWidth64() int {
	if hasWideVectorSupport() {
		return 2
	}
	return 1
}

// hasWideVectorSupport reports whether the host CPU exposes a vector extension the
// engine's wide kernel is modeled on. The wide kernel is implemented in portable Go (see
// internal/vector), so this gate is conservative: plans on hosts without any of these
// extensions still get correct results through the scalar (width 1) kernel, just without
// the wide kernel's batching.
func hasWideVectorSupport() bool {
	switch {
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return true
	case cpu.ARM64.HasASIMD:
		return true
	default:
		return false
	}
}
