package fourier

import "github.com/waveform-dsp/fourier/internal/cnum"

// Complex64Plan is a Plan specialized to single-precision complex64 buffers, the native
// Go type most callers reach for instead of the internal Complex[float32] representation.
type Complex64Plan struct {
	*Plan[float32]
}

// NewComplex64 constructs a Complex64Plan for transforms of length n.
func NewComplex64(n int) (*Complex64Plan, error) {
	p, err := New[float32](n)
	if err != nil {
		return nil, err
	}
	return &Complex64Plan{p}, nil
}

// Transform evaluates kind in place over buf, which must have length p.Size().
func (p *Complex64Plan) Transform(buf []complex64, kind Kind) {
	p.Plan.Transform(cnum.FromComplex64(buf), kind)
}

// TransformInto evaluates kind with input read from src and the result written to dst;
// src and dst must each have length p.Size() and must not alias.
func (p *Complex64Plan) TransformInto(dst, src []complex64, kind Kind) {
	p.Plan.TransformInto(cnum.FromComplex64(dst), cnum.FromComplex64(src), kind)
}

// Complex128Plan is a Plan specialized to double-precision complex128 buffers.
type Complex128Plan struct {
	*Plan[float64]
}

// NewComplex128 constructs a Complex128Plan for transforms of length n.
func NewComplex128(n int) (*Complex128Plan, error) {
	p, err := New[float64](n)
	if err != nil {
		return nil, err
	}
	return &Complex128Plan{p}, nil
}

// Transform evaluates kind in place over buf, which must have length p.Size().
func (p *Complex128Plan) Transform(buf []complex128, kind Kind) {
	p.Plan.Transform(cnum.FromComplex128(buf), kind)
}

// TransformInto evaluates kind with input read from src and the result written to dst;
// src and dst must each have length p.Size() and must not alias.
func (p *Complex128Plan) TransformInto(dst, src []complex128, kind Kind) {
	p.Plan.TransformInto(cnum.FromComplex128(dst), cnum.FromComplex128(src), kind)
}
