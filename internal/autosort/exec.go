package autosort

import (
	"sync/atomic"

	"github.com/waveform-dsp/fourier/internal/cnum"
	"github.com/waveform-dsp/fourier/internal/fftfloat"
	"github.com/waveform-dsp/fourier/internal/stage"
	"github.com/waveform-dsp/fourier/internal/vector"
)

// Plan is a precomputed autosort transform of a fixed length n, holding the stage list,
// forward and inverse twiddle tables, a same-size scratch buffer, and the stage driver's
// lane scratch -- all allocated once at construction so that every Transform call runs
// allocation-free.
type Plan[F fftfloat.Float] struct {
	n       int
	steps   []Step
	twFwd   []cnum.Complex[F]
	twInv   []cnum.Complex[F]
	scratch []cnum.Complex[F]
	kernel  vector.Kernel[F]
	lanes   *stage.Lanes[F]
	busy    int32
}

// NewPlan builds an autosort plan for length n using a kernel of the given vector width.
// It reports ok=false if n's factorization needs a prime other than 2 or 3, in which case
// the caller should use internal/bluestein instead.
func NewPlan[F fftfloat.Float](n, width int) (p *Plan[F], ok bool) {
	steps, ok := Factor(n)
	if !ok {
		return nil, false
	}
	fwd, inv := TwiddleTables[F](steps)
	return &Plan[F]{
		n:       n,
		steps:   steps,
		twFwd:   fwd,
		twInv:   inv,
		scratch: make([]cnum.Complex[F], n),
		kernel:  vector.New[F](width),
		lanes:   stage.NewLanes[F](width),
	}, true
}

// Size returns the transform length the plan was built for.
func (p *Plan[F]) Size() int { return p.n }

func (p *Plan[F]) acquire() {
	if !atomic.CompareAndSwapInt32(&p.busy, 0, 1) {
		panic("autosort: concurrent use of the same plan from more than one goroutine")
	}
}

func (p *Plan[F]) release() { atomic.StoreInt32(&p.busy, 0) }

// TransformInPlace runs the forward or inverse autosort FFT over buf, which must have
// length p.Size(). If hasScale is true every output element is multiplied by scale;
// otherwise the transform is left unscaled (spec.md's UnscaledIfft kind and the inner
// forward transforms of internal/bluestein both need this).
//
// The plan borrows its internal scratch buffer for the duration of the call and panics on
// re-entrant use, matching spec.md ss6's single-borrow discipline.
func (p *Plan[F]) TransformInPlace(buf []cnum.Complex[F], forward bool, scale F, hasScale bool) {
	if len(buf) != p.n {
		panic("autosort: buffer length does not match plan size")
	}
	p.acquire()
	defer p.release()

	if len(p.steps) == 0 {
		if hasScale {
			for i := range buf {
				buf[i] = buf[i].Scale(scale)
			}
		}
		return
	}

	twiddles := p.twInv
	if forward {
		twiddles = p.twFwd
	}

	from, to := buf, p.scratch
	inScratch := false
	for _, s := range p.steps {
		seg := twiddles[s.TwiddleOffset : s.TwiddleOffset+s.Size]
		stage.Apply(p.kernel, p.lanes, s.Radix, s.Size, s.Stride, from, to, seg, forward)
		from, to = to, from
		inScratch = !inScratch
	}
	// from now holds the final output: p.scratch if an odd number of steps ran, buf
	// otherwise.
	final := from

	if hasScale {
		for i := range buf {
			buf[i] = final[i].Scale(scale)
		}
		return
	}
	if inScratch {
		copy(buf, final)
	}
}

// TransformTo runs the transform with input read from src and the result written to dst;
// src and dst must each have length p.Size() and must not alias. It copies src into dst
// and then calls TransformInPlace on dst.
func (p *Plan[F]) TransformTo(dst, src []cnum.Complex[F], forward bool, scale F, hasScale bool) {
	if len(src) != p.n || len(dst) != p.n {
		panic("autosort: buffer length does not match plan size")
	}
	copy(dst, src)
	p.TransformInPlace(dst, forward, scale, hasScale)
}
