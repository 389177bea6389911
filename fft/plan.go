package fft

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/internal/config"
)

// Plan is an immutable, reusable transform of a fixed power-of-two length N.
// A Plan holds a reference to the (possibly process-wide cached) twiddle set
// for N; building one is cheap once that set is cached, so package-level
// functions such as Forward and RFFT construct a transient Plan per call
// rather than requiring callers to manage one explicitly. Callers doing many
// transforms of the same N can keep their own Plan to skip the twiddle cache
// lookup.
type Plan struct {
	n   int
	tw  *twiddleSet
	cfg *config.Heuristics
}

// PlanOption configures a Plan at construction time.
type PlanOption func(*planOptions)

type planOptions struct {
	cfg *config.Heuristics
}

// WithHeuristics overrides the runtime heuristics (Stockham enable,
// real-optimized enable, twiddle cache bounds) a Plan consults. Defaults to
// config.New() when not supplied.
func WithHeuristics(cfg *config.Heuristics) PlanOption {
	return func(o *planOptions) { o.cfg = cfg }
}

// NewPlan builds a Plan for transforms of length n. n must be a power of
// two and at least 1.
func NewPlan(n int, opts ...PlanOption) (*Plan, error) {
	if n <= 0 {
		return nil, ErrEmptyLength
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, n)
	}

	o := planOptions{cfg: config.New()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Plan{n: n, tw: getTwiddles(n, o.cfg), cfg: o.cfg}, nil
}

// N returns the transform length this Plan was built for.
func (p *Plan) N() int { return p.n }

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func (p *Plan) core(a []complex128, inverse bool) {
	if p.cfg.StockhamEnabled {
		stockham(a, p.tw, inverse)
	} else {
		cooleyTukey(a, p.tw, inverse)
	}
}

// ForwardInterleaved computes the forward DFT of src into dst (dst and src
// may alias). Both must have length N.
func (p *Plan) ForwardInterleaved(dst, src []complex128) error {
	if len(src) != p.n || len(dst) != p.n {
		return fmt.Errorf("%w: want %d", ErrLengthMismatch, p.n)
	}
	if &dst[0] != &src[0] {
		copy(dst, src)
	}
	p.core(dst, false)
	return nil
}

// InverseInterleaved computes the inverse DFT of src into dst, including the
// 1/N normalization. dst and src may alias; both must have length N.
func (p *Plan) InverseInterleaved(dst, src []complex128) error {
	if err := p.InverseInterleavedNoScale(dst, src); err != nil {
		return err
	}
	scale := 1 / float64(p.n)
	for i := range dst {
		dst[i] *= complex(scale, 0)
	}
	return nil
}

// InverseInterleavedNoScale computes the inverse DFT without the final 1/N
// normalization, for callers that fold their own scaling into a surrounding
// computation (e.g. FFT-based circular convolution dividing once by N at the
// end instead of once per transform).
func (p *Plan) InverseInterleavedNoScale(dst, src []complex128) error {
	if len(src) != p.n || len(dst) != p.n {
		return fmt.Errorf("%w: want %d", ErrLengthMismatch, p.n)
	}
	if &dst[0] != &src[0] {
		copy(dst, src)
	}
	p.core(dst, true)
	return nil
}

// Forward computes the forward DFT of the real/imaginary pair (re, im) in
// place. Both slices must have length N.
func (p *Plan) Forward(re, im []float64) error {
	return p.transformPlanar(re, im, false, true)
}

// Inverse computes the inverse DFT of (re, im) in place, including the
// 1/N normalization.
func (p *Plan) Inverse(re, im []float64) error {
	return p.transformPlanar(re, im, true, true)
}

// InverseNoScale computes the inverse DFT of (re, im) in place, skipping the
// 1/N normalization.
func (p *Plan) InverseNoScale(re, im []float64) error {
	return p.transformPlanar(re, im, true, false)
}

func (p *Plan) transformPlanar(re, im []float64, inverse, scale bool) error {
	if len(re) != p.n || len(im) != p.n {
		return fmt.Errorf("%w: want %d", ErrLengthMismatch, p.n)
	}

	buf, handle := getComplexScratch(p.n)
	defer putComplexScratch(handle)

	for i := 0; i < p.n; i++ {
		buf[i] = complex(re[i], im[i])
	}

	p.core(buf, inverse)

	if inverse && scale {
		s := 1 / float64(p.n)
		for i := 0; i < p.n; i++ {
			re[i] = real(buf[i]) * s
			im[i] = imag(buf[i]) * s
		}
		return nil
	}

	for i := 0; i < p.n; i++ {
		re[i] = real(buf[i])
		im[i] = imag(buf[i])
	}
	return nil
}
