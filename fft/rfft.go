package fft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modwt/internal/config"
)

// RFFT computes the forward DFT of a real signal of power-of-two length n,
// returning the full n-point complex spectrum as an interleaved
// []float64 of length 2n (re0, im0, re1, im1, ..., re(n-1), im(n-1)).
//
// When the default heuristics enable the real-optimized path (opt-in, off
// by default per §4.9) and n > 1, this packs the even/odd halves of the
// input into one length-n/2 complex FFT and recombines via the standard
// half-complex unpacking formula, roughly halving the work of a full
// complex FFT on a zero-imaginary input. Otherwise — or for n == 1 — it
// falls back to a full complex FFT with a zero imaginary part.
func RFFT(realIn []float64, opts ...PlanOption) ([]float64, error) {
	n := len(realIn)
	if n <= 0 {
		return nil, ErrEmptyLength
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, n)
	}

	o := planOptions{cfg: defaultHeuristics()}
	for _, opt := range opts {
		opt(&o)
	}

	var spectrum []complex128
	if o.cfg.RealOptimizedFFT && n > 1 {
		var err error
		spectrum, err = rfftHalfLength(realIn, o.cfg)
		if err != nil {
			return nil, err
		}
	} else {
		plan, err := NewPlan(n, WithHeuristics(o.cfg))
		if err != nil {
			return nil, err
		}
		spectrum = make([]complex128, n)
		for i, v := range realIn {
			spectrum[i] = complex(v, 0)
		}
		if err := plan.ForwardInterleaved(spectrum, spectrum); err != nil {
			return nil, err
		}
	}

	out := make([]float64, 2*n)
	for i, c := range spectrum {
		out[2*i] = real(c)
		out[2*i+1] = imag(c)
	}
	return out, nil
}

// rfftHalfLength implements the even/odd-split real-optimized forward
// transform, returning the full n-point spectrum.
func rfftHalfLength(realIn []float64, cfg *config.Heuristics) ([]complex128, error) {
	n := len(realIn)
	half := n / 2

	z := make([]complex128, half)
	for i := 0; i < half; i++ {
		z[i] = complex(realIn[2*i], realIn[2*i+1])
	}

	plan, err := NewPlan(half, WithHeuristics(cfg))
	if err != nil {
		return nil, err
	}
	if err := plan.ForwardInterleaved(z, z); err != nil {
		return nil, err
	}

	spectrum := make([]complex128, n)
	step := 2 * math.Pi / float64(n)
	for k := 0; k < half; k++ {
		km := (half - k) % half
		zk := z[k]
		zm := z[km]

		ek := complex((real(zk)+real(zm))/2, (imag(zk)-imag(zm))/2)
		ok := complex((imag(zk)+imag(zm))/2, (real(zm)-real(zk))/2)

		s, c := math.Sincos(step * float64(k))
		tw := complex(c, -s)

		spectrum[k] = ek + tw*ok
		spectrum[k+half] = ek - tw*ok
	}
	return spectrum, nil
}

// IRFFT inverts RFFT: given the full n-point complex spectrum as an
// interleaved []float64 of length 2n, it returns the n real samples.
// Unlike RFFT's optional half-length forward path, the inverse always runs
// a full complex inverse FFT and discards the (numerically negligible,
// given a genuinely real-valued original signal) residual imaginary part —
// the interleaved contract already carries the full, non-redundant
// spectrum, so there is no half-length shortcut left to take on the way
// back.
func IRFFT(interleaved []float64, opts ...PlanOption) ([]float64, error) {
	if len(interleaved)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length interleaved buffer", ErrBufferTooShort)
	}
	n := len(interleaved) / 2
	if n <= 0 {
		return nil, ErrEmptyLength
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, n)
	}

	o := planOptions{cfg: defaultHeuristics()}
	for _, opt := range opts {
		opt(&o)
	}

	plan, err := NewPlan(n, WithHeuristics(o.cfg))
	if err != nil {
		return nil, err
	}

	spectrum := make([]complex128, n)
	for i := 0; i < n; i++ {
		spectrum[i] = complex(interleaved[2*i], interleaved[2*i+1])
	}

	if err := plan.InverseInterleaved(spectrum, spectrum); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i, c := range spectrum {
		out[i] = real(c)
	}
	return out, nil
}
