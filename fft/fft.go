package fft

import (
	"sync"

	"github.com/cwbudde/algo-modwt/internal/config"
)

var (
	defaultCfgOnce sync.Once
	defaultCfg     *config.Heuristics
)

// defaultHeuristics returns the process-wide default heuristics, loaded once
// from the environment (falling back to documented defaults on a malformed
// variable, since a package-level convenience function has no caller to
// surface a config error to).
func defaultHeuristics() *config.Heuristics {
	defaultCfgOnce.Do(func() {
		if h, err := config.FromEnv(); err == nil {
			defaultCfg = h
		} else {
			defaultCfg = config.New()
		}
	})
	return defaultCfg
}

func planFor(n int) (*Plan, error) {
	return NewPlan(n, WithHeuristics(defaultHeuristics()))
}

// Forward computes the forward FFT of (re, im) in place using the default,
// environment-configured heuristics. Both slices must have equal,
// power-of-two length.
func Forward(re, im []float64) error {
	if len(re) != len(im) {
		return ErrLengthMismatch
	}
	p, err := planFor(len(re))
	if err != nil {
		return err
	}
	return p.Forward(re, im)
}

// Inverse computes the inverse FFT of (re, im) in place, including 1/N
// scaling.
func Inverse(re, im []float64) error {
	if len(re) != len(im) {
		return ErrLengthMismatch
	}
	p, err := planFor(len(re))
	if err != nil {
		return err
	}
	return p.Inverse(re, im)
}

// InverseNoScale computes the inverse FFT of (re, im) in place, skipping the
// 1/N scaling.
func InverseNoScale(re, im []float64) error {
	if len(re) != len(im) {
		return ErrLengthMismatch
	}
	p, err := planFor(len(re))
	if err != nil {
		return err
	}
	return p.InverseNoScale(re, im)
}

// ForwardInterleaved computes the forward FFT of src into dst (which may
// alias src).
func ForwardInterleaved(dst, src []complex128) error {
	p, err := planFor(len(src))
	if err != nil {
		return err
	}
	return p.ForwardInterleaved(dst, src)
}

// InverseInterleaved computes the inverse FFT of src into dst (which may
// alias src), including 1/N scaling.
func InverseInterleaved(dst, src []complex128) error {
	p, err := planFor(len(src))
	if err != nil {
		return err
	}
	return p.InverseInterleaved(dst, src)
}

// InverseInterleavedNoScale computes the inverse FFT of src into dst (which
// may alias src), skipping 1/N scaling.
func InverseInterleavedNoScale(dst, src []complex128) error {
	p, err := planFor(len(src))
	if err != nil {
		return err
	}
	return p.InverseInterleavedNoScale(dst, src)
}
