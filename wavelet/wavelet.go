// Package wavelet supplies the filter-bank handles consumed by the modwt
// package. The full wavelet catalog — family metadata, continuous-wavelet
// variants, financial analyzers — is an external collaborator specified only
// by the interface it presents to the core; this package implements just
// enough of it (Haar, Daubechies, Symlet, Coiflet, and one Biorthogonal
// pair) to exercise and test the MODWT engine end to end.
package wavelet

import (
	"fmt"
	"math"
)

// Kind distinguishes the filter-bank symmetry class a Wavelet belongs to.
type Kind int

const (
	// Orthogonal wavelets derive their high-pass filters from the low-pass
	// filter via the quadrature mirror relation.
	Orthogonal Kind = iota
	// Biorthogonal wavelets use independently supplied analysis/synthesis
	// filter quadruples.
	Biorthogonal
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Orthogonal:
		return "orthogonal"
	case Biorthogonal:
		return "biorthogonal"
	default:
		return "unknown"
	}
}

// Wavelet is a read-only filter-bank handle: low-pass/high-pass
// decomposition filters (H0, G0) and low-pass/high-pass reconstruction
// filters (H0Recon, G0Recon), all of equal base length L0, plus identifying
// metadata. A Wavelet is immutable once constructed; all accessors return
// the same backing arrays, which callers must not mutate.
type Wavelet struct {
	name             string
	family           string
	kind             Kind
	vanishingMoments int

	h0      []float64
	g0      []float64
	h0Recon []float64
	g0Recon []float64
}

// Name returns the wavelet's identifying name, e.g. "db4".
func (w *Wavelet) Name() string { return w.name }

// Family returns the wavelet family, e.g. "daubechies".
func (w *Wavelet) Family() string { return w.family }

// Kind returns whether the wavelet is orthogonal or biorthogonal.
func (w *Wavelet) Kind() Kind { return w.kind }

// VanishingMoments returns the number of vanishing moments, where known.
func (w *Wavelet) VanishingMoments() int { return w.vanishingMoments }

// Len returns the base filter length L0.
func (w *Wavelet) Len() int { return len(w.h0) }

// H0 returns the low-pass decomposition filter.
func (w *Wavelet) H0() []float64 { return w.h0 }

// G0 returns the high-pass decomposition filter.
func (w *Wavelet) G0() []float64 { return w.g0 }

// H0Recon returns the low-pass reconstruction filter.
func (w *Wavelet) H0Recon() []float64 { return w.h0Recon }

// G0Recon returns the high-pass reconstruction filter.
func (w *Wavelet) G0Recon() []float64 { return w.g0Recon }

// newOrthogonal builds a Wavelet from a decomposition low-pass filter h0,
// deriving the high-pass decomposition filter via the quadrature mirror
// relation G0[i] = (-1)^i * H0[L-1-i]. For an orthogonal wavelet the
// reconstruction filters equal the decomposition filters themselves — the
// `+l` periodic synthesis convention this package's convolution kernels use
// already accounts for the direction reversal, so reconstruction must reuse
// H0/G0 unreversed, not their time-reversal.
func newOrthogonal(name, family string, vanishingMoments int, h0 []float64) (*Wavelet, error) {
	if err := validateFilter(name, h0); err != nil {
		return nil, err
	}

	g0 := quadratureMirror(h0)
	return &Wavelet{
		name:             name,
		family:           family,
		kind:             Orthogonal,
		vanishingMoments: vanishingMoments,
		h0:               h0,
		g0:               g0,
		h0Recon:          h0,
		g0Recon:          g0,
	}, nil
}

// newBiorthogonal builds a Wavelet from an explicit decomposition/
// reconstruction filter quadruple. Unlike the orthogonal case, a
// biorthogonal high-pass filter is not derivable from its own low-pass
// filter alone — it comes from the counterpart low-pass filter of the dual
// basis — so all four filters must be supplied directly.
func newBiorthogonal(name, family string, vanishingMoments int, h0, g0, h0Recon, g0Recon []float64) (*Wavelet, error) {
	for _, f := range [][]float64{h0, g0, h0Recon, g0Recon} {
		if len(f) != len(h0) {
			return nil, fmt.Errorf("wavelet: %s: biorthogonal filter lengths must match: %d, %d, %d, %d",
				name, len(h0), len(g0), len(h0Recon), len(g0Recon))
		}
		if err := validateFilter(name, f); err != nil {
			return nil, err
		}
	}

	return &Wavelet{
		name:             name,
		family:           family,
		kind:             Biorthogonal,
		vanishingMoments: vanishingMoments,
		h0:               h0,
		g0:               g0,
		h0Recon:          h0Recon,
		g0Recon:          g0Recon,
	}, nil
}

func validateFilter(name string, h0 []float64) error {
	if len(h0) < 2 {
		return fmt.Errorf("wavelet: %s: base filter length must be >= 2, got %d", name, len(h0))
	}
	for _, v := range h0 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("wavelet: %s: non-finite filter coefficient", name)
		}
	}
	return nil
}

func quadratureMirror(h0 []float64) []float64 {
	l := len(h0)
	g0 := make([]float64, l)
	for i := 0; i < l; i++ {
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		g0[i] = sign * h0[l-1-i]
	}
	return g0
}
