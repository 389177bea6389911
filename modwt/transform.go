package modwt

import (
	"github.com/cwbudde/algo-modwt/internal/config"
	"github.com/cwbudde/algo-modwt/wavelet"
)

// hardMaxLevels is the absolute cap on decomposition depth regardless of
// signal length, matching J <= 10 of §4.5.
const hardMaxLevels = 10

// TransformOption configures a Transform at construction time.
type TransformOption func(*transformOptions)

type transformOptions struct {
	heuristics *config.Heuristics
	alignment  AlignmentTable
}

// WithTransformHeuristics overrides the FFT-vs-direct and twiddle-cache
// heuristics the Transform's convolutions consult. Defaults to
// config.New() when not supplied.
func WithTransformHeuristics(cfg *config.Heuristics) TransformOption {
	return func(o *transformOptions) { o.heuristics = cfg }
}

// WithAlignmentTable overrides the SYMMETRIC inverse alignment strategy.
// Defaults to DefaultAlignmentTable, calibrated for Haar and DB4-like
// filters only.
func WithAlignmentTable(table AlignmentTable) TransformOption {
	return func(o *transformOptions) { o.alignment = table }
}

// Transform bundles a wavelet handle, a boundary mode, and the per-instance
// analysis/synthesis level-filter caches consumed by the single- and
// multi-level operations below. Construction is cheap; the caches populate
// lazily as levels are first requested.
//
// A *Transform is safe for concurrent use: its only mutable state is the
// two level-filter caches, which publish entries under a lock.
type Transform struct {
	w        *wavelet.Wavelet
	boundary Boundary
	cfg      *config.Heuristics
	align    AlignmentTable

	analysisCache  levelFilterCache
	synthesisCache levelFilterCache
}

// NewTransform builds a Transform for wavelet w under the given boundary
// mode.
func NewTransform(w *wavelet.Wavelet, boundary Boundary, opts ...TransformOption) (*Transform, error) {
	if w == nil {
		return nil, ErrNilWavelet
	}

	var o transformOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristics == nil {
		o.heuristics = config.New()
	}
	if o.alignment == nil {
		o.alignment = DefaultAlignmentTable
	}

	return &Transform{w: w, boundary: boundary, cfg: o.heuristics, align: o.alignment}, nil
}

// Wavelet returns the transform's wavelet handle.
func (t *Transform) Wavelet() *wavelet.Wavelet { return t.w }

// Boundary returns the transform's boundary mode.
func (t *Transform) Boundary() Boundary { return t.boundary }

// LevelAnalysisFilters returns the upsampled+scaled (H_j, G_j) analysis
// filter pair for the given level, populating the transform's shared cache
// as Decompose would. Callers (e.g. batch kernels reimplementing the
// cascade over a different memory layout) must treat the returned slices as
// read-only.
func (t *Transform) LevelAnalysisFilters(level int) (h, g []float64, err error) {
	f, err := t.analysisCache.get(level, t.w.H0(), t.w.G0())
	if err != nil {
		return nil, nil, err
	}
	return f.h, f.g, nil
}

// LevelSynthesisFilters returns the upsampled+scaled reconstruction filter
// pair for the given level, populating the transform's shared cache as
// Reconstruct would. Callers must treat the returned slices as read-only.
func (t *Transform) LevelSynthesisFilters(level int) (h, g []float64, err error) {
	f, err := t.synthesisCache.get(level, t.w.H0Recon(), t.w.G0Recon())
	if err != nil {
		return nil, nil, err
	}
	return f.h, f.g, nil
}

// MaximumLevels returns J_max for a signal of length n under this
// transform's wavelet: the largest j such that (L0-1)*2^(j-1)+1 <= n,
// capped at hardMaxLevels.
func (t *Transform) MaximumLevels(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptySignal
	}
	return maximumLevelsForL0(n, t.w.Len()), nil
}

func maximumLevelsForL0(n, l0 int) int {
	j := 0
	for level := 1; level <= hardMaxLevels; level++ {
		lj, err := levelFilterLength(l0, level)
		if err != nil || lj > n {
			break
		}
		j = level
	}
	return j
}
