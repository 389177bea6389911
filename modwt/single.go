package modwt

import "fmt"

// SingleLevelResult is an immutable length-N (approximation, detail) pair
// produced by one level of MODWT analysis.
type SingleLevelResult struct {
	Approx []float64
	Detail []float64
}

// Forward computes the level-1 MODWT of x: approximation = conv(x, H1),
// detail = conv(x, G1), under the transform's boundary mode.
func (t *Transform) Forward(x []float64) (SingleLevelResult, error) {
	if err := validateSignal(x); err != nil {
		return SingleLevelResult{}, err
	}

	filters, err := t.analysisCache.get(1, t.w.H0(), t.w.G0())
	if err != nil {
		return SingleLevelResult{}, err
	}
	if len(filters.h) > len(x) {
		return SingleLevelResult{}, fmt.Errorf("%w: L1=%d > N=%d", ErrFilterTooLong, len(filters.h), len(x))
	}

	approx, err := convForBoundary(t.boundary, x, filters.h, WithHeuristics(t.cfg))
	if err != nil {
		return SingleLevelResult{}, err
	}
	detail, err := convForBoundary(t.boundary, x, filters.g, WithHeuristics(t.cfg))
	if err != nil {
		return SingleLevelResult{}, err
	}
	return SingleLevelResult{Approx: approx, Detail: detail}, nil
}

// Inverse reconstructs a signal from a single-level result. Under PERIODIC
// this is an exact inverse of Forward; under ZERO_PADDING/SYMMETRIC it is
// the boundary's synthesis convolution, which only approximates the
// original signal away from the edges.
func (t *Transform) Inverse(r SingleLevelResult) ([]float64, error) {
	if len(r.Approx) != len(r.Detail) {
		return nil, fmt.Errorf("%w: approx len %d vs detail len %d", ErrShapeMismatch, len(r.Approx), len(r.Detail))
	}
	if err := validateSignal(r.Approx); err != nil {
		return nil, err
	}
	if err := validateSignal(r.Detail); err != nil {
		return nil, err
	}

	filters, err := t.synthesisCache.get(1, t.w.H0Recon(), t.w.G0Recon())
	if err != nil {
		return nil, err
	}
	return t.synthesizeLevel(1, r.Approx, r.Detail, filters)
}
