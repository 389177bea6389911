package modwt

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/wavelet"
)

// synthesizePeriodic implements §4.4/§4.5's periodic synthesis:
// y[t] = sum_l hRecon[l]*approx[(t+l) mod N] + gRecon[l]*detail[(t+l) mod N].
func synthesizePeriodic(approx, detail, hRecon, gRecon []float64) []float64 {
	n := len(approx)
	y := make([]float64, n)
	for t := 0; t < n; t++ {
		sum := 0.0
		for l, hv := range hRecon {
			sum += hv * approx[mod(t+l, n)]
		}
		for l, gv := range gRecon {
			sum += gv * detail[mod(t+l, n)]
		}
		y[t] = sum
	}
	return y
}

// synthesizeZeroPad mirrors the forward ZERO_PADDING convolution: taps that
// would read outside [0, N) contribute zero instead of wrapping or
// reflecting.
func synthesizeZeroPad(approx, detail, hRecon, gRecon []float64) []float64 {
	n := len(approx)
	y := make([]float64, n)
	for t := 0; t < n; t++ {
		sum := 0.0
		for l, hv := range hRecon {
			if idx := t + l; idx < n {
				sum += hv * approx[idx]
			}
		}
		for l, gv := range gRecon {
			if idx := t + l; idx < n {
				sum += gv * detail[idx]
			}
		}
		y[t] = sum
	}
	return y
}

// synthesizeSymmetric implements the §4.6 alignment strategy: each branch
// (approximation, detail) gets its own orientation and shift (τ_j + Δ),
// looked up from align, and indexes its source array through whole-sample
// symmetric reflection.
func synthesizeSymmetric(level int, w *wavelet.Wavelet, approx, detail, hRecon, gRecon []float64, align AlignmentTable) []float64 {
	n := len(approx)
	tauBase := tau(w.Len(), level)

	hDec := align.Approx(level, w)
	gDec := align.Detail(level, w)
	hShift := tauBase + hDec.Delta
	gShift := tauBase + gDec.Delta

	y := make([]float64, n)
	for t := 0; t < n; t++ {
		sum := 0.0
		for l, hv := range hRecon {
			var idx int
			if hDec.Orientation == Plus {
				idx = symReflect(t+l-hShift, n)
			} else {
				idx = symReflect(t-l+hShift, n)
			}
			sum += hv * approx[idx]
		}
		for l, gv := range gRecon {
			var idx int
			if gDec.Orientation == Plus {
				idx = symReflect(t+l-gShift, n)
			} else {
				idx = symReflect(t-l+gShift, n)
			}
			sum += gv * detail[idx]
		}
		y[t] = sum
	}
	return y
}

// synthesizeLevel dispatches to the boundary-appropriate synthesis kernel
// for one cascade stage.
func (t *Transform) synthesizeLevel(level int, approx, detail []float64, filters levelFilters) ([]float64, error) {
	switch t.boundary {
	case Periodic:
		return synthesizePeriodic(approx, detail, filters.h, filters.g), nil
	case ZeroPadding:
		return synthesizeZeroPad(approx, detail, filters.h, filters.g), nil
	case Symmetric:
		return synthesizeSymmetric(level, t.w, approx, detail, filters.h, filters.g, t.align), nil
	default:
		return nil, fmt.Errorf("%w: boundary %v", ErrUnsupportedMode, t.boundary)
	}
}
