package testutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Energy returns sum(x[i]^2).
func Energy(x []float64) float64 {
	norm := floats.Norm(x, 2)
	return norm * norm
}

// NRMSE returns the normalized root-mean-square error between got and want
// over the whole slice: sqrt(mean((got-want)^2)) / rms(want).
// Returns 0 if want is all zero and got matches, +Inf if want is all zero and
// got does not.
func NRMSE(got, want []float64) float64 {
	return NRMSERange(got, want, 0, len(want))
}

// NRMSERange is NRMSE restricted to the half-open index range [lo, hi).
// This is used to compute the "interior" NRMSE that excludes boundary
// regions affected by non-periodic convolution edge effects.
func NRMSERange(got, want []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(want) || hi > len(got) {
		hi = min(len(want), len(got))
	}
	n := hi - lo
	if n <= 0 {
		return 0
	}

	gotSeg, wantSeg := got[lo:hi], want[lo:hi]
	sqErrNorm := floats.Distance(gotSeg, wantSeg, 2)
	sqRefNorm := floats.Norm(wantSeg, 2)

	rmse := sqErrNorm / math.Sqrt(float64(n))
	refRMS := sqRefNorm / math.Sqrt(float64(n))
	if refRMS == 0 {
		if rmse == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return rmse / refRMS
}

// InteriorMargin returns min(N/4, max(1, L/2)), the margin used to exclude
// boundary regions from NRMSE computations under non-periodic boundaries.
func InteriorMargin(n, filterLen int) int {
	m := filterLen / 2
	if m < 1 {
		m = 1
	}
	if q := n / 4; q < m {
		m = q
	}
	if m < 0 {
		m = 0
	}
	return m
}
