// Package vecmath provides small vector kernels used by the convolution and
// batch MODWT paths: accumulation, scaling, and dot products over []float64.
//
// Each operation dispatches at runtime to an architecture-specific
// implementation selected via internal/cpu feature detection, falling back to
// a portable generic implementation. The arch variants are plain Go with
// manual loop unrolling rather than assembly; they exist to keep the hot
// convolution inner loops free of per-element bounds checks and to give the
// compiler wider basic blocks to schedule.
package vecmath

import (
	"github.com/cwbudde/algo-modwt/internal/cpu"
	"github.com/cwbudde/algo-modwt/internal/vecmath/arch/amd64"
	"github.com/cwbudde/algo-modwt/internal/vecmath/arch/arm64"
	"github.com/cwbudde/algo-modwt/internal/vecmath/arch/generic"
)

// AddScaledInto computes dst[i] += a[i] * scale for i in range. a and dst
// must have equal length; AddScaledInto panics otherwise.
func AddScaledInto(dst, a []float64, scale float64) {
	if len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	switch {
	case cpu.HasAVX2():
		amd64.AddScaledInto(dst, a, scale)
	case cpu.HasNEON():
		arm64.AddScaledInto(dst, a, scale)
	default:
		generic.AddScaledInto(dst, a, scale)
	}
}

// DotProduct returns sum(a[i] * b[i]) over the shared prefix of a and b.
func DotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	switch {
	case cpu.HasAVX2():
		return amd64.DotProduct(a[:n], b[:n])
	case cpu.HasNEON():
		return arm64.DotProduct(a[:n], b[:n])
	default:
		return generic.DotProduct(a[:n], b[:n])
	}
}

// ScaleInto computes dst[i] = src[i] * scale. dst and src must have equal
// length.
func ScaleInto(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	switch {
	case cpu.HasAVX2():
		amd64.ScaleInto(dst, src, scale)
	case cpu.HasNEON():
		arm64.ScaleInto(dst, src, scale)
	default:
		generic.ScaleInto(dst, src, scale)
	}
}

// MaxAbs returns the maximum absolute value in x, or 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	switch {
	case cpu.HasAVX2():
		return amd64.MaxAbs(x)
	case cpu.HasNEON():
		return arm64.MaxAbs(x)
	default:
		return generic.MaxAbs(x)
	}
}
