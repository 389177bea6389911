// Package generic is the portable fallback vector kernel implementation,
// used on architectures without a dedicated unrolled variant and whenever
// the CPU feature probe in internal/cpu reports no usable SIMD extension.
package generic

import "math"

// AddScaledInto computes dst[i] += a[i] * scale.
func AddScaledInto(dst, a []float64, scale float64) {
	for i := range dst {
		dst[i] += a[i] * scale
	}
}

// ScaleInto computes dst[i] = src[i] * scale.
func ScaleInto(dst, src []float64, scale float64) {
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

// DotProduct returns sum(a[i] * b[i]).
func DotProduct(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// MaxAbs returns the maximum absolute value in x.
func MaxAbs(x []float64) float64 {
	m := math.Abs(x[0])
	for _, v := range x[1:] {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
