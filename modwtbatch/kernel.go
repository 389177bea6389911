package modwtbatch

import "github.com/cwbudde/algo-modwt/internal/vecmath"

// convPeriodicSoA computes the length-preserving periodic convolution of an
// SoA slab against filter, writing into a freshly allocated slab of the
// same shape. forward selects the MODWT analysis index convention,
// src = (t-l) mod N; false selects the synthesis convention
// src = (t+l) mod N. Each output time slice is a batch-wide vector
// accumulation via vecmath.AddScaledInto, so one call processes all lanes
// of the batch at once rather than looping per signal.
func convPeriodicSoA(soa []float64, n, batch int, filter []float64, forward bool) []float64 {
	if len(filter) == 4 {
		return conv4TapSoA(soa, n, batch, filter, forward)
	}

	out := make([]float64, n*batch)
	for t := 0; t < n; t++ {
		dst := out[t*batch : t*batch+batch]
		for l, fv := range filter {
			var src int
			if forward {
				src = modPeriod(t-l, n)
			} else {
				src = modPeriod(t+l, n)
			}
			vecmath.AddScaledInto(dst, soa[src*batch:src*batch+batch], fv)
		}
	}
	return out
}

// conv4TapSoA is the four-tap specialization keyed on filter length rather
// than wavelet identity: unrolling the four taps removes the general
// path's per-tap slice bookkeeping whenever a level filter happens to land
// on length 4. This is an optimization only; correctness never depends on
// which wavelet produced the filter.
func conv4TapSoA(soa []float64, n, batch int, filter []float64, forward bool) []float64 {
	out := make([]float64, n*batch)
	f0, f1, f2, f3 := filter[0], filter[1], filter[2], filter[3]

	for t := 0; t < n; t++ {
		dst := out[t*batch : t*batch+batch]
		var s0, s1, s2, s3 int
		if forward {
			s0, s1, s2, s3 = modPeriod(t, n), modPeriod(t-1, n), modPeriod(t-2, n), modPeriod(t-3, n)
		} else {
			s0, s1, s2, s3 = modPeriod(t, n), modPeriod(t+1, n), modPeriod(t+2, n), modPeriod(t+3, n)
		}
		vecmath.AddScaledInto(dst, soa[s0*batch:s0*batch+batch], f0)
		vecmath.AddScaledInto(dst, soa[s1*batch:s1*batch+batch], f1)
		vecmath.AddScaledInto(dst, soa[s2*batch:s2*batch+batch], f2)
		vecmath.AddScaledInto(dst, soa[s3*batch:s3*batch+batch], f3)
	}
	return out
}

func modPeriod(idx, n int) int {
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
