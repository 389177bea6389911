package modwtstream

import "github.com/cwbudde/algo-modwt/internal/vecmath"

// convLocalSoA convolves a (histLen+n)*batch window (history followed by
// the current block) against filter, producing the n*batch output for the
// current block only. Because histLen == len(filter)-1, every tap index
// histLen+t-l stays within the window without wrapping or reflecting —
// boundary handling lives entirely in how the history was built, not here.
func convLocalSoA(window []float64, histLen, n, batch int, filter []float64) []float64 {
	out := make([]float64, n*batch)
	for t := 0; t < n; t++ {
		dst := out[t*batch : t*batch+batch]
		for l, fv := range filter {
			idx := histLen + t - l
			vecmath.AddScaledInto(dst, window[idx*batch:idx*batch+batch], fv)
		}
	}
	return out
}
