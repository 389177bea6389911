// Package modwtbatch implements the batch SIMD kernels of the MODWT
// engine: AoS<->SoA layout conversion plus vectorized periodic analysis,
// delegating filter management to a *modwt.Transform. The inverse entry
// points run the scalar modwt synthesis once per signal.
package modwtbatch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modwt/modwt"
)

// ToSoA transposes a batch of B equal-length signals into one SoA slab of
// length N*B where time slice t occupies the contiguous span
// [t*B, t*B+B). ToSoA and FromSoA are the only sanctioned entry/exit points
// for the batch SIMD path.
func ToSoA(signals [][]float64) (soa []float64, batch, n int, err error) {
	batch = len(signals)
	if batch == 0 {
		return nil, 0, 0, modwt.ErrEmptySignal
	}
	n = len(signals[0])
	if n == 0 {
		return nil, 0, 0, modwt.ErrEmptySignal
	}
	for i, row := range signals {
		if len(row) != n {
			return nil, 0, 0, fmt.Errorf("%w: row %d has length %d, want %d", modwt.ErrUnequalRowLength, i, len(row), n)
		}
		for k, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, 0, fmt.Errorf("%w: row %d index %d", modwt.ErrNonFinite, i, k)
			}
		}
	}

	soa = make([]float64, n*batch)
	for b, row := range signals {
		for t, v := range row {
			soa[t*batch+b] = v
		}
	}
	return soa, batch, n, nil
}

// FromSoA transposes an SoA slab of shape [N*batch] back into a [batch][N]
// AoS layout.
func FromSoA(soa []float64, batch, n int) [][]float64 {
	out := make([][]float64, batch)
	for b := range out {
		out[b] = make([]float64, n)
	}
	for t := 0; t < n; t++ {
		base := t * batch
		for b := 0; b < batch; b++ {
			out[b][t] = soa[base+b]
		}
	}
	return out
}
