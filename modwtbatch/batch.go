package modwtbatch

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/modwt"
)

// BatchMLResult is the AoS-shaped multi-level batch decomposition result: J
// detail batches (level 1 finest .. level J coarsest) plus one final
// approximation batch, each shaped [batch][N].
type BatchMLResult struct {
	batch   int
	n       int
	j       int
	details [][][]float64 // details[level-1][signal]
	approx  [][]float64   // approx[signal]
}

// Batch returns the number of signals in the batch.
func (r *BatchMLResult) Batch() int { return r.batch }

// N returns the signal length.
func (r *BatchMLResult) N() int { return r.n }

// Levels returns the decomposition depth J.
func (r *BatchMLResult) Levels() int { return r.j }

// Approx returns the final (coarsest) approximation batch.
func (r *BatchMLResult) Approx() [][]float64 { return r.approx }

// Detail returns the detail batch for the given 1-indexed level.
func (r *BatchMLResult) Detail(level int) ([][]float64, error) {
	if level < 1 || level > r.j {
		return nil, fmt.Errorf("%w: level %d, have 1..%d", modwt.ErrInvalidLevel, level, r.j)
	}
	return r.details[level-1], nil
}

func requirePeriodic(tr *modwt.Transform) error {
	if tr.Boundary() != modwt.Periodic {
		return fmt.Errorf("%w: batch SIMD kernels only support PERIODIC", modwt.ErrUnsupportedMode)
	}
	return nil
}

// SingleLevelAoS computes one level of periodic MODWT analysis over a
// batch of equal-length signals via the SoA kernel, round-tripping through
// ToSoA/FromSoA at the boundary.
func SingleLevelAoS(tr *modwt.Transform, signals [][]float64) (approx, detail [][]float64, err error) {
	if err := requirePeriodic(tr); err != nil {
		return nil, nil, err
	}
	soa, batch, n, err := ToSoA(signals)
	if err != nil {
		return nil, nil, err
	}

	h, g, err := tr.LevelAnalysisFilters(1)
	if err != nil {
		return nil, nil, err
	}
	if len(h) > n {
		return nil, nil, fmt.Errorf("%w: L1=%d > N=%d", modwt.ErrFilterTooLong, len(h), n)
	}

	approxSoA := convPeriodicSoA(soa, n, batch, h, true)
	detailSoA := convPeriodicSoA(soa, n, batch, g, true)
	return FromSoA(approxSoA, batch, n), FromSoA(detailSoA, batch, n), nil
}

// SingleLevelInverseAoS reconstructs a batch of signals from a single-level
// (approx, detail) pair, running the scalar inverse independently per
// signal.
func SingleLevelInverseAoS(tr *modwt.Transform, approx, detail [][]float64) ([][]float64, error) {
	if err := requirePeriodic(tr); err != nil {
		return nil, err
	}
	if len(approx) != len(detail) {
		return nil, fmt.Errorf("%w: approx batch %d vs detail batch %d", modwt.ErrShapeMismatch, len(approx), len(detail))
	}

	out := make([][]float64, len(approx))
	for b := range approx {
		y, err := tr.Inverse(modwt.SingleLevelResult{Approx: approx[b], Detail: detail[b]})
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", b, err)
		}
		out[b] = y
	}
	return out, nil
}

// MultiLevelAoS runs J levels of the periodic batch analysis cascade over
// the SoA kernel, producing one detail batch per level and a final
// approximation batch.
func MultiLevelAoS(tr *modwt.Transform, signals [][]float64, j int) (*BatchMLResult, error) {
	if err := requirePeriodic(tr); err != nil {
		return nil, err
	}
	if j < 1 {
		return nil, fmt.Errorf("%w: J=%d must be >= 1", modwt.ErrInvalidLevel, j)
	}

	soa, batch, n, err := ToSoA(signals)
	if err != nil {
		return nil, err
	}
	jMax, err := tr.MaximumLevels(n)
	if err != nil {
		return nil, err
	}
	if j > jMax {
		return nil, fmt.Errorf("%w: J=%d exceeds maximum %d for N=%d", modwt.ErrInvalidLevel, j, jMax, n)
	}

	current := soa
	details := make([][][]float64, j)
	for level := 1; level <= j; level++ {
		h, g, err := tr.LevelAnalysisFilters(level)
		if err != nil {
			return nil, err
		}
		if len(h) > n {
			return nil, fmt.Errorf("%w: level %d filter length %d > N=%d", modwt.ErrFilterTooLong, level, len(h), n)
		}

		detailSoA := convPeriodicSoA(current, n, batch, g, true)
		approxSoA := convPeriodicSoA(current, n, batch, h, true)
		details[level-1] = FromSoA(detailSoA, batch, n)
		current = approxSoA
	}

	return &BatchMLResult{batch: batch, n: n, j: j, details: details, approx: FromSoA(current, batch, n)}, nil
}

// ReconstructAoS runs the sequential multi-level inverse independently per
// signal in the batch: the inverse half of the batch path wraps the
// ordinary cascade rather than a dedicated SoA synthesis kernel.
func ReconstructAoS(tr *modwt.Transform, r *BatchMLResult) ([][]float64, error) {
	if err := requirePeriodic(tr); err != nil {
		return nil, err
	}

	out := make([][]float64, r.batch)
	for b := 0; b < r.batch; b++ {
		details := make([][]float64, r.j)
		for level := 1; level <= r.j; level++ {
			details[level-1] = r.details[level-1][b]
		}
		mlr, err := modwt.NewMLResult(r.n, r.j, details, r.approx[b])
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", b, err)
		}
		y, err := tr.Reconstruct(mlr)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", b, err)
		}
		out[b] = y
	}
	return out, nil
}
