package modwt

import "fmt"

// MLResult is an immutable multi-level MODWT decomposition: J detail
// arrays (level 1 finest .. level J coarsest) plus one final approximation,
// all of length N. Accessors return the backing arrays directly; callers
// must not mutate them — use Mutable (via DecomposeMutable) for in-place
// workflows.
type MLResult struct {
	n       int
	j       int
	details [][]float64 // details[level-1]
	approx  []float64
}

// N returns the signal length.
func (r *MLResult) N() int { return r.n }

// Levels returns the decomposition depth J.
func (r *MLResult) Levels() int { return r.j }

// Approx returns the final (coarsest) approximation array.
func (r *MLResult) Approx() []float64 { return r.approx }

// Detail returns the detail array for the given 1-indexed level (1 =
// finest, J = coarsest).
func (r *MLResult) Detail(level int) ([]float64, error) {
	if level < 1 || level > r.j {
		return nil, fmt.Errorf("%w: level %d, have 1..%d", ErrInvalidLevel, level, r.j)
	}
	return r.details[level-1], nil
}

// MutableMLResult wraps an MLResult with direct element-write access for
// denoising/SWT-style workflows that threshold or otherwise edit
// coefficients in place.
type MutableMLResult struct {
	*MLResult
}

// DetailRef returns the mutable backing slice for a level's detail
// coefficients.
func (m *MutableMLResult) DetailRef(level int) ([]float64, error) {
	if level < 1 || level > m.j {
		return nil, fmt.Errorf("%w: level %d, have 1..%d", ErrInvalidLevel, level, m.j)
	}
	return m.details[level-1], nil
}

// ApproxRef returns the mutable backing slice for the final approximation.
func (m *MutableMLResult) ApproxRef() []float64 { return m.approx }

// ReadOnly returns an independent copy of the current data as an *MLResult,
// so subsequent mutation through m does not alias the returned result.
func (m *MutableMLResult) ReadOnly() *MLResult {
	details := make([][]float64, len(m.details))
	for i, d := range m.details {
		details[i] = append([]float64(nil), d...)
	}
	return &MLResult{n: m.n, j: m.j, details: details, approx: append([]float64(nil), m.approx...)}
}

// NewMLResult builds an MLResult directly from its constituent parts,
// letting external batch and streaming facades assemble per-signal results
// without re-running the analysis cascade.
func NewMLResult(n, j int, details [][]float64, approx []float64) (*MLResult, error) {
	if j < 1 || len(details) != j {
		return nil, fmt.Errorf("%w: J=%d, got %d detail arrays", ErrInvalidLevel, j, len(details))
	}
	if len(approx) != n {
		return nil, fmt.Errorf("%w: approx length %d, want %d", ErrShapeMismatch, len(approx), n)
	}
	for level, d := range details {
		if len(d) != n {
			return nil, fmt.Errorf("%w: level %d detail length %d, want %d", ErrShapeMismatch, level+1, len(d), n)
		}
	}
	return &MLResult{n: n, j: j, details: details, approx: approx}, nil
}

// Decompose runs the forward MODWT cascade for J levels: at each level j,
// detail_j = conv(current, G_j) and current := conv(current, H_j), with
// current initialized to x.
func (t *Transform) Decompose(x []float64, j int) (*MLResult, error) {
	if err := validateSignal(x); err != nil {
		return nil, err
	}
	if j < 1 {
		return nil, fmt.Errorf("%w: J=%d must be >= 1", ErrInvalidLevel, j)
	}

	n := len(x)
	jMax, err := t.MaximumLevels(n)
	if err != nil {
		return nil, err
	}
	if j > jMax {
		return nil, fmt.Errorf("%w: J=%d exceeds maximum %d for N=%d", ErrInvalidLevel, j, jMax, n)
	}

	current := x
	details := make([][]float64, j)
	for level := 1; level <= j; level++ {
		filters, err := t.analysisCache.get(level, t.w.H0(), t.w.G0())
		if err != nil {
			return nil, err
		}
		if len(filters.h) > n {
			return nil, fmt.Errorf("%w: level %d filter length %d > N=%d", ErrFilterTooLong, level, len(filters.h), n)
		}

		detail, err := convForBoundary(t.boundary, current, filters.g, WithHeuristics(t.cfg))
		if err != nil {
			return nil, err
		}
		approxNext, err := convForBoundary(t.boundary, current, filters.h, WithHeuristics(t.cfg))
		if err != nil {
			return nil, err
		}

		details[level-1] = detail
		current = approxNext
	}

	return &MLResult{n: n, j: j, details: details, approx: current}, nil
}

// DecomposeMutable runs Decompose and wraps the (freshly computed, hence
// unaliased) result for in-place editing.
func (t *Transform) DecomposeMutable(x []float64, j int) (*MutableMLResult, error) {
	r, err := t.Decompose(x, j)
	if err != nil {
		return nil, err
	}
	return &MutableMLResult{r}, nil
}

// reconstructCascade runs the synthesis cascade from level r.Levels() down
// to 1. Details at levels outside [minKeepLevel, maxLevel] are replaced
// with zeros; when keepApprox is false, the initial approximation is
// replaced with zeros as well.
func (t *Transform) reconstructCascade(r *MLResult, minKeepLevel, maxLevel int, keepApprox bool) ([]float64, error) {
	current := r.approx
	if !keepApprox {
		current = make([]float64, r.n)
	}

	for level := r.j; level >= 1; level-- {
		detail := r.details[level-1]
		if level < minKeepLevel || level > maxLevel {
			detail = make([]float64, r.n)
		}

		filters, err := t.synthesisCache.get(level, t.w.H0Recon(), t.w.G0Recon())
		if err != nil {
			return nil, err
		}
		next, err := t.synthesizeLevel(level, current, detail, filters)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Reconstruct runs the full synthesis cascade, using every level's detail
// and the final approximation.
func (t *Transform) Reconstruct(r *MLResult) ([]float64, error) {
	return t.reconstructCascade(r, 1, r.j, true)
}

// ReconstructFromLevel reconstructs using the approximation and every
// level's detail from r.Levels() down to startLevel; details at levels
// below startLevel are treated as zero.
func (t *Transform) ReconstructFromLevel(r *MLResult, startLevel int) ([]float64, error) {
	if startLevel < 1 || startLevel > r.j {
		return nil, fmt.Errorf("%w: startLevel %d, have 1..%d", ErrInvalidLevelRange, startLevel, r.j)
	}
	return t.reconstructCascade(r, startLevel, r.j, true)
}

// ReconstructLevels reconstructs using only the details within
// [minLevel, maxLevel]; all other details are treated as zero. If
// maxLevel excludes the coarsest level (r.Levels()), the approximation is
// treated as zero too.
func (t *Transform) ReconstructLevels(r *MLResult, minLevel, maxLevel int) ([]float64, error) {
	if minLevel < 1 || maxLevel > r.j || minLevel > maxLevel {
		return nil, fmt.Errorf("%w: range [%d,%d], have 1..%d", ErrInvalidLevelRange, minLevel, maxLevel, r.j)
	}
	keepApprox := maxLevel == r.j
	return t.reconstructCascade(r, minLevel, maxLevel, keepApprox)
}
