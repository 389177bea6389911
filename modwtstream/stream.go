// Package modwtstream implements the streaming batch facade: block-wise
// MODWT analysis across a fixed batch width, carrying per-level left
// history across blocks under ZERO_PADDING and SYMMETRIC boundaries and
// treating PERIODIC blocks as independent signals.
package modwtstream

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/modwt"
	"github.com/cwbudde/algo-modwt/modwtbatch"
	"github.com/cwbudde/algo-modwt/wavelet"
)

// Stream is a streaming MODWT facade over a fixed batch width, constructed
// once per (wavelet, boundary, levels) and fed blocks in order. Blocks must
// be processed serially on a single Stream instance; it keeps no internal
// synchronization.
type Stream struct {
	tr     *modwt.Transform
	levels int

	batch   int
	started bool
	closed  bool

	hist []*levelHistory // len == levels, only populated for non-PERIODIC
}

// NewStream constructs a streaming facade for J decomposition levels under
// the given wavelet and boundary mode.
func NewStream(w *wavelet.Wavelet, boundary modwt.Boundary, levels int, opts ...modwt.TransformOption) (*Stream, error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: levels=%d must be >= 1", modwt.ErrInvalidLevel, levels)
	}
	tr, err := modwt.NewTransform(w, boundary, opts...)
	if err != nil {
		return nil, err
	}

	s := &Stream{tr: tr, levels: levels}
	if boundary != modwt.Periodic {
		s.hist = make([]*levelHistory, levels)
		for level := 1; level <= levels; level++ {
			h, _, err := tr.LevelAnalysisFilters(level)
			if err != nil {
				return nil, err
			}
			s.hist[level-1] = newLevelHistory(len(h) - 1)
		}
	}
	return s, nil
}

// HistoryLengthForLevel returns histLen_j = L_j - 1 for the given level.
func (s *Stream) HistoryLengthForLevel(level int) (int, error) {
	if level < 1 || level > s.levels {
		return 0, fmt.Errorf("%w: level %d, have 1..%d", modwt.ErrInvalidLevel, level, s.levels)
	}
	h, _, err := s.tr.LevelAnalysisFilters(level)
	if err != nil {
		return 0, err
	}
	return len(h) - 1, nil
}

// MinFlushTailLength returns the smallest histLen_j across all levels, the
// largest tail length FlushSingleLevel/FlushMultiLevel can accept for every
// level in the cascade at once.
func (s *Stream) MinFlushTailLength() (int, error) {
	min := -1
	for level := 1; level <= s.levels; level++ {
		hl, err := s.HistoryLengthForLevel(level)
		if err != nil {
			return 0, err
		}
		if min < 0 || hl < min {
			min = hl
		}
	}
	return min, nil
}

// Close releases the streaming instance's history buffers. Further
// Process/Flush calls return ErrStreamClosed.
func (s *Stream) Close() {
	s.closed = true
	s.hist = nil
}

func (s *Stream) checkBatch(block [][]float64) error {
	if s.closed {
		return modwt.ErrStreamClosed
	}
	if !s.started {
		s.batch = len(block)
		s.started = true
		return nil
	}
	if len(block) != s.batch {
		return fmt.Errorf("%w: block batch %d, stream batch %d", modwt.ErrShapeMismatch, len(block), s.batch)
	}
	return nil
}

// processOneLevel runs one level's local (non-periodic) convolution pair
// over inputSoA, initializing or advancing that level's history as a side
// effect, and returns the level's (approx, detail) SoA outputs.
func (s *Stream) processOneLevel(level int, inputSoA []float64, n, batch int) (approxSoA, detailSoA []float64, err error) {
	lh := s.hist[level-1]
	if !lh.ready {
		switch s.tr.Boundary() {
		case modwt.ZeroPadding:
			lh.initZero(batch)
		case modwt.Symmetric:
			lh.initSymmetric(inputSoA, n, batch)
		default:
			return nil, nil, fmt.Errorf("%w: boundary %v", modwt.ErrUnsupportedMode, s.tr.Boundary())
		}
	}

	h, g, err := s.tr.LevelAnalysisFilters(level)
	if err != nil {
		return nil, nil, err
	}
	if len(h)-1 != lh.histLen {
		return nil, nil, fmt.Errorf("%w: level %d filter length changed since construction", modwt.ErrFilterTooLong, level)
	}

	window := lh.concatWithBlock(inputSoA, n, batch)
	approxSoA = convLocalSoA(window, lh.histLen, n, batch, h)
	detailSoA = convLocalSoA(window, lh.histLen, n, batch, g)

	lh.advance(inputSoA, n, batch)
	return approxSoA, detailSoA, nil
}

// ProcessSingleLevel runs level-1 MODWT analysis over one block.
func (s *Stream) ProcessSingleLevel(block [][]float64) (approx, detail [][]float64, err error) {
	if err := s.checkBatch(block); err != nil {
		return nil, nil, err
	}
	if s.tr.Boundary() == modwt.Periodic {
		return modwtbatch.SingleLevelAoS(s.tr, block)
	}

	soa, batch, n, err := modwtbatch.ToSoA(block)
	if err != nil {
		return nil, nil, err
	}
	approxSoA, detailSoA, err := s.processOneLevel(1, soa, n, batch)
	if err != nil {
		return nil, nil, err
	}
	return modwtbatch.FromSoA(approxSoA, batch, n), modwtbatch.FromSoA(detailSoA, batch, n), nil
}

// ProcessMultiLevel runs the full J-level cascade over one block, feeding
// each level's approximation output as the next level's input.
func (s *Stream) ProcessMultiLevel(block [][]float64) (details [][][]float64, approx [][]float64, err error) {
	if err := s.checkBatch(block); err != nil {
		return nil, nil, err
	}
	if s.tr.Boundary() == modwt.Periodic {
		result, err := modwtbatch.MultiLevelAoS(s.tr, block, s.levels)
		if err != nil {
			return nil, nil, err
		}
		details = make([][][]float64, s.levels)
		for level := 1; level <= s.levels; level++ {
			d, err := result.Detail(level)
			if err != nil {
				return nil, nil, err
			}
			details[level-1] = d
		}
		return details, result.Approx(), nil
	}

	soa, batch, n, err := modwtbatch.ToSoA(block)
	if err != nil {
		return nil, nil, err
	}

	current := soa
	details = make([][][]float64, s.levels)
	for level := 1; level <= s.levels; level++ {
		approxSoA, detailSoA, err := s.processOneLevel(level, current, n, batch)
		if err != nil {
			return nil, nil, err
		}
		details[level-1] = modwtbatch.FromSoA(detailSoA, batch, n)
		current = approxSoA
	}
	return details, modwtbatch.FromSoA(current, batch, n), nil
}

// buildSyntheticTail constructs the AoS synthetic end-of-stream input block
// for level 1, drawn from its current history: zeros under ZERO_PADDING,
// first reflection (tail[t] := hist[histLen-1-t]) under SYMMETRIC.
func (s *Stream) buildSyntheticTail(tailLen int) ([][]float64, error) {
	if s.tr.Boundary() == modwt.Periodic {
		return nil, fmt.Errorf("%w: flush is unsupported under PERIODIC", modwt.ErrFlushOnPeriodic)
	}
	lh := s.hist[0]
	if !lh.ready {
		return nil, modwt.ErrUninitializedStream
	}
	if tailLen > lh.histLen {
		return nil, fmt.Errorf("%w: tailLen %d > histLen %d", modwt.ErrTailTooLong, tailLen, lh.histLen)
	}

	tailSoA := make([]float64, tailLen*s.batch)
	if s.tr.Boundary() == modwt.Symmetric {
		for t := 0; t < tailLen; t++ {
			src := lh.histLen - 1 - t
			copy(tailSoA[t*s.batch:(t+1)*s.batch], lh.hist[src*s.batch:(src+1)*s.batch])
		}
	}
	return modwtbatch.FromSoA(tailSoA, s.batch, tailLen), nil
}

// FlushSingleLevel emits the level-1 (approx, detail) pair for a synthetic
// end-of-stream tail block of length tailLen.
func (s *Stream) FlushSingleLevel(tailLen int) (approx, detail [][]float64, err error) {
	if s.closed {
		return nil, nil, modwt.ErrStreamClosed
	}
	tail, err := s.buildSyntheticTail(tailLen)
	if err != nil {
		return nil, nil, err
	}
	return s.ProcessSingleLevel(tail)
}

// FlushMultiLevel emits the full J-level cascade outputs for a synthetic
// end-of-stream tail block of length tailLen.
func (s *Stream) FlushMultiLevel(tailLen int) (details [][][]float64, approx [][]float64, err error) {
	if s.closed {
		return nil, nil, modwt.ErrStreamClosed
	}
	tail, err := s.buildSyntheticTail(tailLen)
	if err != nil {
		return nil, nil, err
	}
	return s.ProcessMultiLevel(tail)
}
