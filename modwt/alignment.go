package modwt

import "github.com/cwbudde/algo-modwt/wavelet"

// Orientation selects which direction a synthesis branch walks its filter
// taps relative to the output sample index.
type Orientation int

const (
	// Plus indexes the source array at (t + l - shift).
	Plus Orientation = iota
	// Minus indexes the source array at (t - l + shift).
	Minus
)

// AlignmentDecision is the per-branch (approximation or detail),
// per-level orientation and extra shift Δ applied on top of the base τ_j
// offset under the SYMMETRIC boundary.
type AlignmentDecision struct {
	Orientation Orientation
	Delta       int
}

// AlignmentTable supplies the symmetric inverse alignment decisions for
// the approximation (H) and detail (G) synthesis branches at a given
// level. The design notes flag this table as empirically calibrated only
// for Haar and DB4-like filters; callers reconstructing under SYMMETRIC
// with longer, uncalibrated families can supply their own table via
// WithAlignmentTable instead of relying on the bundled default.
type AlignmentTable interface {
	Approx(level int, w *wavelet.Wavelet) AlignmentDecision
	Detail(level int, w *wavelet.Wavelet) AlignmentDecision
}

// defaultAlignmentTable implements the decision table of §4.6: the detail
// branch always orients plus with Δ=0 for levels 1-2 and Δ=-1 from level 3
// on; the approximation branch orients plus for Haar-length (L0=2) filters
// and minus otherwise, under the same Δ schedule shifted by one level.
type defaultAlignmentTable struct{}

// DefaultAlignmentTable is the bundled alignment strategy, calibrated
// against Haar and DB4 per the design notes.
var DefaultAlignmentTable AlignmentTable = defaultAlignmentTable{}

func (defaultAlignmentTable) Detail(level int, _ *wavelet.Wavelet) AlignmentDecision {
	delta := 0
	if level >= 3 {
		delta = -1
	}
	return AlignmentDecision{Orientation: Plus, Delta: delta}
}

func (defaultAlignmentTable) Approx(level int, w *wavelet.Wavelet) AlignmentDecision {
	delta := 0
	if level >= 2 {
		delta = -1
	}
	orientation := Minus
	if w.Len() == 2 {
		orientation = Plus
	}
	return AlignmentDecision{Orientation: orientation, Delta: delta}
}

// tau computes τ_j = floor(((L0-1)*2^(j-1))/2), clamped to non-negative.
func tau(l0, level int) int {
	shift := level - 1
	if shift > maxSafeShift {
		shift = maxSafeShift
	}
	spacing := 1 << uint(shift)
	n := (l0 - 1) * spacing
	t := n / 2
	if t < 0 {
		t = 0
	}
	return t
}
