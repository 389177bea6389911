package modwt

// Boundary selects the convolution/extension convention applied at the
// edges of the signal during analysis and synthesis.
type Boundary int

const (
	// Periodic wraps the signal circularly; this is the only mode under
	// which perfect reconstruction holds at machine precision.
	Periodic Boundary = iota
	// ZeroPadding treats the signal as zero outside [0, N).
	ZeroPadding
	// Symmetric reflects the signal about each boundary (whole-sample
	// symmetric extension, period 2N-2).
	Symmetric
)

// String implements fmt.Stringer.
func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "periodic"
	case ZeroPadding:
		return "zero_padding"
	case Symmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// symReflect implements whole-sample symmetric reflection with period
// 2*N-2, used by the SYMMETRIC boundary's convolution and alignment index
// arithmetic. For N == 1 the period degenerates to 0 and the single sample
// is returned unconditionally.
func symReflect(idx, n int) int {
	if n <= 1 {
		return 0
	}
	period := 2*n - 2
	idx %= period
	if idx < 0 {
		idx += period
	}
	if idx < n {
		return idx
	}
	return period - idx
}

// mod implements a always-non-negative modulo, used by the PERIODIC
// boundary's index arithmetic.
func mod(idx, n int) int {
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
