package modwt

import "errors"

// Sentinel errors returned by this package. Each maps to a stable
// discriminator for programmatic handling; errors.Is distinguishes the
// kind, while the wrapping message carries the offending parameters.
var (
	// Argument errors: caller-supplied values are individually invalid.
	ErrEmptySignal        = errors.New("modwt: VAL_EMPTY: signal must be non-empty")
	ErrNonFinite          = errors.New("modwt: VAL_NON_FINITE: input contains NaN or Inf")
	ErrInvalidLevel       = errors.New("modwt: VAL_INVALID_LEVEL: level out of range")
	ErrInvalidLevelRange  = errors.New("modwt: VAL_INVALID_LEVEL_RANGE: level range invalid")
	ErrNegativeThreshold  = errors.New("modwt: VAL_NEGATIVE_THRESHOLD: threshold must be >= 0")
	ErrUnequalRowLength   = errors.New("modwt: VAL_UNEQUAL_ROWS: batch rows must share one length")
	ErrShapeMismatch      = errors.New("modwt: VAL_SHAPE_MISMATCH: inverse inputs have mismatched shapes")
	ErrTailTooLong        = errors.New("modwt: VAL_TAIL_TOO_LONG: flush tail exceeds history length")

	// Configuration errors: the requested operation is not supported given
	// the wavelet, boundary, or signal length involved.
	ErrFilterTooLong   = errors.New("modwt: CFG_FILTER_TOO_LONG: upsampled filter length exceeds signal length")
	ErrLevelOverflow   = errors.New("modwt: CFG_LEVEL_OVERFLOW: level exceeds safe bit-shift limit")
	ErrUnsupportedMode = errors.New("modwt: CFG_UNSUPPORTED_BOUNDARY: boundary mode unsupported for this path")

	// State errors: the operation is invalid given the current instance
	// state.
	ErrUninitializedStream = errors.New("modwt: STATE_UNINITIALIZED: streaming instance has not processed any block")
	ErrFlushOnPeriodic     = errors.New("modwt: STATE_FLUSH_PERIODIC: flush is unsupported under PERIODIC boundary")
	ErrStreamClosed        = errors.New("modwt: STATE_CLOSED: streaming instance has been closed")

	// ErrNilWavelet is returned when a Transform is constructed without a
	// wavelet handle.
	ErrNilWavelet = errors.New("modwt: VAL_NIL_WAVELET: wavelet must not be nil")
)
