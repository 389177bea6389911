package fft

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for a
// specific kind; wrapped errors carry the offending value in their message.
var (
	// ErrNotPowerOfTwo is returned when a requested transform length is not
	// a power of two.
	ErrNotPowerOfTwo = errors.New("fft: length must be a power of two")

	// ErrEmptyLength is returned for a zero-length transform.
	ErrEmptyLength = errors.New("fft: length must be > 0")

	// ErrLengthMismatch is returned when paired buffers (e.g. real/imag, or
	// dst/src) do not have equal length.
	ErrLengthMismatch = errors.New("fft: buffer length mismatch")

	// ErrBufferTooShort is returned when an interleaved buffer is shorter
	// than the length its offered data claims.
	ErrBufferTooShort = errors.New("fft: interleaved buffer too short")
)
