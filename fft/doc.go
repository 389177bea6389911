// Package fft provides a power-of-two complex FFT used both as a standalone
// utility and as the large-filter circular-convolution path for the modwt
// package.
//
// Two equivalent cores are available, selected by config.Heuristics.StockhamEnabled:
// decimation-in-time Cooley-Tukey with an explicit bit-reversal permutation,
// and Stockham autosort, which avoids bit reversal by ping-ponging between
// two buffers a stage at a time. Both read from the same process-wide
// twiddle cache (see Plan and the twiddle cache in twiddle.go).
//
// All exported entry points operate on a length-N power-of-two sequence.
// Forward/Inverse work on separate real/imaginary slices; ForwardInterleaved/
// InverseInterleaved work on []complex128; RFFT/IRFFT are the real-input
// specializations. InverseNoScale variants skip the final 1/N normalization
// for callers that apply their own combined scaling.
package fft
