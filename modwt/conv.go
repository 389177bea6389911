package modwt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modwt/fft"
	"github.com/cwbudde/algo-modwt/internal/config"
)

// ConvOption configures an optional runtime heuristic override for
// CircularConvModwt's FFT-vs-direct selection.
type ConvOption func(*convOptions)

type convOptions struct {
	cfg *config.Heuristics
}

// WithHeuristics overrides the heuristics CircularConvModwt consults when
// deciding between direct and FFT-based periodic convolution. Defaults to
// config.New() when not supplied.
func WithHeuristics(cfg *config.Heuristics) ConvOption {
	return func(o *convOptions) { o.cfg = cfg }
}

func resolveConvOptions(opts []ConvOption) convOptions {
	o := convOptions{cfg: config.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func validateConvInputs(x, f []float64) error {
	if len(x) == 0 {
		return ErrEmptySignal
	}
	if len(f) == 0 {
		return fmt.Errorf("%w: filter is empty", ErrEmptySignal)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: signal index %d", ErrNonFinite, i)
		}
	}
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: filter index %d", ErrNonFinite, i)
		}
	}
	return nil
}

// CircularConvModwt computes the length-preserving periodic convolution
// y[t] = sum_l f[l]*x[(t-l) mod N]. When the signal length is a
// power of two and the configured heuristics select the FFT path (signal
// length >= FFTMinN and filter length exceeds signal length * FFTFilterRatio,
// per §4.9), the convolution is computed as IFFT(FFT(x) . FFT(f padded to
// N)) instead of direct summation; the FFT path is unavailable for
// non-power-of-two N since only power-of-two transforms are supported, so
// the direct path is used unconditionally in that case regardless of the
// heuristic's verdict.
func CircularConvModwt(x, f []float64, opts ...ConvOption) ([]float64, error) {
	if err := validateConvInputs(x, f); err != nil {
		return nil, err
	}

	o := resolveConvOptions(opts)
	n, l := len(x), len(f)

	if isPowerOfTwo(n) && o.cfg.ShouldUseFFT(n, l) {
		return circularConvFFT(x, f, o.cfg)
	}
	return circularConvDirect(x, f), nil
}

// circularConvDirect implements PERIODIC convolution by splitting each
// output sample's filter taps into a no-wrap region (t-l stays within
// [0,N)) and a wrap region (t-l must be folded back via modulo), avoiding a
// per-tap modulo for the common case.
func circularConvDirect(x, f []float64) []float64 {
	n, l := len(x), len(f)
	y := make([]float64, n)

	for t := 0; t < n; t++ {
		noWrap := t
		if noWrap > l-1 {
			noWrap = l - 1
		}

		sum := 0.0
		for ll := 0; ll <= noWrap; ll++ {
			sum += f[ll] * x[t-ll]
		}
		for ll := noWrap + 1; ll < l; ll++ {
			sum += f[ll] * x[mod(t-ll, n)]
		}
		y[t] = sum
	}
	return y
}

func circularConvFFT(x, f []float64, cfg *config.Heuristics) ([]float64, error) {
	n := len(x)

	fPadded := make([]float64, n)
	copy(fPadded, f)

	xSpec, err := fft.RFFT(x, fft.WithHeuristics(cfg))
	if err != nil {
		return nil, err
	}
	fSpec, err := fft.RFFT(fPadded, fft.WithHeuristics(cfg))
	if err != nil {
		return nil, err
	}

	prod := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		xr, xi := xSpec[2*i], xSpec[2*i+1]
		fr, fi := fSpec[2*i], fSpec[2*i+1]
		prod[2*i] = xr*fr - xi*fi
		prod[2*i+1] = xr*fi + xi*fr
	}

	return fft.IRFFT(prod, fft.WithHeuristics(cfg))
}

// ZeroPadConvModwt computes the length-preserving convolution treating x as
// zero outside [0, N): y[t] = sum_{l : 0 <= t-l < N} f[l]*x[t-l].
func ZeroPadConvModwt(x, f []float64) ([]float64, error) {
	if err := validateConvInputs(x, f); err != nil {
		return nil, err
	}

	n, l := len(x), len(f)
	y := make([]float64, n)
	for t := 0; t < n; t++ {
		maxL := t
		if maxL > l-1 {
			maxL = l - 1
		}
		sum := 0.0
		for ll := 0; ll <= maxL; ll++ {
			sum += f[ll] * x[t-ll]
		}
		y[t] = sum
	}
	return y, nil
}

// SymmetricConvModwt computes the length-preserving convolution under
// whole-sample symmetric reflection (period 2N-2):
// y[t] = sum_l f[l]*x[sym(t-l, N)].
func SymmetricConvModwt(x, f []float64) ([]float64, error) {
	if err := validateConvInputs(x, f); err != nil {
		return nil, err
	}

	n, l := len(x), len(f)
	y := make([]float64, n)
	for t := 0; t < n; t++ {
		sum := 0.0
		for ll := 0; ll < l; ll++ {
			sum += f[ll] * x[symReflect(t-ll, n)]
		}
		y[t] = sum
	}
	return y, nil
}

// convForBoundary dispatches to the appropriate length-preserving
// convolution kernel for the given boundary mode. It serves the analysis
// (forward) path only; synthesis uses the kernels in synthesis.go, whose
// SYMMETRIC indexing follows the orientation/shift strategy in alignment.go.
func convForBoundary(b Boundary, x, f []float64, opts ...ConvOption) ([]float64, error) {
	switch b {
	case Periodic:
		return CircularConvModwt(x, f, opts...)
	case ZeroPadding:
		return ZeroPadConvModwt(x, f)
	case Symmetric:
		return SymmetricConvModwt(x, f)
	default:
		return nil, fmt.Errorf("%w: boundary %v", ErrUnsupportedMode, b)
	}
}
