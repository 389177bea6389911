// Package config holds the small set of runtime-adjustable knobs shared by
// the fft and modwt packages: the direct-vs-FFT convolution threshold, the
// Stockham/real-optimized FFT opt-ins, and the twiddle cache bounds.
//
// Defaults are overridable via environment variables so a deployment can
// tune the heuristics without a recompile, mirroring how dsp/core exposes a
// DefaultProcessorConfig plus functional options for its processing knobs —
// except these settings are read once from the process environment rather
// than threaded through constructor calls, since they govern package-level
// caches (the FFT twiddle cache) shared by every caller.
//
// Fields that can be changed after process start (FFTMinN and
// FFTFilterRatio) are stored behind atomic accessors so concurrent readers
// never observe a torn update.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"sync/atomic"
)

// Heuristics holds the runtime-adjustable FFT/direct-convolution and twiddle
// cache thresholds.
type Heuristics struct {
	fftMinN        atomic.Int64
	fftFilterRatio atomic.Uint64 // math.Float64bits

	StockhamEnabled     bool
	RealOptimizedFFT    bool
	TwiddleCacheEnabled bool
	TwiddleCacheMinN    int
	TwiddleCacheMaxN    int
}

// Default values, matching §4.9 of the design.
const (
	DefaultFFTMinN          = 1024
	DefaultFFTFilterRatio   = 1.0 / 8.0
	DefaultTwiddleCacheMinN = 1024
	DefaultTwiddleCacheMaxN = 65536
	DefaultStockhamEnabled  = false
	DefaultRealOptimizedFFT = false
	DefaultTwiddleCacheOn   = true
)

// New returns a Heuristics populated with the documented defaults.
func New() *Heuristics {
	h := &Heuristics{
		StockhamEnabled:     DefaultStockhamEnabled,
		RealOptimizedFFT:    DefaultRealOptimizedFFT,
		TwiddleCacheEnabled: DefaultTwiddleCacheOn,
		TwiddleCacheMinN:    DefaultTwiddleCacheMinN,
		TwiddleCacheMaxN:    DefaultTwiddleCacheMaxN,
	}
	h.fftMinN.Store(DefaultFFTMinN)
	h.SetFFTFilterRatio(DefaultFFTFilterRatio)
	return h
}

// FFTMinN returns the minimum signal length N above which FFT-based periodic
// convolution becomes eligible.
func (h *Heuristics) FFTMinN() int {
	return int(h.fftMinN.Load())
}

// SetFFTMinN updates the FFT eligibility length threshold. Safe for
// concurrent use; readers never observe a torn value.
func (h *Heuristics) SetFFTMinN(n int) {
	h.fftMinN.Store(int64(n))
}

// FFTFilterRatio returns the minimum filter-length/signal-length ratio above
// which FFT-based periodic convolution becomes eligible.
func (h *Heuristics) FFTFilterRatio() float64 {
	return math.Float64frombits(h.fftFilterRatio.Load())
}

// SetFFTFilterRatio updates the filter/signal ratio threshold.
func (h *Heuristics) SetFFTFilterRatio(ratio float64) {
	h.fftFilterRatio.Store(math.Float64bits(ratio))
}

// ShouldUseFFT applies the heuristic of §4.9: use FFT when N is at least
// FFTMinN and the filter length exceeds N*FFTFilterRatio.
func (h *Heuristics) ShouldUseFFT(n, filterLen int) bool {
	if n < h.FFTMinN() {
		return false
	}
	return float64(filterLen) > float64(n)*h.FFTFilterRatio()
}

// FromEnv builds a Heuristics from documented defaults, overridden by any of
// the MODWT_FFT_MIN_N, MODWT_FFT_FILTER_RATIO, MODWT_FFT_STOCKHAM,
// MODWT_FFT_REAL_OPTIMIZED, MODWT_TWIDDLE_CACHE_ENABLED,
// MODWT_TWIDDLE_CACHE_MIN_N, MODWT_TWIDDLE_CACHE_MAX_N environment variables
// that are set and parse successfully. A malformed value for a variable that
// is set returns an error rather than silently falling back to the default,
// since a typo'd threshold should surface at startup, not at the first
// unexpectedly-slow transform.
func FromEnv() (*Heuristics, error) {
	h := New()

	if err := overrideInt("MODWT_FFT_MIN_N", func(v int) { h.SetFFTMinN(v) }); err != nil {
		return nil, err
	}
	if err := overrideFloat("MODWT_FFT_FILTER_RATIO", func(v float64) { h.SetFFTFilterRatio(v) }); err != nil {
		return nil, err
	}
	if err := overrideBool("MODWT_FFT_STOCKHAM", &h.StockhamEnabled); err != nil {
		return nil, err
	}
	if err := overrideBool("MODWT_FFT_REAL_OPTIMIZED", &h.RealOptimizedFFT); err != nil {
		return nil, err
	}
	if err := overrideBool("MODWT_TWIDDLE_CACHE_ENABLED", &h.TwiddleCacheEnabled); err != nil {
		return nil, err
	}
	if err := overrideIntField("MODWT_TWIDDLE_CACHE_MIN_N", &h.TwiddleCacheMinN); err != nil {
		return nil, err
	}
	if err := overrideIntField("MODWT_TWIDDLE_CACHE_MAX_N", &h.TwiddleCacheMaxN); err != nil {
		return nil, err
	}

	if h.TwiddleCacheMinN > h.TwiddleCacheMaxN {
		return nil, fmt.Errorf("config: MODWT_TWIDDLE_CACHE_MIN_N (%d) > MODWT_TWIDDLE_CACHE_MAX_N (%d)", h.TwiddleCacheMinN, h.TwiddleCacheMaxN)
	}

	return h, nil
}

func overrideInt(key string, set func(int)) error {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	set(v)
	return nil
}

func overrideIntField(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

func overrideFloat(key string, set func(float64)) error {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	set(v)
	return nil
}

func overrideBool(key string, dst *bool) error {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	*dst = v
	return nil
}
