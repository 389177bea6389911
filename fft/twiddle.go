package fft

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-modwt/internal/config"
)

// twiddleSet holds the length-N/2 unit roots e^{-2*pi*i*k/N}, k=0..N/2-1,
// shared by every stage of both the Cooley-Tukey and Stockham cores: a
// stage operating on blocks of size L indexes this table with stride N/L.
//
// cos[k] = cos(2*pi*k/N); sin[k] = sin(2*pi*k/N). The forward butterfly uses
// (cos[k], -sin[k]); the inverse butterfly uses (cos[k], +sin[k]).
type twiddleSet struct {
	n   int
	cos []float64
	sin []float64
}

func computeTwiddles(n int) *twiddleSet {
	half := n / 2
	t := &twiddleSet{n: n, cos: make([]float64, half), sin: make([]float64, half)}
	if half == 0 {
		return t
	}
	step := 2 * math.Pi / float64(n)
	for k := 0; k < half; k++ {
		s, c := math.Sincos(step * float64(k))
		t.cos[k] = c
		t.sin[k] = s
	}
	return t
}

var (
	twiddleCacheMu sync.RWMutex
	twiddleCache   = map[int]*twiddleSet{}
)

// getTwiddles returns the twiddle set for n, consulting the process-wide
// cache when cfg enables it and n falls within [TwiddleCacheMinN,
// TwiddleCacheMaxN]. Outside those bounds (or when disabled) a fresh set is
// computed and returned uncached, since the caller may be a one-off
// transform of an unusual size that would otherwise pollute the cache
// forever — the cache is never evicted.
func getTwiddles(n int, cfg *config.Heuristics) *twiddleSet {
	if cfg == nil || !cfg.TwiddleCacheEnabled || n < cfg.TwiddleCacheMinN || n > cfg.TwiddleCacheMaxN {
		return computeTwiddles(n)
	}

	twiddleCacheMu.RLock()
	t, ok := twiddleCache[n]
	twiddleCacheMu.RUnlock()
	if ok {
		return t
	}

	twiddleCacheMu.Lock()
	defer twiddleCacheMu.Unlock()
	if t, ok := twiddleCache[n]; ok {
		return t
	}
	t = computeTwiddles(n)
	twiddleCache[n] = t
	return t
}
