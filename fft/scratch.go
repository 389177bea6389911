package fft

import "sync"

// scratchPool holds pooled thread-local []complex128 buffers used for
// bit-reversal staging, Stockham ping-pong, and real/imag packing. Buffers
// are resized (not reallocated) across calls and never returned to callers
// directly — results are always copied into freshly allocated owned slices
// before crossing back out of this package, matching dsp/spectrum's
// getScratch/putScratch pattern.
var scratchPool = sync.Pool{
	New: func() any { return new([]complex128) },
}

func getComplexScratch(n int) (buf []complex128, handle *[]complex128) {
	handle = scratchPool.Get().(*[]complex128)
	if cap(*handle) < n {
		*handle = make([]complex128, n)
	} else {
		*handle = (*handle)[:n]
	}
	return *handle, handle
}

func putComplexScratch(handle *[]complex128) {
	scratchPool.Put(handle)
}
