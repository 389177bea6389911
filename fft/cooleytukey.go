package fft

// cooleyTukey performs an in-place iterative decimation-in-time FFT on a,
// whose length must already be a power of two. inverse selects the
// conjugated twiddle direction; the caller is responsible for the final 1/N
// scaling on the inverse path.
func cooleyTukey(a []complex128, tw *twiddleSet, inverse bool) {
	n := len(a)
	if n <= 1 {
		return
	}

	bitReversePermute(a)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size
		for start := 0; start < n; start += size {
			idx := 0
			for k := 0; k < half; k++ {
				wr := tw.cos[idx]
				wi := tw.sin[idx]
				if !inverse {
					wi = -wi
				}
				idx += stride

				u := a[start+k]
				v := a[start+k+half]
				vr := real(v)*wr - imag(v)*wi
				vi := real(v)*wi + imag(v)*wr
				vw := complex(vr, vi)

				a[start+k] = u + vw
				a[start+k+half] = u - vw
			}
		}
	}
}
