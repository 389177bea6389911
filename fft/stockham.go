package fft

// stockham performs an in-place autosort FFT on a using the Stockham
// formulation: natural-order input in, natural-order output out, no
// bit-reversal pass. Internally it ping-pongs between a and a pooled
// scratch buffer once per stage; the final stage's output is copied back
// into a if it landed in the scratch buffer.
//
// At stage t (t = 1..log2(n)), L = 2^t is the transform size being formed
// this stage, r = n/L is the number of independent size-L transforms still
// being assembled, and half = L/2. Source element v[k*half+j] pairs with
// v[k*half+j+n/2] via twiddle e^{-2*pi*i*j/L}, writing to
// dst[k*L+j] and dst[k*L+j+half]. This is algebraically identical to the
// Cooley-Tukey butterfly; only the gather/scatter addressing differs.
func stockham(a []complex128, tw *twiddleSet, inverse bool) {
	n := len(a)
	if n <= 1 {
		return
	}

	scratch, handle := getComplexScratch(n)
	defer putComplexScratch(handle)

	src := a
	dst := scratch
	half2 := n / 2

	for L := 2; L <= n; L <<= 1 {
		half := L / 2
		r := n / L

		for k := 0; k < r; k++ {
			base := k * half
			outBase := k * L
			for j := 0; j < half; j++ {
				twIdx := j * r
				wr := tw.cos[twIdx]
				wi := tw.sin[twIdx]
				if !inverse {
					wi = -wi
				}

				aVal := src[base+j]
				bVal := src[base+j+half2]
				br := real(bVal)*wr - imag(bVal)*wi
				bi := real(bVal)*wi + imag(bVal)*wr
				bw := complex(br, bi)

				dst[outBase+j] = aVal + bw
				dst[outBase+j+half] = aVal - bw
			}
		}

		src, dst = dst, src
	}

	// After the loop, src holds the final result (roles are swapped after
	// every stage, including the last). If that is the scratch buffer, copy
	// it back into the caller's slice.
	if &src[0] != &a[0] {
		copy(a, src)
	}
}
