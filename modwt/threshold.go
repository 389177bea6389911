package modwt

import "math"

// SoftThreshold returns a new array with c'[i] = sign(c[i]) * max(|c[i]| -
// theta, 0). theta must be non-negative.
func SoftThreshold(c []float64, theta float64) ([]float64, error) {
	if theta < 0 {
		return nil, ErrNegativeThreshold
	}
	out := make([]float64, len(c))
	for i, v := range c {
		mag := math.Abs(v) - theta
		if mag < 0 {
			mag = 0
		}
		out[i] = math.Copysign(mag, v)
	}
	return out, nil
}

// HardThreshold returns a new array with c'[i] = c[i] if |c[i]| > theta,
// else 0. theta must be non-negative.
func HardThreshold(c []float64, theta float64) ([]float64, error) {
	if theta < 0 {
		return nil, ErrNegativeThreshold
	}
	out := make([]float64, len(c))
	for i, v := range c {
		if math.Abs(v) > theta {
			out[i] = v
		}
	}
	return out, nil
}
