package taper

import "math"

// Hann returns the symmetric Hann curve of the given length. Endpoints are
// exactly zero for size >= 2; size 1 yields a single 1. Returns nil for
// size <= 0.
func Hann(size int) []float64 {
	if size <= 0 {
		return nil
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out
	}

	den := float64(size - 1)
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/den)
	}

	return out
}
