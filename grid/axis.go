package grid

// Spacing returns the first-difference step of a coordinate vector, or 0
// when the vector has fewer than two samples.
func Spacing(coords []float64) float64 {
	if len(coords) < 2 {
		return 0
	}

	return coords[1] - coords[0]
}

// IsStrictlyAscending reports whether every coordinate is larger than its
// predecessor.
func IsStrictlyAscending(coords []float64) bool {
	for i := 1; i < len(coords); i++ {
		if coords[i] <= coords[i-1] {
			return false
		}
	}

	return true
}
