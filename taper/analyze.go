package taper

import "gonum.org/v1/gonum/floats"

// Analysis holds summary properties of a longitude mask.
type Analysis struct {
	// First and Last are the inclusive index bounds of the nonzero span,
	// both -1 for an all-zero mask.
	First int
	Last  int
	// Size is the number of samples in the nonzero span.
	Size int
	// Peak is the largest coefficient.
	Peak float64
	// CoherentGain is the mean coefficient over the nonzero span.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth of the nonzero span in bins.
	ENBW float64
}

// Analyze computes summary properties of a mask produced by Mask. Gain and
// bandwidth are evaluated over the nonzero span only, so the zero padding
// outside the window does not dilute them.
func Analyze(mask []float64) Analysis {
	first, last := -1, -1

	for i, v := range mask {
		if v == 0 {
			continue
		}

		if first < 0 {
			first = i
		}

		last = i
	}

	a := Analysis{First: first, Last: last}
	if first < 0 {
		return a
	}

	span := mask[first : last+1]
	a.Size = len(span)
	a.Peak = floats.Max(span)

	sum := floats.Sum(span)
	a.CoherentGain = sum / float64(len(span))

	if sum != 0 {
		a.ENBW = float64(len(span)) * floats.Dot(span, span) / (sum * sum)
	}

	return a
}
