package taper

import (
	"fmt"
	"math"
)

// defaultTolerance is the allowed deviation when matching window boundaries
// and spacing against the longitude grid, as a fraction of one grid step.
const defaultTolerance = 1e-3

// Option configures window placement.
type Option func(*config)

type config struct {
	tolerance float64
}

func defaultConfig() config {
	return config{tolerance: defaultTolerance}
}

// WithTolerance sets the grid-matching tolerance as a fraction of one grid
// step. Non-positive values leave the default in place.
func WithTolerance(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.tolerance = v
		}
	}
}

// Mask returns a full-length multiplicative mask for the longitude axis:
// zero everywhere except a Hann curve of the given size centered at
// centerLon. The axis must be strictly ascending with uniform spacing.
func Mask(lon []float64, centerLon float64, size int, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	first, last, err := locateSpan(lon, centerLon, size, cfg.tolerance)
	if err != nil {
		return nil, err
	}

	mask := make([]float64, len(lon))
	copy(mask[first:last+1], Hann(size))

	return mask, nil
}

// Span returns the inclusive index bounds the window occupies on the axis,
// validating exactly as Mask does. Note that the Hann curve is zero at both
// bounds for sizes >= 2.
func Span(lon []float64, centerLon float64, size int, opts ...Option) (first, last int, err error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return locateSpan(lon, centerLon, size, cfg.tolerance)
}

// locateSpan validates the axis and window parameters and returns the
// inclusive index span the Hann curve occupies. All validation happens here,
// before any output is allocated.
func locateSpan(lon []float64, centerLon float64, size int, tol float64) (first, last int, err error) {
	n := len(lon)
	if size < 1 || size >= n {
		return 0, 0, fmt.Errorf("%w: size %d for axis of %d samples", ErrInvalidWindowSize, size, n)
	}

	step := lon[1] - lon[0]
	if step <= 0 {
		return 0, 0, fmt.Errorf("%w: at index 1", ErrUnsortedAxis)
	}

	absTol := tol * step
	for i := 2; i < n; i++ {
		d := lon[i] - lon[i-1]
		if d <= 0 {
			return 0, 0, fmt.Errorf("%w: at index %d", ErrUnsortedAxis, i)
		}

		if math.Abs(d-step) > absTol {
			return 0, 0, fmt.Errorf("%w: spacing %v at index %d, want %v",
				ErrWindowAlignment, d, i, step)
		}
	}

	// Boundary offsets follow the size/2 convention in coordinate units, so
	// a window of size 5 reaches 2 units to each side of the center.
	half := float64(size / 2)
	left := centerLon - half
	right := centerLon + half

	if left < lon[0]-absTol || right > lon[n-1]+absTol {
		return 0, 0, fmt.Errorf("%w: window [%v, %v] outside axis [%v, %v]",
			ErrOutOfRangeCenter, left, right, lon[0], lon[n-1])
	}

	first = int(math.Round((left - lon[0]) / step))
	last = int(math.Round((right - lon[0]) / step))

	if first < 0 {
		first = 0
	}

	if last > n-1 {
		last = n - 1
	}

	if last-first+1 != size {
		return 0, 0, fmt.Errorf("%w: boundaries span %d samples, window has %d",
			ErrWindowAlignment, last-first+1, size)
	}

	return first, last, nil
}
