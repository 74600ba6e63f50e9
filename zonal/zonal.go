package zonal

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-taper/grid"
)

var (
	ErrEmptyField   = errors.New("zonal: empty field")
	ErrShortAxis    = errors.New("zonal: longitude axis too short")
	ErrUnsortedAxis = errors.New("zonal: longitude axis not strictly ascending")
	ErrFFTSize      = errors.New("zonal: fft size below longitude axis length")
	ErrZeroWeight   = errors.New("zonal: zero total row weight")
)

// Config holds spectrum parameters.
type Config struct {
	// FFTSize overrides the transform length. Zero selects the next power
	// of two at or above the longitude axis length.
	FFTSize int
	// AreaWeighted applies cos(latitude) weights when averaging rows.
	AreaWeighted bool
}

// Spectrum is a zonal-wavenumber power spectrum averaged over the (time,
// latitude) rows of a field.
type Spectrum struct {
	// Wavenumber holds cycles per full longitude circle for each bin.
	Wavenumber []float64
	// Power holds the averaged squared magnitude per bin.
	Power []float64
	// Rows is the number of rows averaged.
	Rows int
}

// PowerSpectrum computes the averaged longitude power spectrum of f.
func PowerSpectrum(f *grid.Field, cfg Config) (*Spectrum, error) {
	if f == nil || f.Data == nil {
		return nil, ErrEmptyField
	}

	nt, nlat, nlon := f.Dims()
	if nlon < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrShortAxis, nlon)
	}

	if !grid.IsStrictlyAscending(f.Lon) {
		return nil, ErrUnsortedAxis
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(nlon)
	}

	if fftSize < nlon {
		return nil, fmt.Errorf("%w: %d < %d", ErrFFTSize, fftSize, nlon)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("zonal: creating fft plan: %w", err)
	}

	bins := fftSize/2 + 1
	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pw := make([]float64, bins)
	acc := make([]float64, bins)

	weightSum := 0.0
	rows := 0

	for it := 0; it < nt; it++ {
		for j := 0; j < nlat; j++ {
			w := 1.0
			if cfg.AreaWeighted {
				w = math.Cos(f.Lat[j] * math.Pi / 180)
				if w <= 0 {
					continue
				}
			}

			row := f.LonRow(it, j)
			for i := range in {
				if i < len(row) {
					in[i] = complex(row[i], 0)
				} else {
					in[i] = 0
				}
			}

			if err := plan.Forward(out, in); err != nil {
				return nil, fmt.Errorf("zonal: forward fft: %w", err)
			}

			for k := 0; k < bins; k++ {
				re[k] = real(out[k])
				im[k] = imag(out[k])
			}

			vecmath.Power(pw, re, im)
			floats.AddScaled(acc, w, pw)
			weightSum += w
			rows++
		}
	}

	if weightSum == 0 {
		return nil, ErrZeroWeight
	}

	floats.Scale(1/weightSum, acc)

	step := grid.Spacing(f.Lon)

	wavenumber := make([]float64, bins)
	for k := range wavenumber {
		wavenumber[k] = float64(k) * 360 / (float64(fftSize) * step)
	}

	return &Spectrum{Wavenumber: wavenumber, Power: acc, Rows: rows}, nil
}

// Peak returns the dominant wavenumber and its power, ignoring the DC bin.
func (s *Spectrum) Peak() (wavenumber, power float64) {
	if len(s.Power) < 2 {
		return 0, 0
	}

	k := floats.MaxIdx(s.Power[1:]) + 1

	return s.Wavenumber[k], s.Power[k]
}

// Total returns the summed power across all bins.
func (s *Spectrum) Total() float64 {
	return floats.Sum(s.Power)
}

// Centroid returns the power-weighted mean wavenumber.
func (s *Spectrum) Centroid() float64 {
	return stat.Mean(s.Wavenumber, s.Power)
}

// Spread returns the power-weighted standard deviation of wavenumber.
func (s *Spectrum) Spread() float64 {
	return stat.StdDev(s.Wavenumber, s.Power)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
