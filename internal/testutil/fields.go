package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-taper/grid"
)

// DegreeAxis returns n coordinates starting at start with the given step.
func DegreeAxis(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// ConstantField returns a field of the given dimensions filled with v, on a
// one-degree longitude grid starting at 0.
func ConstantField(nt, nlat, nlon int, v float64) *grid.Field {
	f := emptyField(nt, nlat, nlon, 1)
	for i := range f.Data.Elements {
		f.Data.Elements[i] = v
	}
	return f
}

// HarmonicField returns a field whose longitude rows hold a pure cosine of
// the given zonal wavenumber. The longitude axis spans a full circle, so
// the wavenumber counts cycles per 360 degrees.
func HarmonicField(nt, nlat, nlon int, wavenumber float64) *grid.Field {
	f := emptyField(nt, nlat, nlon, 360/float64(nlon))
	for it := 0; it < nt; it++ {
		for j := 0; j < nlat; j++ {
			row := f.LonRow(it, j)
			for i, lon := range f.Lon {
				row[i] = math.Cos(2 * math.Pi * wavenumber * lon / 360)
			}
		}
	}
	return f
}

// NoiseField returns a field filled with deterministic white noise in
// [-1, 1], reproducible for a given seed.
func NoiseField(seed int64, nt, nlat, nlon int) *grid.Field {
	f := emptyField(nt, nlat, nlon, 1)
	rng := rand.New(rand.NewSource(seed))
	for i := range f.Data.Elements {
		f.Data.Elements[i] = rng.Float64()*2 - 1
	}
	return f
}

func emptyField(nt, nlat, nlon int, lonStep float64) *grid.Field {
	// Latitudes sit strictly inside the poles whatever the row count.
	latStep := 180 / float64(nlat+1)
	f, err := grid.New("test",
		DegreeAxis(nt, 0, 1),
		DegreeAxis(nlat, -90+latStep, latStep),
		DegreeAxis(nlon, 0, lonStep))
	if err != nil {
		panic(err)
	}
	return f
}
