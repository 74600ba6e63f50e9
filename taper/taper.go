package taper

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-taper/grid"
)

// DescriptionAttr is the attribute key Apply records its summary under.
const DescriptionAttr = "description"

// Apply returns a new field equal to f multiplied along longitude by a Hann
// mask of the given size centered at centerLon. The result keeps f's name,
// coordinates and attributes, with DescriptionAttr set to describe the
// window. f itself is never modified.
func Apply(f *grid.Field, centerLon float64, size int, opts ...Option) (*grid.Field, error) {
	if f == nil || f.Data == nil {
		return nil, ErrEmptyField
	}

	mask, err := Mask(f.Lon, centerLon, size, opts...)
	if err != nil {
		return nil, err
	}

	out := f.Copy()

	nt, nlat, _ := out.Dims()
	for it := 0; it < nt; it++ {
		for j := 0; j < nlat; j++ {
			vecmath.MulBlockInPlace(out.LonRow(it, j), mask)
		}
	}

	if out.Attrs == nil {
		out.Attrs = make(map[string]string, 1)
	}

	out.Attrs[DescriptionAttr] = Description(size, centerLon)

	return out, nil
}

// Description returns the summary text recorded on tapered fields, e.g.
// "Hanning window of size 5 applied at 10E". Negative centers read as
// degrees west.
func Description(size int, centerLon float64) string {
	if centerLon < 0 {
		return fmt.Sprintf("Hanning window of size %d applied at %vW", size, -centerLon)
	}

	return fmt.Sprintf("Hanning window of size %d applied at %vE", size, centerLon)
}
