package grid

import (
	"errors"
	"fmt"

	"github.com/ctessum/sparse"
)

var (
	ErrEmptyAxis  = errors.New("grid: empty coordinate axis")
	ErrValueCount = errors.New("grid: value count does not match axis lengths")
)

// Field is a gridded scalar quantity on a (time, latitude, longitude) grid.
//
// Data is stored row-major with longitude contiguous, so Data.Elements lays
// out one longitude row after another.
type Field struct {
	Name  string
	Time  []float64
	Lat   []float64
	Lon   []float64
	Data  *sparse.DenseArray
	Attrs map[string]string
}

// New returns a zero-filled field over the given coordinate vectors.
func New(name string, time, lat, lon []float64) (*Field, error) {
	if len(time) == 0 || len(lat) == 0 || len(lon) == 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrEmptyAxis, len(time), len(lat), len(lon))
	}

	return &Field{
		Name:  name,
		Time:  append([]float64(nil), time...),
		Lat:   append([]float64(nil), lat...),
		Lon:   append([]float64(nil), lon...),
		Data:  sparse.ZerosDense(len(time), len(lat), len(lon)),
		Attrs: make(map[string]string),
	}, nil
}

// FromValues returns a field holding the given values, which must be laid
// out row-major with longitude varying fastest. The values are copied.
func FromValues(name string, time, lat, lon, values []float64) (*Field, error) {
	f, err := New(name, time, lat, lon)
	if err != nil {
		return nil, err
	}

	if len(values) != len(f.Data.Elements) {
		return nil, fmt.Errorf("%w: %d values for %dx%dx%d",
			ErrValueCount, len(values), len(time), len(lat), len(lon))
	}

	copy(f.Data.Elements, values)

	return f, nil
}

// Dims returns the axis lengths in (time, latitude, longitude) order.
func (f *Field) Dims() (nt, nlat, nlon int) {
	return len(f.Time), len(f.Lat), len(f.Lon)
}

// At returns the value at the given axis indices.
func (f *Field) At(it, ilat, ilon int) float64 {
	return f.Data.Get(it, ilat, ilon)
}

// Set stores v at the given axis indices.
func (f *Field) Set(v float64, it, ilat, ilon int) {
	f.Data.Set(v, it, ilat, ilon)
}

// LonRow returns the contiguous longitude row at (it, ilat). The returned
// slice aliases the field's storage.
func (f *Field) LonRow(it, ilat int) []float64 {
	nlon := len(f.Lon)
	off := (it*len(f.Lat) + ilat) * nlon

	return f.Data.Elements[off : off+nlon]
}

// Copy returns a deep copy sharing no storage with f.
func (f *Field) Copy() *Field {
	out := &Field{
		Name: f.Name,
		Time: append([]float64(nil), f.Time...),
		Lat:  append([]float64(nil), f.Lat...),
		Lon:  append([]float64(nil), f.Lon...),
	}

	if f.Data != nil {
		out.Data = f.Data.Copy()
	}

	if f.Attrs != nil {
		out.Attrs = make(map[string]string, len(f.Attrs))
		for k, v := range f.Attrs {
			out.Attrs[k] = v
		}
	}

	return out
}
