package netcdf

import (
	"errors"
	"fmt"
	"os"

	"github.com/ctessum/cdf"

	"github.com/cwbudde/algo-taper/grid"
)

// Errors returned when a file does not hold a readable field.
var (
	ErrVariableNotFound = errors.New("netcdf: variable not found")
	ErrShapeMismatch    = errors.New("netcdf: variable shape does not match axes")
	ErrUnsupportedType  = errors.New("netcdf: unsupported variable type")
)

// attributeNames are carried between Field.Attrs and the file.
var attributeNames = []string{"description", "units", "long_name"}

// Options names the coordinate variables of a file. The zero value uses
// the conventional time, lat and lon.
type Options struct {
	TimeVar string
	LatVar  string
	LonVar  string
}

func (o Options) withDefaults() Options {
	if o.TimeVar == "" {
		o.TimeVar = "time"
	}

	if o.LatVar == "" {
		o.LatVar = "lat"
	}

	if o.LonVar == "" {
		o.LonVar = "lon"
	}

	return o
}

// ReadField reads the named variable and its coordinate axes from the
// NetCDF file at path. The variable must be laid out over the three
// coordinate axes in time, lat, lon order.
func ReadField(path, variable string, opts Options) (*grid.Field, error) {
	o := opts.withDefaults()

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netcdf: opening %s: %w", path, err)
	}
	defer fh.Close()

	ff, err := cdf.Open(fh)
	if err != nil {
		return nil, fmt.Errorf("netcdf: reading header of %s: %w", path, err)
	}

	time, err := readVector(ff, o.TimeVar)
	if err != nil {
		return nil, err
	}

	lat, err := readVector(ff, o.LatVar)
	if err != nil {
		return nil, err
	}

	lon, err := readVector(ff, o.LonVar)
	if err != nil {
		return nil, err
	}

	dims := ff.Header.Lengths(variable)
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVariableNotFound, variable)
	}

	if len(dims) != 3 || dims[0] != len(time) || dims[1] != len(lat) || dims[2] != len(lon) {
		return nil, fmt.Errorf("%w: %s has dimensions %v", ErrShapeMismatch, variable, dims)
	}

	values, err := readValues(ff, variable)
	if err != nil {
		return nil, err
	}

	f, err := grid.FromValues(variable, time, lat, lon, values)
	if err != nil {
		return nil, err
	}

	for _, name := range attributeNames {
		if v, ok := ff.Header.GetAttribute(variable, name).(string); ok && v != "" {
			f.Attrs[name] = v
		}
	}

	return f, nil
}

// WriteField writes the field and its coordinate axes to a NetCDF file,
// creating or truncating path.
func WriteField(path string, f *grid.Field, opts Options) error {
	if f == nil || f.Data == nil {
		return fmt.Errorf("netcdf: writing %s: nil field", path)
	}

	o := opts.withDefaults()
	nt, nlat, nlon := f.Dims()

	h := cdf.NewHeader(
		[]string{o.TimeVar, o.LatVar, o.LonVar},
		[]int{nt, nlat, nlon})
	h.AddVariable(o.TimeVar, []string{o.TimeVar}, []float64{0})
	h.AddVariable(o.LatVar, []string{o.LatVar}, []float64{0})
	h.AddVariable(o.LonVar, []string{o.LonVar}, []float64{0})
	h.AddVariable(f.Name, []string{o.TimeVar, o.LatVar, o.LonVar}, []float64{0})
	for name, value := range f.Attrs {
		h.AddAttribute(f.Name, name, value)
	}
	h.Define()

	for _, err := range h.Check() {
		if err != nil {
			return fmt.Errorf("netcdf: invalid header for %s: %w", path, err)
		}
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("netcdf: creating %s: %w", path, err)
	}

	if err := writeBody(fh, h, f, o); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}

func writeBody(fh *os.File, h *cdf.Header, f *grid.Field, o Options) error {
	ff, err := cdf.Create(fh, h)
	if err != nil {
		return fmt.Errorf("netcdf: writing header: %w", err)
	}

	vars := []struct {
		name string
		data []float64
	}{
		{o.TimeVar, f.Time},
		{o.LatVar, f.Lat},
		{o.LonVar, f.Lon},
		{f.Name, f.Data.Elements},
	}
	for _, v := range vars {
		if err := writeVariable(ff, v.name, v.data); err != nil {
			return err
		}
	}

	return cdf.UpdateNumRecs(fh)
}

func writeVariable(ff *cdf.File, name string, data []float64) error {
	end := ff.Header.Lengths(name)
	start := make([]int, len(end))

	if _, err := ff.Writer(name, start, end).Write(data); err != nil {
		return fmt.Errorf("netcdf: writing %s: %w", name, err)
	}

	return nil
}

func readVector(ff *cdf.File, name string) ([]float64, error) {
	if len(ff.Header.Lengths(name)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVariableNotFound, name)
	}

	return readValues(ff, name)
}

func readValues(ff *cdf.File, name string) ([]float64, error) {
	r := ff.Reader(name, nil, nil)
	buf := r.Zero(-1)

	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("netcdf: reading %s: %w", name, err)
	}

	switch v := buf.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is %T", ErrUnsupportedType, name, buf)
	}
}
