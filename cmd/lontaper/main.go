// Command lontaper applies a Hann window along the longitude axis of a
// gridded NetCDF variable.
//
// Usage:
//
//	lontaper [flags]
//
// A run either names the input file, variable, window center and size
// directly, or points -job at a YAML file holding the same settings.
// Flags given on the command line override the job file.
//
// Examples:
//
//	lontaper -in ta.nc -var ta -center 30 -size 11 -out tapered.nc
//	lontaper -center -45 -size 21 -info
//	lontaper -in ta.nc -var ta -center 30 -size 11 -spectrum
//	lontaper -job taper.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-taper/grid"
	"github.com/cwbudde/algo-taper/netcdf"
	"github.com/cwbudde/algo-taper/taper"
	"github.com/cwbudde/algo-taper/zonal"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	jobPath := flag.String("job", "", "YAML job file; command-line flags override its settings")
	in := flag.String("in", "", "input NetCDF file")
	variable := flag.String("var", "", "variable to taper")
	center := flag.Float64("center", 0, "window center longitude in degrees east")
	size := flag.Int("size", 0, "window size in longitude grid points")
	out := flag.String("out", "", "output NetCDF file")
	tolerance := flag.Float64("tolerance", 0, "grid alignment tolerance as a fraction of one step (0 uses the default)")
	info := flag.Bool("info", false, "print window placement and mask properties instead of writing output")
	spectrum := flag.Bool("spectrum", false, "print a zonal power spectrum summary of the result")
	area := flag.Bool("area", false, "weight spectrum rows by cos(latitude)")
	flag.Usage = usage
	flag.Parse()

	job := &jobSpec{}
	if *jobPath != "" {
		loaded, err := loadJob(*jobPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading job file")
		}
		job = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			job.Input = *in
		case "var":
			job.Variable = *variable
		case "center":
			job.Center = *center
		case "size":
			job.Size = *size
		case "out":
			job.Output = *out
		case "tolerance":
			job.Tolerance = *tolerance
		case "spectrum":
			job.Spectrum = *spectrum
		case "area":
			job.AreaWeighted = *area
		}
	})

	if err := run(job, *info); err != nil {
		log.Fatal().Err(err).Msg("lontaper failed")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: lontaper [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Applies a Hann window along the longitude axis of a NetCDF variable.\n")
	fmt.Fprintf(os.Stderr, "Settings come from flags, a -job YAML file, or both; flags win.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  lontaper -in ta.nc -var ta -center 30 -size 11 -out tapered.nc\n")
	fmt.Fprintf(os.Stderr, "  lontaper -center -45 -size 21 -info\n")
	fmt.Fprintf(os.Stderr, "  lontaper -job taper.yaml\n")
}

func run(job *jobSpec, info bool) error {
	if info {
		return printInfo(job)
	}

	if job.Input == "" || job.Variable == "" {
		return fmt.Errorf("an input file and variable are required (see -h)")
	}

	f, err := netcdf.ReadField(job.Input, job.Variable, job.coords())
	if err != nil {
		return err
	}

	nt, nlat, nlon := f.Dims()
	log.Info().Str("file", job.Input).Str("variable", job.Variable).
		Int("times", nt).Int("lats", nlat).Int("lons", nlon).Msg("read field")

	tapered, err := taper.Apply(f, job.Center, job.Size, job.taperOptions()...)
	if err != nil {
		return err
	}

	log.Info().Float64("center", job.Center).Int("size", job.Size).
		Str("description", tapered.Attrs[taper.DescriptionAttr]).Msg("applied window")

	if job.Spectrum {
		if err := printSpectrum(tapered, job.AreaWeighted); err != nil {
			return err
		}
	}

	if job.Output == "" {
		if !job.Spectrum {
			log.Warn().Msg("no output file; use -out to save the result")
		}
		return nil
	}

	if err := netcdf.WriteField(job.Output, tapered, job.coords()); err != nil {
		return err
	}

	log.Info().Str("file", job.Output).Msg("wrote field")

	return nil
}

// printInfo reports where the window lands and what it does to the
// data, without writing anything.
func printInfo(job *jobSpec) error {
	lon, err := infoAxis(job)
	if err != nil {
		return err
	}

	opts := job.taperOptions()
	mask, err := taper.Mask(lon, job.Center, job.Size, opts...)
	if err != nil {
		return err
	}

	first, last, err := taper.Span(lon, job.Center, job.Size, opts...)
	if err != nil {
		return err
	}

	a := taper.Analyze(mask)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Description\t%s\n", taper.Description(job.Size, job.Center))
	fmt.Fprintf(tw, "Longitudes\t%d (%g to %g)\n", len(lon), lon[0], lon[len(lon)-1])
	fmt.Fprintf(tw, "Window span\t%g to %g (indices %d to %d)\n", lon[first], lon[last], first, last)
	fmt.Fprintf(tw, "Nonzero span\tindices %d to %d\n", a.First, a.Last)
	fmt.Fprintf(tw, "Peak\t%.6f\n", a.Peak)
	fmt.Fprintf(tw, "Coherent gain\t%.6f\n", a.CoherentGain)
	fmt.Fprintf(tw, "ENBW\t%.4f bins\n", a.ENBW)

	return tw.Flush()
}

// infoAxis resolves the longitude axis for -info: the input file's if
// one is named, a global one-degree axis otherwise.
func infoAxis(job *jobSpec) ([]float64, error) {
	if job.Input == "" {
		lon := make([]float64, 360)
		for i := range lon {
			lon[i] = float64(i)
		}
		return lon, nil
	}

	if job.Variable == "" {
		return nil, fmt.Errorf("a variable is required with -in (see -h)")
	}

	f, err := netcdf.ReadField(job.Input, job.Variable, job.coords())
	if err != nil {
		return nil, err
	}

	return f.Lon, nil
}

func printSpectrum(f *grid.Field, area bool) error {
	s, err := zonal.PowerSpectrum(f, zonal.Config{AreaWeighted: area})
	if err != nil {
		return err
	}

	wn, p := s.Peak()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Rows\t%d\n", s.Rows)
	fmt.Fprintf(tw, "Peak wavenumber\t%.4g (power %.6g)\n", wn, p)
	fmt.Fprintf(tw, "Centroid\t%.4g\n", s.Centroid())
	fmt.Fprintf(tw, "Spread\t%.4g\n", s.Spread())
	fmt.Fprintf(tw, "Total power\t%.6g\n", s.Total())

	return tw.Flush()
}
