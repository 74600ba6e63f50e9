package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-taper/netcdf"
	"github.com/cwbudde/algo-taper/taper"
)

// jobSpec holds one taper run. YAML fields mirror the command-line
// flags, plus coordinate variable names for unconventional files.
type jobSpec struct {
	Input        string  `yaml:"input"`
	Variable     string  `yaml:"variable"`
	Center       float64 `yaml:"center"`
	Size         int     `yaml:"size"`
	Output       string  `yaml:"output"`
	Tolerance    float64 `yaml:"tolerance"`
	Spectrum     bool    `yaml:"spectrum"`
	AreaWeighted bool    `yaml:"area_weighted"`
	Coords       struct {
		Time string `yaml:"time"`
		Lat  string `yaml:"lat"`
		Lon  string `yaml:"lon"`
	} `yaml:"coords"`
}

// loadJob reads and parses a YAML job file.
func loadJob(path string) (*jobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var job jobSpec
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	return &job, nil
}

func (j *jobSpec) coords() netcdf.Options {
	return netcdf.Options{TimeVar: j.Coords.Time, LatVar: j.Coords.Lat, LonVar: j.Coords.Lon}
}

func (j *jobSpec) taperOptions() []taper.Option {
	var opts []taper.Option
	if j.Tolerance > 0 {
		opts = append(opts, taper.WithTolerance(j.Tolerance))
	}

	return opts
}
