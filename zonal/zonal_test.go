package zonal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-taper/grid"
	"github.com/cwbudde/algo-taper/internal/testutil"
	"github.com/cwbudde/algo-taper/taper"
)

func TestPowerSpectrumConstantField(t *testing.T) {
	f := testutil.ConstantField(2, 2, 64, 1)

	s, err := PowerSpectrum(f, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if s.Rows != 4 {
		t.Fatalf("rows=%d, want 4", s.Rows)
	}

	if len(s.Power) != 33 || len(s.Wavenumber) != 33 {
		t.Fatalf("bins=%d/%d, want 33", len(s.Power), len(s.Wavenumber))
	}

	if !almostEqual(s.Power[0], 4096, 1e-6) {
		t.Fatalf("dc power=%v, want 4096", s.Power[0])
	}

	for k := 1; k < len(s.Power); k++ {
		if s.Power[k] > 1e-9 {
			t.Fatalf("bin %d holds power %v for a constant field", k, s.Power[k])
		}
	}

	if s.Wavenumber[0] != 0 {
		t.Fatalf("dc wavenumber=%v", s.Wavenumber[0])
	}
}

func TestPowerSpectrumHarmonicPeaks(t *testing.T) {
	f := testutil.HarmonicField(1, 1, 64, 3)

	s, err := PowerSpectrum(f, Config{})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireFinite(t, s.Power)

	wn, p := s.Peak()
	if !almostEqual(wn, 3, 1e-12) {
		t.Fatalf("peak wavenumber=%v, want 3", wn)
	}

	if !almostEqual(p, 1024, 1e-6) {
		t.Fatalf("peak power=%v, want 1024", p)
	}
}

func TestPowerSpectrumPadsToPowerOfTwo(t *testing.T) {
	f := testutil.ConstantField(1, 1, 48, 1)

	s, err := PowerSpectrum(f, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Power) != 33 {
		t.Fatalf("bins=%d, want 33 for a 64-point transform", len(s.Power))
	}

	if !almostEqual(s.Power[0], 48*48, 1e-6) {
		t.Fatalf("dc power=%v, want %v", s.Power[0], 48*48)
	}

	if !almostEqual(s.Wavenumber[1], 360.0/64.0, 1e-12) {
		t.Fatalf("fundamental=%v, want %v", s.Wavenumber[1], 360.0/64.0)
	}
}

func TestPowerSpectrumAreaWeighting(t *testing.T) {
	f, err := grid.New("x", []float64{0}, []float64{0, 60}, testutil.DegreeAxis(64, 0, 1))
	if err != nil {
		t.Fatal(err)
	}

	for i := range f.LonRow(0, 0) {
		f.Set(1, 0, 0, i)
		f.Set(3, 0, 1, i)
	}

	s, err := PowerSpectrum(f, Config{AreaWeighted: true})
	if err != nil {
		t.Fatal(err)
	}

	w := math.Cos(60 * math.Pi / 180)
	want := (4096 + w*9*4096) / (1 + w)

	if !almostEqual(s.Power[0], want, 1e-6) {
		t.Fatalf("weighted dc power=%v, want %v", s.Power[0], want)
	}

	plain, err := PowerSpectrum(f, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(plain.Power[0], (4096+9*4096)/2, 1e-6) {
		t.Fatalf("unweighted dc power=%v", plain.Power[0])
	}
}

func TestPowerSpectrumSkipsNonPositiveWeights(t *testing.T) {
	f, err := grid.New("x", []float64{0}, []float64{120}, testutil.DegreeAxis(64, 0, 1))
	if err != nil {
		t.Fatal(err)
	}

	_, err = PowerSpectrum(f, Config{AreaWeighted: true})
	if !errors.Is(err, ErrZeroWeight) {
		t.Fatalf("expected ErrZeroWeight, got %v", err)
	}
}

func TestPowerSpectrumErrors(t *testing.T) {
	if _, err := PowerSpectrum(nil, Config{}); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("nil field: %v", err)
	}

	short, err := grid.New("x", []float64{0}, []float64{0}, []float64{0})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := PowerSpectrum(short, Config{}); !errors.Is(err, ErrShortAxis) {
		t.Fatalf("single-sample axis: %v", err)
	}

	desc, err := grid.New("x", []float64{0}, []float64{0}, []float64{2, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := PowerSpectrum(desc, Config{}); !errors.Is(err, ErrUnsortedAxis) {
		t.Fatalf("descending axis: %v", err)
	}

	f := testutil.ConstantField(1, 1, 64, 1)
	if _, err := PowerSpectrum(f, Config{FFTSize: 32}); !errors.Is(err, ErrFFTSize) {
		t.Fatalf("undersized fft: %v", err)
	}
}

func TestPowerSpectrumAfterWindowing(t *testing.T) {
	f := testutil.HarmonicField(1, 1, 360, 8)

	masked, err := taper.Apply(f, 180, 121)
	if err != nil {
		t.Fatal(err)
	}

	s, err := PowerSpectrum(masked, Config{})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireFinite(t, s.Power)

	// Windowing spreads the line spectrum but the dominant wavenumber
	// stays within one bin of the carrier.
	wn, _ := s.Peak()
	if math.Abs(wn-8) > 360.0/512.0 {
		t.Fatalf("peak wavenumber=%v, want within one bin of 8", wn)
	}
}

func TestSpectrumStats(t *testing.T) {
	s := &Spectrum{
		Wavenumber: []float64{0, 1, 2, 3},
		Power:      []float64{0, 0, 4, 0},
	}

	wn, p := s.Peak()
	if wn != 2 || p != 4 {
		t.Fatalf("peak=(%v, %v), want (2, 4)", wn, p)
	}

	if got := s.Total(); got != 4 {
		t.Fatalf("total=%v, want 4", got)
	}

	if got := s.Centroid(); got != 2 {
		t.Fatalf("centroid=%v, want 2", got)
	}

	if got := s.Spread(); got != 0 {
		t.Fatalf("spread=%v, want 0", got)
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
