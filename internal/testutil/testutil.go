package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-taper/grid"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSameAxes fails t unless got carries exactly the coordinate vectors
// of want. Coordinates are compared exactly because field operations copy
// them rather than recompute them.
func RequireSameAxes(t *testing.T, got, want *grid.Field) {
	t.Helper()
	requireAxisEqual(t, "time", got.Time, want.Time)
	requireAxisEqual(t, "lat", got.Lat, want.Lat)
	requireAxisEqual(t, "lon", got.Lon, want.Lon)
}

func requireAxisEqual(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s axis length: got %d, want %d", name, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s axis index %d: got %v, want %v", name, i, got[i], want[i])
		}
	}
}
