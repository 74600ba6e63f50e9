package zonal

import (
	"testing"

	"github.com/cwbudde/algo-taper/internal/testutil"
)

func BenchmarkPowerSpectrum(b *testing.B) {
	// Daily year of a global one-degree grid.
	f := testutil.ConstantField(4, 73, 360, 1)
	cfg := Config{AreaWeighted: true}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := PowerSpectrum(f, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
