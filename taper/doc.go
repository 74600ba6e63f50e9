// Package taper applies a Hann window along the longitude axis of gridded
// fields.
//
// The window isolates a longitude sector ahead of zonal spectral or
// filtering analysis: values inside the sector are tapered smoothly toward
// zero at its edges, values outside are zeroed entirely. The window is
// placed by coordinate value, not by index. Its boundaries are
// centerLon +- floor(size/2) in coordinate units, so a window of size 5
// centered at 10 on a one-degree grid covers [8, 12].
//
// Placement is strict: the longitude axis must be strictly ascending with
// uniform spacing, the boundaries must lie inside the axis, and the matched
// index span must hold exactly size samples. Violations surface as one of
// the package sentinel errors instead of a silently shifted window.
//
// # Usage
//
//	masked, err := taper.Apply(field, 120, 41)
//	if err != nil {
//	    return err
//	}
//	// masked has the same shape and coordinates as field; the mask used is
//	// recorded under masked.Attrs["description"].
package taper
