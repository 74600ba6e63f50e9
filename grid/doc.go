// Package grid provides the labeled three-dimensional field type shared by
// the windowing and spectrum packages.
//
// A Field pairs (time, latitude, longitude) coordinate vectors with a dense
// row-major value array in which longitude varies fastest. Constructors copy
// their coordinate arguments, so a Field never aliases caller-owned slices.
package grid
