// Package zonal computes zonal-wavenumber power spectra of gridded fields.
//
// The spectrum is taken along longitude for every (time, latitude) row and
// averaged, optionally with cos(latitude) area weights. Rows are zero-padded
// to the transform length, which suits fields that were windowed first:
// everything outside the window is already zero.
//
// Wavenumbers are reported in cycles per full 360 degree circle, so a wave
// that fits three crests around the globe peaks at wavenumber 3.
package zonal
