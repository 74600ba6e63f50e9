// Package netcdf stores fields in NetCDF classic files.
//
// Fields are written as a double variable over time, lat and lon
// coordinate variables, the layout climate tooling expects. Reading
// accepts double, float and int variables and converts them to
// float64. Attribute handling covers the conventional description,
// units and long_name names.
package netcdf
