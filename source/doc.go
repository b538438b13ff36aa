// Package source normalizes raw data sources into ordered rows of columns.
//
// A data source is a slice or array, a channel, an iter.Seq function, or a
// Provider producing one of those on demand. Each element becomes one Row:
// plain strings are split on a separator, slices and arrays are taken as
// columns, anything else is a single column.
package source
