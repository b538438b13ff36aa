package source

//go:generate go tool stringer -type=ShapeEnum -trimprefix=Shape -output=shape_string.go

// ShapeEnum tells how a row was written in its data source.
type ShapeEnum int

const (
	ShapeDelimited ShapeEnum = iota // one string split on the separator
	ShapeColumns                    // an explicit slice or array of values
	ShapeScalar                     // a single value forming a one-column row
)

// Row is one normalized unit of test data.
type Row struct {
	// Index is the zero-based position of the row in its source.
	Index int
	Shape ShapeEnum
	// Raw is the element exactly as the source produced it.
	Raw any
	// Columns holds strings for delimited rows and the source values otherwise.
	Columns []any
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.Columns)
}

// Strings renders every column with fmt-style formatting, nil as "<nil>".
func (r Row) Strings() []string {
	out := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		out[i] = columnString(c)
	}

	return out
}
